// crosspoint-reader-polish - text layout for e-reader pages
// Copyright (C) 2025  The crosspoint-reader-polish authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package textlayout

import "slices"

// greedyBreaks fills each line with as many words as fit and then tries to
// hyphenate the word that overflows.  Fallback break points, which cut a
// word at arbitrary positions, are only allowed for a word starting a line;
// elsewhere the word simply moves to the next line.
func (p *Paragraph) greedyBreaks(viewportWidth, spaceWidth int) []int {
	var breaks []int
	cur := 0
	for cur < len(p.words) {
		lineStart := cur
		lineWidth := 0
		for cur < len(p.words) {
			first := cur == lineStart
			spacing := spaceWidth
			if first {
				spacing = 0
			}

			if lineWidth+spacing+p.widths[cur] <= viewportWidth {
				lineWidth += spacing + p.widths[cur]
				cur++
				continue
			}

			available := viewportWidth - lineWidth - spacing
			if available > 0 && p.splitWordAt(cur, available, first) {
				cur++
				break
			}

			if first {
				// An unbreakable word that starts a line is emitted as
				// is, overflowing the viewport, so layout always makes
				// progress.
				cur++
			}
			break
		}
		breaks = append(breaks, cur)
	}
	return breaks
}

// splitWordAt breaks p.words[i] at the widest break point whose prefix,
// including the trailing hyphen when one is needed, fits into
// availableWidth.  The remainder is inserted after the prefix with the same
// style.  It reports whether a split was made.
func (p *Paragraph) splitWordAt(i, availableWidth int, allowFallback bool) bool {
	if availableWidth <= 0 {
		return false
	}
	word := p.words[i]
	style := p.styles[i]

	points := p.resolver().BreakOffsets(word, allowFallback)

	bestOffset := 0
	bestWidth := -1
	bestHyphen := false
	for _, bp := range points {
		if bp.ByteOffset <= 0 || bp.ByteOffset >= len(word) {
			continue
		}
		w := measureWord(p.Measure, p.FontID, word[:bp.ByteOffset], style, bp.NeedsHyphen)
		if w > availableWidth || w <= bestWidth {
			continue
		}
		bestOffset = bp.ByteOffset
		bestWidth = w
		bestHyphen = bp.NeedsHyphen
	}
	if bestWidth < 0 {
		return false
	}

	prefix := word[:bestOffset]
	if bestHyphen {
		prefix += "-"
	}
	remainder := word[bestOffset:]

	p.words[i] = prefix
	p.widths[i] = bestWidth
	p.words = slices.Insert(p.words, i+1, remainder)
	p.styles = slices.Insert(p.styles, i+1, style)
	p.widths = slices.Insert(p.widths, i+1,
		measureWord(p.Measure, p.FontID, remainder, style, false))
	p.checkAligned()
	return true
}
