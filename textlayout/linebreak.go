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

import "math"

// maxCost caps line badness so that sums of costs never overflow.
const maxCost = math.MaxInt32

// optimalBreaks chooses line breaks by minimizing the total badness of the
// paragraph, where the badness of every line but the last is the squared
// spare width.  The result lists, for each line, the index just past its
// last word; the final entry is len(p.words).
//
// Ties are broken towards the first candidate, i.e. towards shorter lines
// earlier in the paragraph.
func (p *Paragraph) optimalBreaks(viewportWidth, spaceWidth int) []int {
	// Words wider than the viewport are split up front so that the
	// badness search only sees words that can fit.
	for i := 0; i < len(p.widths); i++ {
		for p.widths[i] > viewportWidth {
			if !p.splitWordAt(i, viewportWidth, true) {
				break
			}
		}
	}

	n := len(p.words)
	cost := make([]int, n) // cost[i]: best total badness of words[i:]
	last := make([]int, n) // last[i]: last word of the first line of that solution
	cost[n-1] = 0
	last[n-1] = n - 1

	for i := n - 2; i >= 0; i-- {
		cost[i] = maxCost
		lineWidth := -spaceWidth
		for j := i; j < n; j++ {
			lineWidth += spaceWidth + p.widths[j]
			if lineWidth > viewportWidth {
				break
			}
			c := 0
			if j < n-1 {
				spare := int64(viewportWidth - lineWidth)
				total := spare*spare + int64(cost[j+1])
				if total >= maxCost {
					c = maxCost
				} else {
					c = int(total)
				}
			}
			if c < cost[i] {
				cost[i] = c
				last[i] = j
			}
		}
		if cost[i] == maxCost {
			// Nothing fits, not even the first word alone.  Put it on
			// its own overflowing line and keep the rest well broken.
			last[i] = i
			cost[i] = cost[i+1]
		}
	}

	var breaks []int
	for cur := 0; cur < n; {
		next := last[cur] + 1
		if next <= cur {
			next = cur + 1
		}
		breaks = append(breaks, next)
		cur = next
	}
	return breaks
}
