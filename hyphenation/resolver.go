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

package hyphenation

import "unicode"

// SoftHyphen marks an invisible break opportunity embedded in the text.
const SoftHyphen = '­'

// BreakPoint is one place a word may be broken.  ByteOffset is the offset of
// the first byte of the remainder, relative to the start of the original
// word string.  NeedsHyphen reports whether a visible hyphen must be added
// to the prefix when the break is taken.
type BreakPoint struct {
	ByteOffset  int
	NeedsHyphen bool
}

// A Resolver turns words into break points.  The zero value has no language
// and produces explicit and fallback breaks only.  Resolvers are not safe
// for concurrent mutation, but distinct resolvers may share a Language.
type Resolver struct {
	Language *Language
}

// SetPreferredLanguage selects the pattern language from a BCP 47 style tag
// such as "en-US" or "ru".  Unknown or empty tags clear the language.
func (r *Resolver) SetPreferredLanguage(tag string) {
	primary := primarySubtag(tag)
	if primary == "" {
		r.Language = nil
		return
	}
	r.Language = LanguageFor(primary)
}

// primarySubtag extracts the part of tag before the first '-' or '_' and
// lowercases ASCII letters.
func primarySubtag(tag string) string {
	buf := make([]byte, 0, len(tag))
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c == '-' || c == '_' {
			break
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// BreakOffsets returns the break points for word, in increasing offset
// order.  Explicit markers in the word (hard hyphens and soft hyphens
// between letters) take precedence over everything else; otherwise pattern
// breaks apply.  If neither yields anything and includeFallback is set,
// every position that respects the language's margins becomes a break, so
// that an oversized word can still be forced apart.
func (r *Resolver) BreakOffsets(word string, includeFallback bool) []BreakPoint {
	cps := TrimWordMarks(Decode(word))
	if len(cps) == 0 {
		return nil
	}

	if breaks := explicitBreaks(cps); len(breaks) > 0 {
		return breaks
	}

	var indexes []int
	if r.Language != nil {
		indexes = r.Language.BreakIndexes(cps)
	}
	if len(indexes) == 0 && includeFallback {
		minPrefix, minSuffix := DefaultMinPrefix, DefaultMinSuffix
		if r.Language != nil {
			minPrefix, minSuffix = r.Language.MinPrefix(), r.Language.MinSuffix()
		}
		for idx := minPrefix; idx+minSuffix <= len(cps); idx++ {
			indexes = append(indexes, idx)
		}
	}
	if len(indexes) == 0 {
		return nil
	}

	breaks := make([]BreakPoint, len(indexes))
	for i, idx := range indexes {
		breaks[i] = BreakPoint{ByteOffset: cps[idx].Offset, NeedsHyphen: true}
	}
	return breaks
}

// explicitBreaks finds hyphen markers surrounded by letters.  The break
// point sits after the marker, so a hard hyphen stays on the prefix.
func explicitBreaks(cps []Codepoint) []BreakPoint {
	var breaks []BreakPoint
	for i := 1; i+1 < len(cps); i++ {
		r := cps[i].Value
		if r != '-' && r != SoftHyphen {
			continue
		}
		if !unicode.IsLetter(cps[i-1].Value) || !unicode.IsLetter(cps[i+1].Value) {
			continue
		}
		breaks = append(breaks, BreakPoint{
			ByteOffset:  cps[i+1].Offset,
			NeedsHyphen: r == SoftHyphen,
		})
	}
	return breaks
}
