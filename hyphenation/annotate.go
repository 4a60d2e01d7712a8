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

import (
	"sort"
	"strings"
)

// Annotate renders a word together with its break positions, inserting '='
// before the codepoint each position names ("hyphenation", [6] gives
// "hyphen=ation").  Positions are codepoint indexes and need not be sorted.
func Annotate(word string, positions []int) string {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)

	cps := Decode(word)
	var b strings.Builder
	b.Grow(len(word) + len(sorted))
	p := 0
	for i, cp := range cps {
		for p < len(sorted) && sorted[p] == i {
			b.WriteByte('=')
			p++
		}
		end := len(word)
		if i+1 < len(cps) {
			end = cps[i+1].Offset
		}
		b.WriteString(word[cp.Offset:end])
	}
	for p < len(sorted) && sorted[p] == len(cps) {
		b.WriteByte('=')
		p++
	}
	return b.String()
}

// AnnotatedPositions inverts Annotate: it returns the codepoint indexes of
// the '=' markers in an annotated word, counted over the plain word.
func AnnotatedPositions(annotated string) []int {
	var positions []int
	idx := 0
	for _, r := range annotated {
		if r == '=' {
			positions = append(positions, idx)
			continue
		}
		idx++
	}
	return positions
}
