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
	"unicode"
	"unicode/utf8"
)

// Codepoint is one decoded codepoint of a word, together with the byte
// offset of its first byte in the original string.
type Codepoint struct {
	Value  rune
	Offset int
}

// Decode splits a UTF-8 string into codepoints.  Invalid bytes decode to
// utf8.RuneError and consume a single byte, so offsets always advance.
func Decode(s string) []Codepoint {
	cps := make([]Codepoint, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		cps = append(cps, Codepoint{Value: r, Offset: i})
		i += size
	}
	return cps
}

// footnote markers are rendered as trailing superscripts and must not count
// as part of the word for hyphenation purposes.
func isFootnoteMark(r rune) bool {
	switch r {
	case '*', '†', '‡', '¹', '²', '³':
		return true
	}
	return r >= '⁰' && r <= '⁹'
}

func isEdgeMark(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// TrimWordMarks drops leading punctuation and trailing punctuation and
// footnote markers from a decoded word.  The returned slice aliases cps, and
// the surviving codepoints keep their original byte offsets.
func TrimWordMarks(cps []Codepoint) []Codepoint {
	for len(cps) > 0 && isEdgeMark(cps[0].Value) {
		cps = cps[1:]
	}
	for len(cps) > 0 {
		last := cps[len(cps)-1].Value
		if !isEdgeMark(last) && !isFootnoteMark(last) {
			break
		}
		cps = cps[:len(cps)-1]
	}
	return cps
}
