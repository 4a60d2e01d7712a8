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

import "strings"

// softHyphen is the UTF-8 encoding of U+00AD.  Soft hyphens mark break
// opportunities and are never drawn, so they are stripped before a word is
// measured or emitted.
const softHyphen = "­"

// Measurer measures rendered text for one font at one size.  Implementations
// map fontID to a concrete font; widths are in pixels.
type Measurer interface {
	// TextWidth returns the rendered width of text in the given style.
	TextWidth(fontID int, text string, style Style) int

	// SpaceWidth returns the width of the inter-word space.
	SpaceWidth(fontID int) int
}

// measureWord measures one word the way it will eventually be drawn: soft
// hyphens removed, and a visible hyphen appended when the word is the prefix
// of a hyphenated split.
func measureWord(m Measurer, fontID int, word string, style Style, appendHyphen bool) int {
	if !appendHyphen && !strings.Contains(word, softHyphen) {
		return m.TextWidth(fontID, word, style)
	}
	text := strings.ReplaceAll(word, softHyphen, "")
	if appendHyphen {
		text += "-"
	}
	return m.TextWidth(fontID, text, style)
}
