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

// Package textlayout breaks paragraphs of styled words into lines of a
// fixed-width viewport, with optional hyphenation.  All positions and
// widths are integer pixels.
package textlayout

import "fmt"

// Style selects the variant of the paragraph's font a word is drawn with.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold italic"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// Alignment selects how a finished line places its words horizontally.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustified
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustified:
		return "justified"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// Line is one finished line of a paragraph, ready for rendering.  Words,
// XPos and Styles run in parallel; XPos[i] is the pixel x coordinate where
// Words[i] starts.  Soft hyphens have been removed from the words.
type Line struct {
	Words  []string
	XPos   []int
	Styles []Style
	Align  Alignment
}

// String gives a compact single-line rendering of l for test failures and
// debug logs.
func (l Line) String() string {
	s := "[" + l.Align.String()
	for i, w := range l.Words {
		s += fmt.Sprintf(" %q@%d", w, l.XPos[i])
		if l.Styles[i] != Regular {
			s += "/" + l.Styles[i].String()
		}
	}
	return s + "]"
}
