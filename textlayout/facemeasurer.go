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

import "golang.org/x/image/font"

// FaceMeasurer adapts golang.org/x/image/font faces to the Measurer
// interface.  It serves a single font family, so the font id is ignored;
// styles with no face registered fall back to the regular face.
type FaceMeasurer struct {
	Faces map[Style]font.Face
}

// NewFaceMeasurer returns a measurer using regular for all styles.
func NewFaceMeasurer(regular font.Face) *FaceMeasurer {
	return &FaceMeasurer{Faces: map[Style]font.Face{Regular: regular}}
}

func (m *FaceMeasurer) face(style Style) font.Face {
	if f, ok := m.Faces[style]; ok {
		return f
	}
	return m.Faces[Regular]
}

// TextWidth implements Measurer.
func (m *FaceMeasurer) TextWidth(fontID int, text string, style Style) int {
	return font.MeasureString(m.face(style), text).Ceil()
}

// SpaceWidth implements Measurer.
func (m *FaceMeasurer) SpaceWidth(fontID int) int {
	return font.MeasureString(m.face(Regular), " ").Ceil()
}
