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

import (
	"reflect"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/th0m4sek/crosspoint-reader-polish/hyphenation"
)

// fixedMeasurer gives every codepoint the same width, which makes layout
// results easy to compute by hand.
type fixedMeasurer struct {
	runeWidth int
	space     int
}

func (m fixedMeasurer) TextWidth(fontID int, text string, style Style) int {
	return m.runeWidth * utf8.RuneCountInString(text)
}

func (m fixedMeasurer) SpaceWidth(fontID int) int {
	return m.space
}

func collectLines(p *Paragraph, viewportWidth int, includeLastLine bool) []Line {
	var lines []Line
	p.Layout(viewportWidth, includeLastLine, func(l Line) {
		lines = append(lines, l)
	})
	return lines
}

func lineWords(lines []Line) [][]string {
	words := make([][]string, len(lines))
	for i, l := range lines {
		words[i] = l.Words
	}
	return words
}

func TestOptimalBreaks(t *testing.T) {
	cases := []struct {
		viewportWidth int
		wantXPos      []int
	}{
		{144, []int{0, 37, 94}}, // spare 14 spread as 7+7
		{145, []int{0, 37, 94}}, // indivisible spare leaves a remainder
	}
	for _, test := range cases {
		p := &Paragraph{
			Measure:               fixedMeasurer{runeWidth: 10, space: 7},
			Align:                 AlignJustified,
			ExtraParagraphSpacing: true,
		}
		p.AddText("The quick brown fox", Regular)

		lines := collectLines(p, test.viewportWidth, false)
		if len(lines) != 1 {
			t.Fatalf("viewport %d: got %d lines, want 1", test.viewportWidth, len(lines))
		}
		want := []string{"The", "quick", "brown"}
		if !reflect.DeepEqual(lines[0].Words, want) {
			t.Errorf("viewport %d: words %v, want %v", test.viewportWidth, lines[0].Words, want)
		}
		if !reflect.DeepEqual(lines[0].XPos, test.wantXPos) {
			t.Errorf("viewport %d: xpos %v, want %v", test.viewportWidth, lines[0].XPos, test.wantXPos)
		}

		// The last line is pending, not consumed.
		if p.WordCount() != 1 {
			t.Errorf("viewport %d: %d words pending, want 1", test.viewportWidth, p.WordCount())
		}
		rest := collectLines(p, test.viewportWidth, true)
		if !reflect.DeepEqual(lineWords(rest), [][]string{{"fox"}}) {
			t.Errorf("viewport %d: pending lines %v", test.viewportWidth, lineWords(rest))
		}
		if p.WordCount() != 0 {
			t.Errorf("viewport %d: paragraph not drained", test.viewportWidth)
		}
	}
}

func TestLinesFitViewport(t *testing.T) {
	m := fixedMeasurer{runeWidth: 10, space: 10}
	p := &Paragraph{
		Measure:               m,
		Align:                 AlignLeft,
		ExtraParagraphSpacing: true,
	}
	input := []string{"alpha", "be", "gamma", "dd", "epsilonn", "ze", "eta"}
	for _, w := range input {
		p.AddWord(w, Regular)
	}

	const viewportWidth = 100
	lines := collectLines(p, viewportWidth, true)
	if p.WordCount() != 0 {
		t.Fatalf("%d words left after layout", p.WordCount())
	}

	var got []string
	for _, l := range lines {
		n := len(l.Words)
		extent := l.XPos[n-1] + m.TextWidth(0, l.Words[n-1], Regular)
		if extent > viewportWidth && n > 1 {
			t.Errorf("line %v overflows: extent %d", l, extent)
		}
		got = append(got, l.Words...)
	}
	if !reflect.DeepEqual(got, input) {
		t.Errorf("words %v emitted out of order, want %v", got, input)
	}
}

func TestGreedySoftHyphen(t *testing.T) {
	p := &Paragraph{
		Measure:               fixedMeasurer{runeWidth: 10, space: 10},
		Align:                 AlignLeft,
		Hyphenate:             true,
		ExtraParagraphSpacing: true,
	}
	p.AddWord("a", Regular)
	p.AddWord("culti­vation", Regular)

	lines := collectLines(p, 60, true)
	want := [][]string{{"a"}, {"culti-"}, {"vation"}}
	if !reflect.DeepEqual(lineWords(lines), want) {
		t.Errorf("lines %v, want %v", lineWords(lines), want)
	}
	for _, l := range lines {
		for _, w := range l.Words {
			if strings.ContainsRune(w, hyphenation.SoftHyphen) {
				t.Errorf("emitted word %q contains a soft hyphen", w)
			}
		}
	}
}

func TestGreedyWidestPrefix(t *testing.T) {
	isLatin := func(r rune) bool { return unicode.Is(unicode.Latin, r) }
	lang := hyphenation.NewLanguage([]string{"y1", "n1a"}, isLatin, unicode.ToLower, 2, 2)

	cases := []struct {
		viewportWidth int
		want          [][]string
	}{
		{80, [][]string{{"hyphen-"}, {"ation"}}},
		{50, [][]string{{"hy-"}, {"phen-"}, {"ation"}}},
	}
	for _, test := range cases {
		p := &Paragraph{
			Measure:               fixedMeasurer{runeWidth: 10, space: 10},
			Align:                 AlignLeft,
			Hyphenate:             true,
			ExtraParagraphSpacing: true,
			Resolver:              &hyphenation.Resolver{Language: lang},
		}
		p.AddWord("hyphenation", Regular)

		lines := collectLines(p, test.viewportWidth, true)
		if !reflect.DeepEqual(lineWords(lines), test.want) {
			t.Errorf("viewport %d: lines %v, want %v",
				test.viewportWidth, lineWords(lines), test.want)
		}
	}
}

func TestOversizedWordSplit(t *testing.T) {
	// Without hyphenation, words wider than the viewport are still split
	// before the badness search runs.
	p := &Paragraph{
		Measure:               fixedMeasurer{runeWidth: 10, space: 10},
		Align:                 AlignLeft,
		ExtraParagraphSpacing: true,
	}
	p.AddWord("abcdefghij", Regular)

	lines := collectLines(p, 45, true)
	want := [][]string{{"abc-"}, {"def-"}, {"ghij"}}
	if !reflect.DeepEqual(lineWords(lines), want) {
		t.Errorf("lines %v, want %v", lineWords(lines), want)
	}
}

func TestUnsplittableWord(t *testing.T) {
	p := &Paragraph{
		Measure:               fixedMeasurer{runeWidth: 100, space: 10},
		Align:                 AlignLeft,
		Hyphenate:             true,
		ExtraParagraphSpacing: true,
	}
	p.AddWord("xy", Regular)

	lines := collectLines(p, 100, true)
	if !reflect.DeepEqual(lineWords(lines), [][]string{{"xy"}}) {
		t.Errorf("lines %v, want the word forced onto one line", lineWords(lines))
	}
	if p.WordCount() != 0 {
		t.Error("paragraph not drained")
	}
}

func TestSplitKeepsStyle(t *testing.T) {
	p := &Paragraph{
		Measure:               fixedMeasurer{runeWidth: 10, space: 10},
		Align:                 AlignLeft,
		Hyphenate:             true,
		ExtraParagraphSpacing: true,
	}
	p.AddWord("abcdef", Bold)

	lines := collectLines(p, 35, true)
	want := [][]string{{"ab-"}, {"cd-"}, {"ef"}}
	if !reflect.DeepEqual(lineWords(lines), want) {
		t.Fatalf("lines %v, want %v", lineWords(lines), want)
	}
	for _, l := range lines {
		for i, s := range l.Styles {
			if s != Bold {
				t.Errorf("word %q lost its style: got %s", l.Words[i], s)
			}
		}
	}
}

func TestParagraphIndent(t *testing.T) {
	p := &Paragraph{
		Measure: fixedMeasurer{runeWidth: 10, space: 10},
		Align:   AlignJustified,
	}
	p.AddText("Start here", Regular)

	lines := collectLines(p, 500, true)
	if len(lines) != 1 || lines[0].Words[0] != " Start" {
		t.Errorf("lines %v, want an indented first word", lines)
	}

	// Centered paragraphs and paragraphs separated by vertical space are
	// not indented.
	for _, p := range []*Paragraph{
		{Measure: fixedMeasurer{runeWidth: 10, space: 10}, Align: AlignCenter},
		{Measure: fixedMeasurer{runeWidth: 10, space: 10}, Align: AlignJustified, ExtraParagraphSpacing: true},
	} {
		p.AddText("Start here", Regular)
		lines := collectLines(p, 500, true)
		if lines[0].Words[0] != "Start" {
			t.Errorf("%s: first word %q, want no indent", p.Align, lines[0].Words[0])
		}
	}
}

func TestAlignmentOffsets(t *testing.T) {
	cases := []struct {
		align Alignment
		want  []int
	}{
		{AlignLeft, []int{0, 30}},
		{AlignRight, []int{50, 80}},
		{AlignCenter, []int{25, 55}},
		{AlignJustified, []int{0, 30}}, // single last line keeps word spacing
	}
	for _, test := range cases {
		p := &Paragraph{
			Measure:               fixedMeasurer{runeWidth: 10, space: 10},
			Align:                 test.align,
			ExtraParagraphSpacing: true,
		}
		p.AddText("aa bb", Regular)

		lines := collectLines(p, 100, true)
		if len(lines) != 1 {
			t.Fatalf("%s: got %d lines, want 1", test.align, len(lines))
		}
		if !reflect.DeepEqual(lines[0].XPos, test.want) {
			t.Errorf("%s: xpos %v, want %v", test.align, lines[0].XPos, test.want)
		}
	}
}

func TestAddWordAddText(t *testing.T) {
	var p Paragraph
	p.AddWord("", Regular)
	if p.WordCount() != 0 {
		t.Error("empty word was not dropped")
	}
	p.AddText("  two \t words \n", Italic)
	if p.WordCount() != 2 {
		t.Errorf("got %d words, want 2", p.WordCount())
	}
}
