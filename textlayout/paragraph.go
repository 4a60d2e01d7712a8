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
	"fmt"
	"strings"

	"github.com/th0m4sek/crosspoint-reader-polish/hyphenation"
)

// indentGlyph is prepended to the first word of an indented paragraph.
const indentGlyph = " " // EM SPACE

// A Paragraph accumulates styled words and lays them out into lines.
//
// Layout consumes words from the front of the paragraph, so a paragraph can
// be laid out incrementally: emit the full lines that fit on the current
// page with includeLastLine false, then carry the pending words over to the
// next page.
type Paragraph struct {
	Measure Measurer
	FontID  int

	Align                 Alignment
	Hyphenate             bool
	ExtraParagraphSpacing bool

	// Resolver supplies hyphenation break points.  A nil resolver behaves
	// like a resolver without a preferred language.
	Resolver *hyphenation.Resolver

	// words, styles and widths run in parallel.  widths is only valid
	// during Layout.
	words  []string
	styles []Style
	widths []int

	indented bool
}

// AddWord appends one word to the paragraph.  Empty words are dropped.
func (p *Paragraph) AddWord(word string, style Style) {
	if word == "" {
		return
	}
	p.words = append(p.words, word)
	p.styles = append(p.styles, style)
}

// AddText splits text on whitespace and appends the resulting words.
func (p *Paragraph) AddText(text string, style Style) {
	for _, word := range strings.Fields(text) {
		p.AddWord(word, style)
	}
}

// WordCount returns the number of words not yet consumed by Layout.
func (p *Paragraph) WordCount() int {
	return len(p.words)
}

// Layout breaks the pending words of the paragraph into lines of the given
// viewport width and hands each finished line to emit, in order.  With
// includeLastLine false the final line is neither emitted nor consumed, so
// the paragraph can continue on the next page.  Words making up emitted
// lines are removed from the paragraph.
func (p *Paragraph) Layout(viewportWidth int, includeLastLine bool, emit func(Line)) {
	if len(p.words) == 0 || viewportWidth <= 0 {
		return
	}
	p.applyIndent()

	spaceWidth := p.Measure.SpaceWidth(p.FontID)
	p.widths = p.widths[:0]
	for i, word := range p.words {
		p.widths = append(p.widths, measureWord(p.Measure, p.FontID, word, p.styles[i], false))
	}
	p.checkAligned()

	var breaks []int
	if p.Hyphenate {
		breaks = p.greedyBreaks(viewportWidth, spaceWidth)
	} else {
		breaks = p.optimalBreaks(viewportWidth, spaceWidth)
	}

	lineCount := len(breaks)
	if !includeLastLine {
		lineCount--
	}
	for i := 0; i < lineCount; i++ {
		emit(p.extractLine(i, viewportWidth, spaceWidth, breaks))
	}

	consumed := 0
	if lineCount > 0 {
		consumed = breaks[lineCount-1]
	}
	p.words = p.words[consumed:]
	p.styles = p.styles[consumed:]
	p.widths = p.widths[consumed:]
}

// applyIndent marks a paragraph start with an em space glued to the first
// word.  Paragraphs separated by extra vertical space need no indent, and
// neither do centered or right-aligned ones.
func (p *Paragraph) applyIndent() {
	if p.indented || p.ExtraParagraphSpacing {
		return
	}
	p.indented = true
	if p.Align == AlignJustified || p.Align == AlignLeft {
		p.words[0] = indentGlyph + p.words[0]
	}
}

// resolver never returns nil.
func (p *Paragraph) resolver() *hyphenation.Resolver {
	if p.Resolver != nil {
		return p.Resolver
	}
	return &hyphenation.Resolver{}
}

func (p *Paragraph) checkAligned() {
	if len(p.words) != len(p.styles) || len(p.words) != len(p.widths) {
		panic(fmt.Sprintf("paragraph slices out of sync: %d words, %d styles, %d widths",
			len(p.words), len(p.styles), len(p.widths)))
	}
}

// extractLine assembles line i of the current break list.  Spacing and the
// starting x position depend on the alignment; justified spacing spreads the
// spare width evenly between words, except on the last line.
func (p *Paragraph) extractLine(i, viewportWidth, spaceWidth int, breaks []int) Line {
	start := 0
	if i > 0 {
		start = breaks[i-1]
	}
	end := breaks[i]
	count := end - start

	sum := 0
	for k := start; k < end; k++ {
		sum += p.widths[k]
	}
	spare := viewportWidth - sum

	spacing := spaceWidth
	lastLine := i == len(breaks)-1
	if p.Align == AlignJustified && !lastLine && count >= 2 {
		spacing = spare / (count - 1)
	}

	x := 0
	switch p.Align {
	case AlignRight:
		x = spare - (count-1)*spaceWidth
	case AlignCenter:
		x = (spare - (count-1)*spaceWidth) / 2
	}

	line := Line{
		Words:  make([]string, 0, count),
		XPos:   make([]int, 0, count),
		Styles: append([]Style(nil), p.styles[start:end]...),
		Align:  p.Align,
	}
	for k := start; k < end; k++ {
		word := p.words[k]
		if strings.Contains(word, softHyphen) {
			word = strings.ReplaceAll(word, softHyphen, "")
		}
		line.Words = append(line.Words, word)
		line.XPos = append(line.XPos, x)
		x += p.widths[k] + spacing
	}
	return line
}
