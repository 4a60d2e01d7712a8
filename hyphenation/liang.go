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

// Package hyphenation finds legal hyphenation points in words, using Liang's
// pattern method together with explicit hyphen markers embedded in the text.
package hyphenation

// Default limits on how close to a word boundary a hyphenation point may be.
const (
	DefaultMinPrefix = 2
	DefaultMinSuffix = 2
)

// trieNode stores compiled patterns, one trie level per pattern codepoint.
// A node with non-nil weights terminates a pattern; weights[k] is the weight
// of the inter-letter gap before the k-th pattern codepoint, with one extra
// trailing entry for the gap after the last one.
type trieNode struct {
	children map[rune]*trieNode
	weights  []int
}

func (n *trieNode) ensure(r rune) *trieNode {
	if n.children == nil {
		n.children = make(map[rune]*trieNode)
	}
	child := n.children[r]
	if child == nil {
		child = &trieNode{}
		n.children[r] = child
	}
	return child
}

// Language holds the compiled hyphenation patterns for one language.
type Language struct {
	root      *trieNode
	isLetter  func(rune) bool
	fold      func(rune) rune
	minPrefix int
	minSuffix int
}

// NewLanguage compiles a list of TeX-style patterns.  Digits in a pattern
// annotate the gap they precede; odd weights permit a break, even weights
// forbid one.  isLetter restricts which words the patterns apply to, and
// fold normalizes codepoints before trie lookup (usually unicode.ToLower).
// Non-positive minima fall back to the package defaults.
func NewLanguage(patterns []string, isLetter func(rune) bool, fold func(rune) rune, minPrefix, minSuffix int) *Language {
	if minPrefix <= 0 {
		minPrefix = DefaultMinPrefix
	}
	if minSuffix <= 0 {
		minSuffix = DefaultMinSuffix
	}
	l := &Language{
		root:      &trieNode{},
		isLetter:  isLetter,
		fold:      fold,
		minPrefix: minPrefix,
		minSuffix: minSuffix,
	}
	for _, p := range patterns {
		l.addPattern(p)
	}
	return l
}

func (l *Language) addPattern(s string) {
	var key []rune
	weights := []int{0}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			weights[len(weights)-1] = int(r - '0')
			continue
		}
		key = append(key, r)
		weights = append(weights, 0)
	}
	if len(key) == 0 {
		return
	}
	node := l.root
	for _, r := range key {
		node = node.ensure(r)
	}
	node.weights = weights
}

// MinPrefix is the smallest number of codepoints allowed before a break.
func (l *Language) MinPrefix() int { return l.minPrefix }

// MinSuffix is the smallest number of codepoints allowed after a break.
func (l *Language) MinSuffix() int { return l.minSuffix }

// BreakIndexes returns the codepoint indexes where cps may be broken, in
// increasing order.  An index i means a break before cps[i].  Words that are
// too short, or that contain a codepoint the language's letter predicate
// rejects, yield no break points at all.
func (l *Language) BreakIndexes(cps []Codepoint) []int {
	if len(cps) < l.minPrefix+l.minSuffix {
		return nil
	}

	runes := make([]rune, 0, len(cps)+2)
	runes = append(runes, '.')
	for _, cp := range cps {
		if !l.isLetter(cp.Value) {
			return nil
		}
		runes = append(runes, l.fold(cp.Value))
	}
	runes = append(runes, '.')

	// scores[g] is the accumulated weight of the gap before runes[g].
	scores := make([]int, len(runes)+1)
	for start := range runes {
		node := l.root
		for k := start; k < len(runes); k++ {
			node = node.children[runes[k]]
			if node == nil {
				break
			}
			for g, w := range node.weights {
				if w > scores[start+g] {
					scores[start+g] = w
				}
			}
		}
	}

	var indexes []int
	for idx := l.minPrefix; idx+l.minSuffix <= len(cps); idx++ {
		if scores[idx+1]%2 == 1 {
			indexes = append(indexes, idx)
		}
	}
	return indexes
}

// WordBreakIndexes decodes word, trims surrounding punctuation and footnote
// markers, and returns the pattern break indexes relative to the trimmed
// word.
func (l *Language) WordBreakIndexes(word string) []int {
	return l.BreakIndexes(TrimWordMarks(Decode(word)))
}
