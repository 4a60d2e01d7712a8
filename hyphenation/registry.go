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
	"bufio"
	"embed"
	"io/fs"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
)

//go:embed patterns/*.pat.txt
var patternFiles embed.FS

// Entry describes one language the registry can hyphenate.
type Entry struct {
	Name string       // human-readable name, e.g. "english"
	Tag  language.Tag // canonical BCP 47 tag

	file      string
	minPrefix int
	minSuffix int
	isLetter  func(rune) bool

	once sync.Once
	lang *Language
}

func isLatinLetter(r rune) bool    { return unicode.Is(unicode.Latin, r) }
func isCyrillicLetter(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }

// English uses wider margins than the other languages, since the standard
// English patterns assume at least three letters on each side of a break.
var registry = []*Entry{
	{Name: "english", Tag: language.English, file: "patterns/hyph-en.pat.txt", minPrefix: 3, minSuffix: 3, isLetter: isLatinLetter},
	{Name: "french", Tag: language.French, file: "patterns/hyph-fr.pat.txt", isLetter: isLatinLetter},
	{Name: "german", Tag: language.German, file: "patterns/hyph-de.pat.txt", isLetter: isLatinLetter},
	{Name: "russian", Tag: language.Russian, file: "patterns/hyph-ru.pat.txt", isLetter: isCyrillicLetter},
}

// Entries lists the registered languages, primarily for tooling.
func Entries() []*Entry {
	return append([]*Entry(nil), registry...)
}

// Language compiles the entry's pattern file on first use and returns the
// compiled language.  A broken pattern file yields nil, in which case
// callers degrade to fallback-only behavior.
func (e *Entry) Language() *Language {
	e.once.Do(func() {
		patterns, err := readPatterns(patternFiles, e.file)
		if err != nil {
			return
		}
		e.lang = NewLanguage(patterns, e.isLetter, unicode.ToLower, e.minPrefix, e.minSuffix)
	})
	return e.lang
}

func readPatterns(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, scanner.Err()
}

// LanguageFor returns the compiled language registered for the given primary
// language subtag ("en", "ru", ...), or nil if the registry has none.
func LanguageFor(primary string) *Language {
	for _, e := range registry {
		base, _ := e.Tag.Base()
		if base.String() == primary {
			return e.Language()
		}
	}
	return nil
}
