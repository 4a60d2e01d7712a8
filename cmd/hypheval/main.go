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

// Hypheval scores the hyphenation patterns against dictionary data.
//
// Test files are named <language>_hyphenation_tests.txt and contain one
// case per line in the form
//
//	word|annotated|frequency
//
// where annotated marks the dictionary break positions with '=' (for
// example "hy=phen=ation") and frequency weights the word's contribution
// to the aggregate score.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/th0m4sek/crosspoint-reader-polish/hyphenation"
)

type testCase struct {
	word      string
	expected  []int
	frequency int
}

type wordScore struct {
	word      string
	got       string
	want      string
	missed    int
	spurious  int
	frequency int
}

type langReport struct {
	name     string
	cases    int
	tp       int
	fp       int
	fn       int
	weighted float64
	worst    []wordScore
}

func main() {
	summary := flag.Bool("summary", false, "print one line per language")
	langFlag := flag.String("lang", "all", `language to evaluate, or "all"`)
	dataDir := flag.String("data", "testdata", "directory with *_hyphenation_tests.txt files")
	worstCount := flag.Int("worst", 10, "number of worst-scoring words to list")
	flag.Parse()

	exitCode := 0
	for _, entry := range hyphenation.Entries() {
		if *langFlag != "all" && *langFlag != entry.Name {
			continue
		}
		path := filepath.Join(*dataDir, entry.Name+"_hyphenation_tests.txt")
		cases, err := loadCases(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "hypheval: %v\n", err)
			exitCode = 1
			continue
		}

		lang := entry.Language()
		if lang == nil {
			fmt.Fprintf(os.Stderr, "hypheval: no patterns for %s\n", entry.Name)
			exitCode = 1
			continue
		}

		report := evaluate(entry.Name, lang, cases)
		if *summary {
			p, r, f1 := report.scores()
			fmt.Printf("%-10s cases=%-6d P=%.3f R=%.3f F1=%.3f weighted=%.3f\n",
				report.name, report.cases, p, r, f1, report.weighted)
		} else {
			printReport(report, *worstCount)
		}
	}
	os.Exit(exitCode)
}

func loadCases(path string) ([]testCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []testCase
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: malformed line %q", path, lineNo, line)
		}
		frequency := 1
		if len(fields) >= 3 {
			frequency, err = strconv.Atoi(fields[2])
			if err != nil || frequency < 1 {
				return nil, fmt.Errorf("%s:%d: bad frequency %q", path, lineNo, fields[2])
			}
		}
		cases = append(cases, testCase{
			word:      fields[0],
			expected:  hyphenation.AnnotatedPositions(fields[1]),
			frequency: frequency,
		})
	}
	return cases, scanner.Err()
}

func evaluate(name string, lang *hyphenation.Language, cases []testCase) langReport {
	report := langReport{name: name, cases: len(cases)}
	totalWeight := 0

	for _, c := range cases {
		got := lang.WordBreakIndexes(c.word)
		tp, fp, fn := diff(got, c.expected)
		report.tp += tp
		report.fp += fp
		report.fn += fn

		// Spurious breaks are twice as bad as missed ones: a missed
		// break costs whitespace, a wrong one is a visible misprint.
		penalty := float64(fn + 2*fp)
		report.weighted += float64(c.frequency) * penalty
		totalWeight += c.frequency

		if fp+fn > 0 {
			report.worst = append(report.worst, wordScore{
				word:      c.word,
				got:       hyphenation.Annotate(c.word, got),
				want:      hyphenation.Annotate(c.word, c.expected),
				missed:    fn,
				spurious:  fp,
				frequency: c.frequency,
			})
		}
	}
	if totalWeight > 0 {
		report.weighted /= float64(totalWeight)
	}
	sort.SliceStable(report.worst, func(i, j int) bool {
		pi := (report.worst[i].missed + 2*report.worst[i].spurious) * report.worst[i].frequency
		pj := (report.worst[j].missed + 2*report.worst[j].spurious) * report.worst[j].frequency
		return pi > pj
	})
	return report
}

// diff compares two sorted position lists.
func diff(got, want []int) (tp, fp, fn int) {
	i, j := 0, 0
	for i < len(got) && j < len(want) {
		switch {
		case got[i] == want[j]:
			tp++
			i++
			j++
		case got[i] < want[j]:
			fp++
			i++
		default:
			fn++
			j++
		}
	}
	fp += len(got) - i
	fn += len(want) - j
	return tp, fp, fn
}

func (r langReport) scores() (precision, recall, f1 float64) {
	if r.tp+r.fp > 0 {
		precision = float64(r.tp) / float64(r.tp+r.fp)
	}
	if r.tp+r.fn > 0 {
		recall = float64(r.tp) / float64(r.tp+r.fn)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

func printReport(r langReport, worstCount int) {
	p, rec, f1 := r.scores()
	fmt.Printf("%s: %d cases\n", r.name, r.cases)
	fmt.Printf("  breaks: %d correct, %d spurious, %d missed\n", r.tp, r.fp, r.fn)
	fmt.Printf("  precision %.3f, recall %.3f, F1 %.3f\n", p, rec, f1)
	fmt.Printf("  weighted penalty per word: %.3f\n", r.weighted)

	if len(r.worst) > 0 && worstCount > 0 {
		fmt.Println("  worst cases:")
		for i, w := range r.worst {
			if i >= worstCount {
				break
			}
			fmt.Printf("    %-30s got %-30s want %s\n", w.word, w.got, w.want)
		}
	}
	fmt.Println()
}
