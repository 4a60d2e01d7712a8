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

package main

import (
	"testing"

	"github.com/th0m4sek/crosspoint-reader-polish/hyphenation"
)

func TestDiff(t *testing.T) {
	cases := []struct {
		got, want  []int
		tp, fp, fn int
	}{
		{[]int{2, 6}, []int{2, 6}, 2, 0, 0},
		{[]int{6}, []int{2, 6, 9}, 1, 0, 2},
		{[]int{3, 6}, []int{6}, 1, 1, 0},
		{nil, []int{4}, 0, 0, 1},
		{[]int{4}, nil, 0, 1, 0},
		{nil, nil, 0, 0, 0},
	}
	for _, test := range cases {
		tp, fp, fn := diff(test.got, test.want)
		if tp != test.tp || fp != test.fp || fn != test.fn {
			t.Errorf("diff(%v, %v) = %d/%d/%d, want %d/%d/%d",
				test.got, test.want, tp, fp, fn, test.tp, test.fp, test.fn)
		}
	}
}

func TestLoadCases(t *testing.T) {
	cases, err := loadCases("testdata/english_hyphenation_tests.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) != 4 {
		t.Fatalf("got %d cases, want 4", len(cases))
	}
	if cases[0].word != "hyphenation" || cases[0].frequency != 120 {
		t.Errorf("first case = %+v", cases[0])
	}
	want := []int{2, 6}
	if len(cases[0].expected) != 2 || cases[0].expected[0] != want[0] || cases[0].expected[1] != want[1] {
		t.Errorf("expected positions = %v, want %v", cases[0].expected, want)
	}
}

func TestEvaluateWeighting(t *testing.T) {
	lang := hyphenation.LanguageFor("en")
	if lang == nil {
		t.Fatal("no english language")
	}

	// "hyphenation" scores one correct break and one missed break, so
	// the weighted penalty is 1 for every unit of frequency.
	report := evaluate("english", lang, []testCase{
		{word: "hyphenation", expected: []int{2, 6}, frequency: 3},
	})
	if report.tp != 1 || report.fp != 0 || report.fn != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/0/1", report.tp, report.fp, report.fn)
	}
	if report.weighted != 1 {
		t.Errorf("weighted penalty = %v, want 1", report.weighted)
	}
	if len(report.worst) != 1 || report.worst[0].want != "hy=phen=ation" {
		t.Errorf("worst cases = %+v", report.worst)
	}
}
