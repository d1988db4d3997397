// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"reflect"
	"testing"
)

func TestTable(t *testing.T) {
	tab := Table([]YearCount{{1990, 2}, {1991, 1}})
	if tab.Len() != 2 {
		t.Fatalf("want 2 rows, got %d", tab.Len())
	}
	if got := tab.MustColumn("year").([]int); !reflect.DeepEqual(got, []int{1990, 1991}) {
		t.Errorf("year column: got %v", got)
	}
	if got := tab.MustColumn("count").([]int); !reflect.DeepEqual(got, []int{2, 1}) {
		t.Errorf("count column: got %v", got)
	}
}

func TestCountryTable(t *testing.T) {
	records := []*Record{rec(1990, "US"), rec(1990, "FR"), rec(1991, "US"), rec(1990, "US")}
	tab := CountryTable(records, []string{"US", "FR"})
	if got, want := tab.MustColumn("country").([]string), []string{"US", "US", "FR"}; !reflect.DeepEqual(got, want) {
		t.Errorf("country column: want %v, got %v", want, got)
	}
	if got, want := tab.MustColumn("count").([]int), []int{2, 1, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("count column: want %v, got %v", want, got)
	}
	if got, want := tab.MustColumn("label").([]string), []string{"1990: 2", "1991: 1", "1990: 1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("label column: want %v, got %v", want, got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]YearCount{{1990, 2}, {1991, 4}, {1995, 4}, {1996, 2}})
	want := Summary{Total: 12, Years: 4, MinYear: 1990, MaxYear: 1996, PeakYear: 1991, PeakCount: 4, Mean: 3}
	if math.Abs(s.Mean-want.Mean) > 1e-9 {
		t.Errorf("mean: want %v, got %v", want.Mean, s.Mean)
	}
	s.Mean = want.Mean
	if s != want {
		t.Errorf("want %+v, got %+v", want, s)
	}
	if (Summarize(nil) != Summary{}) {
		t.Errorf("empty series should have zero summary")
	}
}

func TestCountryCode(t *testing.T) {
	if got := CountryCode("France"); got != "FR" {
		t.Errorf("CountryCode(France) = %q, want FR", got)
	}
	if got := CountryCode("Atlantis"); got != "" {
		t.Errorf("CountryCode(Atlantis) = %q, want empty", got)
	}
	if got := CountryLabel("Atlantis"); got != "Atlantis" {
		t.Errorf("CountryLabel(Atlantis) = %q", got)
	}
	if got := CountryLabel("France"); got != "France (FR)" {
		t.Errorf("CountryLabel(France) = %q", got)
	}
}
