// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"
	"reflect"
	"testing"
)

func rec(year int, country string) *Record {
	return &Record{Year: year, YearOK: true, Country: country}
}

func TestAggregate(t *testing.T) {
	records := []*Record{rec(1990, "US"), rec(1990, "FR"), rec(1991, "US")}

	got := Aggregate(records, All)
	want := []YearCount{{1990, 2}, {1991, 1}}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("unfiltered: want %v, got %v", want, got)
	}

	got = Aggregate(records, ByCountry("US"))
	want = []YearCount{{1990, 1}, {1991, 1}}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("filtered by US: want %v, got %v", want, got)
	}

	// Filtering is exact and case-sensitive.
	if got := Aggregate(records, ByCountry("us")); len(got) != 0 {
		t.Errorf("filtered by us: want empty, got %v", got)
	}
	if got := Aggregate(nil, All); len(got) != 0 {
		t.Errorf("no records: want empty, got %v", got)
	}
}

func TestAggregateSkipsBadYears(t *testing.T) {
	records := []*Record{
		rec(2000, "US"),
		{Year: 0, YearOK: false, Country: "US"},
		rec(2000, "US"),
	}
	want := []YearCount{{2000, 2}}
	if got := Aggregate(records, All); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func randomRecords(r *rand.Rand, n int) []*Record {
	countries := []string{"US", "FR", "Canada", "Brazil"}
	records := make([]*Record, n)
	for i := range records {
		records[i] = rec(1970+r.Intn(40), countries[r.Intn(len(countries))])
	}
	return records
}

func TestAggregateProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		records := randomRecords(r, r.Intn(200))
		for _, filter := range []Filter{All, ByCountry("US"), ByCountry("Brazil"), ByCountry("Nowhere")} {
			counts := Aggregate(records, filter)

			// Strictly increasing years.
			for i := 1; i < len(counts); i++ {
				if counts[i-1].Year >= counts[i].Year {
					t.Fatalf("%v: years not strictly increasing: %v", filter, counts)
				}
			}

			// Exact counts.
			for _, yc := range counts {
				n := 0
				for _, rec := range records {
					if rec.Year == yc.Year && filter.Match(rec) {
						n++
					}
				}
				if n != yc.Count || n < 1 {
					t.Fatalf("%v: year %d: want count %d, got %d", filter, yc.Year, n, yc.Count)
				}
			}

			// Filtering then aggregating is the same as
			// aggregating the filtered records.
			var filtered []*Record
			for _, rec := range records {
				if filter.Match(rec) {
					filtered = append(filtered, rec)
				}
			}
			if want := Aggregate(filtered, All); !reflect.DeepEqual(want, counts) {
				t.Fatalf("%v: want %v, got %v", filter, want, counts)
			}

			// Idempotent.
			if again := Aggregate(records, filter); !reflect.DeepEqual(again, counts) {
				t.Fatalf("%v: second call returned %v, first %v", filter, again, counts)
			}
		}
	}
}

func TestCountries(t *testing.T) {
	records := []*Record{rec(1990, "US"), rec(1990, "FR"), rec(1991, "US"), rec(1992, "")}
	want := []string{"FR", "US"}
	if got := Countries(records); !reflect.DeepEqual(want, got) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestTopCountries(t *testing.T) {
	records := []*Record{
		rec(1990, "US"), rec(1991, "US"), rec(1992, "US"),
		rec(1990, "FR"), rec(1991, "FR"),
		rec(1990, "BR"), rec(1991, "BR"),
		rec(1990, "DE"),
		{Country: "XX"},
		rec(1990, ""), rec(1991, ""), rec(1992, ""), rec(1993, ""),
	}
	for _, test := range []struct {
		n    int
		want []string
	}{
		{2, []string{"US", "BR"}},
		{10, []string{"US", "BR", "FR", "DE"}},
		{-1, []string{"US", "BR", "FR", "DE"}},
		{0, []string{}},
	} {
		got := TopCountries(records, test.n)
		if len(got) == 0 && len(test.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("TopCountries(%d): want %q, got %q", test.n, test.want, got)
		}
	}
}

func TestFilter(t *testing.T) {
	if c, ok := All.Country(); ok || c != "" {
		t.Errorf("All.Country() = %q, %v", c, ok)
	}
	if c, ok := ByCountry("").Country(); !ok || c != "" {
		t.Errorf("ByCountry(\"\").Country() = %q, %v", c, ok)
	}
	if !ByCountry("").Match(rec(1990, "")) || ByCountry("").Match(rec(1990, "US")) {
		t.Errorf("ByCountry(\"\") should match only empty countries")
	}
	if All.String() != "all countries" || ByCountry("FR").String() != "FR" {
		t.Errorf("unexpected Filter strings %q, %q", All, ByCountry("FR"))
	}
}
