// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"sort"
)

// YearCount is the number of incidents in a single year.
type YearCount struct {
	Year  int
	Count int
}

func (yc YearCount) String() string {
	return fmt.Sprintf("{Year:%d Count:%d}", yc.Year, yc.Count)
}

// Filter selects the records that take part in an aggregation. The
// zero Filter is All.
type Filter struct {
	country string
	active  bool
}

// All is the Filter that keeps every record.
var All = Filter{}

// ByCountry returns a Filter that keeps records whose Country is
// exactly country. The comparison is case-sensitive.
func ByCountry(country string) Filter {
	return Filter{country, true}
}

// Country returns the country f selects and whether f selects a
// country at all.
func (f Filter) Country() (string, bool) {
	return f.country, f.active
}

// Match reports whether r passes f.
func (f Filter) Match(r *Record) bool {
	return !f.active || r.Country == f.country
}

func (f Filter) String() string {
	if !f.active {
		return "all countries"
	}
	return f.country
}

// Aggregate counts the records passing filter in each year. The
// result has one YearCount per distinct year, in increasing order of
// year. Records without a valid year are not counted.
//
// Aggregate does not modify records, so calling it again with the
// same arguments returns an equal result.
func Aggregate(records []*Record, filter Filter) []YearCount {
	counts := make(map[int]int)
	for _, r := range records {
		if !r.YearOK || !filter.Match(r) {
			continue
		}
		counts[r.Year]++
	}

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{year, n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

// Countries returns the distinct non-empty Country values in records,
// sorted. Records with no country are only counted under All.
func Countries(records []*Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if r.Country != "" && !seen[r.Country] {
			seen[r.Country] = true
			out = append(out, r.Country)
		}
	}
	sort.Strings(out)
	return out
}
