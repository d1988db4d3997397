// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// Table returns counts as a table with "year" and "count" columns.
func Table(counts []YearCount) *table.Table {
	years := make([]int, len(counts))
	ns := make([]int, len(counts))
	for i, yc := range counts {
		years[i], ns[i] = yc.Year, yc.Count
	}
	return new(table.Builder).
		Add("year", years).
		Add("count", ns).
		Done()
}

// CountryTable aggregates records separately for each of countries
// and returns the concatenated results as a table with "country",
// "year", "count", and "label" columns. The label column holds the
// tooltip text for each point.
func CountryTable(records []*Record, countries []string) *table.Table {
	var (
		countryCol []string
		yearCol    []int
		countCol   []int
		labelCol   []string
	)
	for _, c := range countries {
		for _, yc := range Aggregate(records, ByCountry(c)) {
			countryCol = append(countryCol, c)
			yearCol = append(yearCol, yc.Year)
			countCol = append(countCol, yc.Count)
			labelCol = append(labelCol, fmt.Sprintf("%d: %d", yc.Year, yc.Count))
		}
	}
	return new(table.Builder).
		Add("country", countryCol).
		Add("year", yearCol).
		Add("count", countCol).
		Add("label", labelCol).
		Done()
}

// TopCountries returns up to n countries with the most incidents,
// most first. Ties are broken by name.
func TopCountries(records []*Record, n int) []string {
	totals := make(map[string]int)
	for _, r := range records {
		if r.YearOK {
			totals[r.Country]++
		}
	}
	countries := Countries(records)
	var out []string
	for _, c := range countries {
		if totals[c] > 0 {
			out = append(out, c)
		}
	}
	// Countries is sorted by name, so a stable sort by total
	// breaks ties by name.
	sort.SliceStable(out, func(i, j int) bool { return totals[out[i]] > totals[out[j]] })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
