// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "github.com/aclements/go-moremath/stats"

// Summary describes an aggregated series.
type Summary struct {
	Total            int
	Years            int
	MinYear, MaxYear int

	// PeakYear is the earliest year with the most incidents.
	PeakYear, PeakCount int

	// Mean is the mean number of incidents over the years that
	// have any.
	Mean float64
}

// Summarize computes a Summary of counts. counts must be sorted by
// year, as returned by Aggregate. The Summary of an empty series is
// the zero Summary.
func Summarize(counts []YearCount) Summary {
	if len(counts) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(counts))
	s := Summary{Years: len(counts)}
	for i, yc := range counts {
		xs[i] = float64(yc.Count)
		s.Total += yc.Count
		if yc.Count > s.PeakCount {
			s.PeakYear, s.PeakCount = yc.Year, yc.Count
		}
	}
	s.MinYear, s.MaxYear = counts[0].Year, counts[len(counts)-1].Year
	s.Mean = stats.Sample{Xs: xs}.Mean()
	return s
}
