// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads aircraft incident records and aggregates them
// into per-year incident counts.
//
// The input is a comma-separated file with a header row. It must have
// at least a "Year" and a "Country" column. Other columns are kept in
// Record.Fields but otherwise ignored.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Names of the columns the aggregator depends on.
const (
	YearColumn    = "Year"
	CountryColumn = "Country"
)

// Record is a single row of an incident dataset.
type Record struct {
	// Year is the year of the incident, coerced from the Year
	// column. It is only meaningful if YearOK is set.
	Year int

	// YearOK indicates that the Year column held a number. Rows
	// with a non-numeric year are kept, but never counted.
	YearOK bool

	// Country is the raw value of the Country column. Filtering
	// compares it exactly.
	Country string

	// Fields maps every column name in the header to this row's
	// value, exactly as written in the input.
	Fields map[string]string
}

// A LoadError reports a dataset source that could not be read or
// parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var errMissingColumn = errors.New("missing column")

// Parse parses a comma-separated incident dataset from r. It returns a
// *Record for each row after the header, in file order.
//
// If the header lacks a Year or Country column, or the input is not
// valid CSV, Parse returns an error and no records.
func Parse(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: %w", errMissingColumn)
	} else if err != nil {
		return nil, err
	}
	// Excel likes to start files with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	yearCol, countryCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case YearColumn:
			yearCol = i
		case CountryColumn:
			countryCol = i
		}
	}
	if yearCol < 0 {
		return nil, fmt.Errorf("%w %q", errMissingColumn, YearColumn)
	}
	if countryCol < 0 {
		return nil, fmt.Errorf("%w %q", errMissingColumn, CountryColumn)
	}

	records := []*Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		rec := &Record{Fields: make(map[string]string, len(header))}
		for i, name := range header {
			if i < len(row) {
				rec.Fields[name] = row[i]
			} else {
				rec.Fields[name] = ""
			}
		}
		if countryCol < len(row) {
			rec.Country = row[countryCol]
		}
		if yearCol < len(row) {
			rec.Year, rec.YearOK = ParseYear(row[yearCol])
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseYear coerces s to a year. Leading and trailing space is
// ignored, and an integral floating-point value such as "1990.0" is
// accepted. Anything else reports false.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
