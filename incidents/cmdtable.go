// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-incidents/dataset"
)

var cmdTableFlags = flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)

var tableFlags struct {
	out       string
	country   string
	byCountry bool
}

func init() {
	f := cmdTableFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s table [flags] [inputs...]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&tableFlags.out, "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&tableFlags.country, "country", "", "only count incidents in `country`")
	f.BoolVar(&tableFlags.byCountry, "by-country", false, "print a separate table for each country")
	registerSubcommand("table", "[flags] [inputs...] - print counts per year", cmdTable, f)
}

func cmdTable() {
	records := loadRecords(cmdTableFlags.Args())
	w, closeOut := createOutput(tableFlags.out)
	defer closeOut()

	if tableFlags.byCountry {
		countries := dataset.Countries(records)
		if tableFlags.country != "" {
			countries = []string{tableFlags.country}
		}
		tab := dataset.CountryTable(records, countries)
		table.Fprint(w, table.GroupBy(table.Remove(tab, "label"), "country"))
		return
	}

	counts := dataset.Aggregate(records, parseFilter(tableFlags.country))
	if err := writeCounts(w, counts); err != nil {
		log.Fatal(err)
	}
}

// writeCounts prints counts as a table followed by a summary.
func writeCounts(w io.Writer, counts []dataset.YearCount) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "no incidents")
		return err
	}
	table.Fprint(w, dataset.Table(counts))
	s := dataset.Summarize(counts)
	_, err := fmt.Fprintf(w, "\n%d incidents in %d years (%d-%d), peak %d in %d, mean %.1f per year\n",
		s.Total, s.Years, s.MinYear, s.MaxYear, s.PeakCount, s.PeakYear, s.Mean)
	return err
}
