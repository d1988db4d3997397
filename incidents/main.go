// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command incidents plots aircraft incident counts per year.
//
// Usage:
//
//	incidents <subcommand> [flags] [inputs...]
//
// Each input is a CSV file with a header row that includes "Year"
// and "Country" columns. An input may be a path, "-" for standard
// input, or an http or https URL. With no inputs, incidents reads
// aircraft_incidents.csv in the current directory.
//
// The subcommands are:
//
//	plot    write a chart as SVG, PNG, or a text table
//	serve   serve an interactive chart over HTTP
//	browse  explore the chart in the terminal
//	facets  plot one panel per country
//	table   print counts per year and a summary
//
// Renderers accept -layout file.yaml to change the chart size and
// margins, for example:
//
//	width: 1200
//	height: 500
//	margin:
//	  left: 90
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/aclements/go-incidents/chart"
	"github.com/aclements/go-incidents/dataset"
)

// defaultInput is read when no inputs are named.
const defaultInput = "aircraft_incidents.csv"

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = make(map[string]*subcommand)

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [inputs...]\n\n", os.Args[0])
	var names []string
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
}

func main() {
	log.SetPrefix("incidents: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}

// loadRecords loads the named inputs, or defaultInput if there are
// none.
func loadRecords(inputs []string) []*dataset.Record {
	if len(inputs) == 0 {
		inputs = []string{defaultInput}
	}
	records, err := dataset.Load(context.Background(), inputs...)
	if err != nil {
		log.Fatal(err)
	}
	return records
}

// loadLayout loads a layout file, or returns the default layout if
// path is "".
func loadLayout(path string) chart.Layout {
	layout, err := chart.LoadLayout(path)
	if err != nil {
		log.Fatal(err)
	}
	return layout
}

// setVerbose routes the chart trace to stderr if verbose is set.
func setVerbose(verbose bool) {
	if verbose {
		chart.Trace.SetOutput(os.Stderr)
	}
}

// parseFilter returns the filter for the -country flag.
func parseFilter(country string) dataset.Filter {
	if country == "" {
		return dataset.All
	}
	return dataset.ByCountry(country)
}

// createOutput opens path for writing, or returns stdout if path is
// "". The caller must call the returned close function.
func createOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
