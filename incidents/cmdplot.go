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
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/aclements/go-incidents/chart"
	"github.com/aclements/go-incidents/dataset"
	"github.com/aclements/go-incidents/internal/pngchart"
	"github.com/aclements/go-incidents/internal/svgscene"
)

var cmdPlotFlags = flag.NewFlagSet(os.Args[0]+" plot", flag.ExitOnError)

var plot struct {
	out     string
	format  string
	country string
	layout  string
	scale   float64
	static  bool
	verbose bool
}

func init() {
	f := cmdPlotFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s plot [flags] [inputs...]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&plot.out, "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&plot.format, "format", "", "output `format`: svg, png, or table (default: from -o, else svg)")
	f.StringVar(&plot.country, "country", "", "only count incidents in `country`")
	f.StringVar(&plot.layout, "layout", "", "read chart size and margins from YAML `file`")
	f.Float64Var(&plot.scale, "scale", 1, "scale PNG output by `factor`")
	f.BoolVar(&plot.static, "static", false, "omit the hover script from SVG output")
	f.BoolVar(&plot.verbose, "v", false, "log the aggregated counts")
	registerSubcommand("plot", "[flags] [inputs...] - write a chart", cmdPlot, f)
}

// outputFormat returns the format to write, given the -format flag
// and the output path.
func outputFormat(format, out string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			return "png", nil
		case ".txt":
			return "table", nil
		}
		return "svg", nil
	}
	switch format {
	case "svg", "png", "table":
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func cmdPlot() {
	format, err := outputFormat(plot.format, plot.out)
	if err != nil {
		log.Print(err)
		cmdPlotFlags.Usage()
		os.Exit(2)
	}
	if format == "png" && plot.out == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}
	setVerbose(plot.verbose)

	records := loadRecords(cmdPlotFlags.Args())
	sess := chart.NewSession(records, loadLayout(plot.layout))
	w, closeOut := createOutput(plot.out)
	defer closeOut()

	if err := writePlot(w, sess, parseFilter(plot.country), format, plot.scale); err != nil {
		log.Fatal(err)
	}
}

// writePlot renders sess with filter to w in format. PNG output is
// scaled by pngScale.
func writePlot(w io.Writer, sess *chart.Session, filter dataset.Filter, format string, pngScale float64) error {
	caption := "Aircraft incidents: " + filter.String()
	switch format {
	case "table":
		sess.Select(svgscene.New(sess.Layout), filter)
		return writeCounts(w, sess.Series())

	case "png":
		sess.Select(svgscene.New(sess.Layout), filter)
		return pngchart.Write(w, sess, pngchart.Options{Caption: caption, Scale: pngScale})
	}

	scene := svgscene.New(sess.Layout)
	scene.Caption = caption
	scene.Interactive = !plot.static
	sess.Select(scene, filter)
	return scene.WriteSVG(w)
}
