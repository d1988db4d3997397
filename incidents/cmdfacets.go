// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"

	"github.com/aclements/go-incidents/dataset"
)

var cmdFacetsFlags = flag.NewFlagSet(os.Args[0]+" facets", flag.ExitOnError)

var facets struct {
	out    string
	top    int
	width  int
	height int
}

func init() {
	f := cmdFacetsFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s facets [flags] [inputs...]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&facets.out, "o", "", "write SVG to `file` (default: stdout)")
	f.IntVar(&facets.top, "top", 8, "plot the `n` countries with the most incidents (-1 for all)")
	f.IntVar(&facets.width, "width", 600, "panel `width` in pixels")
	f.IntVar(&facets.height, "height", 180, "panel `height` in pixels")
	registerSubcommand("facets", "[flags] [inputs...] - plot one panel per country", cmdFacets, f)
}

func cmdFacets() {
	records := loadRecords(cmdFacetsFlags.Args())
	countries := dataset.TopCountries(records, facets.top)
	if len(countries) == 0 {
		log.Fatal("no incidents to plot")
	}

	w, closeOut := createOutput(facets.out)
	defer closeOut()
	p := facetPlot(records, countries)
	if err := p.WriteSVG(w, facets.width, facets.height*len(countries)); err != nil {
		log.Fatal(err)
	}
}

// facetPlot plots incidents per year in one row per country, in the
// order given.
func facetPlot(records []*dataset.Record, countries []string) *gg.Plot {
	p := gg.NewPlot(dataset.CountryTable(records, countries))

	// Always show Y=0.
	p.SetScale("y", gg.NewLinearScaler().Include(0))

	p.Add(gg.FacetY{
		Col:          "country",
		SplitYScales: true,
		Labeler: func(v interface{}) string {
			return dataset.CountryLabel(v.(string))
		},
	})
	p.Add(gg.LayerLines{X: "year", Y: "count"})
	p.Add(gg.LayerPoints{X: "year", Y: "count"})
	p.Add(gg.LayerTooltips{X: "year", Y: "count", Label: "label"})
	p.Add(gg.AxisLabel("x", "Year"), gg.AxisLabel("y", "Incidents"))
	p.Add(gg.Title("Aircraft incidents per year"))
	return p
}
