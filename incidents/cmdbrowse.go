// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-incidents/internal/browse"
)

var cmdBrowseFlags = flag.NewFlagSet(os.Args[0]+" browse", flag.ExitOnError)

var browseLayout string

func init() {
	f := cmdBrowseFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s browse [flags] [inputs...]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&browseLayout, "layout", "", "read chart size and margins from YAML `file`")
	registerSubcommand("browse", "[flags] [inputs...] - explore the chart in the terminal", cmdBrowse, f)
}

func cmdBrowse() {
	records := loadRecords(cmdBrowseFlags.Args())
	if err := browse.Run(records, loadLayout(browseLayout)); err != nil {
		log.Fatal(err)
	}
}
