// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

// HTTPClient is used to fetch http and https sources.
var HTTPClient = http.DefaultClient

// Load reads and parses each of sources and returns their records
// concatenated in argument order. A source is a file path, Stdin, or
// an http or https URL. Sources are read concurrently.
//
// If any source fails, Load returns a *LoadError for it and no
// records.
func Load(ctx context.Context, sources ...string) ([]*Record, error) {
	results := make([][]*Record, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			recs, err := loadOne(ctx, src)
			if err != nil {
				return &LoadError{Source: src, Err: err}
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []*Record
	for _, recs := range results {
		records = append(records, recs...)
	}
	return records, nil
}

func loadOne(ctx context.Context, src string) ([]*Record, error) {
	r, err := open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

func open(ctx context.Context, src string) (io.ReadCloser, error) {
	switch {
	case src == Stdin:
		return io.NopCloser(os.Stdin), nil

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, "GET", src, nil)
		if err != nil {
			return nil, err
		}
		resp, err := HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP status %s", resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(src)
}
