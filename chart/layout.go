// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Margin is the space between the edge of a chart and its plot area,
// in pixels.
type Margin struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// Layout gives the outer size of a chart and its margins.
type Layout struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`
}

// DefaultLayout is a 900x400 chart with room for the axes and their
// labels.
var DefaultLayout = Layout{
	Width:  900,
	Height: 400,
	Margin: Margin{Top: 50, Right: 30, Bottom: 60, Left: 70},
}

// Inner returns the size of the plot area.
func (l Layout) Inner() (w, h float64) {
	return float64(l.Width - l.Margin.Left - l.Margin.Right),
		float64(l.Height - l.Margin.Top - l.Margin.Bottom)
}

// Validate returns an error if l leaves no room for the plot area.
func (l Layout) Validate() error {
	if w, h := l.Inner(); w <= 0 || h <= 0 {
		return fmt.Errorf("layout %dx%d leaves no plot area after margins %+v", l.Width, l.Height, l.Margin)
	}
	return nil
}

// ParseLayout parses a YAML layout. Fields missing from data keep
// their values from DefaultLayout.
func ParseLayout(data []byte) (Layout, error) {
	l := DefaultLayout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads a YAML layout file. An empty path returns
// DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
