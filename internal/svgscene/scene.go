// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgscene implements chart.Canvas as an in-memory scene that
// can be written out as SVG.
package svgscene

import (
	"github.com/aclements/go-incidents/chart"
)

// Kind is the kind of an Element.
type Kind int

const (
	KindPath Kind = iota
	KindCircle
	KindAxis
	KindLabel
)

// An Element is one shape in a Scene. Which fields are meaningful
// depends on Kind.
type Element struct {
	Kind  Kind
	Class string
	Style chart.Style

	// Points holds the vertices of a path, or the center of a
	// circle, the origin of an axis, or the anchor of a label.
	Points []chart.Point

	// Opacity is between 0 (invisible) and 1.
	Opacity float64

	R float64 // Circle radius.

	Orient chart.Orient // Axis orientation.
	Length float64      // Axis length.
	Ticks  []chart.Tick // Axis ticks.

	Rotate float64 // Label rotation in degrees.
	Text   string  // Label text.

	// Data holds values attached with Annotate. Each is written
	// out as a data- attribute.
	Data map[string]string
}

// Annotate implements chart.Annotator.
func (e *Element) Annotate(key, value string) {
	if e.Data == nil {
		e.Data = make(map[string]string)
	}
	e.Data[key] = value
}

// SetOpacity implements chart.Shape.
func (e *Element) SetOpacity(opacity float64) {
	e.Opacity = opacity
}

// Scene is a retained collection of Elements, drawn in the order they
// were added.
type Scene struct {
	// Layout gives the size of the written SVG. Element
	// coordinates are relative to the plot area inside the
	// layout's margins.
	Layout chart.Layout

	// Caption, if non-empty, is written centered in the top
	// margin.
	Caption string

	// Interactive includes a script in the written SVG that shows
	// the tooltip and highlights markers as the pointer moves
	// over them.
	Interactive bool

	elems []*Element
	tip   Tooltip
}

// New returns an empty scene with the given layout.
func New(layout chart.Layout) *Scene {
	return &Scene{Layout: layout}
}

var _ chart.Canvas = (*Scene)(nil)

// Elements returns the elements of s in drawing order.
func (s *Scene) Elements() []*Element {
	return s.elems
}

// Find returns the elements of s with the given class.
func (s *Scene) Find(class string) []*Element {
	var out []*Element
	for _, e := range s.elems {
		if e.Class == class {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of elements of s with the given class.
func (s *Scene) Count(class string) int {
	return len(s.Find(class))
}

func (s *Scene) add(e *Element) *Element {
	e.Opacity = 1
	s.elems = append(s.elems, e)
	return e
}

// Remove implements chart.Canvas.
func (s *Scene) Remove(class string) {
	out := s.elems[:0]
	for _, e := range s.elems {
		if e.Class != class {
			out = append(out, e)
		}
	}
	// Clear the tail so removed elements can be collected.
	for i := len(out); i < len(s.elems); i++ {
		s.elems[i] = nil
	}
	s.elems = out
}

// Path implements chart.Canvas.
func (s *Scene) Path(class string, pts []chart.Point, style chart.Style) {
	s.add(&Element{Kind: KindPath, Class: class, Style: style, Points: append([]chart.Point(nil), pts...)})
}

// Circle implements chart.Canvas.
func (s *Scene) Circle(class string, at chart.Point, r float64, style chart.Style) chart.Shape {
	return s.add(&Element{Kind: KindCircle, Class: class, Style: style, Points: []chart.Point{at}, R: r})
}

// Axis implements chart.Canvas.
func (s *Scene) Axis(class string, orient chart.Orient, origin chart.Point, length float64, ticks []chart.Tick) {
	s.add(&Element{Kind: KindAxis, Class: class, Points: []chart.Point{origin}, Orient: orient, Length: length, Ticks: ticks})
}

// Label implements chart.Canvas.
func (s *Scene) Label(class string, at chart.Point, rotate float64, text string) {
	s.add(&Element{Kind: KindLabel, Class: class, Points: []chart.Point{at}, Rotate: rotate, Text: text})
}

// Tooltip implements chart.Canvas.
func (s *Scene) Tooltip() chart.Tooltip {
	return &s.tip
}

// TooltipState returns the current state of the scene's tooltip.
func (s *Scene) TooltipState() Tooltip {
	t := s.tip
	t.Lines = append([]string(nil), s.tip.Lines...)
	return t
}

// Tooltip is the state of a scene's tooltip overlay.
type Tooltip struct {
	Visible bool
	At      chart.Point
	Lines   []string
}

func (t *Tooltip) Show(at chart.Point, lines []string) {
	t.Visible, t.At = true, at
	t.Lines = append(t.Lines[:0], lines...)
}

func (t *Tooltip) Move(at chart.Point) {
	t.At = at
}

func (t *Tooltip) Hide() {
	t.Visible = false
}
