// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-incidents/dataset"
)

// MarkerState is the visibility state of a Marker.
type MarkerState int

const (
	Hidden MarkerState = iota
	Visible
)

func (s MarkerState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

const (
	// MarkerRadius is the radius of a data point marker.
	MarkerRadius = 5
	// HoverRadius is the radius of the highlight drawn over a
	// hovered marker.
	HoverRadius = 6
)

// TooltipOffset is where the tooltip is shown relative to the
// pointer.
var TooltipOffset = Point{10, 10}

// A Marker is the interactive point drawn for one YearCount. It is
// invisible until the pointer enters it.
//
// A Marker is either Hidden or Visible. Enter moves it from Hidden to
// Visible, showing the tooltip and a highlight circle; Leave moves it
// back, removing both. No other transitions exist.
type Marker struct {
	dataset.YearCount

	// At is the marker's center.
	At Point

	canvas Canvas
	shape  Shape
	state  MarkerState
}

func newMarker(c Canvas, yc dataset.YearCount, at Point) *Marker {
	m := &Marker{YearCount: yc, At: at, canvas: c}
	m.shape = c.Circle(ClassPoint, at, MarkerRadius, pointStyle)
	m.shape.SetOpacity(0)
	if a, ok := m.shape.(Annotator); ok {
		a.Annotate("year", strconv.Itoa(yc.Year))
		a.Annotate("count", strconv.Itoa(yc.Count))
	}
	return m
}

// State returns the current state of m.
func (m *Marker) State() MarkerState {
	return m.state
}

// Lines returns the tooltip text for m.
func (m *Marker) Lines() []string {
	return []string{
		fmt.Sprintf("Year: %d", m.Year),
		fmt.Sprintf("Accidents: %d", m.Count),
	}
}

// Enter handles the pointer entering m at pointer.
func (m *Marker) Enter(pointer Point) {
	if m.state == Visible {
		m.Move(pointer)
		return
	}
	m.state = Visible
	m.canvas.Tooltip().Show(pointer.Add(TooltipOffset), m.Lines())
	m.shape.SetOpacity(1)
	m.canvas.Circle(ClassHover, m.At, HoverRadius, hoverStyle)
}

// Move handles the pointer moving within m.
func (m *Marker) Move(pointer Point) {
	if m.state != Visible {
		return
	}
	m.canvas.Tooltip().Move(pointer.Add(TooltipOffset))
}

// Leave handles the pointer leaving m.
func (m *Marker) Leave() {
	if m.state != Visible {
		return
	}
	m.state = Hidden
	m.canvas.Tooltip().Hide()
	m.canvas.Remove(ClassHover)
	m.shape.SetOpacity(0)
}

// contains reports whether p is within r pixels of m's center.
func (m *Marker) contains(p Point, r float64) bool {
	dx, dy := p.X-m.At.X, p.Y-m.At.Y
	return dx*dx+dy*dy <= r*r
}
