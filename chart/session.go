// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws a line chart of incident counts per year.
//
// A Session holds the state of one chart: its layout, the loaded
// records, the selected filter, and the scales and markers of the
// last render. A Session draws through a Canvas, which stands in for
// whatever actually puts shapes on a screen.
package chart

import (
	"io"
	"log"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"github.com/google/uuid"

	"github.com/aclements/go-incidents/dataset"
)

// Trace logs informational messages, such as the result of a
// session's first aggregation. It discards its output by default.
var Trace = log.New(io.Discard, "[chart] ", 0)

// MaxTicks is the most major ticks drawn on an axis.
const MaxTicks = 10

// Axis labels.
const (
	XLabel = "Year"
	YLabel = "Number of Accidents"
)

var (
	lineStyle  = Style{Stroke: "steelblue", StrokeWidth: 2}
	pointStyle = Style{Fill: "steelblue"}
	hoverStyle = Style{Fill: "steelblue", StrokeWidth: 2}
)

// A Session is a single chart over a fixed set of records.
//
// A Session is not safe for concurrent use.
type Session struct {
	// ID identifies this session.
	ID uuid.UUID

	// Layout is the size of the chart. It must not change after
	// the first Render.
	Layout Layout

	records []*dataset.Record
	filter  dataset.Filter
	series  []dataset.YearCount
	renders int

	// x and y are nil if the last render had no data.
	x, y    *Scale
	markers []*Marker
	active  *Marker
}

// NewSession returns a Session over records with no filter. The
// session does not modify records.
func NewSession(records []*dataset.Record, layout Layout) *Session {
	return &Session{
		ID:      uuid.New(),
		Layout:  layout,
		records: records,
		filter:  dataset.All,
	}
}

// Records returns the records s was created with.
func (s *Session) Records() []*dataset.Record {
	return s.records
}

// Filter returns the currently selected filter.
func (s *Session) Filter() dataset.Filter {
	return s.filter
}

// Series returns the counts drawn by the last render.
func (s *Session) Series() []dataset.YearCount {
	return s.series
}

// Scales returns the X and Y scales of the last render. They are nil
// if there is nothing to draw.
func (s *Session) Scales() (x, y *Scale) {
	return s.x, s.y
}

// Markers returns the markers of the last render, in year order.
func (s *Session) Markers() []*Marker {
	return s.markers
}

// Renders returns the number of times s has been drawn.
func (s *Session) Renders() int {
	return s.renders
}

// Select changes the filter of s and redraws it on c.
func (s *Session) Select(c Canvas, filter dataset.Filter) {
	s.filter = filter
	s.Render(c)
}

// Render aggregates the records of s with its current filter and
// draws the result on c, replacing anything s drew before. The line,
// markers, axes, and axis labels are always drawn together.
//
// If no records pass the filter, Render clears c and draws nothing.
func (s *Session) Render(c Canvas) {
	s.series = dataset.Aggregate(s.records, s.filter)
	if s.renders == 0 {
		Trace.Printf("yearAccidents: %v", s.series)
	}
	s.renders++

	s.clear(c)
	if len(s.series) == 0 {
		return
	}

	w, h := s.Layout.Inner()
	years := make([]float64, len(s.series))
	counts := make([]float64, len(s.series))
	for i, yc := range s.series {
		years[i], counts[i] = float64(yc.Year), float64(yc.Count)
	}
	minYear, maxYear := stats.Sample{Xs: years}.Bounds()
	_, maxCount := stats.Sample{Xs: counts}.Bounds()
	s.x = NewScale(minYear, maxYear, 0, w)
	s.y = NewScale(0, maxCount, h, 0)
	s.y.Nice(MaxTicks)

	pts := make([]Point, len(s.series))
	for i := range s.series {
		pts[i] = Point{s.x.Map(years[i]), s.y.Map(counts[i])}
	}
	c.Path(ClassLine, pts, lineStyle)

	c.Axis(ClassAxis, Bottom, Point{0, h}, w, s.ticks(s.x))
	c.Axis(ClassAxis, Left, Point{0, 0}, h, s.ticks(s.y))
	c.Label(ClassLabel, Point{w/2 - 20, h + float64(s.Layout.Margin.Bottom)}, 0, XLabel)
	c.Label(ClassLabel, Point{-float64(s.Layout.Margin.Left) + 20, h / 2}, -90, YLabel)

	s.markers = make([]*Marker, len(s.series))
	for i, yc := range s.series {
		s.markers[i] = newMarker(c, yc, pts[i])
	}
}

// clear removes everything s draws from c.
func (s *Session) clear(c Canvas) {
	c.Tooltip().Hide()
	for _, class := range []string{ClassHover, ClassPoint, ClassLine, ClassAxis, ClassLabel} {
		c.Remove(class)
	}
	s.x, s.y = nil, nil
	s.markers = nil
	s.active = nil
}

// ticks returns the labeled ticks of sc. Both axes count whole
// things, so ticks are integral.
func (s *Session) ticks(sc *Scale) []Tick {
	vals := sc.Ticks(MaxTicks, true)
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{sc.Map(v), strconv.Itoa(int(v))}
	}
	return ticks
}

// MarkerAt returns the marker whose center is nearest p and within
// radius pixels of it, or nil.
func (s *Session) MarkerAt(p Point, radius float64) *Marker {
	var best *Marker
	var bestD float64
	for _, m := range s.markers {
		if !m.contains(p, radius) {
			continue
		}
		dx, dy := p.X-m.At.X, p.Y-m.At.Y
		if d := dx*dx + dy*dy; best == nil || d < bestD {
			best, bestD = m, d
		}
	}
	return best
}

// PointerMove dispatches a pointer movement to p. It leaves the
// previously entered marker if p is no longer on it, and enters the
// marker under p, if any.
func (s *Session) PointerMove(p Point) {
	m := s.MarkerAt(p, MarkerRadius)
	if m == s.active {
		if m != nil {
			m.Move(p)
		}
		return
	}
	if s.active != nil {
		s.active.Leave()
	}
	s.active = m
	if m != nil {
		m.Enter(p)
	}
}

// PointerLeave dispatches the pointer leaving the chart.
func (s *Session) PointerLeave() {
	if s.active != nil {
		s.active.Leave()
		s.active = nil
	}
}

// Active returns the marker the pointer is on, or nil.
func (s *Session) Active() *Marker {
	return s.active
}
