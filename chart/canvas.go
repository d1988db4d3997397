// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Point is a position in plot-area pixels. The origin is the top left
// of the plot area and Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Style gives the paint of a shape. Colors are CSS color strings; ""
// means none.
type Style struct {
	Stroke      string
	Fill        string
	StrokeWidth float64
}

// Orient is the side of the plot area an axis is drawn on.
type Orient int

const (
	Bottom Orient = iota
	Left
)

func (o Orient) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "Orient(?)"
}

// Tick is a labeled tick mark. Pos is the pixel offset along the
// axis.
type Tick struct {
	Pos   float64
	Label string
}

// Classes of the shapes a Session draws.
const (
	ClassLine  = "data-line"
	ClassPoint = "data-point"
	ClassHover = "hover-circle"
	ClassAxis  = "axis"
	ClassLabel = "axis-label"
)

// A Canvas is a retained-mode drawing surface. Every shape drawn on a
// Canvas carries a class, and Remove deletes shapes by class.
type Canvas interface {
	// Remove deletes every shape of the given class.
	Remove(class string)

	// Path draws a polyline through pts, in order.
	Path(class string, pts []Point, style Style)

	// Circle draws a circle and returns a handle to it. The
	// circle starts fully opaque.
	Circle(class string, at Point, r float64, style Style) Shape

	// Axis draws an axis line of the given length starting at
	// origin, with ticks.
	Axis(class string, orient Orient, origin Point, length float64, ticks []Tick)

	// Label draws text centered on at, rotated by rotate degrees
	// around at.
	Label(class string, at Point, rotate float64, text string)

	// Tooltip returns the canvas's single tooltip overlay.
	Tooltip() Tooltip
}

// A Shape is a handle to a drawn shape.
type Shape interface {
	SetOpacity(opacity float64)
}

// An Annotator is a Shape that can carry named values for a front end,
// such as the year and count of a marker.
type Annotator interface {
	Annotate(key, value string)
}

// A Tooltip is a positioned text overlay.
type Tooltip interface {
	Show(at Point, lines []string)
	Move(at Point)
	Hide()
}
