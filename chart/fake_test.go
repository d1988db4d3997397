// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// fakeCanvas records the shapes drawn on it.
type fakeCanvas struct {
	shapes  []*fakeShape
	tooltip fakeTooltip
}

type fakeShape struct {
	class   string
	kind    string
	pts     []Point
	r       float64
	text    string
	ticks   []Tick
	opacity float64
}

func (s *fakeShape) SetOpacity(op float64) { s.opacity = op }

type fakeTooltip struct {
	visible bool
	at      Point
	lines   []string
}

func (t *fakeTooltip) Show(at Point, lines []string) {
	t.visible, t.at, t.lines = true, at, lines
}
func (t *fakeTooltip) Move(at Point) { t.at = at }
func (t *fakeTooltip) Hide()         { t.visible = false }

func (c *fakeCanvas) add(s *fakeShape) *fakeShape {
	s.opacity = 1
	c.shapes = append(c.shapes, s)
	return s
}

func (c *fakeCanvas) Remove(class string) {
	out := c.shapes[:0]
	for _, s := range c.shapes {
		if s.class != class {
			out = append(out, s)
		}
	}
	c.shapes = out
}

func (c *fakeCanvas) Path(class string, pts []Point, style Style) {
	c.add(&fakeShape{class: class, kind: "path", pts: pts})
}

func (c *fakeCanvas) Circle(class string, at Point, r float64, style Style) Shape {
	return c.add(&fakeShape{class: class, kind: "circle", pts: []Point{at}, r: r})
}

func (c *fakeCanvas) Axis(class string, orient Orient, origin Point, length float64, ticks []Tick) {
	c.add(&fakeShape{class: class, kind: "axis " + orient.String(), pts: []Point{origin}, ticks: ticks})
}

func (c *fakeCanvas) Label(class string, at Point, rotate float64, text string) {
	c.add(&fakeShape{class: class, kind: "label", pts: []Point{at}, text: text})
}

func (c *fakeCanvas) Tooltip() Tooltip { return &c.tooltip }

func (c *fakeCanvas) count(class string) int {
	n := 0
	for _, s := range c.shapes {
		if s.class == class {
			n++
		}
	}
	return n
}

func (c *fakeCanvas) find(class string) []*fakeShape {
	var out []*fakeShape
	for _, s := range c.shapes {
		if s.class == class {
			out = append(out, s)
		}
	}
	return out
}
