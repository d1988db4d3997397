// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"reflect"
	"testing"

	"github.com/aclements/go-incidents/dataset"
)

func TestMarkerEnterLeave(t *testing.T) {
	c := new(fakeCanvas)
	m := newMarker(c, dataset.YearCount{Year: 1990, Count: 2}, Point{100, 50})
	dot := c.find(ClassPoint)[0]

	if m.State() != Hidden || dot.opacity != 0 {
		t.Fatalf("new marker: state %v, opacity %v", m.State(), dot.opacity)
	}

	m.Enter(Point{101, 49})
	if m.State() != Visible {
		t.Errorf("after Enter: state %v", m.State())
	}
	if dot.opacity != 1 {
		t.Errorf("after Enter: opacity %v", dot.opacity)
	}
	if !c.tooltip.visible || c.tooltip.at != (Point{111, 59}) {
		t.Errorf("after Enter: tooltip %+v", c.tooltip)
	}
	if want := []string{"Year: 1990", "Accidents: 2"}; !reflect.DeepEqual(c.tooltip.lines, want) {
		t.Errorf("tooltip lines %q, want %q", c.tooltip.lines, want)
	}
	hover := c.find(ClassHover)
	if len(hover) != 1 || hover[0].pts[0] != m.At || hover[0].r != HoverRadius {
		t.Errorf("after Enter: hover circles %+v", hover)
	}

	m.Move(Point{103, 52})
	if c.tooltip.at != (Point{113, 62}) {
		t.Errorf("after Move: tooltip at %v", c.tooltip.at)
	}

	m.Leave()
	if m.State() != Hidden || dot.opacity != 0 || c.tooltip.visible {
		t.Errorf("after Leave: state %v, opacity %v, tooltip %v", m.State(), dot.opacity, c.tooltip.visible)
	}
	if n := c.count(ClassHover); n != 0 {
		t.Errorf("after Leave: %d hover circles remain", n)
	}
	if n := c.count(ClassPoint); n != 1 {
		t.Errorf("after Leave: %d markers, want 1", n)
	}
}

func TestMarkerRedundantEvents(t *testing.T) {
	c := new(fakeCanvas)
	m := newMarker(c, dataset.YearCount{Year: 2000, Count: 1}, Point{10, 10})

	// Leave and Move while hidden do nothing.
	m.Leave()
	m.Move(Point{10, 10})
	if m.State() != Hidden || c.tooltip.visible {
		t.Fatalf("hidden marker changed: state %v, tooltip %v", m.State(), c.tooltip.visible)
	}

	// A second Enter doesn't stack highlights.
	m.Enter(Point{10, 10})
	m.Enter(Point{12, 10})
	if n := c.count(ClassHover); n != 1 {
		t.Errorf("%d hover circles after two Enters", n)
	}
	if c.tooltip.at != (Point{22, 20}) {
		t.Errorf("tooltip at %v after second Enter", c.tooltip.at)
	}
	m.Leave()
	if n := c.count(ClassHover); n != 0 {
		t.Errorf("%d hover circles after Leave", n)
	}
}
