// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"
)

// Scale maps a linear input domain to an output pixel range. The
// range may be inverted (r0 > r1), as it is for a vertical axis.
type Scale struct {
	lin    scale.Linear
	r0, r1 float64
}

// NewScale returns a Scale mapping [min, max] to [r0, r1].
func NewScale(min, max, r0, r1 float64) *Scale {
	return &Scale{lin: scale.Linear{Min: min, Max: max}, r0: r0, r1: r1}
}

func (s *Scale) String() string {
	return fmt.Sprintf("linear [%g,%g] => [%g,%g]", s.lin.Min, s.lin.Max, s.r0, s.r1)
}

// Domain returns the input domain of s.
func (s *Scale) Domain() (min, max float64) {
	return s.lin.Min, s.lin.Max
}

// Range returns the output range of s.
func (s *Scale) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

func (s *Scale) degenerate() bool {
	return s.lin.Min == s.lin.Max
}

// Nice expands the domain of s outward to round values, choosing the
// rounding so that there are at most maxTicks major ticks.
func (s *Scale) Nice(maxTicks int) {
	if s.degenerate() {
		return
	}
	s.lin.Nice(scale.TickOptions{Max: maxTicks})
}

// Map maps x from the domain of s to its range. If the domain is a
// single value, everything maps to the middle of the range.
func (s *Scale) Map(x float64) float64 {
	t := 0.5
	if !s.degenerate() {
		t = s.lin.Map(x)
	}
	return s.r0 + t*(s.r1-s.r0)
}

// Ticks returns at most maxTicks major tick values within the domain
// of s, in increasing order. If integral is set, ticks are only
// placed at integers.
func (s *Scale) Ticks(maxTicks int, integral bool) []float64 {
	if s.degenerate() {
		return []float64{s.lin.Min}
	}
	o := scale.TickOptions{Max: maxTicks}
	if integral {
		// Keep the tick spacing at 1 or more.
		o.MinLevel, o.MaxLevel = 0, 1000
	}
	major, _ := s.lin.Ticks(o)
	return major
}
