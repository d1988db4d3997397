// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package browse

import (
	"math"
	"strings"

	"github.com/aclements/go-incidents/chart"
	"github.com/aclements/go-incidents/internal/svgscene"
)

// Glyphs used by Raster.
const (
	glyphLine   = '•'
	glyphPoint  = '●'
	glyphHover  = '◉'
	glyphXAxis  = '─'
	glyphYAxis  = '│'
	glyphCorner = '└'
)

// grid is a character grid covering a scene's plot area.
type grid struct {
	cells      [][]rune
	cols, rows int
	w, h       float64
}

func newGrid(cols, rows int, w, h float64) *grid {
	g := &grid{cols: cols, rows: rows, w: w, h: h}
	g.cells = make([][]rune, rows)
	for i := range g.cells {
		g.cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

// cell returns the grid cell containing plot point p.
func (g *grid) cell(p chart.Point) (col, row int, ok bool) {
	if g.w <= 0 || g.h <= 0 {
		return 0, 0, false
	}
	col = int(math.Round(p.X / g.w * float64(g.cols-1)))
	row = int(math.Round(p.Y / g.h * float64(g.rows-1)))
	return col, row, col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *grid) set(col, row int, ch rune) {
	if col >= 0 && col < g.cols && row >= 0 && row < g.rows {
		g.cells[row][col] = ch
	}
}

func (g *grid) point(p chart.Point, ch rune) {
	if col, row, ok := g.cell(p); ok {
		g.set(col, row, ch)
	}
}

// line draws a straight line of ch from a to b.
func (g *grid) line(a, b chart.Point, ch rune) {
	c0, r0, _ := g.cell(a)
	c1, r1, _ := g.cell(b)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		g.set(c0, r0, ch)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := int(math.Round(float64(c0) + t*float64(c1-c0)))
		r := int(math.Round(float64(r0) + t*float64(r1-r0)))
		g.set(c, r, ch)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Raster draws the plot area of s on a grid of cols by rows
// characters and returns the lines of the result. Y tick labels are
// written in a gutter to the left of the grid and X tick labels on a
// line below it. Invisible elements are not drawn, so data point
// markers only show up while the pointer is on them.
func Raster(s *svgscene.Scene, cols, rows int) []string {
	if cols < 2 || rows < 2 {
		return nil
	}
	w, h := s.Layout.Inner()
	g := newGrid(cols, rows, w, h)

	yLabels := make(map[int]string)
	type xLabel struct {
		col  int
		text string
	}
	var xLabels []xLabel
	var hasX, hasY bool

	for _, e := range s.Elements() {
		if e.Opacity == 0 {
			continue
		}
		switch e.Kind {
		case svgscene.KindPath:
			for i := 1; i < len(e.Points); i++ {
				g.line(e.Points[i-1], e.Points[i], glyphLine)
			}
			if len(e.Points) == 1 {
				g.point(e.Points[0], glyphLine)
			}

		case svgscene.KindCircle:
			ch := glyphPoint
			if e.Class == chart.ClassHover {
				ch = glyphHover
			}
			g.point(e.Points[0], ch)

		case svgscene.KindAxis:
			origin := e.Points[0]
			switch e.Orient {
			case chart.Bottom:
				hasX = true
				for c := 0; c < cols; c++ {
					if g.cells[rows-1][c] == ' ' {
						g.set(c, rows-1, glyphXAxis)
					}
				}
				for _, t := range e.Ticks {
					col, _, _ := g.cell(chart.Point{X: origin.X + t.Pos, Y: origin.Y})
					xLabels = append(xLabels, xLabel{col, t.Label})
				}
			case chart.Left:
				hasY = true
				for r := 0; r < rows; r++ {
					if g.cells[r][0] == ' ' {
						g.set(0, r, glyphYAxis)
					}
				}
				for _, t := range e.Ticks {
					_, row, _ := g.cell(chart.Point{X: origin.X, Y: origin.Y + t.Pos})
					if row >= 0 && row < rows {
						yLabels[row] = t.Label
					}
				}
			}
		}
	}
	if hasX && hasY && g.cells[rows-1][0] != glyphPoint && g.cells[rows-1][0] != glyphHover {
		g.set(0, rows-1, glyphCorner)
	}

	gutter := 0
	for _, l := range yLabels {
		gutter = max(gutter, len(l))
	}
	out := make([]string, 0, rows+1)
	for r, row := range g.cells {
		var sb strings.Builder
		if gutter > 0 {
			sb.WriteString(strings.Repeat(" ", gutter-len(yLabels[r])))
			sb.WriteString(yLabels[r])
			sb.WriteByte(' ')
		}
		sb.WriteString(string(row))
		out = append(out, strings.TrimRight(sb.String(), " "))
	}

	if len(xLabels) > 0 {
		pad := 0
		if gutter > 0 {
			pad = gutter + 1
		}
		width := pad + cols
		for _, l := range xLabels {
			width = max(width, pad+l.col+len(l.text))
		}
		line := []rune(strings.Repeat(" ", width))
		next := 0
		for _, l := range xLabels {
			// Center each label on its tick, dropping labels that
			// would overlap the previous one.
			start := pad + l.col - len(l.text)/2
			if start < next || start < 0 || start+len(l.text) > len(line) {
				continue
			}
			copy(line[start:], []rune(l.text))
			next = start + len(l.text) + 1
		}
		out = append(out, strings.TrimRight(string(line), " "))
	}
	return out
}
