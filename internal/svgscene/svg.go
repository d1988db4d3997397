// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgscene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/aclements/go-incidents/chart"
)

const (
	tickSize    = 6
	tickPadding = 3
	tipWidth    = 130
	tipLine     = 16
)

// WriteSVG writes s to w as a standalone SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	l := s.Layout
	canvas.Start(l.Width, l.Height, `font-size="10px" font-family="sans-serif"`)

	if s.Caption != "" {
		canvas.Text(l.Width/2, l.Margin.Top/2, s.Caption, `class="caption"`, `text-anchor="middle"`, `font-size="14px"`)
	}

	canvas.Group(`id="plot"`, fmt.Sprintf(`transform="translate(%d,%d)"`, l.Margin.Left, l.Margin.Top))
	for _, e := range s.elems {
		switch e.Kind {
		case KindPath:
			canvas.Path(pathData(e.Points), attr("class", e.Class), styleAttr(e.Style), opacityAttr(e.Opacity))
		case KindCircle:
			c := e.Points[0]
			attrs := []string{attr("class", e.Class), styleAttr(e.Style), opacityAttr(e.Opacity)}
			attrs = append(attrs, dataAttrs(e.Data)...)
			if e.Class == chart.ClassHover {
				attrs = append(attrs, `pointer-events="none"`)
			}
			canvas.Circle(round(c.X), round(c.Y), round(e.R), attrs...)
		case KindAxis:
			writeAxis(canvas, e)
		case KindLabel:
			at := e.Points[0]
			attrs := []string{attr("class", e.Class), `text-anchor="middle"`, `font-size="12px"`}
			if e.Rotate != 0 {
				attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g %d %d)"`, e.Rotate, round(at.X), round(at.Y)))
			}
			canvas.Text(round(at.X), round(at.Y), e.Text, attrs...)
		}
	}
	writeTooltip(canvas, s.tip)
	canvas.Gend()

	if s.Interactive {
		fmt.Fprintf(canvas.Writer, "<script type=\"application/ecmascript\"><![CDATA[\n%s\nincidentsHover(document.documentElement);\n]]></script>\n", HoverScript)
	}
	canvas.End()
	return bw.Flush()
}

func writeAxis(canvas *svg.SVG, e *Element) {
	o := e.Points[0]
	canvas.Group(attr("class", e.Class), fmt.Sprintf(`transform="translate(%d,%d)"`, round(o.X), round(o.Y)), `fill="none"`)
	n := round(e.Length)
	const stroke = `stroke="currentColor"`
	switch e.Orient {
	case chart.Bottom:
		canvas.Path(fmt.Sprintf("M0,%dV0H%dV%d", tickSize, n, tickSize), `class="domain"`, stroke)
		for _, t := range e.Ticks {
			x := round(t.Pos)
			canvas.Line(x, 0, x, tickSize, stroke)
			canvas.Text(x, tickSize+tickPadding, t.Label, `fill="currentColor"`, `text-anchor="middle"`, `dy="0.71em"`)
		}
	case chart.Left:
		canvas.Path(fmt.Sprintf("M%d,0H0V%dH%d", -tickSize, n, -tickSize), `class="domain"`, stroke)
		for _, t := range e.Ticks {
			y := round(t.Pos)
			canvas.Line(-tickSize, y, 0, y, stroke)
			canvas.Text(-tickSize-tickPadding, y, t.Label, `fill="currentColor"`, `text-anchor="end"`, `dy="0.32em"`)
		}
	}
	canvas.Gend()
}

func writeTooltip(canvas *svg.SVG, t Tooltip) {
	vis := "hidden"
	if t.Visible {
		vis = "visible"
	}
	canvas.Group(`id="tooltip"`, attr("visibility", vis), `pointer-events="none"`,
		fmt.Sprintf(`transform="translate(%d,%d)"`, round(t.At.X), round(t.At.Y)))
	canvas.Rect(0, 0, tipWidth, 2*tipLine+8, `fill="white"`, `stroke="#999"`, `rx="3"`)
	// Always write two lines so the hover script has somewhere to
	// put its text.
	lines := append([]string(nil), t.Lines...)
	for len(lines) < 2 {
		lines = append(lines, "")
	}
	for i, line := range lines {
		canvas.Text(6, tipLine*(i+1), line, `fill="black"`, `font-size="12px"`)
	}
	canvas.Gend()
}

func pathData(pts []chart.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		fmt.Fprintf(&b, "%.6g,%.6g", p.X, p.Y)
	}
	return b.String()
}

func attr(name, val string) string {
	return fmt.Sprintf(`%s="%s"`, name, escapeAttr(val))
}

func styleAttr(st chart.Style) string {
	fill, stroke := st.Fill, st.Stroke
	if fill == "" {
		fill = "none"
	}
	if stroke == "" {
		stroke = "none"
	}
	return attr("style", fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", fill, stroke, st.StrokeWidth))
}

func opacityAttr(op float64) string {
	return fmt.Sprintf(`opacity="%g"`, op)
}

func dataAttrs(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = attr("data-"+k, data[k])
	}
	return out
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
