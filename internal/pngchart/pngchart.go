// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pngchart renders a chart session as a PNG image.
package pngchart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/aclements/go-incidents/chart"
)

// Options control how a session is rendered.
type Options struct {
	// Caption is stamped in the bottom-left corner of the image.
	Caption string

	// Scale resizes the rendered image. 0 means 1.
	Scale float64
}

var steelblue = drawing.Color{R: 0x46, G: 0x82, B: 0xb4, A: 255}

// Render draws the last render of s as an image. s must have been
// rendered. If s has nothing to draw, the image is blank apart from
// the caption.
func Render(s *chart.Session, opts Options) (image.Image, error) {
	l := s.Layout
	var img image.Image
	x, y := s.Scales()
	if x == nil {
		img = blank(l.Width, l.Height)
	} else {
		var err error
		img, err = renderChart(s, x, y)
		if err != nil {
			return nil, err
		}
	}
	if opts.Caption != "" {
		img = drawCaption(img, opts.Caption)
	}
	if opts.Scale > 0 && opts.Scale != 1 {
		img = scale(img, opts.Scale)
	}
	return img, nil
}

// Write renders s and writes it to w as a PNG.
func Write(w io.Writer, s *chart.Session, opts Options) error {
	img, err := Render(s, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func renderChart(s *chart.Session, x, y *chart.Scale) (image.Image, error) {
	series := s.Series()
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, yc := range series {
		xs[i], ys[i] = float64(yc.Year), float64(yc.Count)
	}

	xTicks := ticks(x)
	xMin, xMax := x.Domain()
	if xMin == xMax {
		// go-chart rejects empty ranges and takes the X range
		// from the ticks, so widen it with unlabeled ticks. The
		// single point lands in the middle.
		xMin, xMax = xMin-0.5, xMax+0.5
		xTicks = append([]gochart.Tick{{Value: xMin}}, append(xTicks, gochart.Tick{Value: xMax})...)
	}
	_, yMax := y.Domain()

	l := s.Layout
	graph := gochart.Chart{
		Width:  l.Width,
		Height: l.Height,
		Background: gochart.Style{Padding: gochart.Box{
			Top: l.Margin.Top, Right: l.Margin.Right, Bottom: l.Margin.Bottom / 2, Left: l.Margin.Left / 2,
		}},
		XAxis: gochart.XAxis{
			Name:  chart.XLabel,
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name:  chart.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: ticks(y),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "incidents",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: steelblue,
					StrokeWidth: 2,
					DotColor:    steelblue,
					DotWidth:    chart.MarkerRadius - 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return png.Decode(&buf)
}

func ticks(sc *chart.Scale) []gochart.Tick {
	vals := sc.Ticks(chart.MaxTicks, true)
	out := make([]gochart.Tick, len(vals))
	for i, v := range vals {
		out[i] = gochart.Tick{Value: v, Label: strconv.Itoa(int(v))}
	}
	return out
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// drawCaption draws text on a translucent box near the bottom-left
// corner of img.
func drawCaption(img image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	const pad = 6
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.Black), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x, y := b.Min.X+8, b.Max.Y-6
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 200}), image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

func scale(img image.Image, f float64) image.Image {
	sb := img.Bounds()
	w, h := int(float64(sb.Dx())*f+0.5), int(float64(sb.Dy())*f+0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, sb, draw.Over, nil)
	return dst
}
