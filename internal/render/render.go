// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws triangulations and their dual graphs as SVG or PNG.
package render

import (
	"io"
	"math"

	"github.com/2dChan/r2voronoi/r2delaunay"
	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	defaultWidth  = 1000
	defaultHeight = 1000
	marginRatio   = 0.05

	backgroundStyle = "fill:rgb(255,255,255)"
	triangleStyle   = "fill:none;stroke:rgb(200,170,0);stroke-width:1"
	circleStyle     = "fill:none;stroke:rgb(170,170,170);stroke-width:0.5;stroke-opacity:0.6"
	dualStyle       = "stroke:rgb(0,0,255);stroke-width:1"
	centerStyle     = "fill:rgb(0,0,255)"
	siteStyle       = "fill:rgb(0,160,0)"

	siteRadius   = 3
	centerRadius = 2
)

// Scene is what gets drawn.
type Scene struct {
	Points    []r2.Point
	Triangles []r2delaunay.Triangle
	// Segments join circumcenters of adjacent triangles.
	Segments [][2]r2.Point
}

type Options struct {
	Width, Height int
	// Circles draws the circumcircle of every triangle.
	Circles bool
	// Dual draws Segments and the circumcenters.
	Dual bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// projection maps scene coordinates to image coordinates, keeping the aspect
// ratio and flipping Y so that it points up.
type projection struct {
	bounds r2.Rect
	scale  float64
	height float64
}

func newProjection(points []r2.Point, width, height int) projection {
	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()
	margin := marginRatio * math.Max(math.Max(size.X, size.Y), 1)
	bounds = bounds.ExpandedByMargin(margin)
	size = bounds.Size()

	return projection{
		bounds: bounds,
		scale:  math.Min(float64(width)/size.X, float64(height)/size.Y),
		height: float64(height),
	}
}

func (pr projection) apply(p r2.Point) (float64, float64) {
	return (p.X - pr.bounds.X.Lo) * pr.scale, pr.height - (p.Y-pr.bounds.Y.Lo)*pr.scale
}

func (pr projection) applyInt(p r2.Point) (int, int) {
	x, y := pr.apply(p)
	return int(math.Round(x)), int(math.Round(y))
}

// WriteSVG draws sc as an SVG document.
func WriteSVG(w io.Writer, sc Scene, opts Options) error {
	opts = opts.withDefaults()
	if len(sc.Points) == 0 {
		return errors.New("render: no points to draw")
	}
	pr := newProjection(sc.Points, opts.Width, opts.Height)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, backgroundStyle)

	xs := make([]int, 3)
	ys := make([]int, 3)
	for _, t := range sc.Triangles {
		for i, v := range t.Vertices() {
			xs[i], ys[i] = pr.applyInt(v)
		}
		canvas.Polygon(xs, ys, triangleStyle)
	}

	if opts.Circles {
		for _, t := range sc.Triangles {
			if t.Degenerate() {
				continue
			}
			x, y := pr.applyInt(t.Center())
			canvas.Circle(x, y, int(math.Round(t.Radius()*pr.scale)), circleStyle)
		}
	}

	if opts.Dual {
		for _, s := range sc.Segments {
			x1, y1 := pr.applyInt(s[0])
			x2, y2 := pr.applyInt(s[1])
			canvas.Line(x1, y1, x2, y2, dualStyle)
		}
		for _, t := range sc.Triangles {
			if t.Degenerate() {
				continue
			}
			x, y := pr.applyInt(t.Center())
			canvas.Circle(x, y, centerRadius, centerStyle)
		}
	}

	for _, p := range sc.Points {
		x, y := pr.applyInt(p)
		canvas.Circle(x, y, siteRadius, siteStyle)
	}
	canvas.End()

	return errors.Wrap(ew.err, "render: writing svg")
}

// WritePNG draws sc as a PNG image.
func WritePNG(w io.Writer, sc Scene, opts Options) error {
	opts = opts.withDefaults()
	if len(sc.Points) == 0 {
		return errors.New("render: no points to draw")
	}
	pr := newProjection(sc.Points, opts.Width, opts.Height)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetLineWidth(1)
	dc.SetRGB255(200, 170, 0)
	for _, t := range sc.Triangles {
		for i, v := range t.Vertices() {
			x, y := pr.apply(v)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.Stroke()
	}

	if opts.Circles {
		dc.SetLineWidth(0.5)
		dc.SetRGBA255(170, 170, 170, 150)
		for _, t := range sc.Triangles {
			if t.Degenerate() {
				continue
			}
			x, y := pr.apply(t.Center())
			dc.DrawCircle(x, y, t.Radius()*pr.scale)
			dc.Stroke()
		}
	}

	if opts.Dual {
		dc.SetLineWidth(1)
		dc.SetRGB255(0, 0, 255)
		for _, s := range sc.Segments {
			x1, y1 := pr.apply(s[0])
			x2, y2 := pr.apply(s[1])
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
		for _, t := range sc.Triangles {
			if t.Degenerate() {
				continue
			}
			x, y := pr.apply(t.Center())
			dc.DrawCircle(x, y, centerRadius)
			dc.Fill()
		}
	}

	dc.SetRGB255(0, 160, 0)
	for _, p := range sc.Points {
		x, y := pr.apply(p)
		dc.DrawCircle(x, y, siteRadius)
		dc.Fill()
	}

	return errors.Wrap(dc.EncodePNG(w), "render: writing png")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
