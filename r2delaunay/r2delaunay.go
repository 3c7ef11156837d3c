// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay implements incremental Delaunay triangulation of planar
// points (Bowyer-Watson).
package r2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Defaults used by NewTriangulator.
const (
	DefaultEps                = 1e-12
	DefaultSuperTriangleScale = 10

	// A super-triangle built from the centroid encloses the bounding box only
	// for scales above this value.
	minSuperTriangleScale = 3
)

// Sentinel indices of the super-triangle vertices.
const (
	SuperIndex1 = -1
	SuperIndex2 = -2
	SuperIndex3 = -3
)

// ErrInvalidInput is returned when there are not enough points to triangulate.
var ErrInvalidInput = errors.New("r2delaunay: insufficient points for triangulation (minimum 3 required)")

type TriangulationOptions struct {
	// Eps bounds the circumcircle denominator, relative to the squared length
	// of the longest edge, below which a triangle is treated as degenerate.
	Eps float64
	// SuperTriangleScale is the multiple of the bounding box size used to
	// place the super-triangle vertices.
	SuperTriangleScale float64
	Logger             *zap.Logger
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func WithSuperTriangleScale(scale float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if !(scale > minSuperTriangleScale) || math.IsInf(scale, 0) {
			return errors.Errorf("WithSuperTriangleScale: scale must be finite and greater than %v, got %v",
				minSuperTriangleScale, scale)
		}
		o.SuperTriangleScale = scale
		return nil
	}
}

func WithLogger(logger *zap.Logger) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// Triangulator runs Bowyer-Watson triangulations with a fixed set of options.
// The working triangle sets live only for the duration of one Calculate call.
type Triangulator struct {
	opts TriangulationOptions
}

func NewTriangulator(setters ...TriangulationOption) (*Triangulator, error) {
	opts := TriangulationOptions{
		Eps:                DefaultEps,
		SuperTriangleScale: DefaultSuperTriangleScale,
		Logger:             zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	return &Triangulator{opts: opts}, nil
}

// Options returns a copy of the options in use.
func (tr *Triangulator) Options() TriangulationOptions {
	return tr.opts
}

// Calculate triangulates points, which are inserted in input order. The
// result holds no triangle touching the super-triangle and no degenerate
// triangle; its order follows construction order and is otherwise unspecified.
func (tr *Triangulator) Calculate(points []r2.Point) ([]Triangle, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "got %d points", len(points))
	}

	ws := &workingSet{
		super:  superTriangle(points, tr.opts.SuperTriangleScale),
		eps:    tr.opts.Eps,
		logger: tr.opts.Logger,
	}
	for i, p := range points {
		ws.insert(p, i)
	}
	tris := ws.finish()

	tr.opts.Logger.Debug("triangulation done",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(tris)),
	)
	return tris, nil
}

// superTriangle returns a triangle with indices -1, -2, -3 that strictly
// encloses every point. Its apex sits above the centroid and its base below,
// each scale times the larger bounding box side away. points must not be
// empty and scale must exceed minSuperTriangleScale; Calculate and the
// options guarantee both.
func superTriangle(points []r2.Point, scale float64) Triangle {
	var center r2.Point
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(points)))

	size := r2.RectFromPoints(points...).Size()
	d := math.Max(size.X, size.Y)
	if d == 0 {
		d = 1
	}
	s := scale * d

	return NewTriangle(
		center.Add(r2.Point{X: 0, Y: s}),
		center.Add(r2.Point{X: s, Y: -s}),
		center.Add(r2.Point{X: -s, Y: -s}),
		SuperIndex1, SuperIndex2, SuperIndex3,
	)
}

// workingSet is owned by a single Calculate call.
type workingSet struct {
	super  Triangle
	good   []Triangle
	bad    []Triangle
	seeded bool
	eps    float64
	logger *zap.Logger
}

func (ws *workingSet) insert(p r2.Point, idx int) {
	ws.validate(p)
	boundary := ws.cavityBoundary()
	for _, e := range boundary {
		t := newTriangle(e.p1, e.p2, p, e.i1, e.i2, idx, ws.eps)
		if t.degenerate {
			ws.logger.Warn("degenerate triangle", zap.Stringer("triangle", t))
		}
		ws.good = append(ws.good, t)
	}

	ws.logger.Debug("inserted point",
		zap.Int("index", idx),
		zap.Int("bad", len(ws.bad)),
		zap.Int("boundary", len(boundary)),
		zap.Int("good", len(ws.good)),
	)
}

// validate moves every good triangle whose circumcircle contains p to the bad
// set. The super-triangle is seeded into the bad set on the first call.
func (ws *workingSet) validate(p r2.Point) {
	ws.bad = ws.bad[:0]
	if !ws.seeded {
		ws.bad = append(ws.bad, ws.super)
		ws.seeded = true
	}

	valid := ws.good[:0]
	for _, t := range ws.good {
		if t.PointInRadius(p) {
			ws.bad = append(ws.bad, t)
		} else {
			valid = append(valid, t)
		}
	}
	ws.good = valid
}

// cavityBoundary returns the edges of the bad triangles that belong to exactly
// one of them.
func (ws *workingSet) cavityBoundary() []Edge {
	var edges, blacklisted []Edge
	for _, t := range ws.bad {
	next:
		for _, e := range t.Edges() {
			for i, seen := range edges {
				if seen.Equal(e) {
					edges = append(edges[:i], edges[i+1:]...)
					blacklisted = append(blacklisted, e)
					continue next
				}
			}
			for _, b := range blacklisted {
				if b.Equal(e) {
					continue next
				}
			}
			edges = append(edges, e)
		}
	}
	return edges
}

// finish drops the triangles touching the super-triangle and the zero-area
// triangles left by duplicate points.
func (ws *workingSet) finish() []Triangle {
	tris := make([]Triangle, 0, len(ws.good))
	for _, t := range ws.good {
		if t.ContainsPointInSuper(ws.super) || t.degenerate {
			continue
		}
		tris = append(tris, t)
	}
	return tris
}

// Triangulation is the result of triangulating Points.
type Triangulation struct {
	Points    []r2.Point
	Triangles []Triangle
}

// NewTriangulation triangulates points with a fresh Triangulator.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	tr, err := NewTriangulator(setters...)
	if err != nil {
		return nil, err
	}
	tris, err := tr.Calculate(points)
	if err != nil {
		return nil, err
	}
	return &Triangulation{Points: points, Triangles: tris}, nil
}

func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles)
}

// IndexBuffer returns the flattened Index1, Index2, Index3 of every triangle.
func (dt *Triangulation) IndexBuffer() []int {
	buf := make([]int, 0, 3*len(dt.Triangles))
	for _, t := range dt.Triangles {
		buf = append(buf, t.idx[0], t.idx[1], t.idx[2])
	}
	return buf
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	p := dt.Triangles[tIdx].p
	return p[0], p[1], p[2]
}

// IncidentTriangles returns the indices of the triangles that have point vIdx
// as a vertex.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx >= len(dt.Points) {
		panic("IncidentTriangles: vIdx out of range")
	}
	var incident []int
	for i, t := range dt.Triangles {
		if t.idx[0] == vIdx || t.idx[1] == vIdx || t.idx[2] == vIdx {
			incident = append(incident, i)
		}
	}
	return incident
}
