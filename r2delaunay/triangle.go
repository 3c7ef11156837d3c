// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Triangle is an immutable triangle of the triangulation. Its circumcircle is
// computed once by NewTriangle.
type Triangle struct {
	p   [3]r2.Point
	idx [3]int

	center     r2.Point
	radius     float64
	degenerate bool
}

// NewTriangle returns the triangle p1, p2, p3 whose vertices had the input
// indices i1, i2, i3. Negative indices mark super-triangle vertices.
//
// Collinear or repeated vertices give a triangle without a meaningful
// circumcircle; it is reported by Degenerate and never contains a point.
func NewTriangle(p1, p2, p3 r2.Point, i1, i2, i3 int) Triangle {
	return newTriangle(p1, p2, p3, i1, i2, i3, DefaultEps)
}

func newTriangle(p1, p2, p3 r2.Point, i1, i2, i3 int, eps float64) Triangle {
	t := Triangle{
		p:   [3]r2.Point{p1, p2, p3},
		idx: [3]int{i1, i2, i3},
	}
	t.center, t.radius, t.degenerate = circumcircle(p1, p2, p3, eps)
	return t
}

// circumcircle returns the center and radius of the circle through a, b and c.
// degenerate is set when the denominator is within eps times the squared
// longest edge of zero, or the result is not finite.
func circumcircle(a, b, c r2.Point, eps float64) (center r2.Point, radius float64, degenerate bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	center = r2.Point{
		X: 1 / d * (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)),
		Y: 1 / d * (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)),
	}
	radius = a.Sub(center).Norm()

	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	m := max(ab.Dot(ab), bc.Dot(bc), ca.Dot(ca))
	degenerate = math.Abs(d) <= eps*m || !isFinite(center.X) || !isFinite(center.Y) || !isFinite(radius)
	return center, radius, degenerate
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vertices returns P1, P2, P3.
func (t Triangle) Vertices() [3]r2.Point {
	return t.p
}

// Indices returns Index1, Index2, Index3.
func (t Triangle) Indices() [3]int {
	return t.idx
}

// Edges returns the edges P1-P2, P2-P3 and P3-P1.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t.p[0], t.p[1], t.idx[0], t.idx[1]),
		NewEdge(t.p[1], t.p[2], t.idx[1], t.idx[2]),
		NewEdge(t.p[2], t.p[0], t.idx[2], t.idx[0]),
	}
}

// Center returns the circumcenter.
func (t Triangle) Center() r2.Point {
	return t.center
}

// Radius returns the circumradius.
func (t Triangle) Radius() float64 {
	return t.radius
}

// Degenerate reports whether the vertices are (nearly) collinear, in which
// case Center and Radius carry no meaning.
func (t Triangle) Degenerate() bool {
	return t.degenerate
}

// IsSuper reports whether any vertex belongs to a super-triangle.
func (t Triangle) IsSuper() bool {
	return t.idx[0] < 0 || t.idx[1] < 0 || t.idx[2] < 0
}

// PointInRadius reports whether p lies strictly inside the circumcircle.
// Points on the circle are outside. A degenerate triangle contains nothing.
func (t Triangle) PointInRadius(p r2.Point) bool {
	if t.degenerate {
		return false
	}
	return p.Sub(t.center).Norm() < t.radius
}

// ContainsPoint reports whether p is one of the vertices.
func (t Triangle) ContainsPoint(p r2.Point) bool {
	return t.p[0] == p || t.p[1] == p || t.p[2] == p
}

// ContainsPointInSuper reports whether t shares a vertex with super.
func (t Triangle) ContainsPointInSuper(super Triangle) bool {
	for _, p := range super.p {
		if t.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// Equal reports whether the vertices of o are a cyclic rotation of the
// vertices of t. A triangle with the same vertices in reversed order is not
// Equal; see SameVertices.
func (t Triangle) Equal(o Triangle) bool {
	for r := 0; r < 3; r++ {
		if t.p[0] == o.p[r] && t.p[1] == o.p[(r+1)%3] && t.p[2] == o.p[(r+2)%3] {
			return true
		}
	}
	return false
}

// SameVertices reports whether t and o have the same three vertices in any
// order.
func (t Triangle) SameVertices(o Triangle) bool {
	return t.Equal(o) || t.Equal(Triangle{p: [3]r2.Point{o.p[0], o.p[2], o.p[1]}})
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%d %d %d]", t.idx[0], t.idx[1], t.idx[2])
}
