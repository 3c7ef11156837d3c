// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Edge is an unordered pair of points together with the indices the points
// had in the input.
type Edge struct {
	p1, p2 r2.Point
	i1, i2 int
}

// NewEdge returns the edge p1-p2 carrying the input indices i1 and i2.
func NewEdge(p1, p2 r2.Point, i1, i2 int) Edge {
	return Edge{p1: p1, p2: p2, i1: i1, i2: i2}
}

// Points returns the endpoints in construction order.
func (e Edge) Points() (r2.Point, r2.Point) {
	return e.p1, e.p2
}

// Indices returns the endpoint indices in construction order.
func (e Edge) Indices() (int, int) {
	return e.i1, e.i2
}

// Equal reports whether e and o join the same two points, in either direction.
// Indices are not compared: two edges over equal coordinates are equal even if
// they came from different input indices. Use SameIndices for that.
func (e Edge) Equal(o Edge) bool {
	if e.p1 == o.p1 && e.p2 == o.p2 {
		return true
	}
	return e.p1 == o.p2 && e.p2 == o.p1
}

// SameIndices reports whether e and o join the same two input indices, in
// either direction.
func (e Edge) SameIndices(o Edge) bool {
	if e.i1 == o.i1 && e.i2 == o.i2 {
		return true
	}
	return e.i1 == o.i2 && e.i2 == o.i1
}

func (e Edge) String() string {
	return fmt.Sprintf("%d%v-%d%v", e.i1, e.p1, e.i2, e.p2)
}
