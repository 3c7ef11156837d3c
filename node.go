// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Node is a view of one vertex of the dual graph. The node's index is the
// index of its triangle in the Diagram's Triangles.
type Node struct {
	idx int
	vd  *Diagram
}

func (n Node) Index() int {
	return n.idx
}

func (n Node) Triangle() r2delaunay.Triangle {
	return n.vd.Triangles[n.idx]
}

// Center returns the circumcenter of the node's triangle.
func (n Node) Center() r2.Point {
	return n.vd.Vertices[n.idx]
}

func (n Node) Radius() float64 {
	return n.vd.Triangles[n.idx].Radius()
}

func (n Node) NumNeighbors() int {
	return n.vd.NeighborOffsets[n.idx+1] - n.vd.NeighborOffsets[n.idx]
}

// NeighborIndices returns the indices of the triangles sharing an edge with
// the node's triangle.
func (n Node) NeighborIndices() []int {
	return n.vd.Neighbors[n.vd.NeighborOffsets[n.idx]:n.vd.NeighborOffsets[n.idx+1]]
}

// Neighbor returns the neighboring node at the specified index.
// It returns an error if the index is out of range.
func (n Node) Neighbor(i int) (Node, error) {
	start := n.vd.NeighborOffsets[n.idx]
	end := n.vd.NeighborOffsets[n.idx+1]
	if i < 0 || i >= end-start {
		return Node{}, errors.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	return n.vd.Node(n.vd.Neighbors[start+i])
}
