// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi approximates planar Voronoi diagrams by the dual graph of a
// Delaunay triangulation: each triangle's circumcenter is a Voronoi vertex and
// triangles sharing an edge are joined by a Voronoi edge.
package r2voronoi

import (
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Diagram is the dual graph of a triangulation. Node i corresponds to
// Triangles[i] and sits at Vertices[i], the triangle's circumcenter.
type Diagram struct {
	Triangles []r2delaunay.Triangle
	Vertices  []r2.Point

	// NOTE: Sorted by triangle index per node.
	Neighbors       []int
	NeighborOffsets []int
}

type DiagramOptions struct {
	TriangulationOptions []r2delaunay.TriangulationOption
	Logger               *zap.Logger
}

type DiagramOption func(*DiagramOptions) error

// WithTriangulationOptions sets the options NewDiagram triangulates with.
func WithTriangulationOptions(setters ...r2delaunay.TriangulationOption) DiagramOption {
	return func(o *DiagramOptions) error {
		o.TriangulationOptions = append(o.TriangulationOptions, setters...)
		return nil
	}
}

// WithLogger sets the logger of the diagram and of the triangulation behind it.
func WithLogger(logger *zap.Logger) DiagramOption {
	return func(o *DiagramOptions) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

func newDiagramOptions(setters []DiagramOption) (DiagramOptions, error) {
	opts := DiagramOptions{Logger: zap.NewNop()}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return DiagramOptions{}, err
		}
	}
	return opts, nil
}

// NewDiagram triangulates sites and builds the dual graph of the result.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts, err := newDiagramOptions(setters)
	if err != nil {
		return nil, err
	}

	triOpts := append([]r2delaunay.TriangulationOption{r2delaunay.WithLogger(opts.Logger)},
		opts.TriangulationOptions...)
	dt, err := r2delaunay.NewTriangulation(sites, triOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "r2voronoi: triangulation failed")
	}

	return newDiagram(dt.Triangles, opts.Logger), nil
}

// NewDiagramFromTriangles builds the dual graph of an existing triangle list.
func NewDiagramFromTriangles(tris []r2delaunay.Triangle, setters ...DiagramOption) (*Diagram, error) {
	opts, err := newDiagramOptions(setters)
	if err != nil {
		return nil, err
	}
	return newDiagram(tris, opts.Logger), nil
}

func newDiagram(tris []r2delaunay.Triangle, logger *zap.Logger) *Diagram {
	adj := computeAdjacency(tris, logger)

	vd := &Diagram{
		Triangles:       tris,
		Vertices:        make([]r2.Point, len(tris)),
		NeighborOffsets: make([]int, len(tris)+1),
	}
	for i, t := range tris {
		vd.Vertices[i] = t.Center()
		vd.NeighborOffsets[i+1] = vd.NeighborOffsets[i] + len(adj[i])
	}
	vd.Neighbors = make([]int, 0, vd.NeighborOffsets[len(tris)])
	for _, n := range adj {
		vd.Neighbors = append(vd.Neighbors, n...)
	}

	logger.Debug("dual graph built",
		zap.Int("nodes", len(tris)),
		zap.Int("edges", len(vd.Neighbors)/2),
	)
	return vd
}

// ComputeAdjacency returns, for every triangle, the indices of the other
// triangles sharing at least one edge with it, in increasing order. Edges are
// compared with r2delaunay.Edge.Equal. The search compares every ordered pair
// of triangles.
func ComputeAdjacency(tris []r2delaunay.Triangle) [][]int {
	return computeAdjacency(tris, zap.NewNop())
}

func computeAdjacency(tris []r2delaunay.Triangle, logger *zap.Logger) [][]int {
	adj := make([][]int, len(tris))
	for i := range tris {
		for j := range tris {
			if i == j {
				continue
			}
			if sharesEdge(tris[i], tris[j]) {
				logger.Debug("triangles share an edge", zap.Int("triangle", i), zap.Int("other", j))
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}

func sharesEdge(a, b r2delaunay.Triangle) bool {
	ae, be := a.Edges(), b.Edges()
	for _, e := range ae {
		for _, o := range be {
			if e.Equal(o) {
				return true
			}
		}
	}
	return false
}

func (vd *Diagram) NumNodes() int {
	return len(vd.Triangles)
}

// Node returns the node of triangle i.
// It returns an error if the index is out of range.
func (vd *Diagram) Node(i int) (Node, error) {
	if i < 0 || i >= vd.NumNodes() {
		return Node{}, errors.Errorf("Node: index %d out of range [0 %d)", i, vd.NumNodes())
	}
	return Node{idx: i, vd: vd}, nil
}

// Edges returns every pair of adjacent nodes once, as {i, j} with i < j.
func (vd *Diagram) Edges() [][2]int {
	edges := make([][2]int, 0, len(vd.Neighbors)/2)
	for i := 0; i < vd.NumNodes(); i++ {
		for _, j := range vd.Neighbors[vd.NeighborOffsets[i]:vd.NeighborOffsets[i+1]] {
			if i < j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// Segments returns the circumcenter pairs of Edges, ready for drawing.
func (vd *Diagram) Segments() [][2]r2.Point {
	edges := vd.Edges()
	segs := make([][2]r2.Point, len(edges))
	for k, e := range edges {
		segs[k] = [2]r2.Point{vd.Vertices[e[0]], vd.Vertices[e[1]]}
	}
	return segs
}
