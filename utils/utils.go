// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar points for
// triangulations and Voronoi diagrams.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt uniformly distributed points inside bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bounds r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	size := bounds.Size()
	for i := 0; i < cnt; i++ {
		points[i] = r2.Point{
			X: bounds.X.Lo + random.Float64()*size.X,
			Y: bounds.Y.Lo + random.Float64()*size.Y,
		}
	}

	return points
}

// UnitSquare is the rectangle [0, 1] x [0, 1].
func UnitSquare() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
}
