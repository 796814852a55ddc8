// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package genpoints generates random planar point sets for exercising the
// triangulation core, the way this corpus's own utils package generates
// random points on the S2 sphere for the Voronoi diagram code.
package genpoints

import (
	"math/rand"

	delaunay "github.com/vireo-labs/delaunay2d"
)

// GenerateUniformPoints returns cnt points drawn uniformly from
// (-bound, bound)^2. seed makes the result reproducible.
func GenerateUniformPoints(cnt int, bound float64, seed int64) []delaunay.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]delaunay.Point, cnt)
	for i := range cnt {
		pts[i] = delaunay.Point{
			X: (random.Float64()*2 - 1) * bound,
			Y: (random.Float64()*2 - 1) * bound,
		}
	}
	return pts
}

// GenerateWithCorners returns the four corners of (-bound, bound)^2
// followed by cnt uniformly-sampled interior points, matching scenario 3
// of spec.md §8 (a fixed corner set preceding a large uniform batch).
func GenerateWithCorners(cnt int, bound float64, seed int64) []delaunay.Point {
	corners := []delaunay.Point{
		{X: -bound, Y: -bound},
		{X: bound, Y: -bound},
		{X: bound, Y: bound},
		{X: -bound, Y: bound},
	}
	return append(corners, GenerateUniformPoints(cnt, bound, seed)...)
}
