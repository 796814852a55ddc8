// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package oracle

import (
	"testing"

	delaunay "github.com/vireo-labs/delaunay2d"
)

func TestViaLowerHullTriangleCount(t *testing.T) {
	// Five points: a unit square plus its centre. Five interior-general-
	// position points triangulate into exactly 2*5-2-h triangles where h
	// is the hull size (Euler's formula for a triangulated point set);
	// here h=4 (the square corners), so 2*5-2-4 = 4 triangles.
	points := delaunay.NewPointSet([]delaunay.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5},
	})

	tris, err := ViaLowerHull(points, DefaultEps)
	if err != nil {
		t.Fatalf("ViaLowerHull: %v", err)
	}
	if got, want := tris.Len(), 4; got != want {
		t.Errorf("ViaLowerHull produced %d triangles, want %d", got, want)
	}
}

func TestViaLowerHullRejectsTooFewPoints(t *testing.T) {
	points := delaunay.NewPointSet([]delaunay.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if _, err := ViaLowerHull(points, DefaultEps); err == nil {
		t.Errorf("ViaLowerHull with 2 points returned nil error, want a failure")
	}
}
