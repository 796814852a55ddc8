// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package oracle provides a second, independently-grounded equivalence
// oracle for the triangulation core: ViaLowerHull reduces planar Delaunay
// triangulation to a 3-D convex hull problem via the paraboloid lift, and
// solves it with this corpus's own quickhull-go dependency (there used to
// hull spherical point sets; here, a planar one lifted onto z = x^2+y^2).
// Its output is meant to be checked against TriangulateBowyer/TriangulateBerg
// with CompareTriangleSets, not consumed as a production triangulation.
package oracle

import (
	"fmt"

	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"

	delaunay "github.com/vireo-labs/delaunay2d"
)

// DefaultEps is the numerical tolerance passed to QuickHull, mirroring
// this corpus's own s2delaunay.defaultEps.
const DefaultEps = 1e-12

// ViaLowerHull computes the Delaunay triangulation of points by lifting
// every point onto the paraboloid z = x^2 + y^2 and taking the lower
// convex hull of the lifted cloud: a face of the lower hull projects,
// modulo reversing its winding, onto exactly one Delaunay triangle of the
// original planar points. eps is QuickHull's merge tolerance; pass
// DefaultEps absent a reason to loosen it.
func ViaLowerHull(points *delaunay.PointSet, eps float64) (*delaunay.TriangleSet, error) {
	n := points.Len()
	if n < 3 {
		return nil, fmt.Errorf("oracle.ViaLowerHull: need at least 3 points, got %d", n)
	}

	lifted := make([]r3.Vector, n)
	for i := 0; i < n; i++ {
		p := points.MustGet(delaunay.FirstPointIndex + delaunay.VertexID(i))
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("oracle.ViaLowerHull: QuickHull returned %d indices, not a multiple of 3", len(ch.Indices))
	}

	out := delaunay.NewTriangleSet()
	for f := 0; f < len(ch.Indices)/3; f++ {
		ia, ib, ic := ch.Indices[f*3], ch.Indices[f*3+1], ch.Indices[f*3+2]
		a, b, c := lifted[ia], lifted[ib], lifted[ic]
		normalZ := b.Sub(a).Cross(c.Sub(a)).Z
		if normalZ >= 0 {
			// Upper-hull or vertical face: not part of the planar
			// Delaunay triangulation.
			continue
		}
		// QuickHull's outward-normal winding for a downward-facing face
		// is the reverse of the planar CCW winding this package's
		// Orient convention expects, so b and c swap on the way out.
		out.Add(delaunay.NewTriangle(
			delaunay.FirstPointIndex+delaunay.VertexID(ia),
			delaunay.FirstPointIndex+delaunay.VertexID(ic),
			delaunay.FirstPointIndex+delaunay.VertexID(ib),
		))
	}
	return out, nil
}
