// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/golang/geo/r2"

// Point is a planar coordinate pair. It is an alias for r2.Point, the
// planar sibling of the r3/s2 types the rest of this corpus uses for
// spherical geometry.
type Point = r2.Point

// PointSet is the point container the core consumes. Indices are
// 1-based, matching FirstPointIndex, and stored internally as a 0-based
// slice; Get translates between the two.
type PointSet struct {
	pts []Point
}

// NewPointSet builds a PointSet from a 0-based slice of coordinates,
// which will be addressed as indices FirstPointIndex..FirstPointIndex+len-1.
func NewPointSet(pts []Point) *PointSet {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &PointSet{pts: cp}
}

// Len returns the number of input points held.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// PushBack appends a point, returning its new VertexID.
func (s *PointSet) PushBack(p Point) VertexID {
	s.pts = append(s.pts, p)
	return FirstPointIndex + VertexID(len(s.pts)-1)
}

// Get returns the point named by v. v must address an input point
// (IsInputVertex(v)); bounding/ghost vertices are not stored here.
func (s *PointSet) Get(v VertexID) (Point, error) {
	if !IsInputVertex(v) {
		return Point{}, newError(OutOfRange, "PointSet.Get", "index %d is not an input vertex", v)
	}
	i := int(v - FirstPointIndex)
	if i < 0 || i >= len(s.pts) {
		return Point{}, newError(OutOfRange, "PointSet.Get", "index %d out of range [%d, %d)", v,
			FirstPointIndex, FirstPointIndex+VertexID(len(s.pts)))
	}
	return s.pts[i], nil
}

// MustGet is Get but panics on error; used where v has already been
// validated (e.g. while iterating a triangle's own vertices).
func (s *PointSet) MustGet(v VertexID) Point {
	p, err := s.Get(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Stats computes the centre of the input bounding box and the scale M
// used to place the bounding triangle, per spec. M is the larger of the
// box's width and height, floored at MinWidthHeight.
type Stats struct {
	CenterX, CenterY float64
	M                float64
}

// PointStats computes point_stats(points): the bounding box centre and
// the scale factor M = max(width, height, MinWidthHeight).
func PointStats(s *PointSet) Stats {
	if s.Len() == 0 {
		return Stats{M: MinWidthHeight}
	}
	minX, maxX := s.pts[0].X, s.pts[0].X
	minY, maxY := s.pts[0].Y, s.pts[0].Y
	for _, p := range s.pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	width := maxX - minX
	height := maxY - minY
	m := width
	if height > m {
		m = height
	}
	if m < MinWidthHeight {
		m = MinWidthHeight
	}
	return Stats{
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		M:       m,
	}
}

// BoundingTriangleCoords computes the three bounding-triangle vertex
// coordinates from the input statistics, per spec §3:
//
//	lower-right = (cx + s*M, cy - M)
//	lower-left  = (cx - s*M, cy - M)
//	upper       = (cx,       cy + s*M)
func BoundingTriangleCoords(st Stats) (lowerRight, lowerLeft, upper Point) {
	s := BoundingTriangleShift
	lowerRight = Point{X: st.CenterX + s*st.M, Y: st.CenterY - st.M}
	lowerLeft = Point{X: st.CenterX - s*st.M, Y: st.CenterY - st.M}
	upper = Point{X: st.CenterX, Y: st.CenterY + s*st.M}
	return
}
