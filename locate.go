// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"

	"github.com/vireo-labs/delaunay2d/history"
)

// LocateWalk performs jump-and-walk point location (spec §4.4), starting
// from seed and walking across shared edges toward p using Orient tests.
// seed is ordinarily the last triangle inserted (Context tracks this in
// its unexported lastTriangle field). If seed is a ghost triangle, the
// walk first steps into its solid neighbour before continuing, so the
// core loop only ever needs to reason about solid triangles and the
// single ghost triangle it terminates on.
//
// The returned Triangle is solid if p lies within the current hull, or a
// ghost triangle (u, v, BoundaryIndex) if p lies outside it, on the hull
// edge (u, v) (oriented so Orient(u, v, p) > 0, per the ghost in-circle
// convention of spec §4.5.1). LocateWalk never returns an error: reaching
// a degenerate triangle is fatal per spec §4.5.3 and panics instead, since
// it signals a programming error (malformed seed or corrupted adjacency),
// not a condition the caller can recover from.
func (c *Context) LocateWalk(points *PointSet, seed Triangle, p Point) Triangle {
	cur := seed
	if cur.IsGhost() {
		u, v := ghostUV(cur)
		if c.predicates.Orient(c.Coord(points, u), c.Coord(points, v), p) > 0 {
			return cur
		}
		w := c.A.GetEdge(v, u)
		if w == DefaultAdjacentValue || w == BoundaryIndex {
			panic(fmt.Sprintf("LocateWalk: ghost seed (%d,%d,Boundary) has no solid neighbour", u, v))
		}
		cur = NewTriangle(v, u, w)
	}

	maxSteps := 4*c.T.Len() + 64
	for step := 0; ; step++ {
		if step > maxSteps {
			panic(fmt.Sprintf("LocateWalk: exceeded %d steps without terminating; this indicates inconsistent adjacency state", maxSteps))
		}

		x, y, z := cur.Indices()
		px, py, pz := c.Coord(points, x), c.Coord(points, y), c.Coord(points, z)

		edges := [3]struct {
			a, b   VertexID
			pa, pb Point
		}{
			{x, y, px, py},
			{y, z, py, pz},
			{z, x, pz, px},
		}

		zeroCount := 0
		crossed := false
		for _, e := range edges {
			o := c.predicates.Orient(e.pa, e.pb, p)
			if o == 0 {
				zeroCount++
				continue
			}
			if o < 0 {
				opp := c.A.GetEdge(e.b, e.a)
				if opp == BoundaryIndex {
					return NewTriangle(e.b, e.a, BoundaryIndex)
				}
				if opp == DefaultAdjacentValue {
					panic(fmt.Sprintf("LocateWalk: edge (%d,%d) has no reverse neighbour and is not a hull edge", e.a, e.b))
				}
				cur = NewTriangle(e.b, e.a, opp)
				crossed = true
				break
			}
		}
		if crossed {
			continue
		}
		if zeroCount == 3 {
			panic("LocateWalk: degenerate triangle (all three orientations zero)")
		}
		return cur
	}
}

// LocateHistory performs history-DAG point location (spec §4.4), used by
// the de Berg engine: starting at H's root, descend to the child
// triangle containing p at each step, stopping at a leaf. Ties are
// resolved by history.Arena.Locate's fixed rule of preferring the
// lexicographically-earliest containing child.
func (c *Context) LocateHistory(points *PointSet, p Point) Triangle {
	id := c.locateHistoryNode(points, p)
	tri := c.H.Node(id).Tri
	return NewTriangle(VertexID(tri[0]), VertexID(tri[1]), VertexID(tri[2]))
}

// locateHistoryNode is LocateHistory's internal counterpart, returning
// the leaf NodeID rather than its Triangle, so callers that need to
// record a Replace against it (the de Berg insertion engine) do not have
// to re-derive it from leafNode by value.
func (c *Context) locateHistoryNode(points *PointSet, p Point) history.NodeID {
	contains := func(tri [3]int) bool {
		t := NewTriangle(VertexID(tri[0]), VertexID(tri[1]), VertexID(tri[2]))
		if t.IsGhost() {
			u, v := ghostUV(t)
			return c.predicates.Orient(c.Coord(points, u), c.Coord(points, v), p) > 0
		}
		x, y, z := t.Indices()
		px, py, pz := c.Coord(points, x), c.Coord(points, y), c.Coord(points, z)
		return c.predicates.Orient(px, py, p) >= 0 &&
			c.predicates.Orient(py, pz, p) >= 0 &&
			c.predicates.Orient(pz, px, p) >= 0
	}
	return c.H.Locate(contains)
}
