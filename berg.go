// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"
	"math/rand"

	"github.com/vireo-labs/delaunay2d/history"
)

// TriangulateBerg builds the reference de Berg randomised-incremental
// triangulation of points, maintaining a history.Arena alongside
// (T, A, V, G) so AddPointBerg can locate via LocateHistory rather than
// jump-and-walk. Points are inserted in a permutation of input order
// drawn from a PRNG seeded with seed, so the same (points, seed) pair
// always reproduces the same structure (spec §5).
func TriangulateBerg(points *PointSet, seed int64, opts ...Option) (*Context, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("TriangulateBerg: %w", err)
	}
	c := newContext(cfg)
	c.H = history.NewArena(4*points.Len() + 4)
	c.seedBoundingTriangleForBerg(points)

	//nolint:gosec
	rng := rand.New(rand.NewSource(seed))
	for _, idx := range rng.Perm(points.Len()) {
		r := FirstPointIndex + VertexID(idx)
		if err := c.AddPointBerg(points, r); err != nil {
			return nil, fmt.Errorf("TriangulateBerg: %w", err)
		}
	}
	return c, nil
}

// seedBoundingTriangleForBerg seeds the bounding triangle exactly as
// TriangulateBowyer does, then records it as H's root leaf.
func (c *Context) seedBoundingTriangleForBerg(points *PointSet) {
	c.seedBoundingTriangle(points)
	root := NewTriangle(LowerLeftBoundingIndex, LowerRightBoundingIndex, UpperBoundingIndex)
	rootID := c.H.AddRoot([3]int{int(root.V[0]), int(root.V[1]), int(root.V[2])})
	c.leafNode = map[Triangle]history.NodeID{canonical(root): rootID}
}

// AddPointBerg inserts the point named by r into c via the de Berg
// split-and-legalise scheme (spec §4.5.2). Because every input point
// lies strictly inside the bounding triangle seeded at construction
// (spec §3), location never reaches a ghost triangle here; that would
// indicate a corrupted history arena rather than a point genuinely
// outside the hull.
func (c *Context) AddPointBerg(points *PointSet, r VertexID) error {
	pr, err := points.Get(r)
	if err != nil {
		return fmt.Errorf("Context.AddPointBerg: %w", err)
	}
	if c.H == nil {
		return newError(InvariantViolation, "Context.AddPointBerg", "no history arena; call TriangulateBerg first")
	}

	leafID := c.locateHistoryNode(points, pr)
	tri := c.H.Node(leafID).Tri
	tau := NewTriangle(VertexID(tri[0]), VertexID(tri[1]), VertexID(tri[2]))
	if tau.IsGhost() {
		panic("Context.AddPointBerg: location reached a ghost triangle; input point lies outside the bounding triangle")
	}

	for _, v := range tau.V {
		if !IsInputVertex(v) || v == r {
			continue
		}
		if points.MustGet(v) != pr {
			continue
		}
		if c.duplicates == PolicyError {
			return newError(DuplicatePoint, "Context.AddPointBerg", "point %d coincides with existing vertex %d", r, v)
		}
		return nil
	}

	i, j, k := tau.Indices()
	pi, pj, pk := c.Coord(points, i), c.Coord(points, j), c.Coord(points, k)
	o1 := c.predicates.Orient(pi, pj, pr)
	o2 := c.predicates.Orient(pj, pk, pr)
	o3 := c.predicates.Orient(pk, pi, pr)

	zero := 0
	for _, o := range [3]int{o1, o2, o3} {
		if o == 0 {
			zero++
		}
	}

	switch {
	case zero == 0:
		c.splitInterior(points, r, i, j, k, leafID)
	case zero == 1 && o1 == 0:
		c.splitEdge(points, r, i, j, k, leafID)
	case zero == 1 && o2 == 0:
		c.splitEdge(points, r, j, k, i, leafID)
	case zero == 1:
		c.splitEdge(points, r, k, i, j, leafID)
	default:
		panic("Context.AddPointBerg: degenerate triangle at location (collinear)")
	}
	return nil
}

// splitInterior implements the "p_r strictly inside τ" branch of spec
// §4.5.2: τ = (i, j, k) is replaced by three triangles sharing r, and
// each of τ's three original edges is legalised.
func (c *Context) splitInterior(points *PointSet, r, i, j, k VertexID, parent history.NodeID) {
	c.DeleteTriangle(i, j, k)
	delete(c.leafNode, canonical(NewTriangle(i, j, k)))

	c.AddTriangle(i, j, r, false)
	c.AddTriangle(j, k, r, false)
	c.AddTriangle(k, i, r, false)

	ids := c.H.Replace([]history.NodeID{parent}, [][3]int{
		{int(i), int(j), int(r)},
		{int(j), int(k), int(r)},
		{int(k), int(i), int(r)},
	})
	c.leafNode[canonical(NewTriangle(i, j, r))] = ids[0]
	c.leafNode[canonical(NewTriangle(j, k, r))] = ids[1]
	c.leafNode[canonical(NewTriangle(k, i, r))] = ids[2]

	c.legalize(points, r, i, j)
	c.legalize(points, r, j, k)
	c.legalize(points, r, k, i)
}

// splitEdge implements the "p_r falls on edge (u,v)" branch of spec
// §4.5.2: τ = (u, v, k) and its neighbour τ' = (v, u, w) across the
// shared edge are each replaced by two triangles sharing r, and the four
// outer edges are legalised.
func (c *Context) splitEdge(points *PointSet, r, u, v, k VertexID, parent history.NodeID) {
	w := c.A.GetEdge(v, u)
	if w == DefaultAdjacentValue || w == BoundaryIndex {
		panic("Context.AddPointBerg: edge split located a hull edge; input point lies outside the bounding triangle")
	}
	tau2 := NewTriangle(v, u, w)
	parent2, ok := c.leafNode[canonical(tau2)]
	if !ok {
		panic("Context.AddPointBerg: neighbouring triangle across split edge is not a tracked leaf")
	}

	c.DeleteTriangle(u, v, k)
	c.DeleteTriangle(v, u, w)
	delete(c.leafNode, canonical(NewTriangle(u, v, k)))
	delete(c.leafNode, canonical(tau2))

	c.AddTriangle(u, r, k, false)
	c.AddTriangle(r, v, k, false)
	c.AddTriangle(v, r, w, false)
	c.AddTriangle(r, u, w, false)

	ids := c.H.Replace([]history.NodeID{parent, parent2}, [][3]int{
		{int(u), int(r), int(k)},
		{int(r), int(v), int(k)},
		{int(v), int(r), int(w)},
		{int(r), int(u), int(w)},
	})
	c.leafNode[canonical(NewTriangle(u, r, k))] = ids[0]
	c.leafNode[canonical(NewTriangle(r, v, k))] = ids[1]
	c.leafNode[canonical(NewTriangle(v, r, w))] = ids[2]
	c.leafNode[canonical(NewTriangle(r, u, w))] = ids[3]

	c.legalize(points, r, k, u)
	c.legalize(points, r, v, k)
	c.legalize(points, r, w, v)
	c.legalize(points, r, u, w)
}

// legalize is the classic LegalizeEdge recursion: u, v name the edge of
// the current r-triangle (u, v, r) to check. If the triangle w across it
// is inside (u, v, r)'s circumcircle, the shared edge is flipped to
// (w, r) and the two new edges it creates are legalised in turn.
func (c *Context) legalize(points *PointSet, r, u, v VertexID) {
	w := c.A.GetEdge(v, u)
	if w == DefaultAdjacentValue {
		panic(fmt.Sprintf("Context.legalize: edge (%d,%d) has no reverse neighbour", v, u))
	}
	if w == BoundaryIndex {
		return
	}

	pu, pv, pr, pw := c.Coord(points, u), c.Coord(points, v), c.Coord(points, r), c.Coord(points, w)
	if c.predicates.InCircle(pu, pv, pr, pw) != 1 {
		return
	}

	parent1 := c.leafNode[canonical(NewTriangle(u, v, r))]
	parent2 := c.leafNode[canonical(NewTriangle(v, u, w))]
	delete(c.leafNode, canonical(NewTriangle(u, v, r)))
	delete(c.leafNode, canonical(NewTriangle(v, u, w)))

	c.DeleteTriangle(u, v, r)
	c.DeleteTriangle(v, u, w)

	c.AddTriangle(u, w, r, false)
	c.AddTriangle(w, v, r, false)

	ids := c.H.Replace([]history.NodeID{parent1, parent2}, [][3]int{
		{int(u), int(w), int(r)},
		{int(w), int(v), int(r)},
	})
	c.leafNode[canonical(NewTriangle(u, w, r))] = ids[0]
	c.leafNode[canonical(NewTriangle(w, v, r))] = ids[1]

	c.legalize(points, r, u, w)
	c.legalize(points, r, w, v)
}
