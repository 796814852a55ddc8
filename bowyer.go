// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "fmt"

// TriangulateBowyer builds a Delaunay triangulation of points by seeding
// the bounding triangle (spec §3) and then inserting every input point,
// in order, via AddPointBowyer.
func TriangulateBowyer(points *PointSet, opts ...Option) (*Context, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("TriangulateBowyer: %w", err)
	}
	c := newContext(cfg)
	c.seedBoundingTriangle(points)

	for i := 0; i < points.Len(); i++ {
		r := FirstPointIndex + VertexID(i)
		if err := c.AddPointBowyer(points, r); err != nil {
			return nil, fmt.Errorf("TriangulateBowyer: %w", err)
		}
	}
	return c, nil
}

// seedBoundingTriangle materialises the three bounding-triangle sentinels
// and their enclosing ghost fan, per spec §3's lifecycle description.
func (c *Context) seedBoundingTriangle(points *PointSet) {
	st := PointStats(points)
	lowerRight, lowerLeft, upper := BoundingTriangleCoords(st)
	c.boundingCoords[LowerRightBoundingIndex] = lowerRight
	c.boundingCoords[LowerLeftBoundingIndex] = lowerLeft
	c.boundingCoords[UpperBoundingIndex] = upper
	c.AddTriangle(LowerLeftBoundingIndex, LowerRightBoundingIndex, UpperBoundingIndex, true)
}

// cavityEdge is a directed edge on the boundary of a Bowyer-Watson cavity:
// it belongs to a cavity triangle, and its reverse direction belongs to a
// triangle (solid or ghost) outside the cavity.
type cavityEdge struct {
	u, v VertexID
}

// AddPointBowyer inserts the point named by r into c using cavity
// retriangulation (spec §4.5.1). Inserting a point coincident with an
// existing vertex is governed by c's DuplicatePolicy.
func (c *Context) AddPointBowyer(points *PointSet, r VertexID) error {
	pr, err := points.Get(r)
	if err != nil {
		return fmt.Errorf("Context.AddPointBowyer: %w", err)
	}
	if !c.hasTriangle {
		return newError(InvariantViolation, "Context.AddPointBowyer", "no seed triangulation; call TriangulateBowyer or seedBoundingTriangle first")
	}

	v0 := c.LocateWalk(points, c.lastTriangle, pr)

	for _, v := range v0.V {
		if !IsInputVertex(v) || v == r {
			continue
		}
		if points.MustGet(v) != pr {
			continue
		}
		if c.duplicates == PolicyError {
			return newError(DuplicatePoint, "Context.AddPointBowyer", "point %d coincides with existing vertex %d", r, v)
		}
		return nil
	}

	cavity := []Triangle{v0}
	visited := map[Triangle]bool{canonical(v0): true}
	queue := []Triangle{v0}
	var boundary []cavityEdge

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		x, y, z := t.Indices()
		edges := [3][2]VertexID{{x, y}, {y, z}, {z, x}}
		for _, e := range edges {
			a, b := e[0], e[1]
			w := c.A.GetEdge(b, a)
			if w == DefaultAdjacentValue {
				panic(fmt.Sprintf("Context.AddPointBowyer: edge (%d,%d) has no reverse neighbour", a, b))
			}
			nt := NewTriangle(b, a, w)

			var inCavity bool
			if nt.IsGhost() {
				u, v := ghostUV(nt)
				inCavity = c.predicates.Orient(c.Coord(points, u), c.Coord(points, v), pr) > 0
			} else {
				inCavity = c.predicates.InCircle(c.Coord(points, b), c.Coord(points, a), c.Coord(points, w), pr) == 1
			}

			if inCavity {
				key := canonical(nt)
				if !visited[key] {
					visited[key] = true
					cavity = append(cavity, nt)
					queue = append(queue, nt)
				}
				continue
			}
			boundary = append(boundary, cavityEdge{a, b})
		}
	}

	for _, t := range cavity {
		c.DeleteTriangle(t.V[0], t.V[1], t.V[2])
	}
	// The fan is added in full before any ghost check: while it is only
	// partly built, the edges (v, r) and (r, u) of a new triangle have no
	// reverse entry yet and would be taken for hull edges.
	for _, e := range boundary {
		c.AddTriangle(e.u, e.v, r, false)
	}
	for _, e := range boundary {
		c.addGhostForBoundaryOf(NewTriangle(e.u, e.v, r))
	}
	return nil
}
