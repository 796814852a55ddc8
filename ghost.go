// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// IsGhostTriangle reports whether t has BoundaryIndex as one of its
// vertices.
func IsGhostTriangle(t Triangle) bool {
	return t.IsGhost()
}

// addGhostForBoundaryOf is the incremental half of the ghost-triangle
// discipline: called right after a solid triangle t is added, it checks
// each of t's three directed edges and, for any whose reverse direction
// is still genuinely unclaimed (DefaultAdjacentValue, not a real
// neighbour and not already a ghost), materialises the ghost triangle
// that edge now exposes. Equivalent to, but far cheaper than, calling
// AddGhostTriangles after every insertion.
func (c *Context) addGhostForBoundaryOf(t Triangle) {
	edges := [3][2]VertexID{{t.V[0], t.V[1]}, {t.V[1], t.V[2]}, {t.V[2], t.V[0]}}
	for _, e := range edges {
		a, b := e[0], e[1]
		if c.A.GetEdge(b, a) == DefaultAdjacentValue {
			c.addTriangleRaw(b, a, BoundaryIndex)
		}
	}
}

// addTriangleRaw inserts a triangle without ever recursing into ghost
// maintenance; used both for ghost triangles themselves and by
// AddTriangle(..., false).
func (c *Context) addTriangleRaw(i, j, k VertexID) {
	t := NewTriangle(i, j, k)
	c.T.Add(t)
	c.A.set(i, j, k)
	c.A.set(j, k, i)
	c.A.set(k, i, j)
	c.V.add(k, Edge{i, j})
	c.V.add(i, Edge{j, k})
	c.V.add(j, Edge{k, i})
	c.G.AddEdge(i, j)
	c.G.AddEdge(j, k)
	c.G.AddEdge(k, i)
	c.lastTriangle = t
	c.hasTriangle = true
}

// ghostUV rotates a ghost triangle so BoundaryIndex is last, returning the
// remaining two vertices in their CCW order. It panics if t is not
// actually a ghost triangle.
func ghostUV(t Triangle) (u, v VertexID) {
	x, y, z := t.Indices()
	switch BoundaryIndex {
	case x:
		return y, z
	case y:
		return z, x
	case z:
		return x, y
	}
	panic("ghostUV: triangle has no BoundaryIndex vertex")
}

// AddGhostTriangles materialises a ghost triangle (u, v, BoundaryIndex)
// for every hull edge of ctx's current solid triangulation that does not
// already have one. A full sweep, as opposed to the incremental
// maintenance AddTriangle performs during insertion; useful after
// RemoveGhostTriangles, or over a triangulation built by an engine that
// does not maintain ghosts as it goes.
func (c *Context) AddGhostTriangles() {
	solids := make([]Triangle, 0, c.T.Len())
	c.T.Each(func(t Triangle) {
		if !t.IsGhost() {
			solids = append(solids, t)
		}
	})
	for _, t := range solids {
		c.addGhostForBoundaryOf(t)
	}
}

// RemoveGhostTriangles deletes every ghost triangle from ctx, leaving
// only the solid triangulation. AddGhostTriangles then RemoveGhostTriangles
// restores the prior solid state exactly, since neither touches a solid
// triangle's own A/V/G entries.
func (c *Context) RemoveGhostTriangles() {
	ghosts := make([]Triangle, 0)
	c.T.Each(func(t Triangle) {
		if t.IsGhost() {
			ghosts = append(ghosts, t)
		}
	})
	for _, t := range ghosts {
		c.DeleteTriangle(t.V[0], t.V[1], t.V[2])
	}
}

// ComputeRepresentativePoints returns one centroid per connected
// component of the current hull boundary (ordinarily a single component,
// since this module does not support holes). The result is an opaque
// "interior witness" per spec §4.3. Location and insertion do not call
// it: they orient ghost edges through ghostUV.
func ComputeRepresentativePoints(c *Context, points *PointSet) []Point {
	boundary := c.V.At(BoundaryIndex)
	if len(boundary) == 0 {
		return nil
	}
	hullVerts := make(map[VertexID]struct{})
	for e := range boundary {
		hullVerts[e.I] = struct{}{}
		hullVerts[e.J] = struct{}{}
	}

	visited := make(map[VertexID]bool, len(hullVerts))
	var components [][]VertexID
	for v := range hullVerts {
		if visited[v] {
			continue
		}
		var comp []VertexID
		queue := []VertexID{v}
		visited[v] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, n := range c.G.Neighbors(cur) {
				if _, onHull := hullVerts[n]; onHull && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, comp)
	}

	reps := make([]Point, len(components))
	for i, comp := range components {
		var sumX, sumY float64
		for _, v := range comp {
			p := c.Coord(points, v)
			sumX += p.X
			sumY += p.Y
		}
		n := float64(len(comp))
		reps[i] = Point{X: sumX / n, Y: sumY / n}
	}
	return reps
}
