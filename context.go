// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"

	"github.com/vireo-labs/delaunay2d/history"
	"github.com/vireo-labs/delaunay2d/predicate"
)

// Context owns one triangulation's combinatorial structures: the
// triangle set T, the adjacency map A, the reverse adjacency map V, and
// the vertex graph G. H is non-nil only for a Context built by
// TriangulateBerg. A Context is exclusively owned by a single caller;
// concurrent mutation of the same Context is a programming error (spec
// §5) even though VertexGraph itself carries a mutex (see graph.go).
type Context struct {
	T *TriangleSet
	A *AdjacencyMap
	V *ReverseAdjacency
	G *VertexGraph
	H *history.Arena

	// leafNode maps every currently-live solid triangle built by the de
	// Berg engine to the history.Arena node that represents it. Left nil
	// by TriangulateBowyer, which never populates H.
	leafNode map[Triangle]history.NodeID

	predicates predicate.Interface
	duplicates DuplicatePolicy

	lastTriangle Triangle
	hasTriangle  bool

	// boundingCoords holds the fixed coordinates of the three bounding
	// triangle sentinels, set once at seeding time. Input points live in
	// the caller's PointSet; these three do not, since they are never
	// part of any caller-supplied point list.
	boundingCoords map[VertexID]Point
}

func newContext(cfg config) *Context {
	return &Context{
		T:              NewTriangleSet(),
		A:              newAdjacencyMap(),
		V:              newReverseAdjacency(),
		G:              NewVertexGraph(),
		predicates:     cfg.predicates,
		duplicates:     cfg.duplicates,
		boundingCoords: make(map[VertexID]Point, 3),
	}
}

// Coord resolves v to a coordinate, whether v names an input point or one
// of the three bounding-triangle sentinels. It panics if v is
// BoundaryIndex, DefaultAdjacentValue, or otherwise has no coordinate;
// callers must never ask the geometry for the location of the point at
// infinity.
func (c *Context) Coord(points *PointSet, v VertexID) Point {
	if IsInputVertex(v) {
		return points.MustGet(v)
	}
	if p, ok := c.boundingCoords[v]; ok {
		return p
	}
	panic(fmt.Sprintf("Context.Coord: vertex %d has no coordinate", v))
}

// ContextStats summarises the live state of a Context: how many solid
// triangles, undirected vertex-graph edges, and connected vertices it
// currently holds. Modeled on this corpus's Diagram.NumCells /
// Cell.NumVertices view accessors. Named distinctly from the point-set
// Stats returned by PointStats, which this type has no relation to.
type ContextStats struct {
	Triangles int
	Edges     int
	Vertices  int
}

// Stats returns a read-only summary of ctx's current size, counting only
// solid triangles (ghosts are excluded from Triangles, but their edges to
// BoundaryIndex are G edges and count toward Edges, and BoundaryIndex
// counts toward Vertices).
func (c *Context) Stats() ContextStats {
	solid := 0
	c.T.Each(func(t Triangle) {
		if !t.IsGhost() {
			solid++
		}
	})
	return ContextStats{
		Triangles: solid,
		Edges:     c.G.EdgeCount(),
		Vertices:  len(c.G.Vertices()),
	}
}

// Verify runs the debug/verification invariant checks named in spec §8:
// that A and V are mutual inverses on every non-empty entry. It never
// panics; a failure is reported as an InvariantViolation Error. Verify
// is not on any insertion hot path — call it after a batch of
// insertions if you want to assert consistency.
func (c *Context) Verify() error {
	if !checkAdjacentIsAdjacent2VertexInverse(c.A, c.V) {
		return newError(InvariantViolation, "Context.Verify", "A and V are not mutual inverses")
	}
	return nil
}
