// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "maps"

// Edge is a directed edge (i, j) of a triangle.
type Edge struct {
	I, J VertexID
}

// AdjacencyMap is A: (i, j) -> k, such that (i, j, k) is a stored CCW
// triangle. A missing entry reads back as DefaultAdjacentValue; GetEdge
// never inserts a key on lookup (map access alone would zero-value it,
// which is why reads go through GetEdge rather than direct indexing).
type AdjacencyMap struct {
	m map[Edge]VertexID
}

func newAdjacencyMap() *AdjacencyMap {
	return &AdjacencyMap{m: make(map[Edge]VertexID)}
}

// GetEdge returns A(i, j), or DefaultAdjacentValue if the edge is not
// currently part of any stored triangle.
func (a *AdjacencyMap) GetEdge(i, j VertexID) VertexID {
	if k, ok := a.m[Edge{i, j}]; ok {
		return k
	}
	return DefaultAdjacentValue
}

// EdgeExists reports whether A(i, j) names a real vertex.
func (a *AdjacencyMap) EdgeExists(i, j VertexID) bool {
	return a.GetEdge(i, j) != DefaultAdjacentValue
}

func (a *AdjacencyMap) set(i, j, k VertexID) {
	a.m[Edge{i, j}] = k
}

// clear marks (i, j) as vacated. It does not drop the map key outright:
// per spec.md's dense-map design note, a deleted edge is written back as
// DefaultAdjacentValue and only actually removed by a later clearEmptyKeys
// sweep, so that a run of deletes followed by inserts that reuse the same
// key pays one map write instead of a delete-then-insert pair.
func (a *AdjacencyMap) clear(i, j VertexID) {
	a.m[Edge{i, j}] = DefaultAdjacentValue
}

// clearEmptyKeys removes entries whose value is DefaultAdjacentValue,
// which DeleteTriangle leaves behind through clear; GetEdge itself never
// inserts one. Idempotent.
func (a *AdjacencyMap) clearEmptyKeys() {
	for e, k := range a.m {
		if k == DefaultAdjacentValue {
			delete(a.m, e)
		}
	}
}

// Len returns the number of directed edges currently mapped, including any
// stray DefaultAdjacentValue entries not yet swept by clearEmptyKeys.
func (a *AdjacencyMap) Len() int {
	return len(a.m)
}

// Equal reports whether a and b hold exactly the same directed edges.
// Callers comparing two triangulations should ClearEmptyKeys both sides
// first, per spec's compare_unconstrained_triangulations.
func (a *AdjacencyMap) Equal(b *AdjacencyMap) bool {
	return maps.Equal(a.m, b.m)
}

// ReverseAdjacency is V: k -> {(i, j) : (i, j, k) is a stored triangle}.
type ReverseAdjacency struct {
	m map[VertexID]map[Edge]struct{}
}

func newReverseAdjacency() *ReverseAdjacency {
	return &ReverseAdjacency{m: make(map[VertexID]map[Edge]struct{})}
}

// At returns the set of (i, j) pairs recorded against vertex k. The
// returned map must not be mutated by the caller.
func (v *ReverseAdjacency) At(k VertexID) map[Edge]struct{} {
	return v.m[k]
}

func (v *ReverseAdjacency) add(k VertexID, e Edge) {
	set, ok := v.m[k]
	if !ok {
		set = make(map[Edge]struct{})
		v.m[k] = set
	}
	set[e] = struct{}{}
}

func (v *ReverseAdjacency) remove(k VertexID, e Edge) {
	set, ok := v.m[k]
	if !ok {
		return
	}
	delete(set, e)
	if len(set) == 0 {
		delete(v.m, k)
	}
}

// clearEmptyKeys removes vertices whose pair set is empty. Idempotent.
func (v *ReverseAdjacency) clearEmptyKeys() {
	for k, set := range v.m {
		if len(set) == 0 {
			delete(v.m, k)
		}
	}
}

// Has reports whether (i, j) is recorded against vertex k.
func (v *ReverseAdjacency) Has(k VertexID, i, j VertexID) bool {
	set, ok := v.m[k]
	if !ok {
		return false
	}
	_, ok = set[Edge{i, j}]
	return ok
}

// Equal reports whether v and o record exactly the same pairs against
// every vertex.
func (v *ReverseAdjacency) Equal(o *ReverseAdjacency) bool {
	if len(v.m) != len(o.m) {
		return false
	}
	for k, set := range v.m {
		os, ok := o.m[k]
		if !ok || !maps.Equal(set, os) {
			return false
		}
	}
	return true
}

// checkAdjacentIsAdjacent2VertexInverse verifies that A and V are mutual
// inverses on every non-empty entry: for every (i,j) with A(i,j)=k != Default,
// (i,j) must be in V[k], and conversely every (i,j) in V[k] must satisfy
// A(i,j)=k.
func checkAdjacentIsAdjacent2VertexInverse(a *AdjacencyMap, v *ReverseAdjacency) bool {
	for e, k := range a.m {
		if k == DefaultAdjacentValue {
			continue
		}
		if !v.Has(k, e.I, e.J) {
			return false
		}
	}
	for k, set := range v.m {
		for e := range set {
			if a.GetEdge(e.I, e.J) != k {
				return false
			}
		}
	}
	return true
}

// AddTriangle inserts (i, j, k) into ctx's triangle set, writes its three
// adjacency entries, its three reverse-adjacency entries, the three
// 1-skeleton edges into the vertex graph, and, when updateGhostEdges is
// set, materialises a ghost triangle across any of its edges that now
// sits on the hull.
func (c *Context) AddTriangle(i, j, k VertexID, updateGhostEdges bool) {
	c.addTriangleRaw(i, j, k)
	if updateGhostEdges {
		c.addGhostForBoundaryOf(NewTriangle(i, j, k))
	}
}

// DeleteTriangle removes (i, j, k), and both of its cyclic shifts, from
// ctx's combinatorial structures. Vertex graph edges are only dropped
// once no remaining triangle (solid or ghost) supports them.
func (c *Context) DeleteTriangle(i, j, k VertexID) {
	t := NewTriangle(i, j, k)
	c.T.Remove(t)

	c.A.clear(i, j)
	c.A.clear(j, k)
	c.A.clear(k, i)

	c.V.remove(k, Edge{i, j})
	c.V.remove(i, Edge{j, k})
	c.V.remove(j, Edge{k, i})

	// Each triangle holds one reference on each of its three G edges, so
	// dropping this triangle's reference always is what lets an edge's
	// count reach zero exactly when its last supporting triangle goes.
	for _, pair := range [][2]VertexID{{i, j}, {j, k}, {k, i}} {
		c.G.RemoveEdge(pair[0], pair[1])
	}
}

// edgeSupported reports whether some stored triangle still contains the
// undirected edge {u, v}, in either direction.
func (c *Context) edgeSupported(u, v VertexID) bool {
	return c.A.EdgeExists(u, v) || c.A.EdgeExists(v, u)
}

// IsBoundaryEdge reports whether (i, j) sits on the current hull: either
// A(i,j) names the ghost vertex, or (i,j) is recorded against it in V.
func (c *Context) IsBoundaryEdge(i, j VertexID) bool {
	return c.A.GetEdge(i, j) == BoundaryIndex || c.V.Has(BoundaryIndex, i, j)
}

// ClearEmptyKeys sweeps A (and, transitively, stray zero-degree vertices
// in G) and V of entries left behind by deletions.
// Idempotent: a second call is a no-op.
func (c *Context) ClearEmptyKeys() {
	c.A.clearEmptyKeys()
	c.V.clearEmptyKeys()
	c.G.ClearEmptyPoints()
}
