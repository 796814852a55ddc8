// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"maps"
	"sync"
)

// VertexGraph is the undirected connectivity graph G over point indices:
// nodes are vertices currently belonging to at least one triangle, edges
// are the 1-skeletons of those triangles. Modeled on this corpus's own
// graph library (katalvlaran/lvlath's adjacency-list Graph): an
// adjacency list of neighbour sets guarded by a mutex. Context is
// documented single-threaded (spec §5); the lock is carried over from
// the graph-library idiom as ownership discipline, not a concurrency
// contract for the rest of the package.
type VertexGraph struct {
	mu   sync.RWMutex
	adj  map[VertexID]map[VertexID]int // neighbour -> supporting-triangle count
}

// NewVertexGraph returns an empty VertexGraph.
func NewVertexGraph() *VertexGraph {
	return &VertexGraph{adj: make(map[VertexID]map[VertexID]int)}
}

// AddEdge adds the undirected edge {u, v}, incrementing its reference
// count if it is already present.
func (g *VertexGraph) AddEdge(u, v VertexID) {
	if u == v {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(u)
	g.ensure(v)
	g.adj[u][v]++
	g.adj[v][u]++
}

// RemoveEdge drops one reference to the undirected edge {u, v}; the edge
// itself is only removed once its reference count reaches zero.
func (g *VertexGraph) RemoveEdge(u, v VertexID) {
	if u == v {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if nb, ok := g.adj[u]; ok {
		if nb[v] > 1 {
			nb[v]--
		} else {
			delete(nb, v)
		}
	}
	if nb, ok := g.adj[v]; ok {
		if nb[u] > 1 {
			nb[u]--
		} else {
			delete(nb, u)
		}
	}
}

func (g *VertexGraph) ensure(v VertexID) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[VertexID]int)
	}
}

// HasVertex reports whether v currently has any incident edge.
func (g *VertexGraph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj[v]) > 0
}

// Neighbors returns the vertices adjacent to v. Order is unspecified.
func (g *VertexGraph) Neighbors(v VertexID) []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb := g.adj[v]
	out := make([]VertexID, 0, len(nb))
	for n := range nb {
		out = append(out, n)
	}
	return out
}

// Vertices returns every vertex with at least one incident edge. Order
// is unspecified.
func (g *VertexGraph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexID, 0, len(g.adj))
	for v, nb := range g.adj {
		if len(nb) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// ClearEmptyPoints removes vertices with no remaining incident edges.
// Idempotent.
func (g *VertexGraph) ClearEmptyPoints() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for v, nb := range g.adj {
		if len(nb) == 0 {
			delete(g.adj, v)
		}
	}
}

// EdgeCount returns the number of distinct undirected edges.
func (g *VertexGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, nb := range g.adj {
		n += len(nb)
	}
	return n / 2
}

// Equal reports whether g and o have identical vertex sets and identical
// per-vertex reference counts.
func (g *VertexGraph) Equal(o *VertexGraph) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()
	if len(g.adj) != len(o.adj) {
		return false
	}
	for v, nb := range g.adj {
		onb, ok := o.adj[v]
		if !ok || !maps.Equal(nb, onb) {
			return false
		}
	}
	return true
}
