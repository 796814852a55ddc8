// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements incremental planar Delaunay triangulation.
//
// Two construction engines share one set of combinatorial structures: an
// adjacency map (A), a reverse adjacency map (V), a vertex connectivity
// graph (G) and a triangle set (T). Bowyer-Watson (TriangulateBowyer,
// Context.AddPointBowyer) rebuilds the cavity around each inserted point
// by walking adjacency; the de Berg randomised-incremental engine
// (TriangulateBerg, Context.AddPointBerg) additionally maintains a
// history DAG (package history) used both for point location and as a
// reference oracle that Bowyer-Watson output is checked against.
//
// Points outside the current convex hull are handled uniformly with
// points inside it via a ghost-triangle layer (ghost.go): every hull edge
// (u, v) has a virtual triangle (u, v, BoundaryIndex) so location and
// insertion never need a special case for "outside".
package delaunay
