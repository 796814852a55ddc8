// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// CompareUnconstrainedTriangulations reports whether a and b hold the
// same triangulation: the same multiset of triangles modulo cyclic
// rotation, and pointwise-equal A, V, and G, each after ClearEmptyKeys
// has swept both sides (spec §4.2).
func CompareUnconstrainedTriangulations(a, b *Context) bool {
	a.ClearEmptyKeys()
	b.ClearEmptyKeys()
	return CompareTriangleSets(a.T.Slice(), b.T.Slice()) &&
		a.A.Equal(b.A) &&
		a.V.Equal(b.V) &&
		a.G.Equal(b.G)
}

// CompareDeBergToBowyerWatson reports whether the de Berg reference
// oracle and the Bowyer-Watson engine produced the same triangulation
// for what must have been the same input points (spec §4.5.2): the core
// makes no attempt to verify that precondition itself.
func CompareDeBergToBowyerWatson(berg, bowyer *Context) bool {
	return CompareUnconstrainedTriangulations(berg, bowyer)
}
