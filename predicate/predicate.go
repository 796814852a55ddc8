// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicate supplies the two geometric predicates the
// triangulation core treats as black boxes: orientation and in-circle.
// The core never assumes floating-point exactness from either; see
// Interface for the tie-break contract callers must honour.
package predicate

import "github.com/golang/geo/r2"

// Interface is the predicate contract the triangulation core consumes.
// Implementations must be consistent: symmetric under cyclic rotation of
// arguments, antisymmetric under a two-argument swap.
type Interface interface {
	// Orient returns the sign of the signed area of (p, q, r): +1 for
	// counter-clockwise, -1 for clockwise, 0 for collinear.
	Orient(p, q, r r2.Point) int
	// InCircle returns +1 when p lies strictly inside the circumcircle
	// of the counter-clockwise triangle (a, b, c), -1 when strictly
	// outside, 0 on the circle. Ties (0) are treated by callers as "not
	// strictly inside".
	InCircle(a, b, c, p r2.Point) int
}

// Default is the zero-value Interface implementation: plain
// double-precision arithmetic, no adaptive or exact-arithmetic fallback.
// See DESIGN.md for why no third-party predicate library from this
// corpus covers this concern.
type Default struct{}

// Orient computes the sign of the 2x2 signed-area determinant
// (q-p) x (r-p).
func (Default) Orient(p, q, r r2.Point) int {
	det := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	return sign(det)
}

// InCircle computes the sign of the classic 4x4 determinant obtained by
// lifting a, b, c, p onto the paraboloid z = x^2 + y^2. The triangle
// (a, b, c) must already be counter-clockwise; InCircle does not check
// this.
func (Default) InCircle(a, b, c, p r2.Point) int {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	det := ax*(by*cSq-bSq*cy) -
		ay*(bx*cSq-bSq*cx) +
		aSq*(bx*cy-by*cx)
	return sign(det)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
