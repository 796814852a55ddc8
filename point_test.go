// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"testing"
)

func TestPointSetGetOutOfRange(t *testing.T) {
	pts := NewPointSet([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})

	if _, err := pts.Get(BoundaryIndex); err == nil {
		t.Errorf("Get(BoundaryIndex) = nil error, want OutOfRange")
	} else if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Get(BoundaryIndex) = %v, want errors.Is(err, ErrOutOfRange)", err)
	}

	if _, err := pts.Get(FirstPointIndex + 2); err == nil {
		t.Errorf("Get(FirstPointIndex+2) = nil error, want OutOfRange")
	} else if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Get(FirstPointIndex+2) = %v, want errors.Is(err, ErrOutOfRange)", err)
	}

	if p, err := pts.Get(FirstPointIndex + 1); err != nil {
		t.Errorf("Get(FirstPointIndex+1) = %v, want nil error", err)
	} else if p != (Point{X: 1, Y: 1}) {
		t.Errorf("Get(FirstPointIndex+1) = %v, want {1 1}", p)
	}
}

func TestPointSetMustGetPanicsOutOfRange(t *testing.T) {
	pts := NewPointSet([]Point{{X: 0, Y: 0}})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("MustGet did not panic on an out-of-range index")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("MustGet panicked with %v, want an OutOfRange error", r)
		}
	}()
	pts.MustGet(FirstPointIndex + 5)
}

func TestPointStatsEmptySet(t *testing.T) {
	st := PointStats(NewPointSet(nil))
	if st.M != MinWidthHeight {
		t.Errorf("PointStats(empty) M = %v, want MinWidthHeight (%v)", st.M, MinWidthHeight)
	}
}

func TestPointStatsBoundingBox(t *testing.T) {
	pts := NewPointSet([]Point{{X: -2, Y: 1}, {X: 4, Y: 1}, {X: 0, Y: -3}, {X: 0, Y: 5}})
	st := PointStats(pts)

	wantCenterX, wantCenterY := 1.0, 1.0 // (-2+4)/2, (-3+5)/2
	if st.CenterX != wantCenterX || st.CenterY != wantCenterY {
		t.Errorf("PointStats center = (%v, %v), want (%v, %v)", st.CenterX, st.CenterY, wantCenterX, wantCenterY)
	}
	// width = 4-(-2) = 6, height = 5-(-3) = 8, M = max(6, 8) = 8.
	if st.M != 8 {
		t.Errorf("PointStats M = %v, want 8", st.M)
	}
}

func TestPointStatsFloorsAtMinWidthHeight(t *testing.T) {
	pts := NewPointSet([]Point{{X: 0, Y: 0}, {X: 0.1, Y: 0.1}})
	st := PointStats(pts)
	if st.M != MinWidthHeight {
		t.Errorf("PointStats M = %v for a near-degenerate box, want the MinWidthHeight floor (%v)", st.M, MinWidthHeight)
	}
}

func TestBoundingTriangleCoordsEnclosesInput(t *testing.T) {
	pts := NewPointSet(scenarioOnePoints())
	st := PointStats(pts)
	lr, ll, upper := BoundingTriangleCoords(st)

	if ll.X >= lr.X {
		t.Fatalf("lower-left.X (%v) should be strictly less than lower-right.X (%v)", ll.X, lr.X)
	}
	if ll.Y != lr.Y {
		t.Errorf("lower-left and lower-right should share a Y coordinate, got %v and %v", ll.Y, lr.Y)
	}

	// (ll, lr, upper) is CCW, matching how the core seeds its bounding
	// triangle; an interior point orients positively against each edge.
	for i := 0; i < pts.Len(); i++ {
		p := pts.MustGet(FirstPointIndex + VertexID(i))
		if orient(ll, lr, p) < 0 || orient(lr, upper, p) < 0 || orient(upper, ll, p) < 0 {
			t.Errorf("input point %v is not enclosed by the bounding triangle (lr=%v ll=%v upper=%v)", p, lr, ll, upper)
		}
	}
}

// orient is the bare cross-product sign test, independent of the
// pluggable predicate.Interface used by the core, so this test does not
// need to construct a Context just to check triangle containment.
func orient(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
