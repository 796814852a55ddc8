// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package history

import "testing"

func TestArenaAddRootAndLocate(t *testing.T) {
	a := NewArena(8)
	root := [3]int{-3, -2, -4}
	rootID := a.AddRoot(root)

	if !a.IsLeaf(rootID) {
		t.Errorf("IsLeaf(root) = false before any Replace, want true")
	}

	contains := func(tri [3]int) bool { return true }
	if got := a.Locate(contains); got != rootID {
		t.Errorf("Locate on a single-node arena = %v, want root %v", got, rootID)
	}
}

func TestArenaReplaceAndDescend(t *testing.T) {
	a := NewArena(8)
	root := a.AddRoot([3]int{1, 2, 3})

	children := a.Replace([]NodeID{root}, [][3]int{
		{1, 2, 4},
		{2, 3, 4},
		{3, 1, 4},
	})
	if len(children) != 3 {
		t.Fatalf("Replace returned %d children, want 3", len(children))
	}
	if a.IsLeaf(root) {
		t.Errorf("IsLeaf(root) = true after Replace, want false")
	}
	for _, c := range children {
		if !a.IsLeaf(c) {
			t.Errorf("IsLeaf(%v) = false, want true (freshly created child)", c)
		}
	}

	target := a.Node(children[1]).Tri
	got := a.Locate(func(tri [3]int) bool { return tri == target })
	if got != children[1] {
		t.Errorf("Locate found %v, want %v", got, children[1])
	}
}

func TestArenaReplaceLinksAllParentsToAllChildren(t *testing.T) {
	a := NewArena(8)
	p1 := a.AddRoot([3]int{1, 2, 3})
	p2 := a.Replace([]NodeID{p1}, [][3]int{{4, 5, 6}})[0]
	// Simulate a flip: two parents destroyed, two children created.
	a2 := NewArena(8)
	r := a2.AddRoot([3]int{0, 0, 0})
	q := a2.Replace([]NodeID{r}, [][3]int{{1, 1, 1}})[0]
	children := a2.Replace([]NodeID{r, q}, [][3]int{{2, 2, 2}, {3, 3, 3}})

	for _, parent := range []NodeID{r, q} {
		for _, child := range children {
			found := false
			for _, rb := range a2.Node(parent).ReplacedBy {
				if rb == child {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("parent %v is not linked to child %v", parent, child)
			}
		}
	}
	_ = p2
}

func TestArenaAddRootPanicsWhenNonEmpty(t *testing.T) {
	a := NewArena(1)
	a.AddRoot([3]int{1, 2, 3})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("AddRoot should panic when a root already exists")
		}
	}()
	a.AddRoot([3]int{4, 5, 6})
}

func TestArenaLocatePanicsWhenNoChildContains(t *testing.T) {
	a := NewArena(4)
	root := a.AddRoot([3]int{1, 2, 3})
	a.Replace([]NodeID{root}, [][3]int{{1, 2, 4}})

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Locate should panic when no child satisfies contains")
		}
	}()
	a.Locate(func(tri [3]int) bool { return false })
}
