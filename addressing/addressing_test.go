package addressing

import "testing"

func TestIsBlockRoot(t *testing.T) {
	roots := []uint64{1, 9, 17, 73}
	for _, n := range roots {
		if !IsBlockRoot[Block8](n) {
			t.Errorf("IsBlockRoot[Block8](%d) = false, want true", n)
		}
	}
	nonRoots := []uint64{2, 3, 4, 7, 31}
	for _, n := range nonRoots {
		if IsBlockRoot[Block8](n) {
			t.Errorf("IsBlockRoot[Block8](%d) = true, want false", n)
		}
	}
}

func TestIsBlockLeaf(t *testing.T) {
	leaves := []uint64{4, 5, 6, 7, 28, 29, 30, 255}
	for _, n := range leaves {
		if !IsBlockLeaf[Block8](n) {
			t.Errorf("IsBlockLeaf[Block8](%d) = false, want true", n)
		}
	}
	nonLeaves := []uint64{1, 2, 3, 257}
	for _, n := range nonLeaves {
		if IsBlockLeaf[Block8](n) {
			t.Errorf("IsBlockLeaf[Block8](%d) = true, want false", n)
		}
	}
}

func TestChild(t *testing.T) {
	cases := []struct{ n, want uint64 }{
		{1, 2}, {2, 4}, {3, 6}, {4, 9}, {31, 249},
	}
	for _, c := range cases {
		if got := Child[Block8](c.n); got != c.want {
			t.Errorf("Child[Block8](%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestParent(t *testing.T) {
	cases := []struct{ n, want uint64 }{
		{2, 1}, {3, 1}, {6, 3}, {7, 3}, {9, 4}, {17, 4}, {33, 5}, {29, 26}, {1097, 140},
	}
	for _, c := range cases {
		if got := Parent[Block8](c.n); got != c.want {
			t.Errorf("Parent[Block8](%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

// TestParentChildRoundTrip is property P5: parent(child(n)) == n for every
// node whose child lies within a generous range, for B = 8, 16 and 32.
func TestParentChildRoundTrip(t *testing.T) {
	check := func(t *testing.T, name string, parent func(uint64) uint64, child func(uint64) uint64, sibling func(uint64) uint64) {
		for n := uint64(1); n < 5000; n++ {
			if n&lowMaskFor(name) == 0 {
				continue // forbidden slot, not addressable
			}
			lc := child(n)
			if lc == 0 || lc > 200000 {
				continue
			}
			if got := parent(lc); got != n {
				t.Fatalf("%s: parent(child(%d)) = parent(%d) = %d, want %d", name, n, lc, got, n)
			}
			rc := lc + sibling(n)
			if got := parent(rc); got != n {
				t.Fatalf("%s: parent(right child of %d) = parent(%d) = %d, want %d", name, n, rc, got, n)
			}
		}
	}
	check(t, "Block8", Parent[Block8], Child[Block8], SiblingOffset[Block8])
	check(t, "Block16", Parent[Block16], Child[Block16], SiblingOffset[Block16])
	check(t, "Block32", Parent[Block32], Child[Block32], SiblingOffset[Block32])
}

func lowMaskFor(name string) uint64 {
	switch name {
	case "Block8":
		return 7
	case "Block16":
		return 15
	case "Block32":
		return 31
	}
	return 0
}

func TestRuntimeMatchesGeneric(t *testing.T) {
	r := NewRuntime(8)
	for n := uint64(1); n < 2000; n++ {
		if n&7 == 0 {
			continue
		}
		if got, want := r.IsBlockRoot(n), IsBlockRoot[Block8](n); got != want {
			t.Fatalf("Runtime.IsBlockRoot(%d) = %v, want %v", n, got, want)
		}
		if got, want := r.IsBlockLeaf(n), IsBlockLeaf[Block8](n); got != want {
			t.Fatalf("Runtime.IsBlockLeaf(%d) = %v, want %v", n, got, want)
		}
		if got, want := r.Child(n), Child[Block8](n); got != want {
			t.Fatalf("Runtime.Child(%d) = %d, want %d", n, got, want)
		}
		if n > 1 {
			if got, want := r.Parent(n), Parent[Block8](n); got != want {
				t.Fatalf("Runtime.Parent(%d) = %d, want %d", n, got, want)
			}
		}
	}
}

func TestNewRuntimeRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewRuntime(6) did not panic")
		}
	}()
	NewRuntime(6)
}
