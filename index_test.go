package qkernel

import (
	"testing"
)

func TestIndicesAfterExclusionAscending(t *testing.T) {
	got := IndicesAfterExclusion([]int{1, 3}, 5)
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGenerateBitPatternsLength(t *testing.T) {
	n := 4
	for k := 1; k <= n; k++ {
		wires := make([]int, k)
		for i := range wires {
			wires[i] = i
		}
		got := GenerateBitPatterns(wires, n)
		if len(got) != 1<<k {
			t.Fatalf("len(GenerateBitPatterns(%v, %d)) = %d, want %d", wires, n, len(got), 1<<k)
		}
	}
}

func TestGenerateBitPatternsNoDuplicates(t *testing.T) {
	n := 4
	wires := []int{0, 2, 3}
	got := GenerateBitPatterns(wires, n)
	seen := make(map[uint64]bool)
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate offset %d in %v", v, got)
		}
		seen[v] = true
	}
}

// TestIndexSetsPartitionFull exercises invariant 1: internal and external
// offsets, added pairwise, cover every index in [0, 2^n) exactly once.
func TestIndexSetsPartitionFull(t *testing.T) {
	n := 4
	wireSets := [][]int{{0}, {1, 3}, {0, 1, 2}, {2}, {0, 1, 2, 3}, {}}
	for _, wires := range wireSets {
		internal := GenerateBitPatterns(wires, n)
		extWires := IndicesAfterExclusion(wires, n)
		external := GenerateBitPatterns(extWires, n)

		if len(internal)*len(external) != 1<<n {
			t.Fatalf("wires=%v: |internal|*|external| = %d, want %d", wires, len(internal)*len(external), 1<<n)
		}

		seen := make([]bool, 1<<n)
		for _, e := range external {
			for _, i := range internal {
				idx := e + i
				if idx >= uint64(1<<n) {
					t.Fatalf("wires=%v: index %d out of range", wires, idx)
				}
				if seen[idx] {
					t.Fatalf("wires=%v: index %d covered twice", wires, idx)
				}
				seen[idx] = true
			}
		}
		for idx, ok := range seen {
			if !ok {
				t.Fatalf("wires=%v: index %d never covered", wires, idx)
			}
		}
	}
}

func TestGenerateBitPatternsDeterministic(t *testing.T) {
	n := 5
	wires := []int{0, 2, 4}
	a := GenerateBitPatterns(wires, n)
	b := GenerateBitPatterns(wires, n)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGenerateBitPatternsKnownSequence(t *testing.T) {
	// n=3, wires=[0,1]: internal offsets over wires 0 (msb-ish, value 4)
	// and 1 (value 2), built by iterating last-to-first: start {0}; wire 1
	// (v=2) -> {0,2}; wire 0 (v=4) -> {0,2,4,6}.
	got := GenerateBitPatterns([]int{0, 1}, 3)
	want := []uint64{0, 2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got = %v, want %v", got, want)
		}
	}
}
