package qkernel

// IndicesAfterExclusion returns the wires in [0, n) that are not present in
// excluded, in ascending order.
func IndicesAfterExclusion(excluded []int, n int) []int {
	skip := make(map[int]bool, len(excluded))
	for _, w := range excluded {
		skip[w] = true
	}
	out := make([]int, 0, n-len(excluded))
	for w := 0; w < n; w++ {
		if !skip[w] {
			out = append(out, w)
		}
	}
	return out
}

// GenerateBitPatterns returns the 2^len(wires) offsets addressed by wires in
// an n-qubit register. It starts from {0} and, iterating wires from last to
// first, doubles the running set by adding 2^(n-1-w) to every element
// already present. Emission order is part of the contract: specialised gate
// kernels index into this sequence by fixed position.
func GenerateBitPatterns(wires []int, n int) []uint64 {
	offsets := []uint64{0}
	for i := len(wires) - 1; i >= 0; i-- {
		v := maxDecimalForQubit(wires[i], n)
		next := make([]uint64, len(offsets), len(offsets)*2)
		copy(next, offsets)
		for _, x := range offsets {
			next = append(next, x+v)
		}
		offsets = next
	}
	return offsets
}
