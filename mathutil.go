package qkernel

import "math"

// sqrt2Inv is 1/sqrt(2), the Hadamard normalisation constant.
const sqrt2Inv = 0.70710678118654752440

// exp2 returns 2^k for a non-negative integer k.
func exp2(k int) uint64 {
	return uint64(1) << uint(k)
}

// maxDecimalForQubit returns the linear-index contribution of wire w in an
// n-qubit little-endian register: 2^(n-1-w).
func maxDecimalForQubit(w, n int) uint64 {
	return exp2(n - 1 - w)
}

// innerProduct computes sum_i conj(a[i])*b[i]. The adjoint engine's
// Im(sum) depends on this exact conjugation convention.
func innerProduct[C Amplitude](a, b []C) C {
	var sum C
	for i := range a {
		sum = cAdd(sum, cMul(cConj(a[i]), b[i]))
	}
	return sum
}

// stateNorm returns the L2 norm of a state vector.
func stateNorm[C Amplitude](a []C) float64 {
	var sum float64
	for _, v := range a {
		sum += cAbs2(v)
	}
	return math.Sqrt(sum)
}
