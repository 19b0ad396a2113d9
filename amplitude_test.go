package qkernel

import "testing"

func TestCArithmeticBothPrecisions(t *testing.T) {
	a64, b64 := complex64(1+2i), complex64(3-1i)
	if got := cAdd(a64, b64); got != a64+b64 {
		t.Fatalf("cAdd[complex64] = %v, want %v", got, a64+b64)
	}
	if got := cMul(a64, b64); got != a64*b64 {
		t.Fatalf("cMul[complex64] = %v, want %v", got, a64*b64)
	}

	a128, b128 := complex128(1+2i), complex128(3-1i)
	if got := cAdd(a128, b128); got != a128+b128 {
		t.Fatalf("cAdd[complex128] = %v, want %v", got, a128+b128)
	}
	if got := cMul(a128, b128); got != a128*b128 {
		t.Fatalf("cMul[complex128] = %v, want %v", got, a128*b128)
	}
}

func TestCFromAndCIsComplex64(t *testing.T) {
	if !cIsComplex64[complex64]() {
		t.Fatalf("cIsComplex64[complex64]() = false, want true")
	}
	if cIsComplex64[complex128]() {
		t.Fatalf("cIsComplex64[complex128]() = true, want false")
	}
	if got := cFrom[complex128](1, 2); got != complex(1, 2) {
		t.Fatalf("cFrom[complex128](1,2) = %v, want 1+2i", got)
	}
	if got := cFrom[complex64](1, 2); got != complex64(complex(1, 2)) {
		t.Fatalf("cFrom[complex64](1,2) = %v, want 1+2i", got)
	}
}

func TestCConjAndCScale(t *testing.T) {
	a := complex128(2 + 3i)
	if got := cConj(a); got != complex(2, -3) {
		t.Fatalf("cConj = %v, want 2-3i", got)
	}
	if got := cScale(a, 2.0); got != complex(4, 6) {
		t.Fatalf("cScale = %v, want 4+6i", got)
	}
}
