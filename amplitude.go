package qkernel

import "math/cmplx"

// Amplitude is the set of concrete precisions a state vector may be
// instantiated over. complex64 and complex128 share no core type, so
// ordinary arithmetic operators are not legal on a value of type parameter
// C; the helpers below box into any, switch on the concrete type, and box
// the result back.

type Amplitude interface {
	complex64 | complex128
}

func cAdd[C Amplitude](a, b C) C {
	switch v := any(a).(type) {
	case complex64:
		return any(v + any(b).(complex64)).(C)
	case complex128:
		return any(v + any(b).(complex128)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cSub[C Amplitude](a, b C) C {
	switch v := any(a).(type) {
	case complex64:
		return any(v - any(b).(complex64)).(C)
	case complex128:
		return any(v - any(b).(complex128)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cMul[C Amplitude](a, b C) C {
	switch v := any(a).(type) {
	case complex64:
		return any(v * any(b).(complex64)).(C)
	case complex128:
		return any(v * any(b).(complex128)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cNeg[C Amplitude](a C) C {
	switch v := any(a).(type) {
	case complex64:
		return any(-v).(C)
	case complex128:
		return any(-v).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

// cScale multiplies a by a real scalar s.
func cScale[C Amplitude](a C, s float64) C {
	switch v := any(a).(type) {
	case complex64:
		return any(complex64(complex(float64(real(v))*s, float64(imag(v))*s))).(C)
	case complex128:
		return any(v * complex(s, 0)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cConj[C Amplitude](a C) C {
	switch v := any(a).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(v)))).(C)
	case complex128:
		return any(cmplx.Conj(v)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cReal[C Amplitude](a C) float64 {
	switch v := any(a).(type) {
	case complex64:
		return float64(real(v))
	case complex128:
		return real(v)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cImag[C Amplitude](a C) float64 {
	switch v := any(a).(type) {
	case complex64:
		return float64(imag(v))
	case complex128:
		return imag(v)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

func cAbs2[C Amplitude](a C) float64 {
	re, im := cReal(a), cImag(a)
	return re*re + im*im
}

// cFrom builds a value of type C from cartesian real/imaginary parts.
func cFrom[C Amplitude](re, im float64) C {
	var zero C
	switch any(zero).(type) {
	case complex64:
		return any(complex64(complex(re, im))).(C)
	case complex128:
		return any(complex(re, im)).(C)
	default:
		panic("qkernel: unreachable amplitude type")
	}
}

// cIsComplex64 reports whether C is instantiated as complex64, the only
// other option in the Amplitude type set being complex128.
func cIsComplex64[C Amplitude]() bool {
	var zero C
	_, ok := any(zero).(complex64)
	return ok
}
