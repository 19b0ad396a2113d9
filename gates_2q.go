package qkernel

import "math"

// newCNOT builds CNOT: swap amp[2], amp[3] in the 4-element internal block.
func newCNOT[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CNOT, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: CNOT, Arity: 2,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i2, i3 := e+internal[2], e+internal[3]
				state[i2], state[i3] = state[i3], state[i2]
			}
		},
	}, nil
}

// newSWAP builds SWAP: swap amp[1], amp[2].
func newSWAP[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(SWAP, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: SWAP, Arity: 2,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i1, i2 := e+internal[1], e+internal[2]
				state[i1], state[i2] = state[i2], state[i1]
			}
		},
	}, nil
}

// newCZ builds CZ: negate amp[3].
func newCZ[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CZ, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: CZ, Arity: 2,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i3 := e + internal[3]
				state[i3] = cNeg(state[i3])
			}
		},
	}, nil
}

// controlledRotationGenerator applies the 1-qubit generator gen on the
// control=1 subspace (internal indices 2,3) and zeroes the control=0
// subspace (indices 0,1), the "controlled generator projected onto the |1>
// control subspace" of the catalogue's design notes.
func controlledRotationGenerator[C Amplitude](gen func(state []C, internal, external []uint64)) func(state []C, internal, external []uint64) {
	return func(state []C, internal, external []uint64) {
		var zero C
		for _, e := range external {
			state[e+internal[0]] = zero
			state[e+internal[1]] = zero
		}
		sub := []uint64{internal[2], internal[3]}
		gen(state, sub, external)
	}
}

// newCRX builds CRX(theta): identity on amp[0..1], RX(theta) on amp[2..3].
func newCRX[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CRX, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: CRX, Arity: 2, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			c, s := math.Cos(t/2), math.Sin(t/2)
			cc, negIS := cFrom[C](c, 0), cFrom[C](0, -s)
			for _, e := range external {
				i2, i3 := e+internal[2], e+internal[3]
				v2, v3 := state[i2], state[i3]
				state[i2] = cAdd(cMul(cc, v2), cMul(negIS, v3))
				state[i3] = cAdd(cMul(negIS, v2), cMul(cc, v3))
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: controlledRotationGenerator[C](pauliXKernel[C])},
	}, nil
}

// newCRY builds CRY(theta): identity on amp[0..1], RY(theta) on amp[2..3].
func newCRY[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CRY, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: CRY, Arity: 2, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			c, s := math.Cos(t/2), math.Sin(t/2)
			cc, cs, negCs := cFrom[C](c, 0), cFrom[C](s, 0), cFrom[C](-s, 0)
			for _, e := range external {
				i2, i3 := e+internal[2], e+internal[3]
				v2, v3 := state[i2], state[i3]
				state[i2] = cAdd(cMul(cc, v2), cMul(negCs, v3))
				state[i3] = cAdd(cMul(cs, v2), cMul(cc, v3))
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: controlledRotationGenerator[C](pauliYKernel[C])},
	}, nil
}

// newCRZ builds CRZ(theta): identity on amp[0..1], RZ(theta) on amp[2..3].
func newCRZ[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CRZ, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: CRZ, Arity: 2, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			p0 := cFrom[C](math.Cos(-t/2), math.Sin(-t/2))
			p1 := cFrom[C](math.Cos(t/2), math.Sin(t/2))
			for _, e := range external {
				i2, i3 := e+internal[2], e+internal[3]
				state[i2] = cMul(p0, state[i2])
				state[i3] = cMul(p1, state[i3])
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: controlledRotationGenerator[C](pauliZKernel[C])},
	}, nil
}

// newCRot builds CRot(phi,theta,omega): identity on amp[0..1], the full
// Rot 2x2 on amp[2..3]. Like Rot, it carries three parameters and exposes
// no generator.
func newCRot[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CRot, params, 3); err != nil {
		return nil, err
	}
	phi, theta, omega := params[0], params[1], params[2]
	return &Gate[C]{
		Label: CRot, Arity: 2, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			p, th, om := phi, theta, omega
			if inverse {
				p, th, om = -omega, -theta, -phi
			}
			c, s := math.Cos(th/2), math.Sin(th/2)
			r1 := cFrom[C](c*math.Cos((p+om)/2), -c*math.Sin((p+om)/2))
			r2 := cFrom[C](-s*math.Cos((p-om)/2), -s*math.Sin((p-om)/2))
			r3 := cFrom[C](s*math.Cos((p-om)/2), -s*math.Sin((p-om)/2))
			r4 := cFrom[C](c*math.Cos((p+om)/2), c*math.Sin((p+om)/2))
			for _, e := range external {
				i2, i3 := e+internal[2], e+internal[3]
				v2, v3 := state[i2], state[i3]
				state[i2] = cAdd(cMul(r1, v2), cMul(r2, v3))
				state[i3] = cAdd(cMul(r3, v2), cMul(r4, v3))
			}
		},
	}, nil
}
