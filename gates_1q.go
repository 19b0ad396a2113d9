package qkernel

import "math"

func checkParamCount(label GateLabel, params []float64, want int) error {
	if len(params) != want {
		return fail(string(label), ErrBadParameterCount)
	}
	return nil
}

// newPauliX builds X: swap amp[0], amp[1].
func newPauliX[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(PauliX, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: PauliX, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i0, i1 := e+internal[0], e+internal[1]
				state[i0], state[i1] = state[i1], state[i0]
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliXKernel[C]},
	}, nil
}

func pauliXKernel[C Amplitude](state []C, internal, external []uint64) {
	for _, e := range external {
		i0, i1 := e+internal[0], e+internal[1]
		state[i0], state[i1] = state[i1], state[i0]
	}
}

// newPauliY builds Y: a0 <- -i*a1, a1 <- i*a0.
func newPauliY[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(PauliY, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: PauliY, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			pauliYKernel(state, internal, external)
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliYKernel[C]},
	}, nil
}

func pauliYKernel[C Amplitude](state []C, internal, external []uint64) {
	iUnit := cFrom[C](0, 1)
	negIUnit := cFrom[C](0, -1)
	for _, e := range external {
		i0, i1 := e+internal[0], e+internal[1]
		v0 := state[i0]
		state[i0] = cMul(negIUnit, state[i1])
		state[i1] = cMul(iUnit, v0)
	}
}

// newPauliZ builds Z: a1 <- -a1.
func newPauliZ[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(PauliZ, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: PauliZ, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			pauliZKernel(state, internal, external)
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliZKernel[C]},
	}, nil
}

func pauliZKernel[C Amplitude](state []C, internal, external []uint64) {
	for _, e := range external {
		i1 := e + internal[1]
		state[i1] = cNeg(state[i1])
	}
}

// newHadamard builds H: (a0,a1) <- sqrt2Inv*(a0+a1, a0-a1).
func newHadamard[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(Hadamard, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: Hadamard, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i0, i1 := e+internal[0], e+internal[1]
				v0, v1 := state[i0], state[i1]
				state[i0] = cScale(cAdd(v0, v1), sqrt2Inv)
				state[i1] = cScale(cSub(v0, v1), sqrt2Inv)
			}
		},
	}, nil
}

// newSGate builds S: a1 <- i*a1 (dagger: a1 <- -i*a1).
func newSGate[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(SGate, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: SGate, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			phase := cFrom[C](0, 1)
			if inverse {
				phase = cFrom[C](0, -1)
			}
			for _, e := range external {
				i1 := e + internal[1]
				state[i1] = cMul(phase, state[i1])
			}
		},
	}, nil
}

// newTGate builds T: a1 <- e^{i*pi/4}*a1.
func newTGate[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(TGate, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: TGate, Arity: 1,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			angle := math.Pi / 4
			if inverse {
				angle = -angle
			}
			shift := cFrom[C](math.Cos(angle), math.Sin(angle))
			for _, e := range external {
				i1 := e + internal[1]
				state[i1] = cMul(shift, state[i1])
			}
		},
	}, nil
}

// newRX builds RX(theta) = [[c,-i*s],[-i*s,c]], c=cos(theta/2), s=sin(theta/2).
func newRX[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(RX, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: RX, Arity: 1, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			c, s := math.Cos(t/2), math.Sin(t/2)
			cc, negIS := cFrom[C](c, 0), cFrom[C](0, -s)
			for _, e := range external {
				i0, i1 := e+internal[0], e+internal[1]
				v0, v1 := state[i0], state[i1]
				state[i0] = cAdd(cMul(cc, v0), cMul(negIS, v1))
				state[i1] = cAdd(cMul(negIS, v0), cMul(cc, v1))
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliXKernel[C]},
	}, nil
}

// newRY builds RY(theta) = [[c,-s],[s,c]].
func newRY[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(RY, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: RY, Arity: 1, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			c, s := math.Cos(t/2), math.Sin(t/2)
			cc, cs, negCs := cFrom[C](c, 0), cFrom[C](s, 0), cFrom[C](-s, 0)
			for _, e := range external {
				i0, i1 := e+internal[0], e+internal[1]
				v0, v1 := state[i0], state[i1]
				state[i0] = cAdd(cMul(cc, v0), cMul(negCs, v1))
				state[i1] = cAdd(cMul(cs, v0), cMul(cc, v1))
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliYKernel[C]},
	}, nil
}

// newRZ builds RZ(theta) = diag(e^{-i*theta/2}, e^{i*theta/2}).
func newRZ[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(RZ, params, 1); err != nil {
		return nil, err
	}
	theta := params[0]
	return &Gate[C]{
		Label: RZ, Arity: 1, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			t := theta
			if inverse {
				t = -t
			}
			p0 := cFrom[C](math.Cos(-t/2), math.Sin(-t/2))
			p1 := cFrom[C](math.Cos(t/2), math.Sin(t/2))
			for _, e := range external {
				i0, i1 := e+internal[0], e+internal[1]
				state[i0] = cMul(p0, state[i0])
				state[i1] = cMul(p1, state[i1])
			}
		},
		gen: &generatorInfo[C]{scale: 0.5, apply: pauliZKernel[C]},
	}, nil
}

// newPhaseShift builds PhaseShift(phi) = diag(1, e^{i*phi}).
func newPhaseShift[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(PhaseShift, params, 1); err != nil {
		return nil, err
	}
	phi := params[0]
	return &Gate[C]{
		Label: PhaseShift, Arity: 1, Params: params,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			p := phi
			if inverse {
				p = -p
			}
			shift := cFrom[C](math.Cos(p), math.Sin(p))
			for _, e := range external {
				i1 := e + internal[1]
				state[i1] = cMul(shift, state[i1])
			}
		},
		// Generator is (I-Z)/2 with scale -1, since dU/dphi = +i*G*U; applying
		// (I-Z)/2 means a0<-0, a1<-a1.
		gen: &generatorInfo[C]{scale: -1, apply: func(state []C, internal, external []uint64) {
			var zero C
			for _, e := range external {
				i0 := e + internal[0]
				state[i0] = zero
			}
		}},
	}, nil
}

// newRot builds Rot(phi,theta,omega) = RZ(omega)*RY(theta)*RZ(phi) as an
// explicit 2x2. Rot has three parameters, so it exposes no generator; the
// adjoint engine rejects it as non-differentiable per its parameter-count check.
func newRot[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(Rot, params, 3); err != nil {
		return nil, err
	}
	phi, theta, omega := params[0], params[1], params[2]
	return &Gate[C]{
		Label: Rot, Arity: 1, Params: params,
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
				i0, i1 := e+internal[0], e+internal[1]
				v0, v1 := state[i0], state[i1]
				state[i0] = cAdd(cMul(r1, v0), cMul(r2, v1))
				state[i1] = cAdd(cMul(r3, v0), cMul(r4, v1))
			}
		},
	}, nil
}
