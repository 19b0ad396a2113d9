package qkernel

// newToffoli builds Toffoli: swap amp[6], amp[7] in the 8-element block.
func newToffoli[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(Toffoli, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: Toffoli, Arity: 3,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i6, i7 := e+internal[6], e+internal[7]
				state[i6], state[i7] = state[i7], state[i6]
			}
		},
	}, nil
}

// newCSWAP builds CSWAP: swap amp[5], amp[6].
func newCSWAP[C Amplitude](params []float64) (*Gate[C], error) {
	if err := checkParamCount(CSWAP, params, 0); err != nil {
		return nil, err
	}
	return &Gate[C]{
		Label: CSWAP, Arity: 3,
		kernel: func(state []C, internal, external []uint64, inverse bool) {
			for _, e := range external {
				i5, i6 := e+internal[5], e+internal[6]
				state[i5], state[i6] = state[i6], state[i5]
			}
		},
	}, nil
}
