package qkernel

// AdjointJacobian computes the reverse-mode parameter gradient of a set of
// observables' expectation values with respect to the trainable circuit
// parameters, writing into jacOut[j*len(trainableParams)+t].
//
// state must already be the circuit's final state (after operations have
// been applied); the forward sweep is never repeated here. trainableParams
// holds the flattened parameter indices that are differentiated; the
// backward walk decrements a running parameter counter starting at
// startingParamIndex once per parameterised operation, filling trainable
// slots from the last one backwards — unparameterised gates never consume
// a trainable slot.
func AdjointJacobian[C Amplitude](
	state []C, n int, jacOut []float64,
	observables []GateLabel, obsParams [][]float64, obsWires [][]int,
	operations []GateLabel, opParams [][]float64, opWires [][]int,
	trainableParams []int, startingParamIndex int,
) error {
	if n < 1 || uint64(len(state)) != exp2(n) {
		return fail("adjoint_jacobian", ErrDimensionMismatch)
	}
	numObs := len(observables)
	if len(obsParams) != numObs || len(obsWires) != numObs {
		return fail("adjoint_jacobian observables", ErrShapeMismatch)
	}
	numOps := len(operations)
	if len(opParams) != numOps || len(opWires) != numOps {
		return fail("adjoint_jacobian operations", ErrShapeMismatch)
	}
	numTrainable := len(trainableParams)
	if len(jacOut) != numObs*numTrainable {
		return fail("adjoint_jacobian jac_out", ErrShapeMismatch)
	}

	trainable := make(map[int]bool, numTrainable)
	for _, t := range trainableParams {
		trainable[t] = true
	}

	// Forward: lambda starts as the caller-supplied final state. The
	// source hardcodes the qubit count here; this implementation always
	// uses the caller's n, checked against the state length above.
	lambda := make([]C, len(state))
	copy(lambda, state)

	// Seed: one observable-modified copy per observable.
	bras := make([][]C, numObs)
	for j := range observables {
		b := make([]C, len(state))
		copy(b, lambda)
		if err := ConstructAndApply(b, n, observables[j], obsWires[j], obsParams[j], false); err != nil {
			return err
		}
		bras[j] = b
	}

	paramNumber := startingParamIndex
	trainableSlot := numTrainable - 1

	for i := numOps - 1; i >= 0; i-- {
		label := operations[i]
		if label == QubitStateVector || label == BasisState {
			continue
		}
		wires := opWires[i]
		params := opParams[i]

		if len(params) > 1 {
			return fail(string(label), ErrNonDifferentiable)
		}

		g, err := ConstructGate[C](label, params)
		if err != nil {
			return err
		}
		if g.Arity != len(wires) {
			return fail(string(label)+" wires", ErrArityMismatch)
		}
		internal := GenerateBitPatterns(wires, n)
		external := GenerateBitPatterns(IndicesAfterExclusion(wires, n), n)

		var mu []C
		if len(params) == 1 && trainable[paramNumber] {
			// Save |mu> = |lambda> before lambda is updated.
			mu = make([]C, len(state))
			copy(mu, lambda)
		}

		// lambda <- Ui^dagger * lambda
		g.Inverse = true
		g.Apply(lambda, internal, external)

		if len(params) == 1 {
			if trainable[paramNumber] {
				if genApply, scale, ok := g.Generator(); ok {
					genApply(mu, internal, external)
					for j := range observables {
						ip := innerProduct(bras[j], mu)
						jacOut[j*numTrainable+trainableSlot] = 2 * scale * cImag(ip)
					}
				}
				trainableSlot--
			}
			paramNumber--
		}

		if i > 0 {
			for j := range observables {
				g.Inverse = true
				g.Apply(bras[j], internal, external)
			}
		}
	}
	return nil
}
