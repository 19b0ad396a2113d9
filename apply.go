package qkernel

// ConstructAndApply builds a gate by label, validates its wire count
// against the declared arity, generates both index sets, and invokes the
// gate's kernel against state in place. It is the single-gate primitive
// both Apply and the adjoint engine build on.
func ConstructAndApply[C Amplitude](state []C, n int, label GateLabel, wires []int, params []float64, inverse bool) error {
	g, err := ConstructGate[C](label, params)
	if err != nil {
		return err
	}
	if g.Arity != len(wires) {
		return fail(string(label), ErrArityMismatch)
	}
	g.Inverse = inverse
	internal := GenerateBitPatterns(wires, n)
	external := GenerateBitPatterns(IndicesAfterExclusion(wires, n), n)
	g.Apply(state, internal, external)
	return nil
}

// Apply walks a sequence of (gate, wires, params, inverse) tuples against
// state, mutating it in place. Errors are raised immediately; mutation
// already performed by earlier steps is not rolled back.
func Apply[C Amplitude](state []C, n int, ops []GateLabel, wires [][]int, params [][]float64, inverse []bool) error {
	if n < 1 || uint64(len(state)) != exp2(n) {
		return fail("apply", ErrDimensionMismatch)
	}
	count := len(ops)
	if len(wires) != count || len(params) != count || len(inverse) != count {
		return fail("apply", ErrShapeMismatch)
	}
	for i := 0; i < count; i++ {
		if err := ConstructAndApply(state, n, ops[i], wires[i], params[i], inverse[i]); err != nil {
			return err
		}
	}
	return nil
}

// ApplyOperation is the single-gate convenience form of Apply.
func ApplyOperation[C Amplitude](state []C, n int, label GateLabel, wires []int, inverse bool, params []float64) error {
	if n < 1 || uint64(len(state)) != exp2(n) {
		return fail("apply_operation", ErrDimensionMismatch)
	}
	return ConstructAndApply(state, n, label, wires, params, inverse)
}
