package qkernel

// applyMatrixKernel is the generic gather-multiply-scatter correctness
// baseline every specialised kernel must agree with. For each external
// offset e it gathers v[j] = state[e+internal[j]], computes w = M*v (or
// M^dagger*v when inverse), and scatters w back.
//
// The external loop is walked in externalBlockSize chunks: offsets within
// a chunk address amplitudes close together in memory, which keeps the
// gather/scatter working set small regardless of how far apart the gate's
// target wires are. The chunking never changes the result, only the order
// amplitudes are touched in.
func applyMatrixKernel[C Amplitude](state []C, matrix []C, dim int, internal, external []uint64, inverse bool) {
	v := make([]C, dim)
	w := make([]C, dim)

	block := externalBlockSize
	if block < 1 {
		block = 1
	}

	for start := 0; start < len(external); start += block {
		end := start + block
		if end > len(external) {
			end = len(external)
		}
		for _, e := range external[start:end] {
			for j := 0; j < dim; j++ {
				v[j] = state[e+internal[j]]
			}
			for row := 0; row < dim; row++ {
				var acc C
				for col := 0; col < dim; col++ {
					var m C
					if inverse {
						m = cConj(matrix[col*dim+row])
					} else {
						m = matrix[row*dim+col]
					}
					acc = cAdd(acc, cMul(m, v[col]))
				}
				w[row] = acc
			}
			for j := 0; j < dim; j++ {
				state[e+internal[j]] = w[j]
			}
		}
	}
}
