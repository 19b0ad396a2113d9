package qkernel

import "sync"

// GateLabel is one of the fixed, case-sensitive names the catalogue
// recognises.
type GateLabel string

const (
	PauliX       GateLabel = "PauliX"
	PauliY       GateLabel = "PauliY"
	PauliZ       GateLabel = "PauliZ"
	Hadamard     GateLabel = "Hadamard"
	SGate        GateLabel = "S"
	TGate        GateLabel = "T"
	RX           GateLabel = "RX"
	RY           GateLabel = "RY"
	RZ           GateLabel = "RZ"
	PhaseShift   GateLabel = "PhaseShift"
	Rot          GateLabel = "Rot"
	CNOT         GateLabel = "CNOT"
	SWAP         GateLabel = "SWAP"
	CZ           GateLabel = "CZ"
	CRX          GateLabel = "CRX"
	CRY          GateLabel = "CRY"
	CRZ          GateLabel = "CRZ"
	CRot         GateLabel = "CRot"
	Toffoli      GateLabel = "Toffoli"
	CSWAP        GateLabel = "CSWAP"
	QubitUnitary GateLabel = "QubitUnitary"

	// QubitStateVector and BasisState are state-preparation pseudo-ops the
	// adjoint engine recognises and skips; they are never dispatched.
	QubitStateVector GateLabel = "QubitStateVector"
	BasisState       GateLabel = "BasisState"
)

// kernelFunc is a specialised in-place gate applier. internal and external
// are the index sets produced by the index generator for the gate's wires.
type kernelFunc[C Amplitude] func(state []C, internal, external []uint64, inverse bool)

// generatorInfo describes the Hermitian generator of a parameterised gate:
// dU/dtheta = -i*scale*G*U. apply mutates state in place to G|state>
// restricted to the gate's wires; it never inverts.
type generatorInfo[C Amplitude] struct {
	scale float64
	apply func(state []C, internal, external []uint64)
}

// Gate is a gate instance built by ConstructGate. Callers set Inverse
// before Apply; the other fields are not changed after construction.
type Gate[C Amplitude] struct {
	Label   GateLabel
	Arity   int
	Params  []float64
	Inverse bool

	matrix []C // dim*dim row-major; nil when a specialised kernel fully covers the gate
	kernel kernelFunc[C]
	gen    *generatorInfo[C]
}

// Dim returns the gate's matrix side length, 2^Arity.
func (g *Gate[C]) Dim() int { return 1 << g.Arity }

// Apply mutates state in place using the gate's specialised kernel if one
// exists, falling back to the generic matrix kernel otherwise.
func (g *Gate[C]) Apply(state []C, internal, external []uint64) {
	if g.kernel != nil {
		g.kernel(state, internal, external, g.Inverse)
		return
	}
	applyMatrixKernel(state, g.matrix, g.Dim(), internal, external, g.Inverse)
}

// Generator reports the gate's Hermitian generator and scaling factor, if
// the gate carries one: every single-parameter gate, and also PauliX,
// PauliY and PauliZ. ok is false for all other gates.
func (g *Gate[C]) Generator() (apply func(state []C, internal, external []uint64), scale float64, ok bool) {
	if g.gen == nil {
		return nil, 0, false
	}
	return g.gen.apply, g.gen.scale, true
}

// gateSpec carries the declared shape of a gate label, independent of
// precision, used by GateShape to report arity/parameter counts without
// constructing a gate instance.
type gateSpec struct {
	arity      int
	paramCount int
}

var catalogueSpecs = map[GateLabel]gateSpec{
	PauliX:       {1, 0},
	PauliY:       {1, 0},
	PauliZ:       {1, 0},
	Hadamard:     {1, 0},
	SGate:        {1, 0},
	TGate:        {1, 0},
	RX:           {1, 1},
	RY:           {1, 1},
	RZ:           {1, 1},
	PhaseShift:   {1, 1},
	Rot:          {1, 3},
	CNOT:         {2, 0},
	SWAP:         {2, 0},
	CZ:           {2, 0},
	CRX:          {2, 1},
	CRY:          {2, 1},
	CRZ:          {2, 1},
	CRot:         {2, 3},
	Toffoli:      {3, 0},
	CSWAP:        {3, 0},
	// QubitUnitary has no fixed arity/param count; validated separately.
}

// GateShape reports the declared arity and parameter count for label
// without constructing an instance; ok is false for QubitUnitary (whose
// arity is data-dependent) and for unknown labels.
func GateShape(label GateLabel) (arity, paramCount int, ok bool) {
	spec, found := catalogueSpecs[label]
	if !found {
		return 0, 0, false
	}
	return spec.arity, spec.paramCount, true
}

var dispatch64 = sync.OnceValue(func() map[GateLabel]func(params []float64) (*Gate[complex64], error) {
	return buildDispatchTable[complex64]()
})

var dispatch128 = sync.OnceValue(func() map[GateLabel]func(params []float64) (*Gate[complex128], error) {
	return buildDispatchTable[complex128]()
})

// buildDispatchTable is instantiated once per precision behind a
// sync.OnceValue; it is the process-wide, lazily-initialised label ->
// constructor map the dispatcher exposes.
func buildDispatchTable[C Amplitude]() map[GateLabel]func(params []float64) (*Gate[C], error) {
	return map[GateLabel]func(params []float64) (*Gate[C], error){
		PauliX:       newPauliX[C],
		PauliY:       newPauliY[C],
		PauliZ:       newPauliZ[C],
		Hadamard:     newHadamard[C],
		SGate:        newSGate[C],
		TGate:        newTGate[C],
		RX:           newRX[C],
		RY:           newRY[C],
		RZ:           newRZ[C],
		PhaseShift:   newPhaseShift[C],
		Rot:          newRot[C],
		CNOT:         newCNOT[C],
		SWAP:         newSWAP[C],
		CZ:           newCZ[C],
		CRX:          newCRX[C],
		CRY:          newCRY[C],
		CRZ:          newCRZ[C],
		CRot:         newCRot[C],
		Toffoli:      newToffoli[C],
		CSWAP:        newCSWAP[C],
		QubitUnitary: newQubitUnitary[C],
	}
}

// ConstructGate resolves label to a constructor and builds the gate
// instance, failing with ErrUnknownGate if the label is absent or
// ErrBadParameterCount if the constructor rejects params.
func ConstructGate[C Amplitude](label GateLabel, params []float64) (*Gate[C], error) {
	if cIsComplex64[C]() {
		ctor, ok := dispatch64()[label]
		if !ok {
			return nil, fail(string(label), ErrUnknownGate)
		}
		g, err := ctor(params)
		if err != nil {
			return nil, err
		}
		return any(g).(*Gate[C]), nil
	}
	ctor, ok := dispatch128()[label]
	if !ok {
		return nil, fail(string(label), ErrUnknownGate)
	}
	g, err := ctor(params)
	if err != nil {
		return nil, err
	}
	return any(g).(*Gate[C]), nil
}
