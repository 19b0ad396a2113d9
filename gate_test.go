package qkernel

import (
	"errors"
	"testing"
)

func TestConstructGateUnknown(t *testing.T) {
	_, err := ConstructGate[complex128]("Frobnicate", nil)
	if err == nil {
		t.Fatalf("expected error for unknown gate")
	}
	if !errors.Is(err, ErrUnknownGate) {
		t.Fatalf("got error %v, want ErrUnknownGate", err)
	}
}

func TestConstructGateBadParameterCount(t *testing.T) {
	_, err := ConstructGate[complex128](RX, nil)
	if !errors.Is(err, ErrBadParameterCount) {
		t.Fatalf("got error %v, want ErrBadParameterCount", err)
	}
	_, err = ConstructGate[complex128](PauliX, []float64{1})
	if !errors.Is(err, ErrBadParameterCount) {
		t.Fatalf("got error %v, want ErrBadParameterCount", err)
	}
}

func TestConstructGateBothPrecisions(t *testing.T) {
	g64, err := ConstructGate[complex64](Hadamard, nil)
	if err != nil || g64 == nil {
		t.Fatalf("ConstructGate[complex64] failed: %v", err)
	}
	g128, err := ConstructGate[complex128](Hadamard, nil)
	if err != nil || g128 == nil {
		t.Fatalf("ConstructGate[complex128] failed: %v", err)
	}
}

func TestGateShapeKnownAndUnknown(t *testing.T) {
	arity, paramCount, ok := GateShape(Rot)
	if !ok || arity != 1 || paramCount != 3 {
		t.Fatalf("GateShape(Rot) = (%d, %d, %v), want (1, 3, true)", arity, paramCount, ok)
	}
	if _, _, ok := GateShape(QubitUnitary); ok {
		t.Fatalf("GateShape(QubitUnitary) should report ok=false")
	}
	if _, _, ok := GateShape("Frobnicate"); ok {
		t.Fatalf("GateShape(unknown) should report ok=false")
	}
}

func TestApplyArityMismatch(t *testing.T) {
	sv, err := NewStateVector[complex128](2)
	if err != nil {
		t.Fatalf("NewStateVector: %v", err)
	}
	err = sv.ApplyOperation(CNOT, []int{0}, false, nil)
	if !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("got error %v, want ErrArityMismatch", err)
	}
}

func TestApplyShapeMismatch(t *testing.T) {
	sv, err := NewStateVector[complex128](2)
	if err != nil {
		t.Fatalf("NewStateVector: %v", err)
	}
	err = sv.Apply([]GateLabel{PauliX}, [][]int{{0}, {1}}, [][]float64{nil}, []bool{false})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got error %v, want ErrShapeMismatch", err)
	}
}

func TestNewStateVectorDimensionMismatch(t *testing.T) {
	_, err := NewStateVector[complex128](0)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got error %v, want ErrDimensionMismatch", err)
	}
}

func TestEmptyOpListIsIdentity(t *testing.T) {
	sv, _ := NewStateVector[complex128](3)
	before := sv.Clone()
	if err := sv.Apply(nil, nil, nil, nil); err != nil {
		t.Fatalf("Apply(empty): %v", err)
	}
	if !sv.Equal(before) {
		t.Fatalf("empty op list mutated the state")
	}
}

func TestUnknownGateViaApply(t *testing.T) {
	sv, _ := NewStateVector[complex128](1)
	err := sv.ApplyOperation("Frobnicate", []int{0}, false, nil)
	if !errors.Is(err, ErrUnknownGate) {
		t.Fatalf("got error %v, want ErrUnknownGate", err)
	}
}
