package qkernel

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy the driver and adjoint engine raise.
// Callers should use errors.Is against these, never string-match messages.
var (
	ErrDimensionMismatch = errors.New("qkernel: dimension mismatch")
	ErrShapeMismatch     = errors.New("qkernel: shape mismatch")
	ErrArityMismatch     = errors.New("qkernel: arity mismatch")
	ErrUnknownGate       = errors.New("qkernel: unknown gate")
	ErrBadParameterCount = errors.New("qkernel: bad parameter count")
	ErrNonDifferentiable = errors.New("qkernel: non-differentiable")
)

func fail(context string, sentinel error) error {
	return fmt.Errorf("%s: %w", context, sentinel)
}
