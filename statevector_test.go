package qkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStateVectorStartsAtGroundState(t *testing.T) {
	sv, err := NewStateVector[complex128](3)
	require.NoError(t, err)
	require.True(t, sv.Managed())
	require.Equal(t, 3, sv.NumQubits())
	require.Equal(t, 8, sv.Len())
	require.InDelta(t, 1, real(sv.Raw()[0]), 1e-12)
	for i := 1; i < sv.Len(); i++ {
		require.InDelta(t, 0, real(sv.Raw()[i]), 1e-12)
		require.InDelta(t, 0, imag(sv.Raw()[i]), 1e-12)
	}
}

func TestNewRawStateVectorBorrowsBuffer(t *testing.T) {
	buf := make([]complex128, 4)
	buf[2] = 1
	sv, err := NewRawStateVector[complex128](buf, 2)
	require.NoError(t, err)
	require.False(t, sv.Managed())

	require.NoError(t, sv.ApplyOperation(PauliX, []int{1}, false, nil))
	// Mutations through the raw state vector are visible in the
	// caller's original buffer, since it never copies.
	require.InDelta(t, 1, real(buf[3]), 1e-12)
}

func TestNewRawStateVectorLengthMismatch(t *testing.T) {
	_, err := NewRawStateVector[complex128](make([]complex128, 3), 2)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCloneIsIndependent(t *testing.T) {
	sv, _ := NewStateVector[complex128](2)
	clone := sv.Clone()
	require.NoError(t, clone.ApplyOperation(PauliX, []int{0}, false, nil))
	require.False(t, sv.Equal(clone))
	require.True(t, clone.Managed())
}
