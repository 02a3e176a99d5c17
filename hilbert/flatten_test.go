// SPDX-License-Identifier: MIT
package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstate/hilbert"
)

// TestFlatten_SingleSubsystem verifies the trivial one-subsystem case where
// the flat index equals the level itself.
func TestFlatten_SingleSubsystem(t *testing.T) {
	idx, err := hilbert.Flatten(hilbert.Label{2}, hilbert.Dims{3})
	require.NoError(t, err, "valid single-subsystem label must flatten")
	assert.Equal(t, 2, idx, "level equals index in a single-subsystem space")
}

// TestFlatten_RowMajorConvention locks the mixed-radix convention:
// flattening (3,0,1) under dims (5,2,3) gives 3·(2·3) + 0·3 + 1 = 19.
func TestFlatten_RowMajorConvention(t *testing.T) {
	idx, err := hilbert.Flatten(hilbert.Label{3, 0, 1}, hilbert.Dims{5, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 19, idx, "subsystem 0 must be the most-significant digit")
}

// TestFlatten_QubitRegister verifies the binary specialization: levels
// (1,0,1) over three qubits flatten to 0b101 = 5.
func TestFlatten_QubitRegister(t *testing.T) {
	idx, err := hilbert.Flatten(hilbert.Label{1, 0, 1}, hilbert.Uniform(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, idx, "qubit labels must read as binary digits")
}

// TestFlatten_LevelOutOfRange ensures a level >= its dimension fails with
// ErrLevelOutOfRange and the message names the offending subsystem.
func TestFlatten_LevelOutOfRange(t *testing.T) {
	_, err := hilbert.Flatten(hilbert.Label{2, 0}, hilbert.Dims{2, 3})
	assert.ErrorIs(t, err, hilbert.ErrLevelOutOfRange, "level 2 in a 2-level subsystem must fail")
	assert.Contains(t, err.Error(), "subsystem 0", "error must identify the offending subsystem")

	// Negative levels are equally out of range.
	_, err = hilbert.Flatten(hilbert.Label{0, -1}, hilbert.Dims{2, 3})
	assert.ErrorIs(t, err, hilbert.ErrLevelOutOfRange, "negative level must fail")
}

// TestFlatten_LengthMismatch ensures label/dims length disagreement fails
// with ErrLengthMismatch before any bounds checks run.
func TestFlatten_LengthMismatch(t *testing.T) {
	_, err := hilbert.Flatten(hilbert.Label{0, 1}, hilbert.Dims{2})
	assert.ErrorIs(t, err, hilbert.ErrLengthMismatch)
}

// TestFlatten_BadDims ensures invalid dimension lists are rejected.
func TestFlatten_BadDims(t *testing.T) {
	_, err := hilbert.Flatten(hilbert.Label{}, hilbert.Dims{})
	assert.ErrorIs(t, err, hilbert.ErrEmptyDims, "empty dims must fail")

	_, err = hilbert.Flatten(hilbert.Label{0, 0}, hilbert.Dims{2, 0})
	assert.ErrorIs(t, err, hilbert.ErrNonPositiveDim, "zero dimension must fail")
}

// TestUnflatten_Inverse verifies Unflatten(Flatten(l,d), d) == l over an
// exhaustive sweep of a small composite space.
func TestUnflatten_Inverse(t *testing.T) {
	dims := hilbert.Dims{3, 2, 4}
	size := dims.Size()
	require.Equal(t, 24, size)

	for index := 0; index < size; index++ {
		label, err := hilbert.Unflatten(index, dims)
		require.NoError(t, err, "index %d must unflatten", index)

		back, err := hilbert.Flatten(label, dims)
		require.NoError(t, err)
		assert.Equal(t, index, back, "round-trip must be identity at %d", index)
	}
}

// TestUnflatten_IndexOutOfRange ensures indices outside [0, Size) fail.
func TestUnflatten_IndexOutOfRange(t *testing.T) {
	dims := hilbert.Dims{2, 3}

	_, err := hilbert.Unflatten(6, dims)
	assert.ErrorIs(t, err, hilbert.ErrIndexOutOfRange, "index == Size must fail")

	_, err = hilbert.Unflatten(-1, dims)
	assert.ErrorIs(t, err, hilbert.ErrIndexOutOfRange, "negative index must fail")
}

// TestUniform_Broadcast checks Uniform's shape and downstream validity.
func TestUniform_Broadcast(t *testing.T) {
	dims := hilbert.Uniform(4, 3)
	assert.Equal(t, hilbert.Dims{3, 3, 3, 3}, dims)
	assert.Equal(t, 81, dims.Size())
	assert.NoError(t, dims.Validate())

	// Degenerate subsystem count yields an empty Dims that fails Validate.
	assert.ErrorIs(t, hilbert.Uniform(0, 2).Validate(), hilbert.ErrEmptyDims)
}

// TestDims_CloneIndependence ensures Clone produces detached storage.
func TestDims_CloneIndependence(t *testing.T) {
	dims := hilbert.Dims{2, 5}
	cl := dims.Clone()
	cl[0] = 9
	assert.Equal(t, 2, dims[0], "mutating the clone must not touch the original")

	label := hilbert.Label{1, 4}
	lc := label.Clone()
	lc[1] = 0
	assert.Equal(t, 4, label[1], "mutating the clone must not touch the original")
}
