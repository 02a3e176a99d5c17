// SPDX-License-Identifier: MIT
package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qstate/hilbert"
)

// TestValidateDims covers accept/reject classes for dimension lists.
func TestValidateDims(t *testing.T) {
	assert.NoError(t, hilbert.ValidateDims(hilbert.Dims{1}), "a single trivial subsystem is legal")
	assert.NoError(t, hilbert.ValidateDims(hilbert.Dims{5, 2, 3}))

	assert.ErrorIs(t, hilbert.ValidateDims(nil), hilbert.ErrEmptyDims)
	assert.ErrorIs(t, hilbert.ValidateDims(hilbert.Dims{}), hilbert.ErrEmptyDims)
	assert.ErrorIs(t, hilbert.ValidateDims(hilbert.Dims{2, -1}), hilbert.ErrNonPositiveDim)
}

// TestValidateLabel covers length and per-subsystem bounds classes.
func TestValidateLabel(t *testing.T) {
	dims := hilbert.Dims{2, 3}

	assert.NoError(t, hilbert.ValidateLabel(hilbert.Label{1, 2}, dims))
	assert.NoError(t, hilbert.ValidateLabel(hilbert.Label{0, 0}, dims))

	assert.ErrorIs(t, hilbert.ValidateLabel(hilbert.Label{1}, dims), hilbert.ErrLengthMismatch)
	assert.ErrorIs(t, hilbert.ValidateLabel(hilbert.Label{1, 3}, dims), hilbert.ErrLevelOutOfRange)
	assert.ErrorIs(t, hilbert.ValidateLabel(hilbert.Label{-1, 0}, dims), hilbert.ErrLevelOutOfRange)
}

// TestValidateLabel_ErrorContext pins the error-context contract: the
// wrapped message names the subsystem, the level and the bound.
func TestValidateLabel_ErrorContext(t *testing.T) {
	err := hilbert.ValidateLabel(hilbert.Label{0, 7}, hilbert.Dims{2, 3})
	assert.ErrorIs(t, err, hilbert.ErrLevelOutOfRange)
	assert.Contains(t, err.Error(), "subsystem 1")
	assert.Contains(t, err.Error(), "level 7")
	assert.Contains(t, err.Error(), "[0,3)")
}

// TestValidateIndex covers the flat-index bound check.
func TestValidateIndex(t *testing.T) {
	assert.NoError(t, hilbert.ValidateIndex(0, 1))
	assert.NoError(t, hilbert.ValidateIndex(5, 6))

	assert.ErrorIs(t, hilbert.ValidateIndex(6, 6), hilbert.ErrIndexOutOfRange)
	assert.ErrorIs(t, hilbert.ValidateIndex(-1, 6), hilbert.ErrIndexOutOfRange)
}
