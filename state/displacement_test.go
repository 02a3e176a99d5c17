// SPDX-License-Identifier: MIT
package state_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstate/state"
)

// TestDisplacement_Unitary verifies D(α)†D(α) = I within float tolerance:
// the truncated generator is anti-Hermitian, so its exponential must be
// unitary up to kernel round-off.
func TestDisplacement_Unitary(t *testing.T) {
	const n = 10
	alpha := 0.9 - 0.4i

	op, err := state.Displacement(n, alpha)
	require.NoError(t, err)
	assert.False(t, op.Normalized(), "a unitary carries no unit-trace guarantee")

	d := op.Dense()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// (D†D)[i][j] = Σ_k conj(D[k][i])·D[k][j].
			var acc complex128
			for k := 0; k < n; k++ {
				acc += cmplx.Conj(d.At(k, i)) * d.At(k, j)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, real(acc), 1e-10, "D†D real at (%d,%d)", i, j)
			assert.InDelta(t, 0.0, imag(acc), 1e-10, "D†D imag at (%d,%d)", i, j)
		}
	}
}

// TestDisplacement_ZeroAlpha checks D(0) = I exactly in structure.
func TestDisplacement_ZeroAlpha(t *testing.T) {
	op, err := state.Displacement(4, 0)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, err := op.At(i, j)
			require.NoError(t, err)
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(got), 1e-14)
			assert.InDelta(t, 0.0, imag(got), 1e-14)
		}
	}
}

// TestDisplacement_VacuumColumn checks ⟨0|D(α)|0⟩ = exp(−|α|²/2): the
// corner entry of the displacement matrix carries the Gaussian prefactor.
func TestDisplacement_VacuumColumn(t *testing.T) {
	const n = 24
	alpha := complex(0.6, 0.3)

	op, err := state.Displacement(n, alpha)
	require.NoError(t, err)

	col, err := op.Column(0)
	require.NoError(t, err)
	require.Len(t, col, n)

	mag2 := real(alpha * cmplx.Conj(alpha))
	want := cmplx.Exp(complex(-mag2/2, 0))
	assert.InDelta(t, real(want), real(col[0]), 1e-8, "vacuum-to-vacuum amplitude")
	assert.InDelta(t, imag(want), imag(col[0]), 1e-8)
}

// TestDisplacement_InverseComposition checks D(α)·D(−α) = I: both factors
// exponentiate the same truncated generator with opposite signs, so their
// product must collapse to the identity. This drives the dense complex
// matrix product underneath the exponential from a second angle.
func TestDisplacement_InverseComposition(t *testing.T) {
	const n = 8
	alpha := 1.1 + 0.5i

	fwd, err := state.Displacement(n, alpha)
	require.NoError(t, err)
	bwd, err := state.Displacement(n, -alpha)
	require.NoError(t, err)

	a := fwd.Dense()
	b := bwd.Dense()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc complex128
			for k := 0; k < n; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, real(acc), 1e-9, "(D(α)·D(−α)) real at (%d,%d)", i, j)
			assert.InDelta(t, 0.0, imag(acc), 1e-9, "(D(α)·D(−α)) imag at (%d,%d)", i, j)
		}
	}
}

// TestDisplacement_Validation covers the rejected dimension.
func TestDisplacement_Validation(t *testing.T) {
	_, err := state.Displacement(0, 1)
	assert.ErrorIs(t, err, state.ErrBadDimension)
}
