// SPDX-License-Identifier: MIT
package state_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/state"
)

// TestCoherent_AnalyticAmplitudes checks the closed form against a direct
// factorial evaluation for a small space.
func TestCoherent_AnalyticAmplitudes(t *testing.T) {
	const n = 8
	alpha := 0.4 + 0.3i

	k, err := state.Coherent(n, alpha, state.WithAnalytic())
	require.NoError(t, err)
	assert.Equal(t, hilbert.Dims{n}, k.Dims())

	mag2 := real(alpha * cmplx.Conj(alpha))
	pref := cmplx.Exp(complex(-mag2/2, 0))
	fact := 1.0
	for j, got := range k.Amplitudes() {
		if j > 0 {
			fact *= float64(j)
		}
		want := pref * cmplx.Pow(alpha, complex(float64(j), 0)) / complex(math.Sqrt(fact), 0)
		assert.InDelta(t, real(want), real(got), 1e-12, "real part at level %d", j)
		assert.InDelta(t, imag(want), imag(got), 1e-12, "imag part at level %d", j)
	}
}

// TestCoherent_AnalyticNormLoss documents the truncation behavior: the
// analytic form is NOT renormalized, and its norm climbs back toward 1 as
// n grows at fixed α.
func TestCoherent_AnalyticNormLoss(t *testing.T) {
	alpha := complex(2, 0)

	tight, err := state.Coherent(4, alpha, state.WithAnalytic())
	require.NoError(t, err)
	wide, err := state.Coherent(64, alpha, state.WithAnalytic())
	require.NoError(t, err)

	assert.Less(t, tight.Norm(), 1.0, "tight truncation loses norm")
	assert.Greater(t, wide.Norm(), tight.Norm(), "accuracy improves monotonically with n")
	assert.InDelta(t, 1.0, wide.Norm(), 1e-9, "n ≫ |α|² recovers unit norm")
}

// TestCoherent_DisplacementUnitNorm checks the default path: the D(α)|0⟩
// column is unit-norm by construction even under tight truncation.
func TestCoherent_DisplacementUnitNorm(t *testing.T) {
	for _, n := range []int{2, 4, 12} {
		k, err := state.Coherent(n, 1.3-0.7i)
		require.NoError(t, err, "Coherent(%d, α)", n)
		assert.InDelta(t, 1.0, k.Norm(), 1e-10, "displacement form stays unit-norm at n=%d", n)
	}
}

// TestCoherent_StrategiesAgree verifies both strategies converge to the
// same amplitudes once n is generous relative to |α|².
func TestCoherent_StrategiesAgree(t *testing.T) {
	const n = 32
	alpha := 0.8 + 0.2i

	analytic, err := state.Coherent(n, alpha, state.WithAnalytic())
	require.NoError(t, err)
	displaced, err := state.Coherent(n, alpha, state.WithDisplacementForm())
	require.NoError(t, err)

	a := analytic.Amplitudes()
	d := displaced.Amplitudes()
	for j := 0; j < n; j++ {
		assert.InDelta(t, real(a[j]), real(d[j]), 1e-8, "real part at level %d", j)
		assert.InDelta(t, imag(a[j]), imag(d[j]), 1e-8, "imag part at level %d", j)
	}
}

// TestCoherent_VacuumLimit checks α = 0: both strategies yield |0⟩ exactly.
func TestCoherent_VacuumLimit(t *testing.T) {
	for _, opts := range [][]state.Option{{state.WithAnalytic()}, nil} {
		k, err := state.Coherent(5, 0, opts...)
		require.NoError(t, err)

		amps := k.Amplitudes()
		assert.InDelta(t, 1.0, real(amps[0]), 1e-12)
		for j := 1; j < 5; j++ {
			assert.InDelta(t, 0.0, cmplxAbs(amps[j]), 1e-12, "level %d must stay empty", j)
		}
	}
}

// TestCoherent_Validation covers the rejected dimension.
func TestCoherent_Validation(t *testing.T) {
	_, err := state.Coherent(0, 1)
	assert.ErrorIs(t, err, state.ErrBadDimension)
}
