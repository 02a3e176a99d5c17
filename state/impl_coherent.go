// SPDX-License-Identifier: MIT
// Package: state
//
// impl_coherent.go — Coherent(n, α): truncated coherent state |α⟩.
//
// Contract:
//   • Two construction strategies over the same ideal infinite-dimensional
//     state, both truncated at n levels; a plain two-armed branch selected
//     by option (no strategy hierarchy behind it):
//       – displacement form (default): column 0 of D(α), i.e. D(α)|0⟩.
//         Unit-norm by construction (D is unitary up to truncation),
//         O(n³).
//       – analytic form (WithAnalytic): amplitude at level k is
//         exp(−|α|²/2)·αᵏ/√k!. One O(n) pass, NOT renormalized — the
//         truncated norm falls below 1 as |α| grows relative to n.
//   • Both strategies converge to the same state as n → ∞; neither is
//     "more correct" at finite n. The caller picks the tradeoff.
//   • n ≥ 1 (else ErrBadDimension). Result is always a dense ket.
//
// Complexity:
//   • Analytic: O(n) time/space. Displacement: O(n³) time, O(n²) space.

package state

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstate/hilbert"
)

// methodCoherent tags Coherent errors.
const methodCoherent = "Coherent"

// Coherent returns the n-level truncation of the coherent state |α⟩.
func Coherent(n int, alpha complex128, opts ...Option) (*Ket, error) {
	cfg := newGenConfig(opts...)

	// Validate the truncation dimension before either strategy runs.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCoherent, n, ErrBadDimension)
	}

	// Two-armed branch: closed form vs displacement column.
	if cfg.analytic {
		return coherentAnalytic(n, alpha), nil
	}

	return coherentDisplacement(n, alpha)
}

// coherentAnalytic fills the closed-form amplitudes in one pass using the
// stable recurrence c₀ = exp(−|α|²/2), cₖ = cₖ₋₁·α/√k — no factorials are
// ever materialized, so no overflow for any sane n.
func coherentAnalytic(n int, alpha complex128) *Ket {
	amps := make([]complex128, n)

	// Vacuum amplitude carries the whole Gaussian prefactor.
	mag2 := real(alpha)*real(alpha) + imag(alpha)*imag(alpha)
	amps[0] = complex(math.Exp(-mag2/2), 0)
	for k := 1; k < n; k++ {
		amps[k] = amps[k-1] * alpha / complex(math.Sqrt(float64(k)), 0)
	}

	return newDenseKet(amps, hilbert.Dims{n})
}

// coherentDisplacement builds D(α) and extracts its first column —
// equivalent to applying the displacement operator to the vacuum state.
func coherentDisplacement(n int, alpha complex128) (*Ket, error) {
	d, err := Displacement(n, alpha)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoherent, err)
	}
	col, err := d.Column(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoherent, err)
	}

	return newDenseKet(col, hilbert.Dims{n}), nil
}
