// SPDX-License-Identifier: MIT
// Package: state
//
// impl_thermal.go — Thermal(n, n̄): Boltzmann-diagonal mixed state.
//
// Contract:
//   • Diagonal density operator over number states 0..n−1 with entry k
//     proportional to exp(−β·k), β = ln(1/n̄ + 1); the diagonal is then
//     normalized to unit trace and the Normalized flag set true.
//   • n̄ = 0 is the documented limiting behavior: β → ∞ concentrates all
//     mass on the ground state — handled without evaluating any
//     exponential, so no overflow. n̄ < 0 (or NaN) → ErrNegativeOccupancy.
//   • Accuracy note (inherent, NOT a bug): the number-operator expectation
//     of the result equals the requested n̄ only in the limit n ≫ n̄ —
//     finite-n truncation biases the mean downward. Callers needing
//     ⟨N̂⟩ ≈ n̄ must size n accordingly.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the diagonal.

package state

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// methodThermal tags Thermal errors.
const methodThermal = "Thermal"

// Thermal returns the n-level thermal (Boltzmann) density operator for
// mean occupancy nbar.
func Thermal(n int, nbar float64) (*Operator, error) {
	// Validate the truncation dimension.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodThermal, n, ErrBadDimension)
	}
	// Negative or NaN occupancy has no Boltzmann parameter.
	if nbar < 0 || math.IsNaN(nbar) {
		return nil, fmt.Errorf("%s: nbar=%v: %w", methodThermal, nbar, ErrNegativeOccupancy)
	}

	diag := make([]complex128, n)
	if nbar == 0 {
		// β → ∞ limit: the ground-state projector, exactly.
		diag[0] = 1
		dd, err := sparse.NewDiagonal(n, diag)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodThermal, err)
		}

		return newDiagonalOperator(dd, hilbert.Dims{n}, true), nil
	}

	// Geometric weights w_k = r^k with r = exp(−β) = n̄/(n̄+1) ∈ (0,1);
	// the recurrence avoids exp/pow per entry and cannot overflow.
	ratio := nbar / (nbar + 1)
	weights := make([]float64, n)
	weight, total := 1.0, 0.0
	for k := 0; k < n; k++ {
		weights[k] = weight
		total += weight
		weight *= ratio
	}

	// Normalize to unit trace over the truncated range.
	for k := 0; k < n; k++ {
		diag[k] = complex(weights[k]/total, 0)
	}

	dd, err := sparse.NewDiagonal(n, diag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodThermal, err)
	}

	return newDiagonalOperator(dd, hilbert.Dims{n}, true), nil
}
