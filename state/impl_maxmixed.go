// SPDX-License-Identifier: MIT
// Package: state
//
// impl_maxmixed.go — MaxMixed(n): the maximally mixed state I/n.
//
// Contract:
//   • Diagonal density operator with every diagonal entry exactly 1/n;
//     Normalized flag true. No failure modes beyond n < 1.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the diagonal.

package state

import (
	"fmt"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// methodMaxMixed tags MaxMixed errors.
const methodMaxMixed = "MaxMixed"

// MaxMixed returns the maximally mixed (maximum-entropy) density operator
// over an n-level space.
func MaxMixed(n int) (*Operator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodMaxMixed, n, ErrBadDimension)
	}

	// Uniform diagonal 1/n; trace is exactly 1 up to float rounding.
	entry := complex(1/float64(n), 0)
	diag := make([]complex128, n)
	for i := range diag {
		diag[i] = entry
	}

	dd, err := sparse.NewDiagonal(n, diag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaxMixed, err)
	}

	return newDiagonalOperator(dd, hilbert.Dims{n}, true), nil
}
