// SPDX-License-Identifier: MIT
// Package: state
//
// impl_basis.go — Basis(n, k): the Fock/number state |k⟩.
//
// Contract:
//   • n ≥ 1 (else ErrBadDimension); 0 ≤ k < n (else
//     hilbert.ErrLevelOutOfRange, same error kind as every multipartite
//     level violation).
//   • Result: sparse ket over hilbert.Dims{n} with exactly one unit
//     amplitude at flat index k — exactly normalized by construction.
//
// Complexity:
//   • Time: O(1). Space: O(1) beyond the container.

package state

import (
	"fmt"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// methodBasis tags Basis errors.
const methodBasis = "Basis"

// Basis returns the number state |k⟩ in an n-level space: the ket whose
// single unit-amplitude entry sits at flat index k.
func Basis(n, k int) (*Ket, error) {
	// Validate the space dimension before the level.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBasis, n, ErrBadDimension)
	}
	// Level bound routes through the shared hilbert authority so the
	// error shape matches multipartite constructors.
	if err := hilbert.ValidateLabel(hilbert.Label{k}, hilbert.Dims{n}); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBasis, err)
	}

	// Single unit amplitude at k; cannot fail after the checks above.
	v, err := sparse.Unit(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBasis, err)
	}

	return newSparseKet(v, hilbert.Dims{n}), nil
}
