// SPDX-License-Identifier: MIT
// Package: state
//
// impl_ket.go — general basis-state constructors over composite spaces:
// NewKet (explicit dims), NewKetUniform (one dimension broadcast to all
// subsystems) and Qubits (two-level convenience form).
//
// Contract:
//   • NewKet(label, dims): every level validated against its subsystem
//     dimension (hilbert.ErrLevelOutOfRange on violation, naming the
//     subsystem); flat index via hilbert.Flatten; result is a sparse ket
//     with exactly one unit amplitude. Basis(n,k) is the single-subsystem
//     specialization of this constructor.
//   • Qubits(levels...): dimension fixed to 2 per subsystem; each level
//     must be 0 or 1; at least one level required (ErrBadCopies).
//
// Complexity:
//   • Time: O(k) (k = subsystems). Space: O(k) for the dims clone.

package state

import (
	"fmt"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// File-local method tags and the fixed qubit dimension.
const (
	methodNewKet = "NewKet"
	methodQubits = "Qubits"
	qubitDim     = 2
)

// NewKet returns the composite basis state |s1,s2,…,sk⟩ for the given
// per-subsystem levels and dimensions.
func NewKet(label hilbert.Label, dims hilbert.Dims) (*Ket, error) {
	// Flatten validates dims, length and every level bound, then encodes.
	index, err := hilbert.Flatten(label, dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewKet, err)
	}

	// One unit amplitude at the flat index; bounds already guaranteed.
	v, err := sparse.Unit(dims.Size(), index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewKet, err)
	}

	return newSparseKet(v, dims.Clone()), nil
}

// NewKetUniform is NewKet with a single dimension d broadcast to every
// subsystem of the label: |s1,…,sk⟩ with all subsystems d-level.
func NewKetUniform(label hilbert.Label, d int) (*Ket, error) {
	return NewKet(label, hilbert.Uniform(len(label), d))
}

// Qubits returns the qubit-register basis state |l1,l2,…,lk⟩ with every
// subsystem two-level; levels arrive as separate arguments.
func Qubits(levels ...int) (*Ket, error) {
	// An empty register has no composite space to index into.
	if len(levels) == 0 {
		return nil, fmt.Errorf("%s: no levels given: %w", methodQubits, ErrBadCopies)
	}

	k, err := NewKet(hilbert.Label(levels), hilbert.Uniform(len(levels), qubitDim))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodQubits, err)
	}

	return k, nil
}
