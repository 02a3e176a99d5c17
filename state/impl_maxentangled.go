// SPDX-License-Identifier: MIT
// Package: state
//
// impl_maxentangled.go — MaxEntangled(copies): GHZ-like maximally
// entangled state over several copies of a d-level subsystem.
//
// Contract:
//   • Composite space of size d^copies (d via WithSubsystemDim, default 2).
//   • Nonzero amplitudes at flat indices m·c for m = 0..d−1 with
//     c = (d^copies − 1)/(d − 1) — the geometric series 1 + d + … +
//     d^(copies−1), i.e. exactly the labels (j,j,…,j) under the hilbert
//     flatten convention. Each amplitude is 1/√d.
//   • copies ≥ 1 (else ErrBadCopies); d ≥ 2 (else ErrDegenerateSubsystem —
//     the stride formula divides by d−1); composite sizes past the int
//     range are refused (ErrSizeOverflow) before any allocation.
//   • Tracing out all but one subsystem of the result yields exactly
//     MaxMixed(d) on the survivor (see the package tests).
//
// Complexity:
//   • Time: O(copies + d). Space: O(d) nonzero entries.

package state

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// methodMaxEntangled tags MaxEntangled errors.
const methodMaxEntangled = "MaxEntangled"

// MaxEntangled returns the equal superposition (1/√d)·Σ_j |j,j,…,j⟩ over
// `copies` identical d-level subsystems.
func MaxEntangled(copies int, opts ...Option) (*Ket, error) {
	cfg := newGenConfig(opts...)
	d := cfg.subsystemDim

	// Validate the copy count and the subsystem dimension.
	if copies < 1 {
		return nil, fmt.Errorf("%s: copies=%d: %w", methodMaxEntangled, copies, ErrBadCopies)
	}
	if d < 2 {
		return nil, fmt.Errorf("%s: d=%d: %w", methodMaxEntangled, d, ErrDegenerateSubsystem)
	}

	// Composite size d^copies with overflow refusal before allocation.
	size := 1
	for i := 0; i < copies; i++ {
		if size > math.MaxInt/d {
			return nil, fmt.Errorf("%s: %d^%d: %w", methodMaxEntangled, d, copies, ErrSizeOverflow)
		}
		size *= d
	}

	// Stride between identical-label indices: c = (d^copies − 1)/(d − 1),
	// the flat distance from |j,…,j⟩ to |j+1,…,j+1⟩.
	stride := (size - 1) / (d - 1)

	// d nonzero entries of amplitude 1/√d at m·c, m = 0..d−1.
	amp := complex(1/math.Sqrt(float64(d)), 0)
	indices := make([]int, d)
	amps := make([]complex128, d)
	for m := 0; m < d; m++ {
		indices[m] = m * stride
		amps[m] = amp
	}

	v, err := sparse.NewVector(size, indices, amps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMaxEntangled, err)
	}

	return newSparseKet(v, hilbert.Uniform(copies, d)), nil
}
