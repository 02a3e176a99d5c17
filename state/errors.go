// SPDX-License-Identifier: MIT
// Package state: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors owned by state.
// Level-bounds violations are NOT redefined here: every generator returns
// hilbert.ErrLevelOutOfRange (wrapped with generator context) so callers
// branch on a single out-of-range kind across the whole library.

package state

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "state: ...". Generators wrap sentinels
// with their method tag and the offending values via fmt.Errorf + %w;
// callers match with errors.Is.

var (
	// ErrBadDimension indicates a requested space dimension below 1.
	// Every generator validates its n before any construction work.
	ErrBadDimension = errors.New("state: space dimension must be >= 1")

	// ErrBadCopies indicates a subsystem-copy count below 1 for the
	// entangled-state generator, or an empty qubit-level list.
	ErrBadCopies = errors.New("state: need at least one subsystem")

	// ErrDegenerateSubsystem rejects entangled construction over 1-level
	// subsystems: the geometric-series stride (d^k-1)/(d-1) is undefined
	// at d = 1, and a 1-level "superposition" carries no entanglement.
	ErrDegenerateSubsystem = errors.New("state: subsystem dimension must be >= 2")

	// ErrNegativeOccupancy indicates a thermal mean occupancy n̄ < 0 (or
	// NaN); the Boltzmann parameter β = ln(1/n̄ + 1) requires n̄ >= 0.
	ErrNegativeOccupancy = errors.New("state: mean occupancy must be >= 0")

	// ErrSubsystemIndex indicates a subsystem position outside the
	// operator's dimension list (partial trace).
	ErrSubsystemIndex = errors.New("state: subsystem position out of range")

	// ErrSizeOverflow indicates that a composite size d^copies does not
	// fit in an int; construction is refused before any allocation.
	ErrSizeOverflow = errors.New("state: composite size overflows int")
)
