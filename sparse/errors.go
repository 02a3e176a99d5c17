// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. Constructors MUST return these sentinels and tests MUST
// check them via errors.Is. No constructor panics on user input.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and easy
// grepping. Wrap with fmt.Errorf("ctx: %w", ErrX) where context helps;
// callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// length -> slice-length mismatch -> index bounds -> duplicates.

var (
	// ErrBadLength is returned when the requested logical length (vector
	// length or matrix order) is below 1. Validate before any allocation.
	ErrBadLength = errors.New("sparse: length must be >= 1")

	// ErrLengthMismatch indicates that parallel index/amplitude slices (or
	// a diagonal slice against its declared order) disagree in length.
	ErrLengthMismatch = errors.New("sparse: slice length mismatch")

	// ErrIndexOutOfRange indicates an entry index outside [0, N).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDuplicateIndex indicates the same entry index listed more than
	// once; (index, amplitude) lists must be pairwise distinct in index.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")
)
