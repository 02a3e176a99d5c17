// SPDX-License-Identifier: MIT
// Package: hilbert
//
// Purpose:
//  - Provide a single, canonical source of truth for label/dimension checks.
//  - Keep Flatten/Unflatten minimal by delegating bounds logic here.
//  - Return sentinel errors wrapped with the offending position so call
//    sites (and users) see which subsystem violated its bound.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, and allocate only on failure.
//  - Every validator is O(k) in the number of subsystems.
//
// AI-Hints:
//  - ValidateLabel is THE level-bounds authority for the whole library:
//    every generator routes its OutOfRange reporting through it so the
//    error shape stays identical across basis/ket/qubit constructors.
//  - Check failures with errors.Is(err, ErrLevelOutOfRange); the wrapped
//    message carries subsystem position, level and dimension.

package hilbert

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to keep sentinel violations consistently labeled.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures dims is non-empty and every entry is >= 1.
//
// Returns ErrEmptyDims or ErrNonPositiveDim (with the offending subsystem
// position and value in the wrapped context). Complexity: O(k).
func ValidateDims(dims Dims) error {
	// Empty composite spaces are meaningless; reject before any arithmetic.
	if len(dims) == 0 {
		return validatorErrorf("ValidateDims", ErrEmptyDims)
	}
	// Each subsystem dimension must be at least 1.
	for i, di := range dims {
		if di < 1 {
			return fmt.Errorf("ValidateDims: subsystem %d has dimension %d: %w", i, di, ErrNonPositiveDim)
		}
	}

	return nil
}

// ValidateLabel ensures label matches dims in length and every level si
// satisfies 0 <= si < di.
//
// Implementation: assumes dims already passed ValidateDims (caller must
// ensure). Returns ErrLengthMismatch or ErrLevelOutOfRange wrapped with the
// offending subsystem position, requested level and declared dimension.
// Complexity: O(k).
func ValidateLabel(label Label, dims Dims) error {
	// One level per subsystem, exactly.
	if len(label) != len(dims) {
		return fmt.Errorf("ValidateLabel: label has %d levels for %d subsystems: %w",
			len(label), len(dims), ErrLengthMismatch)
	}
	// Per-subsystem bound check; report the first violation with full context.
	for i, si := range label {
		if si < 0 || si >= dims[i] {
			return fmt.Errorf("ValidateLabel: subsystem %d level %d outside [0,%d): %w",
				i, si, dims[i], ErrLevelOutOfRange)
		}
	}

	return nil
}

// ValidateIndex ensures a flat index lies in [0, size).
//
// Returns ErrIndexOutOfRange with the index and size as context.
// Complexity: O(1).
func ValidateIndex(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("ValidateIndex: index %d outside [0,%d): %w", index, size, ErrIndexOutOfRange)
	}

	return nil
}
