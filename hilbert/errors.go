// SPDX-License-Identifier: MIT
// Package hilbert: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// hilbert package. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions.

package hilbert

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "hilbert: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential (offending subsystem, level, dimension),
// wrap with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrEmptyDims is returned when a dimension list has no entries.
	// A composite space needs at least one subsystem.
	ErrEmptyDims = errors.New("hilbert: empty dimension list")

	// ErrNonPositiveDim indicates a subsystem dimension below 1.
	// Every subsystem dimension must satisfy di >= 1.
	ErrNonPositiveDim = errors.New("hilbert: subsystem dimension must be >= 1")

	// ErrLengthMismatch indicates that a basis label and a dimension list
	// disagree in length; a label names exactly one level per subsystem.
	ErrLengthMismatch = errors.New("hilbert: label and dims length mismatch")

	// ErrLevelOutOfRange indicates a requested basis level si that is not
	// strictly less than its subsystem dimension di (or is negative).
	// Wrapping sites attach the offending subsystem position, the level and
	// the dimension as context.
	ErrLevelOutOfRange = errors.New("hilbert: basis level out of range")

	// ErrIndexOutOfRange indicates a flat index outside [0, Size) for the
	// given composite space.
	ErrIndexOutOfRange = errors.New("hilbert: flat index out of range")
)
