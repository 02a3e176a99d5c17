// SPDX-License-Identifier: MIT
// Package: hilbert
//
// flatten.go — mixed-radix encoding between basis labels and flat indices.
//
// Contract:
//   • Flatten(label, dims): row-major positional encoding, subsystem 0 is
//     the most-significant digit — matches |s1⟩⊗|s2⟩⊗…⊗|sk⟩ ordering.
//   • Unflatten(index, dims): exact inverse division/modulo chain;
//     Unflatten(Flatten(l,d), d) == l for every valid l.
//   • Both validate inputs first and return only sentinel errors; neither
//     ever panics or returns a partial result.
//
// Complexity:
//   • Time: O(k) per call (k = number of subsystems).
//   • Space: Flatten O(1); Unflatten O(k) for the produced label.
//
// Determinism:
//   • Pure arithmetic on the inputs; same arguments always yield the same
//     index/label.

package hilbert

import "fmt"

// File-local method tags for unified error wrapping (no magic strings).
const (
	methodFlatten   = "Flatten"
	methodUnflatten = "Unflatten"
)

// Flatten converts a per-subsystem basis label into the single 0-based flat
// index of the corresponding basis vector in the composite space.
//
// Stage 1 (Validate): dims invariant, label length, per-level bounds.
// Stage 2 (Execute): Horner-style mixed-radix accumulation.
// Errors: ErrEmptyDims, ErrNonPositiveDim, ErrLengthMismatch,
// ErrLevelOutOfRange. Complexity: O(k) time, O(1) space.
func Flatten(label Label, dims Dims) (int, error) {
	// Stage 1: validate the dimension list before any arithmetic.
	if err := ValidateDims(dims); err != nil {
		return 0, fmt.Errorf("%s: %w", methodFlatten, err)
	}
	// Validate the label against dims (length + per-subsystem bounds).
	if err := ValidateLabel(label, dims); err != nil {
		return 0, fmt.Errorf("%s: %w", methodFlatten, err)
	}

	// Stage 2: Horner accumulation — index = ((s1·d2 + s2)·d3 + s3)·… .
	// Subsystem 0 carries the largest radix weight (row-major convention).
	index := 0
	for i := range dims {
		index = index*dims[i] + label[i]
	}

	return index, nil
}

// Unflatten converts a flat index back into the per-subsystem basis label,
// inverting Flatten under the same row-major convention.
//
// Stage 1 (Validate): dims invariant, index within [0, Size).
// Stage 2 (Execute): division/modulo chain from the least-significant
// subsystem (last) upward.
// Errors: ErrEmptyDims, ErrNonPositiveDim, ErrIndexOutOfRange.
// Complexity: O(k) time, O(k) space.
func Unflatten(index int, dims Dims) (Label, error) {
	// Stage 1: validate the dimension list.
	if err := ValidateDims(dims); err != nil {
		return nil, fmt.Errorf("%s: %w", methodUnflatten, err)
	}
	// Validate the flat index against the composite size.
	if err := ValidateIndex(index, dims.Size()); err != nil {
		return nil, fmt.Errorf("%s: %w", methodUnflatten, err)
	}

	// Stage 2: peel digits from the least-significant subsystem upward.
	label := make(Label, len(dims))
	rest := index
	for i := len(dims) - 1; i >= 0; i-- {
		label[i] = rest % dims[i] // digit for subsystem i
		rest /= dims[i]           // shift the remaining radix prefix
	}

	return label, nil
}
