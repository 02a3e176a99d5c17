// SPDX-License-Identifier: MIT

// Package hilbert: domain types for composite-space bookkeeping.
// This file intentionally contains ONLY domain-facing types (dimension
// lists, basis labels) and their O(k) helpers. Errors live in errors.go,
// validation in validators.go, per the global conventions.
package hilbert

// Dims is the ordered list of per-subsystem dimensions (d1,…,dk).
// Invariant (enforced by Validate): every entry >= 1 and the list is
// non-empty. Ordering is significant: subsystem 0 is the most-significant
// digit of the mixed-radix flat-index encoding.
type Dims []int

// Size returns the composite-space dimension N = d1·d2·…·dk.
// It does not validate entries; call Validate first when dims come from
// untrusted input. Complexity: O(k).
func (d Dims) Size() int {
	// Multiplicative identity as the running product seed.
	size := 1
	for _, di := range d { // O(k) accumulation
		size *= di
	}

	return size
}

// Validate checks the Dims invariant: non-empty, every entry >= 1.
// Returns ErrEmptyDims or ErrNonPositiveDim (wrapped with the offending
// position). Complexity: O(k), zero allocations on success.
func (d Dims) Validate() error {
	return ValidateDims(d)
}

// Clone returns an independent copy of the dimension list.
// Generators hand out clones so callers can never mutate a finished state.
// Complexity: O(k).
func (d Dims) Clone() Dims {
	if d == nil {
		return nil
	}
	out := make(Dims, len(d))
	copy(out, d)

	return out
}

// Label is the ordered list of per-subsystem basis levels (s1,…,sk).
// Invariant (enforced by ValidateLabel against a Dims): 0 <= si < di.
type Label []int

// Clone returns an independent copy of the label.
// Complexity: O(k).
func (l Label) Clone() Label {
	if l == nil {
		return nil
	}
	out := make(Label, len(l))
	copy(out, l)

	return out
}

// Uniform builds a Dims of k subsystems all sharing dimension d.
// It is the broadcast form used by generators that accept a single integer
// dimension for every subsystem (general basis kets, qubit registers).
// Invalid inputs (k < 1 or d < 1) surface later through Validate at the
// consuming call site; Uniform itself never fails. Complexity: O(k).
func Uniform(k, d int) Dims {
	if k < 1 {
		// Degenerate request: an empty Dims fails Validate downstream.
		return Dims{}
	}
	dims := make(Dims, k)
	for i := range dims {
		dims[i] = d
	}

	return dims
}
