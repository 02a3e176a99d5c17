// SPDX-License-Identifier: MIT
// Package: sparse
//
// vector.go — immutable sparse complex vector built from an
// (index, amplitude) list.
//
// Contract:
//   • NewVector(n, indices, amps): n ≥ 1, len(indices) == len(amps),
//     indices pairwise distinct and within [0, n).
//   • Construction is O(nnz·log nnz) and never materializes the dense
//     length-n array; Dense() is the only O(n) surface and returns a copy.
//   • Vectors are immutable after construction: every accessor returns
//     copies or values, never internal storage.
//
// Determinism:
//   • Entries are stored sorted by index regardless of input order, so
//     NonZero() output is canonical for a given entry set.

package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/cmplxs"
)

// File-local method tags for unified error wrapping (no magic strings).
const (
	methodNewVector = "NewVector"
	methodUnit      = "Unit"
	methodVectorAt  = "Vector.At"
)

// Vector is an immutable sparse complex vector: logical length n with
// nonzero amplitudes at the (sorted) idx positions. All unlisted positions
// are implicitly zero.
type Vector struct {
	n   int          // logical length N of the vector
	idx []int        // sorted nonzero positions, pairwise distinct
	amp []complex128 // amplitudes parallel to idx
}

// NewVector builds a sparse vector of logical length n from parallel
// (index, amplitude) slices.
//
// Stage 1 (Validate): n ≥ 1, matching slice lengths, per-entry bounds.
// Stage 2 (Prepare): copy entries into owned storage.
// Stage 3 (Execute): sort by index, then reject duplicates in one pass.
// Errors: ErrBadLength, ErrLengthMismatch, ErrIndexOutOfRange,
// ErrDuplicateIndex. Complexity: O(nnz·log nnz) time, O(nnz) space.
func NewVector(n int, indices []int, amps []complex128) (*Vector, error) {
	// Stage 1: validate the logical length before anything else.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewVector, n, ErrBadLength)
	}
	// Parallel slices must agree in length.
	if len(indices) != len(amps) {
		return nil, fmt.Errorf("%s: %d indices vs %d amplitudes: %w",
			methodNewVector, len(indices), len(amps), ErrLengthMismatch)
	}
	// Per-entry bounds; report the offending index with context.
	for k, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%s: entry %d index %d outside [0,%d): %w",
				methodNewVector, k, i, n, ErrIndexOutOfRange)
		}
	}

	// Stage 2: copy into owned storage (callers keep their slices).
	v := &Vector{
		n:   n,
		idx: append([]int(nil), indices...),
		amp: append([]complex128(nil), amps...),
	}

	// Stage 3: canonical index order, amplitudes carried alongside.
	sort.Sort(byIndex{v})
	// Duplicates are adjacent after sorting; a single linear scan finds them.
	for k := 1; k < len(v.idx); k++ {
		if v.idx[k] == v.idx[k-1] {
			return nil, fmt.Errorf("%s: index %d listed twice: %w",
				methodNewVector, v.idx[k], ErrDuplicateIndex)
		}
	}

	return v, nil
}

// Unit builds the sparse vector of logical length n with a single unit
// amplitude at position i — the canonical basis vector e_i.
// Errors: ErrBadLength, ErrIndexOutOfRange. Complexity: O(1).
func Unit(n, i int) (*Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodUnit, n, ErrBadLength)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%s: index %d outside [0,%d): %w", methodUnit, i, n, ErrIndexOutOfRange)
	}

	return &Vector{n: n, idx: []int{i}, amp: []complex128{1}}, nil
}

// Len returns the logical length N. Complexity: O(1).
func (v *Vector) Len() int { return v.n }

// NNZ returns the number of stored nonzero entries. Complexity: O(1).
func (v *Vector) NNZ() int { return len(v.idx) }

// At returns the amplitude at position i (zero for unlisted positions).
// Errors: ErrIndexOutOfRange. Complexity: O(log nnz) binary search.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("%s: index %d outside [0,%d): %w", methodVectorAt, i, v.n, ErrIndexOutOfRange)
	}
	// Binary search over the sorted nonzero positions.
	k := sort.SearchInts(v.idx, i)
	if k < len(v.idx) && v.idx[k] == i {
		return v.amp[k], nil
	}

	// Position not listed: implicitly zero.
	return 0, nil
}

// NonZero returns copies of the sorted nonzero positions and their
// amplitudes. Mutating the returned slices never affects the vector.
// Complexity: O(nnz).
func (v *Vector) NonZero() ([]int, []complex128) {
	return append([]int(nil), v.idx...), append([]complex128(nil), v.amp...)
}

// Dense materializes the full length-N amplitude array. This is the only
// O(N) accessor; generators call it solely when a dense result is the
// requested output shape. Complexity: O(N) time and space.
func (v *Vector) Dense() []complex128 {
	out := make([]complex128, v.n)
	for k, i := range v.idx {
		out[i] = v.amp[k]
	}

	return out
}

// Norm returns the Euclidean (2-)norm of the vector. Zero positions
// contribute nothing, so only stored entries participate.
// Complexity: O(nnz).
func (v *Vector) Norm() float64 {
	return cmplxs.Norm(v.amp, 2)
}

// Scale returns a new Vector with every amplitude multiplied by c.
// The receiver is left untouched (immutability). Complexity: O(nnz).
func (v *Vector) Scale(c complex128) *Vector {
	amp := append([]complex128(nil), v.amp...)
	cmplxs.Scale(c, amp)

	return &Vector{n: v.n, idx: append([]int(nil), v.idx...), amp: amp}
}

// byIndex sorts a Vector's parallel slices by nonzero position.
type byIndex struct{ v *Vector }

func (s byIndex) Len() int           { return len(s.v.idx) }
func (s byIndex) Less(i, j int) bool { return s.v.idx[i] < s.v.idx[j] }
func (s byIndex) Swap(i, j int) {
	s.v.idx[i], s.v.idx[j] = s.v.idx[j], s.v.idx[i]
	s.v.amp[i], s.v.amp[j] = s.v.amp[j], s.v.amp[i]
}
