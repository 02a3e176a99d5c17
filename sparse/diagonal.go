// SPDX-License-Identifier: MIT
// Package: sparse
//
// diagonal.go — immutable square diagonal complex matrix.
//
// Contract:
//   • NewDiagonal(n, diag): n ≥ 1 and len(diag) == n; the matrix is zero
//     everywhere off the main diagonal by construction.
//   • Storage is O(N) — the full N×N dense structure is materialized only
//     by Dense(), which exists for collaborators that need a dense view.
//   • Diagonals are immutable after construction; accessors return copies.
//
// Complexity:
//   • NewDiagonal: O(N). At: O(1). Trace/Diag: O(N). Dense: O(N²).

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// File-local method tags for unified error wrapping.
const (
	methodNewDiagonal = "NewDiagonal"
	methodDiagonalAt  = "Diagonal.At"
)

// Diagonal is an immutable square complex matrix of order n whose only
// (potentially) nonzero entries sit on the main diagonal.
type Diagonal struct {
	n    int          // matrix order N
	diag []complex128 // main diagonal, length N
}

// NewDiagonal builds an order-n diagonal matrix from its main diagonal.
//
// Errors: ErrBadLength (n < 1), ErrLengthMismatch (len(diag) != n).
// Complexity: O(N) time and space (one defensive copy).
func NewDiagonal(n int, diag []complex128) (*Diagonal, error) {
	// Validate the order before allocation.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewDiagonal, n, ErrBadLength)
	}
	// The diagonal must cover every row exactly once.
	if len(diag) != n {
		return nil, fmt.Errorf("%s: %d diagonal entries for order %d: %w",
			methodNewDiagonal, len(diag), n, ErrLengthMismatch)
	}

	return &Diagonal{n: n, diag: append([]complex128(nil), diag...)}, nil
}

// Order returns the matrix order N. Complexity: O(1).
func (d *Diagonal) Order() int { return d.n }

// At returns the entry at row i, column j; off-diagonal reads yield zero.
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (d *Diagonal) At(i, j int) (complex128, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("%s: (%d,%d) outside order-%d bounds: %w",
			methodDiagonalAt, i, j, d.n, ErrIndexOutOfRange)
	}
	if i != j {
		return 0, nil
	}

	return d.diag[i], nil
}

// Diag returns a copy of the main diagonal. Complexity: O(N).
func (d *Diagonal) Diag() []complex128 {
	return append([]complex128(nil), d.diag...)
}

// Trace returns the sum of the diagonal entries. Complexity: O(N).
func (d *Diagonal) Trace() complex128 {
	return cmplxs.Sum(d.diag)
}

// NNZ returns the number of nonzero diagonal entries. Complexity: O(N).
func (d *Diagonal) NNZ() int {
	count := 0
	for _, e := range d.diag {
		if e != 0 {
			count++
		}
	}

	return count
}

// Dense materializes the full N×N matrix as a gonum CDense. This is the
// only O(N²) surface of the type; collaborators needing dense arithmetic
// (partial trace over a dense view, display, export) call it explicitly.
// Complexity: O(N²) time and space.
func (d *Diagonal) Dense() *mat.CDense {
	out := mat.NewCDense(d.n, d.n, nil)
	for i, e := range d.diag {
		out.Set(i, i, e)
	}

	return out
}
