// SPDX-License-Identifier: MIT
// Package: state
//
// operator.go — the Operator container: a square complex matrix plus its
// subsystem dimensions and a trace-normalization flag.
//
// Contract:
//   • Exactly one storage form is set: sparse diagonal (thermal, maximally
//     mixed) or dense (displacement, density matrices). Invariant:
//     order == dims.Size().
//   • Normalized() reports what the producing generator guarantees: true
//     means unit trace by construction (a density operator), false means
//     no such guarantee (e.g. a unitary like D(α)).
//   • Operators are immutable; accessors return copies or values.
//
// Complexity:
//   • At: O(1). Trace: O(N) diagonal / O(N) dense. Column: O(N).
//   • PartialTrace: O(N·d·k) dense, O(N·k) diagonal (d = kept dimension,
//     k = number of subsystems).

package state

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// File-local method tags for unified error wrapping.
const (
	methodOperatorAt   = "Operator.At"
	methodColumn       = "Operator.Column"
	methodPartialTrace = "Operator.PartialTrace"
)

// Operator is an immutable square complex matrix over a composite space,
// tagged with its per-subsystem dimensions and a normalization flag.
type Operator struct {
	diag       *sparse.Diagonal // diagonal storage (nil when dense is set)
	dense      *mat.CDense      // dense storage (nil when diag is set)
	dims       hilbert.Dims     // per-subsystem dimensions; Size() == order
	normalized bool             // true iff unit trace is guaranteed by construction
}

// newDiagonalOperator wraps a sparse diagonal matrix. Private: generators
// guarantee d.Order() == dims.Size().
func newDiagonalOperator(d *sparse.Diagonal, dims hilbert.Dims, normalized bool) *Operator {
	return &Operator{diag: d, dims: dims, normalized: normalized}
}

// newDenseOperator wraps a dense matrix (ownership transfers).
func newDenseOperator(m *mat.CDense, dims hilbert.Dims, normalized bool) *Operator {
	return &Operator{dense: m, dims: dims, normalized: normalized}
}

// Dims returns a copy of the per-subsystem dimension list. O(k).
func (o *Operator) Dims() hilbert.Dims { return o.dims.Clone() }

// Order returns the matrix order N. O(1).
func (o *Operator) Order() int {
	if o.diag != nil {
		return o.diag.Order()
	}
	r, _ := o.dense.Dims()

	return r
}

// Normalized reports whether the operator carries a unit-trace guarantee
// from its producing generator. O(1).
func (o *Operator) Normalized() bool { return o.normalized }

// IsDiagonal reports whether the operator uses sparse diagonal storage
// (and is therefore zero off the main diagonal). O(1).
func (o *Operator) IsDiagonal() bool { return o.diag != nil }

// At returns the entry at row i, column j.
// Errors: wraps hilbert.ErrIndexOutOfRange-style bounds via the storage.
func (o *Operator) At(i, j int) (complex128, error) {
	if o.diag != nil {
		v, err := o.diag.At(i, j)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodOperatorAt, err)
		}

		return v, nil
	}
	n := o.Order()
	if err := hilbert.ValidateIndex(i, n); err != nil {
		return 0, fmt.Errorf("%s: row: %w", methodOperatorAt, err)
	}
	if err := hilbert.ValidateIndex(j, n); err != nil {
		return 0, fmt.Errorf("%s: column: %w", methodOperatorAt, err)
	}

	return o.dense.At(i, j), nil
}

// Diag returns a copy of the main diagonal. O(N).
func (o *Operator) Diag() []complex128 {
	if o.diag != nil {
		return o.diag.Diag()
	}
	n := o.Order()
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = o.dense.At(i, i)
	}

	return out
}

// Trace returns the sum of the diagonal entries. O(N).
func (o *Operator) Trace() complex128 {
	if o.diag != nil {
		return o.diag.Trace()
	}
	var tr complex128
	n := o.Order()
	for i := 0; i < n; i++ {
		tr += o.dense.At(i, i)
	}

	return tr
}

// Dense returns the full matrix as a fresh gonum CDense copy. O(N²).
func (o *Operator) Dense() *mat.CDense {
	if o.diag != nil {
		return o.diag.Dense()
	}
	n := o.Order()
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, o.dense.At(i, j))
		}
	}

	return out
}

// Column returns column j as a dense slice — Coherent's displacement path
// extracts column 0 this way (D(α) applied to the vacuum).
// Errors: hilbert.ErrIndexOutOfRange. Complexity: O(N).
func (o *Operator) Column(j int) ([]complex128, error) {
	n := o.Order()
	if err := hilbert.ValidateIndex(j, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodColumn, err)
	}

	out := make([]complex128, n)
	if o.diag != nil {
		// A diagonal column has a single (possibly zero) entry at row j.
		v, err := o.diag.At(j, j)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodColumn, err)
		}
		out[j] = v

		return out, nil
	}
	for i := 0; i < n; i++ {
		out[i] = o.dense.At(i, j)
	}

	return out, nil
}

// PartialTrace traces out every subsystem except the one at position keep,
// returning the reduced operator over hilbert.Dims{dims[keep]}.
//
// Stage 1 (Validate): keep within the dimension list.
// Stage 2 (Execute): for every row index, relabel the kept subsystem over
// all its levels and accumulate the matching matrix entries; diagonal
// storage short-circuits to a diagonal accumulation.
// Stage 3 (Finalize): the flag carries over — tracing preserves trace, so
// a normalized operator stays normalized.
// Errors: ErrSubsystemIndex. Complexity: O(N·d·k) dense, O(N·k) diagonal.
func (o *Operator) PartialTrace(keep int) (*Operator, error) {
	// Stage 1: validate the kept subsystem position.
	if keep < 0 || keep >= len(o.dims) {
		return nil, fmt.Errorf("%s: position %d outside [0,%d): %w",
			methodPartialTrace, keep, len(o.dims), ErrSubsystemIndex)
	}
	d := o.dims[keep]
	n := o.Order()

	// Diagonal fast path: the reduced operator is diagonal too, with
	// entry a accumulating every diagonal element whose label keeps a.
	if o.diag != nil {
		reduced := make([]complex128, d)
		full := o.diag.Diag()
		for r := 0; r < n; r++ {
			label, err := hilbert.Unflatten(r, o.dims)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodPartialTrace, err)
			}
			reduced[label[keep]] += full[r]
		}
		dd, err := sparse.NewDiagonal(d, reduced)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPartialTrace, err)
		}

		return newDiagonalOperator(dd, hilbert.Dims{d}, o.normalized), nil
	}

	// Dense path: ρ'[a][b] = Σ_t ⟨a,t|ρ|b,t⟩ over the traced labels t.
	out := mat.NewCDense(d, d, nil)
	for r := 0; r < n; r++ {
		label, err := hilbert.Unflatten(r, o.dims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPartialTrace, err)
		}
		a := label[keep]
		// Swing the kept subsystem through every level b at fixed others.
		col := label.Clone()
		for b := 0; b < d; b++ {
			col[keep] = b
			c, err := hilbert.Flatten(col, o.dims)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodPartialTrace, err)
			}
			out.Set(a, b, out.At(a, b)+o.dense.At(r, c))
		}
	}

	return newDenseOperator(out, hilbert.Dims{d}, o.normalized), nil
}
