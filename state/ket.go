// SPDX-License-Identifier: MIT
// Package: state
//
// ket.go — the Ket container: amplitudes plus subsystem dimensions.
//
// Contract:
//   • A Ket pairs complex amplitudes (sparse or dense, whichever the
//     producing generator chose) with the hilbert.Dims of its composite
//     space. Invariant: storage length == dims.Size().
//   • Kets are immutable value results: every accessor returns copies,
//     and no generator retains or mutates a returned Ket.
//
// Determinism:
//   • All accessors are pure; Density() builds a fresh operator per call.

package state

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstate/hilbert"
	"github.com/katalvlaran/qstate/sparse"
)

// normTol is the absolute tolerance under which a ket's squared norm is
// considered exactly 1 when deriving the density operator's normalization
// flag. Tight enough to reject truncated analytic coherent states with
// visible norm loss, loose enough to absorb float round-off.
const normTol = 1e-10

// methodKetAt tags Ket accessor errors.
const methodKetAt = "Ket.At"

// Ket is an immutable pure-state vector over a composite space: complex
// amplitudes of length dims.Size() plus the per-subsystem dimensions.
// Exactly one of vec/dense is set, according to the producing generator.
type Ket struct {
	vec   *sparse.Vector // sparse storage (nil when dense is set)
	dense []complex128   // dense storage (nil when vec is set)
	dims  hilbert.Dims   // per-subsystem dimensions; Size() == length
}

// newSparseKet wraps a sparse vector with its dimensions. Callers (the
// generators) guarantee v.Len() == dims.Size(); this is a private
// constructor, so the invariant is enforced at the call sites.
func newSparseKet(v *sparse.Vector, dims hilbert.Dims) *Ket {
	return &Ket{vec: v, dims: dims}
}

// newDenseKet wraps a dense amplitude slice (ownership transfers to the
// Ket) with its dimensions.
func newDenseKet(amps []complex128, dims hilbert.Dims) *Ket {
	return &Ket{dense: amps, dims: dims}
}

// Dims returns a copy of the per-subsystem dimension list. O(k).
func (k *Ket) Dims() hilbert.Dims { return k.dims.Clone() }

// Len returns the composite-space dimension N. O(1).
func (k *Ket) Len() int {
	if k.vec != nil {
		return k.vec.Len()
	}

	return len(k.dense)
}

// NNZ returns the number of stored nonzero amplitudes. For dense kets it
// counts exact zeros out. Complexity: O(1) sparse, O(N) dense.
func (k *Ket) NNZ() int {
	if k.vec != nil {
		return k.vec.NNZ()
	}
	count := 0
	for _, a := range k.dense {
		if a != 0 {
			count++
		}
	}

	return count
}

// At returns the amplitude at flat index i.
// Errors: sparse.ErrIndexOutOfRange (sparse) or hilbert.ErrIndexOutOfRange
// (dense) for i outside [0, N). Complexity: O(log nnz) / O(1).
func (k *Ket) At(i int) (complex128, error) {
	if k.vec != nil {
		return k.vec.At(i)
	}
	if err := hilbert.ValidateIndex(i, len(k.dense)); err != nil {
		return 0, fmt.Errorf("%s: %w", methodKetAt, err)
	}

	return k.dense[i], nil
}

// Amplitudes returns the full dense amplitude array as a fresh copy.
// Complexity: O(N).
func (k *Ket) Amplitudes() []complex128 {
	if k.vec != nil {
		return k.vec.Dense()
	}

	return append([]complex128(nil), k.dense...)
}

// NonZero returns the sorted flat indices and amplitudes of the nonzero
// entries (copies). Complexity: O(nnz) sparse, O(N) dense.
func (k *Ket) NonZero() ([]int, []complex128) {
	if k.vec != nil {
		return k.vec.NonZero()
	}
	var idx []int
	var amp []complex128
	for i, a := range k.dense {
		if a != 0 {
			idx = append(idx, i)
			amp = append(amp, a)
		}
	}

	return idx, amp
}

// Norm returns the Euclidean norm ‖ψ‖. A freshly generated basis ket has
// norm exactly 1; an analytic coherent ket may sit below 1 (truncation).
// Complexity: O(nnz) / O(N).
func (k *Ket) Norm() float64 {
	if k.vec != nil {
		return k.vec.Norm()
	}

	return cmplxs.Norm(k.dense, 2)
}

// Density returns the pure-state density operator ρ = |ψ⟩⟨ψ| as a dense
// operator over the same dimensions. The normalization flag is true iff
// the ket's squared norm is 1 within normTol.
// Complexity: O(N²) time and space.
func (k *Ket) Density() *Operator {
	amps := k.Amplitudes()
	n := len(amps)

	rho := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		if amps[i] == 0 {
			continue // whole row is zero
		}
		for j := 0; j < n; j++ {
			rho.Set(i, j, amps[i]*cmplx.Conj(amps[j]))
		}
	}

	norm := k.Norm()
	normalized := math.Abs(norm*norm-1) <= normTol

	return newDenseOperator(rho, k.dims.Clone(), normalized)
}
