// SPDX-License-Identifier: MIT
// Package: state
//
// displacement.go — truncated displacement operator D(α) on an n-level
// space, the collaborator behind Coherent's default construction path.
//
// Contract:
//   • D(α) = exp(α·a† − ᾱ·a) with a the truncated annihilation operator
//     (a|k⟩ = √k·|k−1⟩). The generator is anti-Hermitian, so the
//     exponential is exactly unitary in the truncated space up to float
//     round-off.
//   • Normalized flag on the result is false: D(α) is a unitary, not a
//     trace-normalized density operator.
//
// Complexity:
//   • O(n³) per Taylor/squaring step — the price Coherent's default path
//     pays for a guaranteed unit-norm column.
//
// Determinism:
//   • Pure arithmetic; fixed scaling target and Taylor degree, no RNG.

package state

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qstate/hilbert"
)

// methodDisplacement tags Displacement errors.
const methodDisplacement = "Displacement"

// expmScaleTarget is the infinity-norm bound the input is scaled under
// before the Taylor kernel runs (scaling-and-squaring).
const expmScaleTarget = 0.5

// expmTaylorTerms is the fixed Taylor degree; with ‖X‖∞ ≤ 0.5 the first
// dropped term is below 0.5²¹/21! ≈ 1e-26, far under float64 resolution.
const expmTaylorTerms = 20

// Displacement builds the truncated displacement operator D(α) over an
// n-level space.
//
// Stage 1 (Validate): n ≥ 1.
// Stage 2 (Prepare): assemble the bidiagonal generator α·a† − ᾱ·a.
// Stage 3 (Execute): dense matrix exponential via scaling-and-squaring.
// Errors: ErrBadDimension. Complexity: O(n³) time, O(n²) space.
func Displacement(n int, alpha complex128) (*Operator, error) {
	// Stage 1: a displacement needs at least the vacuum level.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDisplacement, n, ErrBadDimension)
	}

	// Stage 2: generator A with A[k][k-1] = α·√k and A[k-1][k] = −ᾱ·√k.
	gen := mat.NewCDense(n, n, nil)
	for k := 1; k < n; k++ {
		root := complex(math.Sqrt(float64(k)), 0)
		gen.Set(k, k-1, alpha*root)              // α·a† contribution
		gen.Set(k-1, k, -cmplx.Conj(alpha)*root) // −ᾱ·a contribution
	}

	// Stage 3: exponentiate the anti-Hermitian generator.
	d := expm(gen)

	return newDenseOperator(d, hilbert.Dims{n}, false), nil
}

// expm computes exp(a) for a square complex matrix by scaling-and-squaring
// around a fixed-degree Taylor kernel. Private: inputs come only from
// Displacement, already validated.
func expm(a *mat.CDense) *mat.CDense {
	n, _ := a.Dims()

	// Infinity norm (max absolute row sum) drives the scaling depth.
	norm := 0.0
	for i := 0; i < n; i++ {
		row := 0.0
		for j := 0; j < n; j++ {
			row += cmplx.Abs(a.At(i, j))
		}
		norm = math.Max(norm, row)
	}
	squarings := 0
	for ; norm > expmScaleTarget; squarings++ {
		norm /= 2
	}

	// Scale the input down to the Taylor kernel's convergence region.
	scale := complex(math.Ldexp(1, -squarings), 0)
	x := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x.Set(i, j, a.At(i, j)*scale)
		}
	}

	// Taylor kernel: sum = I + Σ x^k/k! with term recurrence.
	sum := identityCDense(n)
	term := identityCDense(n)
	for k := 1; k <= expmTaylorTerms; k++ {
		next := mulCDense(term, x)
		invK := complex(1/float64(k), 0)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := next.At(i, j) * invK
				next.Set(i, j, v)
				sum.Set(i, j, sum.At(i, j)+v)
			}
		}
		term = next
	}

	// Undo the scaling: square the kernel result back up.
	for ; squarings > 0; squarings-- {
		sum = mulCDense(sum, sum)
	}

	return sum
}

// mulCDense returns the product a·b for equally sized square complex
// matrices, computed through the cblas128 Gemm kernel over the raw
// storage (mat.CDense carries no multiply of its own).
func mulCDense(a, b *mat.CDense) *mat.CDense {
	n, _ := a.Dims()
	out := mat.NewCDense(n, n, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())

	return out
}

// identityCDense returns the n×n complex identity matrix.
func identityCDense(n int) *mat.CDense {
	id := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}
