// SPDX-License-Identifier: MIT

// Package state generates canonical quantum states — pure kets and mixed
// density operators — over finite-dimensional composite Hilbert spaces.
//
// What:
//
//   - Ket / Operator — immutable containers pairing numeric amplitudes
//     with their per-subsystem dimensions (hilbert.Dims); Operator carries
//     an additional trace-normalization flag.
//   - Basis(n, k) — Fock/number state |k⟩ in an n-level space.
//   - Coherent(n, α) — truncated coherent state, via the displacement
//     operator (default, unit-norm) or the analytic closed form
//     (WithAnalytic, faster, not renormalized).
//   - Thermal(n, n̄) — Boltzmann-diagonal mixed state with mean occupancy n̄.
//   - MaxMixed(n) — maximally mixed state, every diagonal entry 1/n.
//   - MaxEntangled(copies) — GHZ-like equal superposition over identical
//     labels across several copies of a subsystem (WithSubsystemDim).
//   - NewKet(label, dims) / NewKetUniform / Qubits — general basis-state
//     constructors over arbitrary composite spaces.
//   - Displacement(n, α) — truncated displacement operator D(α), the
//     collaborator behind Coherent's default path.
//
// Why:
//
//   - Every generator is a thin specialization of the hilbert index mapper
//     and the sparse builder: compute the (index, amplitude) set from the
//     closed form, hand it over, wrap with dimensions. Nothing here ever
//     materializes a dense structure unless the result itself is dense.
//
// Complexity:
//
//   - Basis/NewKet/Qubits: O(k) (k = subsystems).
//   - Coherent analytic / Thermal / MaxMixed: O(n).
//   - Coherent displacement path: O(n³) (dense matrix exponential).
//   - MaxEntangled: O(copies + d) beyond the index arithmetic.
//
// Errors:
//
//   - hilbert.ErrLevelOutOfRange: any basis level not strictly below its
//     subsystem dimension (the library's single out-of-range error kind).
//   - ErrBadDimension, ErrBadCopies, ErrDegenerateSubsystem,
//     ErrNegativeOccupancy, ErrSubsystemIndex: see errors.go.
//
// All operations are pure functions of their arguments: no shared state,
// no I/O, safe to call from any number of goroutines concurrently.
package state
