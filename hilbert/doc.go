// SPDX-License-Identifier: MIT

// Package hilbert models finite-dimensional composite (tensor-product)
// Hilbert spaces and the mapping between per-subsystem basis labels and
// flat indices into the composite space.
//
// What:
//
//   - Dims — ordered per-subsystem dimensions (d1,…,dk); composite size
//     is the product d1·d2·…·dk.
//   - Label — ordered per-subsystem basis levels (s1,…,sk) with
//     0 ≤ si < di, naming exactly one basis vector of the composite space.
//   - Flatten — mixed-radix positional encoding of a Label into a single
//     0-based flat index (most-significant subsystem first, matching the
//     tensor-product ordering |s1⟩⊗|s2⟩⊗…⊗|sk⟩).
//   - Unflatten — the inverse division/modulo chain.
//   - Uniform — broadcast a single dimension to k subsystems.
//
// Why:
//
//   - Every state generator in qstate is a thin specialization of this
//     indexing layer: once a label maps to a flat index, states are just
//     (index, amplitude) sets handed to the sparse builder.
//
// Complexity:
//
//   - Flatten / Unflatten: O(k) time, O(1) / O(k) space (k = subsystems).
//   - All validators: O(k) time, zero allocations on the happy path.
//
// Errors:
//
//   - ErrEmptyDims: empty dimension list.
//   - ErrNonPositiveDim: some subsystem dimension < 1.
//   - ErrLengthMismatch: label and dims differ in length.
//   - ErrLevelOutOfRange: some level si outside [0, di).
//   - ErrIndexOutOfRange: flat index outside [0, Size).
package hilbert
