// SPDX-License-Identifier: MIT

// Package sparse provides the sparse numeric containers that every state
// generator in qstate builds into: complex vectors with few nonzero
// entries and square diagonal matrices.
//
// What:
//
//   - Vector — immutable sparse complex128 vector of logical length N,
//     stored as index-sorted parallel (index, amplitude) slices.
//   - Diagonal — immutable square complex128 matrix of order N that is
//     zero everywhere off the main diagonal.
//   - NewVector / Unit / NewDiagonal — constructors that validate once and
//     never allocate the dense N (or N²) structure.
//
// Why:
//
//   - Canonical quantum states are overwhelmingly sparse: a basis ket has
//     one nonzero entry, a GHZ ket has d, a thermal density operator is
//     purely diagonal. Building them from (index, amplitude) lists keeps
//     construction O(nnz) and memory O(nnz) or O(N), never O(N²).
//
// Complexity:
//
//   - NewVector: O(nnz·log nnz) (index sort), O(nnz) space.
//   - Vector.At: O(log nnz) binary search; Dense: O(N).
//   - NewDiagonal: O(N); Diagonal.At: O(1); Trace: O(N).
//
// Errors:
//
//   - ErrBadLength: requested logical length < 1.
//   - ErrLengthMismatch: index and amplitude slices differ in length.
//   - ErrIndexOutOfRange: an entry index outside [0, N).
//   - ErrDuplicateIndex: the same index listed twice.
package sparse
