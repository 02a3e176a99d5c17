// Package qstate generates canonical quantum states — pure kets and mixed
// density operators — over finite-dimensional composite Hilbert spaces.
//
// 🚀 What is qstate?
//
//	A small, deterministic library that brings together:
//		• Index mapping: per-subsystem basis labels ⇆ flat composite indices
//		• Sparse builders: vectors & diagonal matrices straight from
//		  (index, amplitude) lists — never a dense detour
//		• Generators: basis/Fock, coherent, thermal, maximally mixed,
//		  maximally entangled, general kets and qubit registers
//
// ✨ Why choose qstate?
//
//   - Closed forms first – sparse states come straight from their
//     formulas in O(nonzeros); dense machinery only where the math
//     demands it (displacement operators)
//   - Rock-solid guarantees – sentinel errors, strict validation,
//     immutable value results
//   - Pure functions – no shared state, safe under any concurrency
//
// Everything is organized under three subpackages:
//
//	hilbert/ — composite-space dimensions, basis labels, Flatten/Unflatten
//	sparse/  — sparse complex vectors & diagonal matrices
//	state/   — Ket/Operator containers and all state generators
//
// Quick sketch:
//
//	|101⟩ over three qubits  →  flat index 0b101 = 5
//	GHZ over d-level copies  →  nonzeros at m·(dᵏ−1)/(d−1)
//
// Dive into each package's doc.go for contracts, complexity notes and the
// full error sets.
//
//	go get github.com/katalvlaran/qstate
package qstate
