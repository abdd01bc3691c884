// Package paulis is an in-memory algebra for multi-qubit Pauli operators —
// strings over the {I, X, Y, Z} alphabet paired with numeric coefficients.
//
// 🚀 What is paulis?
//
//	A small, dependency-light library that brings together:
//		• Symbol algebra: the single-qubit Pauli product table with exact
//		  phase bookkeeping
//		• Phase ring: the 4th-roots-of-unity group {1, i, -1, -i}
//		• Words: O(N) multiplication of equal-length operator strings
//		• Terms & Operators: weighted strings and ordered sums thereof
//		• Embedding: placing a small operator at chosen positions of a
//		  larger all-identity register
//		• Random generation: deterministic, injectable randomness
//		• Dense realization: 2^N x 2^N complex matrices via gonum
//
// ✨ Why choose paulis?
//
//   - Exact phases – dual-counter accumulation with one reduction at the
//     end, never an intermediate normalization step
//   - Rock-solid contracts – sentinel errors for every failure mode,
//     checked with errors.Is
//   - Value semantics – Terms and Operators are immutable; share them
//     freely across goroutines
//
// Everything is organized under two subpackages:
//
//	pauli/    — symbols, phases, words, terms, operators, embedding, RNG
//	paulimat/ — dense complex-matrix realization on gonum mat.CDense
//
// Quick example:
//
//	(X ⊗ Y) · (Y ⊗ X)  =  +1 · (Z ⊗ Z)
//
// the per-qubit phases (+i and -i) cancel across the register.
//
//	go get github.com/qphase/paulis/pauli
package paulis
