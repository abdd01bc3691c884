// Package paulimat realizes Pauli words, terms and operators as dense
// complex matrices on gonum's mat.CDense.
//
// 🚀 What is paulimat?
//
//	The concrete 2^N x 2^N picture of the symbolic algebra in package
//	pauli: each symbol maps to its 2x2 matrix, a word is the Kronecker
//	product of its symbols (qubit 1 = leftmost factor), a term scales the
//	word matrix by its coefficient, and an operator sums its terms.
//
// ✨ Key properties:
//   - homomorphism: the matrix of MulTerms(a, b) equals the matrix
//     product TermMatrix(a)·TermMatrix(b) — phases included
//   - fresh values: every call returns a newly allocated CDense; nothing
//     shares backing storage
//   - bounded: registers above MaxQubits are rejected up front rather
//     than attempting a multi-gigabyte allocation
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/qphase/paulis/pauli"
//	    "github.com/qphase/paulis/paulimat"
//	)
//
//	t, _ := pauli.NewTerm("XZ", 0.5)
//	m, _ := paulimat.TermMatrix(t) // 4x4 complex matrix
//
// Errors (sentinel, matched with errors.Is):
//   - ErrRegisterTooLarge    — word longer than MaxQubits
//   - ErrEmptyOperator       — zero-value operator with no terms
//   - pauli.ErrInvalidSymbol — word outside the {I,X,Y,Z} alphabet
//
// Complexity: WordMatrix is O(4^N) output — dense realization is meant
// for small registers (tests, spot checks, spectra), not bulk algebra.
package paulimat
