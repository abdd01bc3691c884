// Package pauli implements an algebra of multi-qubit Pauli operators
// represented as words over the four-symbol alphabet {I, X, Y, Z}, with
// numeric coefficients and exact phase bookkeeping.
//
// 🚀 What is pauli?
//
//	Every qubit position of an N-qubit operator carries one of the four
//	single-qubit Pauli symbols; the whole operator is a length-N word plus
//	a coefficient. Multiplying two such words is positionwise, and each
//	position may contribute a quarter-turn (i) or a half-turn (-1) to a
//	single global phase drawn from {1, i, -1, -i}.
//
// ✨ Key features:
//   - exact phase accumulation: raw i-turn / minus-turn counters, reduced
//     once per product — no intermediate normalization
//   - Term: an immutable validated word with a generic numeric coefficient
//   - Operator: an ordered sum of equal-length Terms; products keep the
//     full |a|·|b| cross product (like terms are never merged)
//   - Embed: place a small word at chosen 1-based positions of a larger
//     all-identity register
//   - Random words/terms/operators with deterministic, injectable sources
//
// ⚙️ Usage:
//
//	import "github.com/qphase/paulis/pauli"
//
//	a, _ := pauli.NewTerm[complex128]("XY")
//	b, _ := pauli.NewTerm[complex128]("YX")
//	p, _ := pauli.MulTerms(a, b) // +1 * "ZZ"
//
// Errors (sentinel, matched with errors.Is):
//   - ErrInvalidSymbol     — a word carries a byte outside {I,X,Y,Z}
//   - ErrLengthMismatch    — operands disagree on qubit count
//   - ErrInvalidIndex      — bad embedding index list
//   - ErrUsage             — an option meaningless for the requested output
//   - ErrInternalInvariant — product table asked for an out-of-domain pair
//
// Performance:
//
//   - Word product: O(N) time, O(N) output, O(1) auxiliary counters
//   - Operator product: O(|a|·|b|·N)
//
// All values are immutable after construction; concurrent readers need no
// synchronization. The only mutable collaborator is *rand.Rand, which is
// injected per call and never shared implicitly.
package pauli
