// Package pauli: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No function panics on user-triggered error conditions.

package pauli

import "errors"

var (
	// ErrInvalidSymbol indicates a word contains a byte outside {I, X, Y, Z}.
	ErrInvalidSymbol = errors.New("pauli: invalid symbol: words are restricted to I, X, Y, Z")

	// ErrLengthMismatch indicates two operands expected to share a qubit
	// count do not: term/operator products, parallel construction lists,
	// or an embedding register smaller than the source word.
	ErrLengthMismatch = errors.New("pauli: qubit count mismatch")

	// ErrInvalidIndex indicates an embedding index list of the wrong
	// length, with duplicate entries, or with an out-of-range position.
	ErrInvalidIndex = errors.New("pauli: invalid embedding index")

	// ErrUsage indicates an option that is meaningless for the requested
	// output, e.g. a random coefficient attached to a bare word.
	ErrUsage = errors.New("pauli: invalid usage")

	// ErrInternalInvariant indicates the symbol product table was asked to
	// multiply a pair outside its 4x4 domain. Unreachable through validated
	// constructors; it signals corrupted input, not a user error.
	ErrInternalInvariant = errors.New("pauli: internal invariant violated: symbol outside product table domain")
)
