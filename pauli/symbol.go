package pauli

// Symbol is a single-qubit Pauli operator tag: one of I, X, Y or Z.
// A Symbol is its word byte; Symbol('X') == X.
type Symbol byte

const (
	// I is the single-qubit identity.
	I Symbol = 'I'
	// X is the Pauli X (bit flip).
	X Symbol = 'X'
	// Y is the Pauli Y.
	Y Symbol = 'Y'
	// Z is the Pauli Z (phase flip).
	Z Symbol = 'Z'
)

// alphabet lists the four symbols in their conventional order.
// Shared by validation and random generation.
var alphabet = [4]Symbol{I, X, Y, Z}

// Valid reports whether s belongs to the four-symbol alphabet.
func (s Symbol) Valid() bool {
	return s == I || s == X || s == Y || s == Z
}

// ValidWord checks that every byte of word is a valid Symbol.
// Returns ErrInvalidSymbol on the first offending byte, nil otherwise.
// The empty word is valid (a zero-qubit register).
//
// Complexity: O(len(word)).
func ValidWord(word string) error {
	for i := 0; i < len(word); i++ {
		if !Symbol(word[i]).Valid() {
			return ErrInvalidSymbol
		}
	}
	return nil
}

// mulSymbol multiplies two single-qubit symbols a*b (in that order).
//
// It returns the result symbol together with two raw phase tags:
//   - iTurn  — the pair contributes one quarter-turn (a factor i)
//   - minus  — the pair contributes one half-turn (a factor -1)
//
// The tags are NOT normalized to a single phase value here; callers
// accumulate them across a whole word and reduce once via ReducePhase.
// A reversed-order pair (e.g. Y*X) carries BOTH tags — i · (-1) = -i —
// so forward and reversed products share one uniform counter encoding.
//
// Rules:
//   - a == b → (I, no tags): every symbol squares to the identity.
//   - I is neutral on either side.
//   - forward cycle  X*Y→Z, Y*Z→X, Z*X→Y: iTurn only.
//   - reversed cycle Y*X→Z, Z*Y→X, X*Z→Y: iTurn and minus.
//
// Any pair outside the 4x4 domain returns ErrInternalInvariant: symbols
// are restricted to the alphabet at every construction boundary, so this
// branch signals corrupted input rather than a user error.
func mulSymbol(a, b Symbol) (r Symbol, iTurn, minus bool, err error) {
	if !a.Valid() || !b.Valid() {
		return 0, false, false, ErrInternalInvariant
	}
	switch {
	case a == b:
		return I, false, false, nil
	case a == I:
		return b, false, false, nil
	case b == I:
		return a, false, false, nil
	}
	// Both operands are now distinct members of {X, Y, Z}.
	switch {
	case a == X && b == Y:
		return Z, true, false, nil
	case a == Y && b == Z:
		return X, true, false, nil
	case a == Z && b == X:
		return Y, true, false, nil
	case a == Y && b == X:
		return Z, true, true, nil
	case a == Z && b == Y:
		return X, true, true, nil
	default: // a == X && b == Z
		return Y, true, true, nil
	}
}
