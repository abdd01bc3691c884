package pauli

import "fmt"

// Term is a single weighted multi-qubit Pauli operator: a validated word
// over {I,X,Y,Z} paired with a coefficient of type T.
//
// A Term is immutable after construction. Its qubit count is the word
// length and is re-checked at every operation boundary, so mixed-length
// operations fail at the cheapest possible point.
type Term[T Coeff] struct {
	word  string
	coeff T
}

// NewTerm builds a Term from a word and an optional coefficient.
//
// The coefficient defaults to the multiplicative identity of T when
// omitted. Passing more than one coefficient value is ErrUsage.
//
// Errors:
//   - ErrInvalidSymbol — word contains a byte outside {I, X, Y, Z}.
//   - ErrUsage         — more than one coefficient supplied.
func NewTerm[T Coeff](word string, coeff ...T) (Term[T], error) {
	if len(coeff) > 1 {
		return Term[T]{}, ErrUsage
	}
	if err := ValidWord(word); err != nil {
		return Term[T]{}, err
	}
	var c T = 1
	if len(coeff) == 1 {
		c = coeff[0]
	}
	return Term[T]{word: word, coeff: c}, nil
}

// Word returns the symbol word.
func (t Term[T]) Word() string { return t.word }

// Coeff returns the coefficient.
func (t Term[T]) Coeff() T { return t.coeff }

// Qubits returns the register size N (the word length).
func (t Term[T]) Qubits() int { return len(t.word) }

// Equal reports whether o has the same qubit count, an identical word,
// and an equal coefficient. Terms of differing length are unequal,
// never an error.
func (t Term[T]) Equal(o Term[T]) bool {
	return t.word == o.word && t.coeff == o.coeff
}

// String renders the term as "coeff*WORD".
func (t Term[T]) String() string {
	return fmt.Sprintf("%v*%s", t.coeff, t.word)
}

// MulTerms multiplies two equal-length terms.
//
// The word product and its phase come from MulWords; the result
// coefficient is phase·(cA·cB), with the coefficient product taken first
// and the phase applied to it afterwards. The result always carries the
// promoted coefficient type complex128 (see Coeff), whatever T and U are.
//
// Errors:
//   - ErrLengthMismatch — operands disagree on qubit count.
//
// Complexity: O(N).
func MulTerms[T, U Coeff](a Term[T], b Term[U]) (Term[complex128], error) {
	phase, word, err := MulWords(a.word, b.word)
	if err != nil {
		return Term[complex128]{}, err
	}
	return Term[complex128]{
		word:  word,
		coeff: Scale(phase, Complex(a.coeff)*Complex(b.coeff)),
	}, nil
}
