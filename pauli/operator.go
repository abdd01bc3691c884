package pauli

import "strings"

// Operator is an ordered sum of Terms over one shared qubit count N.
//
// The term sequence is never canonicalized: order is construction order,
// duplicates are kept, and products append like terms verbatim (merging
// identical words is intentionally out of scope). An Operator is
// immutable; every method returning terms or a derived operator hands
// out fresh copies.
type Operator[T Coeff] struct {
	qubits int
	terms  []Term[T]
}

// NewOperator builds an Operator from one or more terms. The qubit count
// is fixed by the first term; any later term of a different length is
// ErrLengthMismatch.
func NewOperator[T Coeff](first Term[T], rest ...Term[T]) (Operator[T], error) {
	terms := make([]Term[T], 0, 1+len(rest))
	terms = append(terms, first)
	for _, t := range rest {
		if t.Qubits() != first.Qubits() {
			return Operator[T]{}, ErrLengthMismatch
		}
		terms = append(terms, t)
	}
	return Operator[T]{qubits: first.Qubits(), terms: terms}, nil
}

// OperatorFromWords builds an Operator from parallel word and coefficient
// lists. A nil coeffs slice defaults every coefficient to the identity.
//
// Errors:
//   - ErrUsage          — words is empty (the first term fixes N and T).
//   - ErrLengthMismatch — coeffs is non-nil with a different length than
//     words, or the words disagree on qubit count.
//   - ErrInvalidSymbol  — a word carries a byte outside the alphabet.
func OperatorFromWords[T Coeff](words []string, coeffs []T) (Operator[T], error) {
	if len(words) == 0 {
		return Operator[T]{}, ErrUsage
	}
	if coeffs != nil && len(coeffs) != len(words) {
		return Operator[T]{}, ErrLengthMismatch
	}

	terms := make([]Term[T], 0, len(words))
	for i, w := range words {
		if len(w) != len(words[0]) {
			return Operator[T]{}, ErrLengthMismatch
		}
		var (
			t   Term[T]
			err error
		)
		if coeffs == nil {
			t, err = NewTerm[T](w)
		} else {
			t, err = NewTerm(w, coeffs[i])
		}
		if err != nil {
			return Operator[T]{}, err
		}
		terms = append(terms, t)
	}
	return Operator[T]{qubits: len(words[0]), terms: terms}, nil
}

// Qubits returns the shared register size N.
func (op Operator[T]) Qubits() int { return op.qubits }

// NumTerms returns the number of terms in the sum.
func (op Operator[T]) NumTerms() int { return len(op.terms) }

// Terms returns a copy of the term sequence in construction order.
// Terms themselves are immutable and may be shared freely.
func (op Operator[T]) Terms() []Term[T] {
	out := make([]Term[T], len(op.terms))
	copy(out, op.terms)
	return out
}

// Copy returns an Operator owning an independent term sequence.
func (op Operator[T]) Copy() Operator[T] {
	return Operator[T]{qubits: op.qubits, terms: op.Terms()}
}

// Equal reports whether o has the same qubit count and a pairwise-equal
// term sequence in the same order. Permuted but algebraically equivalent
// sums compare unequal. Differing qubit counts are unequal, never an error.
func (op Operator[T]) Equal(o Operator[T]) bool {
	if op.qubits != o.qubits || len(op.terms) != len(o.terms) {
		return false
	}
	for i := range op.terms {
		if !op.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// AddTerm returns a new Operator with t appended to the sum.
// No like-term combination is performed.
func (op Operator[T]) AddTerm(t Term[T]) (Operator[T], error) {
	if t.Qubits() != op.qubits {
		return Operator[T]{}, ErrLengthMismatch
	}
	terms := make([]Term[T], 0, len(op.terms)+1)
	terms = append(terms, op.terms...)
	terms = append(terms, t)
	return Operator[T]{qubits: op.qubits, terms: terms}, nil
}

// Add returns the non-combining sum of two operators: op's terms followed
// by o's terms, duplicates kept verbatim.
func (op Operator[T]) Add(o Operator[T]) (Operator[T], error) {
	if op.qubits != o.qubits {
		return Operator[T]{}, ErrLengthMismatch
	}
	terms := make([]Term[T], 0, len(op.terms)+len(o.terms))
	terms = append(terms, op.terms...)
	terms = append(terms, o.terms...)
	return Operator[T]{qubits: op.qubits, terms: terms}, nil
}

// String renders the sum as " + "-joined terms.
func (op Operator[T]) String() string {
	parts := make([]string, len(op.terms))
	for i, t := range op.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// MulOperators multiplies two operators over the same qubit count.
//
// The result is the full cross product: outer loop over a's terms, inner
// loop over b's, so result term k·|b|+m is a.term[k] * b.term[m]. Terms
// with identical result words are NOT merged; the result always has
// exactly |a|·|b| terms, in the promoted coefficient type.
//
// Errors:
//   - ErrLengthMismatch — operands disagree on qubit count.
//
// Complexity: O(|a|·|b|·N) time and output.
func MulOperators[T, U Coeff](a Operator[T], b Operator[U]) (Operator[complex128], error) {
	if a.qubits != b.qubits {
		return Operator[complex128]{}, ErrLengthMismatch
	}

	terms := make([]Term[complex128], 0, len(a.terms)*len(b.terms))
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			t, err := MulTerms(ta, tb)
			if err != nil {
				return Operator[complex128]{}, err
			}
			terms = append(terms, t)
		}
	}
	return Operator[complex128]{qubits: a.qubits, terms: terms}, nil
}
