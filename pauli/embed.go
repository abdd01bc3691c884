package pauli

// Embed places word into a larger all-identity register.
//
// indices holds one 1-based target position per source symbol: position
// indices[k] of the result receives word[k], every unmapped position
// stays I. The register size defaults to len(word) when omitted, so
// Embed(w, [1..len(w)]) is the identity transform.
//
// Validation order:
//  1. word symbols                          → ErrInvalidSymbol
//  2. len(indices) == len(word)             → ErrInvalidIndex
//  3. register size ≥ len(word)             → ErrLengthMismatch
//  4. indices pairwise distinct, in [1, n]  → ErrInvalidIndex
//
// More than one register size argument is ErrUsage.
//
// Complexity: O(numQubits) time and output.
func Embed(word string, indices []int, numQubits ...int) (string, error) {
	if len(numQubits) > 1 {
		return "", ErrUsage
	}
	if err := ValidWord(word); err != nil {
		return "", err
	}
	n := len(word)
	if len(numQubits) == 1 {
		n = numQubits[0]
	}
	if len(indices) != len(word) {
		return "", ErrInvalidIndex
	}
	if n < len(word) {
		return "", ErrLengthMismatch
	}

	out := make([]byte, n)
	for j := range out {
		out[j] = byte(I)
	}
	seen := make([]bool, n)
	for k, idx := range indices {
		if idx < 1 || idx > n {
			return "", ErrInvalidIndex
		}
		if seen[idx-1] {
			return "", ErrInvalidIndex
		}
		seen[idx-1] = true
		out[idx-1] = word[k]
	}
	return string(out), nil
}

// EmbedTerm applies Embed to the term's word, preserving the coefficient.
func EmbedTerm[T Coeff](t Term[T], indices []int, numQubits ...int) (Term[T], error) {
	w, err := Embed(t.word, indices, numQubits...)
	if err != nil {
		return Term[T]{}, err
	}
	return Term[T]{word: w, coeff: t.coeff}, nil
}

// EmbedOperator applies the same embedding to every term of op,
// preserving coefficients and term order.
func EmbedOperator[T Coeff](op Operator[T], indices []int, numQubits ...int) (Operator[T], error) {
	n := op.qubits
	if len(numQubits) == 1 {
		n = numQubits[0]
	}
	terms := make([]Term[T], 0, len(op.terms))
	for _, t := range op.terms {
		et, err := EmbedTerm(t, indices, numQubits...)
		if err != nil {
			return Operator[T]{}, err
		}
		terms = append(terms, et)
	}
	return Operator[T]{qubits: n, terms: terms}, nil
}
