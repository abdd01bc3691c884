package paulimat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/qphase/paulis/pauli"
)

// MaxQubits bounds dense realization: a word of MaxQubits symbols yields
// a 2^MaxQubits-square complex matrix (16 MiB of complex128 at 10).
const MaxQubits = 10

// SymbolMatrix returns the 2x2 matrix of a single symbol as a fresh CDense.
//
// Errors:
//   - pauli.ErrInvalidSymbol — s outside {I, X, Y, Z}.
func SymbolMatrix(s pauli.Symbol) (*mat.CDense, error) {
	var data []complex128
	switch s {
	case pauli.I:
		data = []complex128{1, 0, 0, 1}
	case pauli.X:
		data = []complex128{0, 1, 1, 0}
	case pauli.Y:
		data = []complex128{0, -1i, 1i, 0}
	case pauli.Z:
		data = []complex128{1, 0, 0, -1}
	default:
		return nil, pauli.ErrInvalidSymbol
	}
	return mat.NewCDense(2, 2, data), nil
}

// WordMatrix realizes a word as the Kronecker product of its symbol
// matrices, left to right: qubit 1 is the leftmost (slowest) factor.
// The empty word yields the 1x1 identity.
//
// Errors:
//   - ErrRegisterTooLarge    — len(word) > MaxQubits.
//   - pauli.ErrInvalidSymbol — word outside the alphabet.
//
// Complexity: O(4^N) time and output.
func WordMatrix(word string) (*mat.CDense, error) {
	if len(word) > MaxQubits {
		return nil, ErrRegisterTooLarge
	}
	if err := pauli.ValidWord(word); err != nil {
		return nil, err
	}

	out := mat.NewCDense(1, 1, []complex128{1})
	for j := 0; j < len(word); j++ {
		sm, err := SymbolMatrix(pauli.Symbol(word[j]))
		if err != nil {
			return nil, err
		}
		out = kron(out, sm)
	}
	return out, nil
}

// TermMatrix realizes a term: its word matrix scaled by the promoted
// coefficient.
func TermMatrix[T pauli.Coeff](t pauli.Term[T]) (*mat.CDense, error) {
	m, err := WordMatrix(t.Word())
	if err != nil {
		return nil, err
	}
	scaleInPlace(m, pauli.Complex(t.Coeff()))
	return m, nil
}

// OperatorMatrix realizes an operator as the sum of its term matrices.
//
// Errors:
//   - ErrEmptyOperator — op has no terms.
//   - plus everything TermMatrix may return.
func OperatorMatrix[T pauli.Coeff](op pauli.Operator[T]) (*mat.CDense, error) {
	terms := op.Terms()
	if len(terms) == 0 {
		return nil, ErrEmptyOperator
	}

	sum, err := TermMatrix(terms[0])
	if err != nil {
		return nil, err
	}
	for _, t := range terms[1:] {
		m, err := TermMatrix(t)
		if err != nil {
			return nil, err
		}
		addInPlace(sum, m)
	}
	return sum, nil
}

// kron returns the Kronecker product a ⊗ b as a fresh CDense.
func kron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewCDense(ra*rb, ca*cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for p := 0; p < rb; p++ {
				for q := 0; q < cb; q++ {
					// Skip zero products to keep untouched entries at +0.
					if v := aij * b.At(p, q); v != 0 {
						out.Set(i*rb+p, j*cb+q, v)
					}
				}
			}
		}
	}
	return out
}

// scaleInPlace multiplies every entry of m by c.
func scaleInPlace(m *mat.CDense, c complex128) {
	r, cols := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); v != 0 {
				m.Set(i, j, c*v)
			}
		}
	}
}

// addInPlace adds o into m entrywise. Dimensions always agree here:
// both operands realize words of one operator's shared qubit count.
func addInPlace(m, o *mat.CDense) {
	r, cols := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, m.At(i, j)+o.At(i, j))
		}
	}
}
