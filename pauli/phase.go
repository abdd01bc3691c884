package pauli

// Phase is an element of the multiplicative group {1, i, -1, -i},
// stored as its quarter-turn index: i^0, i^1, i^2, i^3.
//
// Phases arise from repeated single-qubit products. Each position of a
// word product may contribute a quarter-turn (factor i) or a half-turn
// (factor -1); the raw counts are summed over the word and reduced once
// by ReducePhase. Reduction is associative and order-independent, so
// any grouping of positions yields the same final Phase.
type Phase uint8

const (
	// PhaseOne is the multiplicative identity, +1.
	PhaseOne Phase = iota
	// PhaseI is a single quarter-turn, +i.
	PhaseI
	// PhaseMinusOne is a half-turn, -1.
	PhaseMinusOne
	// PhaseMinusI is three quarter-turns, -i.
	PhaseMinusI
)

// ReducePhase folds raw phase counters into a single group element:
// every minus-turn is two quarter-turns (-1 = i²), the total is taken
// modulo 4, and 0,1,2,3 map to 1, i, -1, -i.
//
// Negative counts are accepted and reduce by the same modulus, so a
// conjugate contribution may be folded as a subtraction.
//
// Complexity: O(1).
func ReducePhase(iTurns, minusTurns int) Phase {
	t := (iTurns + 2*minusTurns) % 4
	if t < 0 {
		t += 4
	}
	return Phase(t)
}

// Mul composes two phases by adding their quarter-turn indices modulo 4.
func (p Phase) Mul(q Phase) Phase {
	return (p + q) % 4
}

// Conj returns the inverse (complex conjugate) phase: p.Mul(p.Conj()) == PhaseOne.
func (p Phase) Conj() Phase {
	return (4 - p) % 4
}

// Complex returns the phase as a complex128 value.
func (p Phase) Complex() complex128 {
	switch p % 4 {
	case PhaseOne:
		return 1
	case PhaseI:
		return 1i
	case PhaseMinusOne:
		return -1
	default:
		return -1i
	}
}

// String renders the canonical representative: "+1", "+i", "-1" or "-i".
func (p Phase) String() string {
	switch p % 4 {
	case PhaseOne:
		return "+1"
	case PhaseI:
		return "+i"
	case PhaseMinusOne:
		return "-1"
	default:
		return "-i"
	}
}

// Coeff is the set of coefficient types a Term or Operator may carry.
//
// The union lists exact types on purpose: multiplication by a Phase must
// promote to a type closed under scaling by i, and Go offers no dynamic
// numeric promotion, so the package fixes complex128 as the promoted type
// and Complex as the explicit, total promotion function over this set.
type Coeff interface {
	int | int32 | int64 | float32 | float64 | complex64 | complex128
}

// Complex promotes a coefficient to complex128, the one supported type
// closed under multiplication by all four phases.
func Complex[T Coeff](c T) complex128 {
	switch v := any(c).(type) {
	case int:
		return complex(float64(v), 0)
	case int32:
		return complex(float64(v), 0)
	case int64:
		return complex(float64(v), 0)
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	default:
		return any(c).(complex128)
	}
}

// Scale applies the phase to a coefficient: i·c, in the promoted type.
func Scale[T Coeff](p Phase, c T) complex128 {
	return p.Complex() * Complex(c)
}
