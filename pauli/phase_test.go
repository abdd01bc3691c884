package pauli_test

import (
	"testing"

	"github.com/qphase/paulis/pauli"
	"github.com/stretchr/testify/assert"
)

// TestReducePhase_CanonicalMapping verifies the quarter-turn mapping
// 0→+1, 1→+i, 2→-1, 3→-i, with each minus-turn worth two quarter-turns.
func TestReducePhase_CanonicalMapping(t *testing.T) {
	assert.Equal(t, pauli.PhaseOne, pauli.ReducePhase(0, 0), "no turns is the identity")
	assert.Equal(t, pauli.PhaseI, pauli.ReducePhase(1, 0), "one i-turn is +i")
	assert.Equal(t, pauli.PhaseMinusOne, pauli.ReducePhase(2, 0), "two i-turns are -1")
	assert.Equal(t, pauli.PhaseMinusI, pauli.ReducePhase(3, 0), "three i-turns are -i")
	assert.Equal(t, pauli.PhaseOne, pauli.ReducePhase(4, 0), "four i-turns wrap to +1")

	assert.Equal(t, pauli.PhaseMinusOne, pauli.ReducePhase(0, 1), "one minus-turn is -1")
	assert.Equal(t, pauli.PhaseOne, pauli.ReducePhase(0, 2), "two minus-turns cancel")
	assert.Equal(t, pauli.PhaseMinusI, pauli.ReducePhase(1, 1), "i times -1 is -i")
}

// TestReducePhase_Additivity pins the composition law: reducing summed
// counters equals multiplying separately reduced phases, in any order.
func TestReducePhase_Additivity(t *testing.T) {
	for i1 := 0; i1 < 4; i1++ {
		for m1 := 0; m1 < 4; m1++ {
			for i2 := 0; i2 < 4; i2++ {
				for m2 := 0; m2 < 4; m2++ {
					combined := pauli.ReducePhase(i1+i2, m1+m2)
					split := pauli.ReducePhase(i1, m1).Mul(pauli.ReducePhase(i2, m2))
					assert.Equal(t, combined, split,
						"reduce(%d+%d, %d+%d) must equal reduce∘reduce", i1, i2, m1, m2)
					swapped := pauli.ReducePhase(i2, m2).Mul(pauli.ReducePhase(i1, m1))
					assert.Equal(t, combined, swapped, "composition must commute")
				}
			}
		}
	}
}

// TestReducePhase_NegativeCounts verifies the modulus handles conjugate
// (negative) contributions.
func TestReducePhase_NegativeCounts(t *testing.T) {
	assert.Equal(t, pauli.PhaseMinusI, pauli.ReducePhase(-1, 0), "-1 quarter-turn is -i")
	assert.Equal(t, pauli.PhaseOne, pauli.ReducePhase(-4, 0), "-4 quarter-turns wrap to +1")
	assert.Equal(t, pauli.PhaseMinusOne, pauli.ReducePhase(0, -1), "-1 half-turn is -1")
}

// TestPhase_ConjIsInverse checks p·Conj(p) == 1 for all four elements.
func TestPhase_ConjIsInverse(t *testing.T) {
	for p := pauli.PhaseOne; p <= pauli.PhaseMinusI; p++ {
		assert.Equal(t, pauli.PhaseOne, p.Mul(p.Conj()), "phase %v times its conjugate", p)
	}
}

// TestPhase_ComplexAndString verifies the numeric and textual views agree.
func TestPhase_ComplexAndString(t *testing.T) {
	assert.Equal(t, complex128(1), pauli.PhaseOne.Complex())
	assert.Equal(t, complex128(1i), pauli.PhaseI.Complex())
	assert.Equal(t, complex128(-1), pauli.PhaseMinusOne.Complex())
	assert.Equal(t, complex128(-1i), pauli.PhaseMinusI.Complex())

	assert.Equal(t, "+1", pauli.PhaseOne.String())
	assert.Equal(t, "+i", pauli.PhaseI.String())
	assert.Equal(t, "-1", pauli.PhaseMinusOne.String())
	assert.Equal(t, "-i", pauli.PhaseMinusI.String())
}

// TestScale_PromotesToComplex covers the scalar action on every
// coefficient kind in the Coeff set.
func TestScale_PromotesToComplex(t *testing.T) {
	assert.Equal(t, complex(0, 3), pauli.Scale(pauli.PhaseI, 3), "i·3 over int")
	assert.Equal(t, complex(-2.5, 0), pauli.Scale(pauli.PhaseMinusOne, 2.5), "-1·2.5 over float64")
	assert.Equal(t, complex128(2), pauli.Scale(pauli.PhaseMinusI, complex128(2i)), "-i·2i over complex128")
	assert.Equal(t, complex(0, -4), pauli.Scale(pauli.PhaseMinusI, int64(4)), "-i·4 over int64")
	assert.Equal(t, complex(0, 1.5), pauli.Scale(pauli.PhaseI, float32(1.5)), "i·1.5 over float32")
	assert.Equal(t, complex128(-1i), pauli.Scale(pauli.PhaseI, complex64(-1)), "i·(-1) over complex64")
	assert.Equal(t, complex(0, 7), pauli.Scale(pauli.PhaseI, int32(7)), "i·7 over int32")
}
