package pauli_test

import (
	"testing"

	"github.com/qphase/paulis/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symbols lists the alphabet for property loops.
var symbols = []string{"I", "X", "Y", "Z"}

// TestMulWords_SingleSymbolTable pins the full 4x4 single-qubit table
// through length-1 word products.
func TestMulWords_SingleSymbolTable(t *testing.T) {
	cases := []struct {
		a, b  string
		phase pauli.Phase
		want  string
	}{
		{"I", "I", pauli.PhaseOne, "I"},
		{"I", "X", pauli.PhaseOne, "X"},
		{"I", "Y", pauli.PhaseOne, "Y"},
		{"I", "Z", pauli.PhaseOne, "Z"},
		{"X", "I", pauli.PhaseOne, "X"},
		{"Y", "I", pauli.PhaseOne, "Y"},
		{"Z", "I", pauli.PhaseOne, "Z"},
		{"X", "X", pauli.PhaseOne, "I"},
		{"Y", "Y", pauli.PhaseOne, "I"},
		{"Z", "Z", pauli.PhaseOne, "I"},
		{"X", "Y", pauli.PhaseI, "Z"},
		{"Y", "Z", pauli.PhaseI, "X"},
		{"Z", "X", pauli.PhaseI, "Y"},
		{"Y", "X", pauli.PhaseMinusI, "Z"},
		{"Z", "Y", pauli.PhaseMinusI, "X"},
		{"X", "Z", pauli.PhaseMinusI, "Y"},
	}
	for _, tc := range cases {
		phase, word, err := pauli.MulWords(tc.a, tc.b)
		require.NoError(t, err, "%s*%s", tc.a, tc.b)
		assert.Equal(t, tc.phase, phase, "%s*%s phase", tc.a, tc.b)
		assert.Equal(t, tc.want, word, "%s*%s word", tc.a, tc.b)
	}
}

// TestMulWords_SelfInverse verifies a*a reduces to (+1, I) for every
// symbol: each one is self-inverse up to global phase.
func TestMulWords_SelfInverse(t *testing.T) {
	for _, s := range symbols {
		phase, word, err := pauli.MulWords(s, s)
		require.NoError(t, err)
		assert.Equal(t, pauli.PhaseOne, phase, "%s*%s phase must be +1", s, s)
		assert.Equal(t, "I", word, "%s*%s must be the identity", s, s)
	}
}

// TestMulWords_AntiCommutation verifies that swapping distinct
// non-identity operands conjugates the phase while keeping the word:
// (a*b).phase · (b*a).phase == +1.
func TestMulWords_AntiCommutation(t *testing.T) {
	for _, a := range symbols[1:] {
		for _, b := range symbols[1:] {
			if a == b {
				continue
			}
			pa, wa, err := pauli.MulWords(a, b)
			require.NoError(t, err)
			pb, wb, err := pauli.MulWords(b, a)
			require.NoError(t, err)

			assert.Equal(t, wa, wb, "%s and %s must share a result symbol", a, b)
			assert.Equal(t, pauli.PhaseOne, pa.Mul(pb), "%s*%s and %s*%s phases must cancel", a, b, b, a)
			assert.Equal(t, pa.Conj(), pb, "reversed phase is the conjugate")
		}
	}
}

// TestMulWords_PhaseAccumulation walks the spec scenario: "XY"*"YX" —
// one i-turn, plus one i-turn with a minus-turn, totals four quarter
// turns and lands back on +1 over "ZZ".
func TestMulWords_PhaseAccumulation(t *testing.T) {
	phase, word, err := pauli.MulWords("XY", "YX")
	require.NoError(t, err)
	assert.Equal(t, pauli.PhaseOne, phase)
	assert.Equal(t, "ZZ", word)
}

// TestMulWords_LongerRegister checks a mixed word where the phases do
// not cancel: "XYZ" * "YYX" — X*Y = iZ, Y*Y = I, Z*X = iY, so the total
// phase is i·i = -1 over "ZIY".
func TestMulWords_LongerRegister(t *testing.T) {
	phase, word, err := pauli.MulWords("XYZ", "YYX")
	require.NoError(t, err)
	assert.Equal(t, pauli.PhaseMinusOne, phase)
	assert.Equal(t, "ZIY", word)
}

// TestMulWords_EmptyWords treats zero-qubit registers as valid: the
// product is the empty word with phase +1.
func TestMulWords_EmptyWords(t *testing.T) {
	phase, word, err := pauli.MulWords("", "")
	require.NoError(t, err)
	assert.Equal(t, pauli.PhaseOne, phase)
	assert.Equal(t, "", word)
}

// TestMulWords_LengthMismatch rejects operands of differing length.
func TestMulWords_LengthMismatch(t *testing.T) {
	_, _, err := pauli.MulWords("XY", "XYZ")
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch)
}

// TestMulWords_CorruptedInput surfaces ErrInternalInvariant when a byte
// outside the alphabet bypasses validated construction.
func TestMulWords_CorruptedInput(t *testing.T) {
	_, _, err := pauli.MulWords("XQ", "XX")
	assert.ErrorIs(t, err, pauli.ErrInternalInvariant)

	_, _, err = pauli.MulWords("XX", "QX")
	assert.ErrorIs(t, err, pauli.ErrInternalInvariant)
}

// TestValidWord covers the construction-boundary validator.
func TestValidWord(t *testing.T) {
	assert.NoError(t, pauli.ValidWord("IXYZ"))
	assert.NoError(t, pauli.ValidWord(""))
	assert.ErrorIs(t, pauli.ValidWord("XQ"), pauli.ErrInvalidSymbol)
	assert.ErrorIs(t, pauli.ValidWord("xyz"), pauli.ErrInvalidSymbol, "lowercase is not part of the alphabet")
}
