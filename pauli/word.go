package pauli

// MulWords — positionwise product of two equal-length Pauli words.
//
// Description:
//
//	For each qubit position j, the single-qubit table yields a result
//	symbol plus raw phase tags. Symbols go into position j of the output
//	word; the tags feed two running counters. After the last position the
//	counters are reduced once into a single Phase, so the result is exact
//	regardless of how individual quarter- and half-turns interleave.
//
// Algorithm Outline:
//  1. Reject words of differing length (ErrLengthMismatch).
//  2. Allocate the output buffer once (len(a) bytes).
//  3. For j = 0..N-1: (r, iTurn, minus) = mulSymbol(a[j], b[j]);
//     write r, bump the counters.
//  4. Reduce the counters via ReducePhase and return (phase, word).
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N) output, O(1) auxiliary — no per-position allocation.
//
// Errors:
//   - ErrLengthMismatch    — len(a) != len(b).
//   - ErrInternalInvariant — a byte outside the alphabet reached the
//     table (possible only when a or b bypassed validated construction).
func MulWords(a, b string) (Phase, string, error) {
	if len(a) != len(b) {
		return PhaseOne, "", ErrLengthMismatch
	}

	var (
		iTurns, minusTurns int
		out                = make([]byte, len(a))
	)
	for j := 0; j < len(a); j++ {
		r, iTurn, minus, err := mulSymbol(Symbol(a[j]), Symbol(b[j]))
		if err != nil {
			return PhaseOne, "", err
		}
		out[j] = byte(r)
		if iTurn {
			iTurns++
		}
		if minus {
			minusTurns++
		}
	}

	return ReducePhase(iTurns, minusTurns), string(out), nil
}
