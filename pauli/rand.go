// Package pauli - RNG utilities for random words, terms and operators.
//
// This file centralizes random generation policy for the whole package.
//
// Goals:
//   - Determinism: same source ⇒ identical results across platforms;
//     the nil-source fallback is a fixed-seed stream, never time-based.
//   - Encapsulation: one fallback policy; no hidden global source.
//   - Safety: no panics or logging; only sentinel errors from errors.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand
//     across goroutines; inject an independent source per worker.
package pauli

import "math/rand"

// defaultRNGSeed is the fixed seed behind the nil-source fallback.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RandOptions configures random generation.
//
// Fields:
//   - Coeff — attach a random coefficient, drawn as complex(N(0,1), N(0,1)).
//     Only meaningful for coefficient-bearing outputs (terms, operators);
//     requesting it on a bare word is ErrUsage.
//   - Rand  — the randomness source. nil falls back to a deterministic
//     fixed-seed stream.
type RandOptions struct {
	Coeff bool
	Rand  *rand.Rand
}

// optRNG resolves the source for one call: the injected one, or the
// deterministic fallback stream.
func optRNG(opts *RandOptions) *rand.Rand {
	if opts != nil && opts.Rand != nil {
		return opts.Rand
	}
	return rand.New(rand.NewSource(defaultRNGSeed))
}

// randomWord fills a fresh word of length n, each position independently
// uniform over the four symbols.
func randomWord(n int, rng *rand.Rand) string {
	out := make([]byte, n)
	for j := range out {
		out[j] = byte(alphabet[rng.Intn(len(alphabet))])
	}
	return string(out)
}

// RandomWord returns a uniformly random word of length n.
//
// Errors:
//   - ErrUsage — n < 1, or opts.Coeff set: a bare word cannot carry a
//     coefficient.
func RandomWord(n int, opts *RandOptions) (string, error) {
	if n < 1 {
		return "", ErrUsage
	}
	if opts != nil && opts.Coeff {
		return "", ErrUsage
	}
	return randomWord(n, optRNG(opts)), nil
}

// RandomTerm returns a Term over a uniformly random word of length n.
// The coefficient is the identity, or complex(N(0,1), N(0,1)) when
// opts.Coeff is set.
//
// Errors:
//   - ErrUsage — n < 1.
func RandomTerm(n int, opts *RandOptions) (Term[complex128], error) {
	if n < 1 {
		return Term[complex128]{}, ErrUsage
	}
	rng := optRNG(opts)
	t := Term[complex128]{word: randomWord(n, rng), coeff: 1}
	if opts != nil && opts.Coeff {
		t.coeff = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return t, nil
}

// RandomOperator returns an Operator of numTerms random terms over n
// qubits, drawn from one shared source so the result is reproducible.
//
// Errors:
//   - ErrUsage — n < 1 or numTerms < 1.
func RandomOperator(n, numTerms int, opts *RandOptions) (Operator[complex128], error) {
	if n < 1 || numTerms < 1 {
		return Operator[complex128]{}, ErrUsage
	}
	rng := optRNG(opts)
	withCoeff := opts != nil && opts.Coeff

	terms := make([]Term[complex128], 0, numTerms)
	for k := 0; k < numTerms; k++ {
		t := Term[complex128]{word: randomWord(n, rng), coeff: 1}
		if withCoeff {
			t.coeff = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		terms = append(terms, t)
	}
	return Operator[complex128]{qubits: n, terms: terms}, nil
}
