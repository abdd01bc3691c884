package paulimat

import "errors"

var (
	// ErrRegisterTooLarge indicates a word above MaxQubits; the dense
	// realization would need a 2^N x 2^N allocation.
	ErrRegisterTooLarge = errors.New("paulimat: register too large for dense realization")

	// ErrEmptyOperator indicates an operator with no terms (the zero
	// value); a sum over nothing has no defined dimension.
	ErrEmptyOperator = errors.New("paulimat: operator has no terms")
)
