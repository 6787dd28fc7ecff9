package zpk

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every [*InvalidInputError].
var ErrInvalidInput = errors.New("zpk: invalid input")

// ErrComplexCoefficients is returned when a model's roots are not closed
// under conjugation, so it has no real polynomial form.
var ErrComplexCoefficients = errors.New("zpk: roots do not form real polynomials")

// InvalidInputError identifies the malformed argument and what is wrong with it.
type InvalidInputError struct {
	Arg    string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("zpk: invalid input: %s: %s", e.Arg, e.Reason)
}

// Unwrap returns [ErrInvalidInput].
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(arg, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}
