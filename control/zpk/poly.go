package zpk

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-control/internal/polyroot"
)

// TransferFunction expands m into numerator and denominator coefficients in
// descending power order. The denominator is monic and the numerator carries
// the gain. It returns [ErrComplexCoefficients] when the zeros or the poles
// are not closed under conjugation.
func (m *Model) TransferFunction() (num, den []float64, err error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	num, err = polyroot.ExpandReal(m.Zeros)
	if err != nil {
		return nil, nil, wrapExpand("zeros", err)
	}

	den, err = polyroot.ExpandReal(m.Poles)
	if err != nil {
		return nil, nil, wrapExpand("poles", err)
	}

	for i := range num {
		num[i] *= m.Gain
	}

	return num, den, nil
}

func wrapExpand(what string, err error) error {
	if errors.Is(err, polyroot.ErrUnpairedRoot) {
		return fmt.Errorf("%w: %s", ErrComplexCoefficients, what)
	}

	return fmt.Errorf("zpk: expanding %s: %w", what, err)
}

// FromTransferFunction returns the continuous-time model whose numerator and
// denominator polynomials (descending power order) are num and den. Leading
// zero coefficients are ignored. An all-zero numerator yields a zero-gain
// model without zeros.
func FromTransferFunction(num, den []float64) (*Model, error) {
	if err := checkCoeffs("num", num); err != nil {
		return nil, err
	}

	if err := checkCoeffs("den", den); err != nil {
		return nil, err
	}

	num = trimLeading(num)
	den = trimLeading(den)

	if len(den) == 0 {
		return nil, invalid("den", "denominator is zero")
	}

	poles, err := polyroot.Roots(den)
	if err != nil {
		return nil, fmt.Errorf("zpk: denominator roots: %w", err)
	}

	if len(num) == 0 {
		return &Model{Zeros: []complex128{}, Poles: poles, Gain: 0}, nil
	}

	zeros, err := polyroot.Roots(num)
	if err != nil {
		return nil, fmt.Errorf("zpk: numerator roots: %w", err)
	}

	return &Model{Zeros: zeros, Poles: poles, Gain: num[0] / den[0]}, nil
}

func checkCoeffs(arg string, coeff []float64) error {
	for i, c := range coeff {
		if !isFinite(c) {
			return invalid(arg, "coefficient %d (%v) is not finite", i, c)
		}
	}

	return nil
}

func trimLeading(coeff []float64) []float64 {
	for i, c := range coeff {
		if c != 0 {
			return coeff[i:]
		}
	}

	return nil
}
