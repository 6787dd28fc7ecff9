package zpk

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-control/internal/polyroot"
)

// Model is a transfer function in zero-pole-gain form.
//
// The order of Zeros and Poles carries no meaning; their multiplicity does.
// Real roots are stored with a zero imaginary part. SampleTime is zero for
// continuous-time models and the sampling period for discrete-time ones.
type Model struct {
	Zeros      []complex128
	Poles      []complex128
	Gain       float64
	SampleTime float64
}

// New returns a continuous-time model. The root slices are copied.
func New(zeros, poles []complex128, gain float64) *Model {
	return &Model{
		Zeros: cloneRoots(zeros),
		Poles: cloneRoots(poles),
		Gain:  gain,
	}
}

// NewDiscrete returns a discrete-time model with sampling period dt.
// The root slices are copied.
func NewDiscrete(zeros, poles []complex128, gain, dt float64) *Model {
	m := New(zeros, poles, gain)
	m.SampleTime = dt

	return m
}

// Identity returns the continuous-time model H(s) = 1.
func Identity() *Model {
	return New(nil, nil, 1)
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}

	return &Model{
		Zeros:      cloneRoots(m.Zeros),
		Poles:      cloneRoots(m.Poles),
		Gain:       m.Gain,
		SampleTime: m.SampleTime,
	}
}

// Validate reports whether m is usable as an operand. It returns an
// [*InvalidInputError] for a nil model, a non-finite gain or root, or a
// negative or non-finite sample time.
func (m *Model) Validate() error {
	if err := m.validate("model"); err != nil {
		return err
	}

	return nil
}

func (m *Model) validate(arg string) *InvalidInputError {
	if m == nil {
		return invalid(arg, "model is nil")
	}

	if !isFinite(m.Gain) {
		return invalid(arg, "gain %v is not a finite number", m.Gain)
	}

	for i, z := range m.Zeros {
		if !isFiniteComplex(z) {
			return invalid(arg, "zero %d (%v) is not finite", i, z)
		}
	}

	for i, p := range m.Poles {
		if !isFiniteComplex(p) {
			return invalid(arg, "pole %d (%v) is not finite", i, p)
		}
	}

	if !isFinite(m.SampleTime) || m.SampleTime < 0 {
		return invalid(arg, "sample time %v must be finite and non-negative", m.SampleTime)
	}

	return nil
}

// IsDiscrete reports whether m is a discrete-time model.
func (m *Model) IsDiscrete() bool {
	return m.SampleTime > 0
}

// Order returns the larger of the zero and pole counts.
func (m *Model) Order() int {
	return max(len(m.Zeros), len(m.Poles))
}

// RelativeDegree returns the pole count minus the zero count.
func (m *Model) RelativeDegree() int {
	return len(m.Poles) - len(m.Zeros)
}

// HasRealCoefficients reports whether the zeros and the poles are each
// closed under conjugation, i.e. whether m expands to real polynomials.
func (m *Model) HasRealCoefficients() bool {
	if _, _, err := polyroot.SplitConjugates(m.Zeros, polyroot.ConjugateTol); err != nil {
		return false
	}

	_, _, err := polyroot.SplitConjugates(m.Poles, polyroot.ConjugateTol)

	return err == nil
}

// Equal reports whether m and other have the same sample time, gains within
// tol (relative), and the same zero and pole multisets within tol.
//
// Roots are matched greedily: each root of m takes the nearest unused root of
// other. When tol approaches the spacing between neighbouring roots, a greedy
// choice can strand a later root and report two equal multisets as different,
// so tol should stay well below the smallest root separation.
func (m *Model) Equal(other *Model, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}

	if m.SampleTime != other.SampleTime {
		return false
	}

	if math.Abs(m.Gain-other.Gain) > tol*math.Max(1, math.Abs(m.Gain)) {
		return false
	}

	return sameRoots(m.Zeros, other.Zeros, tol) && sameRoots(m.Poles, other.Poles, tol)
}

// sameRoots greedily matches each root of a to its nearest unused root in b.
// See Equal for the limits of greedy matching.
func sameRoots(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))

	for _, r := range a {
		best := -1
		bestDist := math.MaxFloat64

		for j, s := range b {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(r - s); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best == -1 || bestDist > tol*math.Max(1, cmplx.Abs(r)) {
			return false
		}

		used[best] = true
	}

	return true
}

func cloneRoots(roots []complex128) []complex128 {
	out := make([]complex128, len(roots))
	copy(out, roots)

	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isFiniteComplex(z complex128) bool {
	return isFinite(real(z)) && isFinite(imag(z))
}
