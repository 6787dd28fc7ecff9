package zpk

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Eval returns H(s) = k * Π(s - z) / Π(s - p). At a pole it returns
// complex infinity, even when a zero cancels it.
func (m *Model) Eval(s complex128) complex128 {
	num := complex(m.Gain, 0)
	for _, z := range m.Zeros {
		num *= s - z
	}

	den := complex(1, 0)
	for _, p := range m.Poles {
		den *= s - p
	}

	if den == 0 {
		return cmplx.Inf()
	}

	return num / den
}

// DCGain returns H(0) for continuous-time models and H(1) for discrete-time
// models.
func (m *Model) DCGain() complex128 {
	if m.IsDiscrete() {
		return m.Eval(1)
	}

	return m.Eval(0)
}

// FrequencyResponse evaluates m at each angular frequency in omegas (rad/s):
// on s = jω for continuous-time models and on z = exp(jωT) for discrete-time
// models with sampling period T.
func (m *Model) FrequencyResponse(omegas []float64) []complex128 {
	out := make([]complex128, len(omegas))

	for i, w := range omegas {
		out[i] = m.Eval(m.point(w))
	}

	return out
}

func (m *Model) point(omega float64) complex128 {
	if m.IsDiscrete() {
		return cmplx.Exp(complex(0, omega*m.SampleTime))
	}

	return complex(0, omega)
}

// Magnitude returns |H| at each angular frequency in omegas.
func (m *Model) Magnitude(omegas []float64) []float64 {
	resp := m.FrequencyResponse(omegas)

	re := make([]float64, len(resp))
	im := make([]float64, len(resp))

	for i, h := range resp {
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, len(resp))
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeDB returns 20*log10|H| at each angular frequency in omegas.
// A zero magnitude maps to -Inf.
func (m *Model) MagnitudeDB(omegas []float64) []float64 {
	mag := m.Magnitude(omegas)
	for i, v := range mag {
		mag[i] = 20 * math.Log10(v)
	}

	return mag
}

// Phase returns the argument of H in radians at each angular frequency.
func (m *Model) Phase(omegas []float64) []float64 {
	resp := m.FrequencyResponse(omegas)

	out := make([]float64, len(resp))
	for i, h := range resp {
		out[i] = cmplx.Phase(h)
	}

	return out
}

// GridConfig describes a logarithmically spaced frequency grid.
type GridConfig struct {
	StartDecade float64
	StopDecade  float64
	Points      int
}

// GridOption mutates a GridConfig.
type GridOption func(*GridConfig)

// DefaultGridConfig spans 10^-2 to 10^2 rad/s with 200 points.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		StartDecade: -2,
		StopDecade:  2,
		Points:      200,
	}
}

// WithDecades sets the grid to span 10^start to 10^stop. Non-finite bounds
// leave the config unchanged.
func WithDecades(start, stop float64) GridOption {
	return func(cfg *GridConfig) {
		if isFinite(start) && isFinite(stop) {
			cfg.StartDecade = start
			cfg.StopDecade = stop
		}
	}
}

// WithPoints sets the number of grid points.
func WithPoints(n int) GridOption {
	return func(cfg *GridConfig) {
		if n > 0 {
			cfg.Points = n
		}
	}
}

// Grid returns a log-spaced frequency grid built from the default config
// and opts.
func Grid(opts ...GridOption) []float64 {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return Logspace(cfg.StartDecade, cfg.StopDecade, cfg.Points)
}

// Logspace returns n points spaced evenly on a log scale from 10^start to
// 10^stop inclusive. n == 1 yields [10^start]; n <= 0 yields an empty slice.
func Logspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, start)
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, start+step*float64(i))
	}

	return out
}
