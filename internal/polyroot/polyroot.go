// Package polyroot provides polynomial root-finding, expansion and conjugate
// pairing utilities shared by the model conversion code.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ErrUnpairedRoot is returned when a complex root has no conjugate partner,
// so the roots cannot describe a polynomial with real coefficients.
var ErrUnpairedRoot = errors.New("polyroot: complex root without conjugate")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// Roots returns all roots of the real polynomial coeff, given in descending
// power order: coeff[0]*x^n + ... + coeff[n]. Clustered approximations of a
// multiple root are merged, and the result is closed under conjugation:
// near-real roots are exact reals and complex roots come in exact pairs.
func Roots(coeff []float64) ([]complex128, error) {
	if len(coeff) == 0 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	if len(coeff) == 1 {
		return []complex128{}, nil
	}

	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	roots, err := DurandKerner(c)
	if err != nil {
		return nil, err
	}

	mergeMultiple(c, roots)
	enforceConjugates(roots)

	return roots, nil
}

// multipleResidualTol bounds |p(c)| relative to the evaluation scale of p at
// the centroid c of a candidate multiple root.
const multipleResidualTol = 1e-13

// clusterTol is the relative spread accepted for a root of multiplicity m.
// Durand-Kerner resolves such a root only to about eps^(1/m).
func clusterTol(m int) float64 {
	return 10 * math.Pow(1e-14, 1/float64(m))
}

// mergeMultiple replaces each cluster of roots that forms a multiple root of
// coeff by the cluster centroid. A cluster of size m qualifies when it lies
// within clusterTol(m) of its centroid and coeff vanishes at the centroid to
// rounding level.
func mergeMultiple(coeff, roots []complex128) {
	done := make([]bool, len(roots))
	cand := make([]int, 0, len(roots))

	for i := range roots {
		if done[i] {
			continue
		}

		cand = cand[:0]
		for j := range roots {
			if !done[j] {
				cand = append(cand, j)
			}
		}

		sort.Slice(cand, func(a, b int) bool {
			return cmplx.Abs(roots[cand[a]]-roots[i]) < cmplx.Abs(roots[cand[b]]-roots[i])
		})

		for m := len(cand); m >= 2; m-- {
			group := cand[:m]

			var c complex128
			for _, j := range group {
				c += roots[j]
			}

			c /= complex(float64(m), 0)

			spread := 0.0
			for _, j := range group {
				spread = math.Max(spread, cmplx.Abs(roots[j]-c))
			}

			if spread > clusterTol(m)*math.Max(1, cmplx.Abs(c)) {
				continue
			}

			c = polishMultiple(coeff, c, m)

			if cmplx.Abs(PolyEval(coeff, c)) > multipleResidualTol*evalScale(coeff, c) {
				continue
			}

			for _, j := range group {
				roots[j] = c
				done[j] = true
			}

			break
		}

		done[i] = true
	}
}

// polishMultiple refines c as a root of multiplicity m. Such a root is a
// simple root of the (m-1)-th derivative, where Newton converges
// quadratically. Steps that leave the cluster radius are rejected.
func polishMultiple(coeff []complex128, c complex128, m int) complex128 {
	d := Derivative(coeff, m-1)
	if len(d) < 2 {
		return c
	}

	dd := Derivative(d, 1)
	limit := clusterTol(m) * math.Max(1, cmplx.Abs(c))
	start := c

	for range 8 {
		slope := PolyEval(dd, c)
		if slope == 0 {
			break
		}

		step := PolyEval(d, c) / slope

		next := c - step
		if cmplx.Abs(next-start) > limit {
			break
		}

		c = next
		if cmplx.Abs(step) <= 1e-15*math.Max(1, cmplx.Abs(c)) {
			break
		}
	}

	return c
}

// Derivative returns the k-th derivative of a polynomial in descending power
// order. Differentiating past the degree yields [0].
func Derivative(coeff []complex128, k int) []complex128 {
	out := coeff
	for range k {
		n := len(out) - 1
		if n <= 0 {
			return []complex128{0}
		}

		next := make([]complex128, n)
		for i := range next {
			next[i] = out[i] * complex(float64(n-i), 0)
		}

		out = next
	}

	return out
}

// evalScale returns sum |coeff[k]| * max(1,|x|)^(n-k), the magnitude against
// which rounding in PolyEval(coeff, x) is measured.
func evalScale(coeff []complex128, x complex128) float64 {
	r := math.Max(1, cmplx.Abs(x))

	v := 0.0
	for _, c := range coeff {
		v = v*r + cmplx.Abs(c)
	}

	return v
}

// enforceConjugates makes roots of a real polynomial closed under
// conjugation. Near-real roots become exact reals. When one half-plane holds
// more roots than the other, its roots closest to the real axis become real.
// The remaining upper roots are paired with their nearest lower conjugates
// and each pair is set to the mean real part ± the mean imaginary magnitude.
func enforceConjugates(roots []complex128) {
	upper := make([]int, 0, len(roots))
	lower := make([]int, 0, len(roots))

	for i, r := range roots {
		switch {
		case math.Abs(imag(r)) <= ConjugateTol*math.Max(1, math.Abs(real(r))):
			roots[i] = complex(real(r), 0)
		case imag(r) > 0:
			upper = append(upper, i)
		default:
			lower = append(lower, i)
		}
	}

	for len(upper) != len(lower) {
		side := &upper
		if len(lower) > len(upper) {
			side = &lower
		}

		k := 0
		for j, idx := range *side {
			if math.Abs(imag(roots[idx])) < math.Abs(imag(roots[(*side)[k]])) {
				k = j
			}
		}

		idx := (*side)[k]
		roots[idx] = complex(real(roots[idx]), 0)
		*side = append((*side)[:k], (*side)[k+1:]...)
	}

	used := make([]bool, len(lower))

	for _, u := range upper {
		best := -1
		bestDist := math.MaxFloat64

		for j, l := range lower {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(roots[l] - cmplx.Conj(roots[u])); d < bestDist {
				best, bestDist = j, d
			}
		}

		used[best] = true
		l := lower[best]

		re := (real(roots[u]) + real(roots[l])) / 2
		im := (imag(roots[u]) - imag(roots[l])) / 2
		roots[u] = complex(re, im)
		roots[l] = complex(re, -im)
	}
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// PolyMul returns the product of two polynomials in descending power order.
func PolyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return []float64{}
	}

	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return out
}

// ExpandReal builds the monic real polynomial whose roots are roots, in
// descending power order. Real roots contribute (x - r), conjugate pairs
// contribute x^2 - 2a*x + (a^2 + b^2), so the result carries no rounding
// residue in the imaginary part. An empty root list yields [1].
func ExpandReal(roots []complex128) ([]float64, error) {
	reals, pairs, err := SplitConjugates(roots, ConjugateTol)
	if err != nil {
		return nil, err
	}

	poly := []float64{1}
	for _, r := range reals {
		poly = PolyMul(poly, []float64{1, -r})
	}

	for _, pair := range pairs {
		q0, q1, q2, err := QuadFromRoots(pair)
		if err != nil {
			return nil, err
		}

		poly = PolyMul(poly, []float64{q0, q1, q2})
	}

	return poly, nil
}

// QuadFromRoots expands a conjugate root pair into monic second-order
// polynomial coefficients. Given roots (a+jb) and (a-jb), it returns the
// coefficients of z^2 - 2a*z + (a^2 + b^2) as (1, -2a, a^2+b^2).
func QuadFromRoots(pair [2]complex128) (float64, float64, float64, error) {
	root1 := pair[0]
	root2 := pair[1]

	if !IsConjugate(root1, root2, ConjugateTol) {
		return 0, 0, 0, ErrUnpairedRoot
	}

	a := real(root1)
	b := math.Abs(imag(root1))

	return 1.0, -2 * a, a*a + b*b, nil
}

// SplitConjugates separates roots into real roots and conjugate pairs. A
// root is real when its imaginary part is within tol (relative to its real
// part). For each remaining root it picks the closest unused match to the
// expected conjugate and validates the pairing within tol.
func SplitConjugates(roots []complex128, tol float64) ([]float64, [][2]complex128, error) {
	used := make([]bool, len(roots))
	reals := make([]float64, 0, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		if math.Abs(imag(root)) <= tol*math.Max(1, math.Abs(real(root))) {
			used[i] = true
			reals = append(reals, real(root))

			continue
		}

		conj := cmplx.Conj(root)
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(roots[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], tol) {
			return nil, nil, ErrUnpairedRoot
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	return reals, pairs, nil
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
