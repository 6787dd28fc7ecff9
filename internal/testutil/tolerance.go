// Package testutil holds tolerance assertions shared by the package tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireComplexNearlyEqual fails t if |got - want| exceeds eps, scaled by
// max(1, |want|).
func RequireComplexNearlyEqual(t *testing.T, got, want complex128, eps float64) {
	t.Helper()
	diff := cmplx.Abs(got - want)
	if diff > eps*math.Max(1, cmplx.Abs(want)) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireRootsNearlyEqual fails t unless got and want hold the same roots
// with the same multiplicity, in any order, within eps.
func RequireRootsNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("root count mismatch: got %v, want %v", got, want)
	}
	if i, ok := MatchRoots(got, want, eps); !ok {
		t.Fatalf("root %v of want has no match in got %v (eps %v)", want[i], got, eps)
	}
}

// MatchRoots pairs every element of want with a distinct element of got
// lying within eps, taking the nearest unused element greedily. It returns
// the index of the first unmatched want element and false when no complete
// matching exists.
func MatchRoots(got, want []complex128, eps float64) (int, bool) {
	used := make([]bool, len(got))
	for i, w := range want {
		best := -1
		bestDist := math.MaxFloat64
		for j, g := range got {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(g - w); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best == -1 || bestDist > eps {
			return i, false
		}
		used[best] = true
	}
	return 0, true
}
