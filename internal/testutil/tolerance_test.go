package testutil

import "testing"

func TestMatchRootsMultiplicity(t *testing.T) {
	got := []complex128{-2, -1, -2}
	want := []complex128{-1, -2, -2}

	if _, ok := MatchRoots(got, want, 1e-12); !ok {
		t.Fatal("expected permuted roots to match")
	}
}

func TestMatchRootsMissingRepeat(t *testing.T) {
	got := []complex128{-2, -1, -1}
	want := []complex128{-1, -2, -2}

	i, ok := MatchRoots(got, want, 1e-12)
	if ok {
		t.Fatal("expected mismatch when a repeated root is missing")
	}

	if i != 2 {
		t.Fatalf("unmatched index = %d, want 2", i)
	}
}

func TestMatchRootsTolerance(t *testing.T) {
	got := []complex128{complex(-1, 1e-9)}
	want := []complex128{-1}

	if _, ok := MatchRoots(got, want, 1e-6); !ok {
		t.Fatal("expected match within tolerance")
	}

	if _, ok := MatchRoots(got, want, 1e-12); ok {
		t.Fatal("expected mismatch outside tolerance")
	}
}

func TestRequireRootsNearlyEqual(t *testing.T) {
	RequireRootsNearlyEqual(t, []complex128{complex(-1, 2), complex(-1, -2)}, []complex128{complex(-1, -2), complex(-1, 2)}, 1e-12)
	RequireRootsNearlyEqual(t, nil, []complex128{}, 1e-12)
}

func TestRequireComplexNearlyEqual(t *testing.T) {
	RequireComplexNearlyEqual(t, complex(1000, 1e-7), 1000, 1e-9)
}
