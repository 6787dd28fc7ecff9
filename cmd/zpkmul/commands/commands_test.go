package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-control/control/zpk"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestCombine(t *testing.T) {
	out, err := run(t, "combine",
		"--plant", "zeros=;poles=-1;gain=2",
		"--controller", "zeros=-3;poles=;gain=0.5",
		"--actuator", "zeros=;poles=-2,-2;gain=1",
	)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out, "\n")
	if lines[0] != "zeros=-3;poles=-1,-2,-2;gain=1" {
		t.Errorf("model line: got %q", lines[0])
	}

	if !strings.Contains(out, "DC gain  0.75") {
		t.Errorf("missing DC gain row in:\n%s", out)
	}
}

func TestCombine_MissingGain(t *testing.T) {
	_, err := run(t, "combine",
		"--plant", "zeros=;poles=-1",
		"--controller", "zeros=;poles=;gain=1",
		"--actuator", "zeros=;poles=;gain=1",
	)
	if !errors.Is(err, zpk.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if !strings.Contains(err.Error(), "--plant") {
		t.Errorf("error should name the flag: %v", err)
	}
}

func TestCombine_RequiredFlags(t *testing.T) {
	if _, err := run(t, "combine", "--plant", "zeros=;poles=;gain=1"); err == nil {
		t.Fatal("expected error for missing required flags")
	}
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "--model", "zeros=;poles=-10;gain=10", "--from", "0", "--to", "2", "--points", "3")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[2], "-3.01") || !strings.Contains(lines[2], "-45.0") {
		t.Errorf("corner row: got %q", lines[2])
	}
}

func TestEval_BadPoints(t *testing.T) {
	if _, err := run(t, "eval", "--model", "zeros=;poles=;gain=1", "--points", "0"); err == nil {
		t.Fatal("expected error for zero points")
	}
}

func TestTF(t *testing.T) {
	out, err := run(t, "tf", "--model", "zeros=-3;poles=-1,-2+1i,-2-1i;gain=4")
	if err != nil {
		t.Fatal(err)
	}

	want := "num: 4 12\nden: 1 5 9 5\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTF_ComplexCoefficients(t *testing.T) {
	_, err := run(t, "tf", "--model", "zeros=1+1i;poles=;gain=1")
	if !errors.Is(err, zpk.ErrComplexCoefficients) {
		t.Fatalf("expected ErrComplexCoefficients, got %v", err)
	}
}

func TestEval_NonFiniteDecades(t *testing.T) {
	for _, args := range [][]string{
		{"--from", "NaN"},
		{"--to", "+Inf"},
		{"--from=-Inf"},
	} {
		full := append([]string{"eval", "--model", "zeros=;poles=-1;gain=1"}, args...)
		if _, err := run(t, full...); err == nil || !strings.Contains(err.Error(), "must be finite") {
			t.Errorf("%v: expected finite-bound error, got %v", args, err)
		}
	}
}

func TestEval_DefaultPointsFromGridConfig(t *testing.T) {
	out, err := run(t, "eval", "--model", "zeros=;poles=-1;gain=1")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if want := zpk.DefaultGridConfig().Points + 1; len(lines) != want {
		t.Errorf("expected %d lines (header plus default grid), got %d", want, len(lines))
	}
}
