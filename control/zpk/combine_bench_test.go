package zpk

import (
	"math/rand"
	"testing"
)

func benchModel(rng *rand.Rand, nz, np int) *Model {
	m := &Model{
		Zeros: make([]complex128, nz),
		Poles: make([]complex128, np),
		Gain:  rng.Float64() + 0.5,
	}
	for i := range m.Zeros {
		m.Zeros[i] = complex(-rng.Float64()*10, 0)
	}
	for i := range m.Poles {
		m.Poles[i] = complex(-rng.Float64()*10, rng.Float64())
	}

	return m
}

func BenchmarkCombine(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	p := benchModel(rng, 2, 4)
	c := benchModel(rng, 1, 1)
	a := benchModel(rng, 0, 2)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := Combine(p, c, a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMagnitude(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	m := benchModel(rng, 3, 6)
	omegas := Grid(WithPoints(1024))

	b.ReportAllocs()

	for b.Loop() {
		_ = m.Magnitude(omegas)
	}
}
