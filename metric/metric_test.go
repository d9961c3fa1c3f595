package metric

import (
	"math"
	"testing"
)

func almostEqual(a, b, d float64) bool {
	return math.Abs(a-b) < d
}

func TestNorms(t *testing.T) {
	if n := L2([]float64{2, 2, 2}); n != math.Sqrt(12) {
		t.Errorf("L2 = %f", n)
	}
	if n := L1([]float64{2, -2, 2}); n != 6 {
		t.Errorf("L1 = %f", n)
	}
}

func TestNormalize(t *testing.T) {
	v := []float64{2, 2, 2}
	Normalize(v, NormL2)
	for _, x := range v {
		if x != 2/math.Sqrt(12) {
			t.Fatalf("L2 normalized %v", v)
		}
	}

	v = []float64{1, -3}
	Normalize(v, NormL1)
	if v[0] != 0.25 || v[1] != -0.75 {
		t.Fatalf("L1 normalized %v", v)
	}

	zero := []float64{0, 0, 0}
	Normalize(zero, NormL2)
	Normalize(zero, NormL1)
	for _, x := range zero {
		if x != 0 || math.IsNaN(x) {
			t.Fatalf("zero vector changed: %v", zero)
		}
	}

	v = []float64{3, 4}
	Normalize(v, NormNone)
	if v[0] != 3 || v[1] != 4 {
		t.Fatalf("NormNone changed %v", v)
	}
}

func TestDistances(t *testing.T) {
	if d := EuclideanDistance([]float64{5, 6}, []float64{-7, 11}); d != 13 {
		t.Errorf("euclidean = %f", d)
	}
	if d := EuclideanDistance([]float64{0, 0, 0}, []float64{1, 1, 1}); !almostEqual(d, math.Sqrt(3), 1e-12) {
		t.Errorf("euclidean = %f", d)
	}
	if d := ManhattanDistance([]float64{0, 0}, []float64{-1, 1}); d != 2 {
		t.Errorf("manhattan = %f", d)
	}
	if d := Manhattan.Func()([]float64{0, 0, 0}, []float64{1, 1, 1}); d != 3 {
		t.Errorf("manhattan func = %f", d)
	}
}

func TestParse(t *testing.T) {
	for _, n := range []Norm{NormNone, NormL1, NormL2} {
		if got, err := ParseNorm(n.String()); err != nil || got != n {
			t.Fatalf("ParseNorm(%q) = %v, %v", n.String(), got, err)
		}
	}
	if _, err := ParseNorm("l3"); err == nil {
		t.Fatal("expected error for l3")
	}
	for _, d := range []Distance{Euclidean, Manhattan} {
		if got, err := ParseDistance(d.String()); err != nil || got != d {
			t.Fatalf("ParseDistance(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDistance("cosine"); err == nil {
		t.Fatal("expected error for cosine")
	}
}
