// Package metric provides vector norms and distances.
package metric

import (
	"fmt"
	"math"
	"strings"
)

// Norm selects how a vector is normalized.
type Norm int

const (
	// NormNone leaves vectors untouched.
	NormNone Norm = iota
	// NormL1 divides by the sum of absolute values.
	NormL1
	// NormL2 divides by the Euclidean length.
	NormL2
)

func (n Norm) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormL1:
		return "l1"
	case NormL2:
		return "l2"
	}
	return fmt.Sprintf("Norm(%d)", int(n))
}

// ParseNorm converts "none", "l1" or "l2" (any case) into a Norm.
func ParseNorm(s string) (Norm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NormNone, nil
	case "l1":
		return NormL1, nil
	case "l2":
		return NormL2, nil
	}
	return NormNone, fmt.Errorf("metric: unknown norm %q", s)
}

// L1 returns the sum of absolute values of v.
func L1(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += math.Abs(x)
	}
	return sum
}

// L2 returns the Euclidean length of v.
func L2(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize divides every component of v by its norm, in place.
// A zero vector is left unchanged.
func Normalize(v []float64, norm Norm) {
	var n float64
	switch norm {
	case NormL1:
		n = L1(v)
	case NormL2:
		n = L2(v)
	default:
		return
	}
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

// Distance selects a distance function.
type Distance int

const (
	// Euclidean is the straight line distance.
	Euclidean Distance = iota
	// Manhattan is the sum of absolute differences.
	Manhattan
)

func (d Distance) String() string {
	switch d {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	}
	return fmt.Sprintf("Distance(%d)", int(d))
}

// ParseDistance converts "euclidean" or "manhattan" (any case) into a Distance.
// The empty string maps to Euclidean.
func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "euclidean", "l2":
		return Euclidean, nil
	case "manhattan", "l1":
		return Manhattan, nil
	}
	return Euclidean, fmt.Errorf("metric: unknown distance %q", s)
}

// Func returns the function computing d.
func (d Distance) Func() func(p, q []float64) float64 {
	if d == Manhattan {
		return ManhattanDistance
	}
	return EuclideanDistance
}

// EuclideanDistance returns the L2 distance between p and q, which must have
// the same length.
func EuclideanDistance(p, q []float64) float64 {
	sum := 0.0
	for i := range p {
		d := q[i] - p[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanDistance returns the L1 distance between p and q, which must have
// the same length.
func ManhattanDistance(p, q []float64) float64 {
	sum := 0.0
	for i := range p {
		sum += math.Abs(p[i] - q[i])
	}
	return sum
}
