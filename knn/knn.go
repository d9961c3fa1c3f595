// Package knn implements a brute force k-nearest-neighbours classifier over
// feature vectors, and a text classifier that feeds it documents through a
// vectorizer.FrequencyVectorizer.
package knn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samuel/go-vectorizer/internal/parallel"
	"github.com/samuel/go-vectorizer/metric"
)

var (
	ErrEmptyTrainingSet  = errors.New("knn: empty training set")
	ErrDimensionMismatch = errors.New("knn: dimension mismatch")
	ErrInvalidK          = errors.New("knn: k must be positive")
)

// Option configures a Classifier.
type Option func(*Classifier)

// WithDistance selects the distance function. Euclidean is the default.
func WithDistance(d metric.Distance) Option {
	return func(c *Classifier) { c.Distance = d }
}

// WithNorm normalizes training vectors and queries. NormNone is the default.
func WithNorm(n metric.Norm) Option {
	return func(c *Classifier) { c.norm = n }
}

// WithWorkers bounds the goroutines computing distances. GOMAXPROCS when <= 0.
func WithWorkers(n int) Option {
	return func(c *Classifier) { c.workers = n }
}

// Classifier predicts the label of a vector by majority vote of the K nearest
// training vectors.
type Classifier struct {
	K        int
	Distance metric.Distance

	norm    metric.Norm
	workers int
	x       [][]float64
	y       []string
	labels  []string
}

type neighbour struct {
	label    string
	distance float64
}

// New returns a classifier over the training vectors x labeled by y. The
// vectors are copied and normalized when WithNorm is given.
func New(k int, x [][]float64, y []string, opts ...Option) (*Classifier, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(x) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vectors, %d labels", ErrDimensionMismatch, len(x), len(y))
	}
	c := &Classifier{K: k}
	for _, opt := range opts {
		opt(c)
	}
	width := len(x[0])
	c.x = make([][]float64, len(x))
	for i, row := range x {
		if len(row) != width {
			return nil, fmt.Errorf("%w: vector %d has %d features, want %d", ErrDimensionMismatch, i, len(row), width)
		}
		v := append([]float64(nil), row...)
		metric.Normalize(v, c.norm)
		c.x[i] = v
	}
	c.y = append([]string(nil), y...)
	seen := make(map[string]bool)
	for _, label := range c.y {
		if !seen[label] {
			seen[label] = true
			c.labels = append(c.labels, label)
		}
	}
	return c, nil
}

// Labels returns the distinct training labels in order of first appearance.
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Norm returns the normalization applied to training vectors and queries.
func (c *Classifier) Norm() metric.Norm {
	return c.norm
}

// Predict returns the most common label among the K training vectors nearest
// to x. K larger than the training set votes over every vector. A tie is won
// by the label whose nearest member is closest to x.
func (c *Classifier) Predict(x []float64) (string, error) {
	if len(c.x) == 0 {
		return "", ErrEmptyTrainingSet
	}
	if c.K <= 0 {
		return "", ErrInvalidK
	}
	if len(x) != len(c.x[0]) {
		return "", fmt.Errorf("%w: query has %d features, want %d", ErrDimensionMismatch, len(x), len(c.x[0]))
	}
	q := append([]float64(nil), x...)
	metric.Normalize(q, c.norm)

	dist := c.Distance.Func()
	points := make([]neighbour, len(c.x))
	parallel.For(len(c.x), c.workers, func(i int) {
		points[i] = neighbour{label: c.y[i], distance: dist(q, c.x[i])}
	})
	sort.SliceStable(points, func(a, b int) bool {
		return points[a].distance < points[b].distance
	})

	k := c.K
	if k > len(points) {
		k = len(points)
	}
	votes := make(map[string]int)
	best := 0
	for _, p := range points[:k] {
		votes[p.label]++
		if votes[p.label] > best {
			best = votes[p.label]
		}
	}
	// points are sorted, so the first label with the top vote count has the
	// closest member
	for _, p := range points[:k] {
		if votes[p.label] == best {
			return p.label, nil
		}
	}
	return "", ErrEmptyTrainingSet
}

// Accuracy returns the fraction of x predicted as the matching label of y.
// An empty test set scores 0.
func (c *Classifier) Accuracy(x [][]float64, y []string) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vectors, %d labels", ErrDimensionMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, nil
	}
	correct := 0
	for i, v := range x {
		label, err := c.Predict(v)
		if err != nil {
			return 0, fmt.Errorf("vector %d: %w", i, err)
		}
		if label == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(x)), nil
}
