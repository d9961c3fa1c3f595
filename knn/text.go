package knn

import (
	"errors"
	"fmt"

	vectorizer "github.com/samuel/go-vectorizer"
	"github.com/samuel/go-vectorizer/dataset"
	"github.com/samuel/go-vectorizer/metric"
)

var ErrNotTrained = errors.New("knn: Train must be called before Classify")

// TextClassifier labels documents by the categories of their nearest stored
// documents.
type TextClassifier struct {
	store      dataset.Store
	vectorizer *vectorizer.FrequencyVectorizer
	classifier *Classifier

	K        int
	Distance metric.Distance
	Norm     metric.Norm
}

// NewTextClassifier returns a classifier that trains on the documents of
// store, vectorized by fv.
func NewTextClassifier(store dataset.Store, fv *vectorizer.FrequencyVectorizer, k int) (*TextClassifier, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	return &TextClassifier{
		store:      store,
		vectorizer: fv,
		K:          k,
		Distance:   metric.Euclidean,
		Norm:       metric.NormNone,
	}, nil
}

func (tc *TextClassifier) AddCategory(name string) error {
	return tc.store.AddCategory(name)
}

// AddDocument stores text under category. It takes effect on the next Train.
func (tc *TextClassifier) AddDocument(category, text string) (string, error) {
	return tc.store.AddDocument(category, text)
}

// Train rebuilds the vocabulary from every stored document and indexes their
// vectors.
func (tc *TextClassifier) Train() error {
	docs, err := tc.store.Documents(nil)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return ErrEmptyTrainingSet
	}
	texts, labels := dataset.Split(docs)
	if err := tc.vectorizer.GenTokens(texts); err != nil {
		return err
	}
	x, err := tc.vectorizer.Vectorize(texts)
	if err != nil {
		return err
	}
	c, err := New(tc.K, x, labels, WithDistance(tc.Distance), WithNorm(tc.Norm))
	if err != nil {
		return err
	}
	tc.classifier = c
	return nil
}

// Classify returns the predicted category of text.
func (tc *TextClassifier) Classify(text string) (string, error) {
	if tc.classifier == nil {
		return "", ErrNotTrained
	}
	v, err := tc.vectorizer.VectorizeLine(text)
	if err != nil {
		return "", err
	}
	return tc.classifier.Predict(v)
}

// Accuracy returns the fraction of texts classified as the matching label.
func (tc *TextClassifier) Accuracy(texts, labels []string) (float64, error) {
	if tc.classifier == nil {
		return 0, ErrNotTrained
	}
	if len(texts) != len(labels) {
		return 0, fmt.Errorf("%w: %d texts, %d labels", ErrDimensionMismatch, len(texts), len(labels))
	}
	x, err := tc.vectorizer.Vectorize(texts)
	if err != nil {
		return 0, err
	}
	return tc.classifier.Accuracy(x, labels)
}

// Vectorizer returns the vectorizer used by the classifier.
func (tc *TextClassifier) Vectorizer() *vectorizer.FrequencyVectorizer {
	return tc.vectorizer
}
