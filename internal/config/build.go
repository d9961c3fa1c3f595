package config

import (
	"fmt"
	"log/slog"

	vectorizer "github.com/samuel/go-vectorizer"
	"github.com/samuel/go-vectorizer/knn"
	"github.com/samuel/go-vectorizer/metric"
	"github.com/samuel/go-vectorizer/stopwords"
	"github.com/samuel/go-vectorizer/text"
)

// Builder returns a vectorizer.Builder carrying the [vectorizer] options. Stop
// words are loaded here, so a missing file surfaces as an error.
func (c *Config) Builder(logger *slog.Logger) (*vectorizer.Builder, error) {
	v := c.Vectorizer
	norm, err := metric.ParseNorm(v.Norm)
	if err != nil {
		return nil, err
	}
	ngrams, err := text.ParseNgrams(v.Ngrams)
	if err != nil {
		return nil, err
	}
	tok, err := vectorizer.NewTokenizer(v.Tokenizer)
	if err != nil {
		return nil, err
	}
	words, err := stopwords.Resolve(v.StopWords)
	if err != nil {
		return nil, fmt.Errorf("vectorizer.stop_words: %w", err)
	}
	return vectorizer.NewBuilder().
		WithMaxFeatures(v.MaxFeatures).
		WithLowercase(v.Lowercase).
		WithTFIDF(v.TFIDF).
		WithNorm(norm).
		WithNgrams(ngrams).
		WithStopWords(words).
		WithTokenizer(tok).
		WithWorkers(v.Workers).
		WithLogger(logger), nil
}

// ClassifierOptions returns the kNN options of the [classifier] section.
func (c *Config) ClassifierOptions() ([]knn.Option, error) {
	distance, err := metric.ParseDistance(c.Classifier.Distance)
	if err != nil {
		return nil, err
	}
	norm, err := metric.ParseNorm(c.Classifier.Norm)
	if err != nil {
		return nil, err
	}
	return []knn.Option{
		knn.WithDistance(distance),
		knn.WithNorm(norm),
		knn.WithWorkers(c.Vectorizer.Workers),
	}, nil
}
