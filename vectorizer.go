// Package vectorizer turns text documents into fixed-width feature vectors.
//
// A FrequencyVectorizer owns a tokenizer.Tokenizer. GenTokens builds the
// vocabulary from a corpus; Vectorize then encodes documents against it,
// optionally normalizing the counts and reweighting them with TF-IDF.
package vectorizer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samuel/go-vectorizer/internal/parallel"
	"github.com/samuel/go-vectorizer/metric"
	"github.com/samuel/go-vectorizer/text"
	"github.com/samuel/go-vectorizer/tokenizer"
)

// ErrNotFitted is returned by Vectorize when GenTokens has not been called.
var ErrNotFitted = errors.New("vectorizer: GenTokens must be called before Vectorize")

// FrequencyVectorizer encodes documents as token count vectors over the most
// frequent tokens of a corpus. Create one with a Builder.
type FrequencyVectorizer struct {
	maxFeatures int
	lowercase   bool
	tfidf       bool
	norm        metric.Norm
	stopWords   []string
	ngrams      text.Ngrams
	workers     int
	tokenizer   tokenizer.Tokenizer
	logger      *slog.Logger
}

// GenTokens configures the tokenizer and builds the vocabulary from corpus.
// It must be called before Vectorize, and again after changing any option.
func (fv *FrequencyVectorizer) GenTokens(corpus []string) error {
	start := time.Now()
	fv.tokenizer.SetStopWords(fv.stopWords)
	fv.tokenizer.SetMaxTokens(fv.maxFeatures)
	fv.tokenizer.SetNgrams(fv.ngrams)
	fv.tokenizer.SetLowercase(fv.lowercase)
	fv.tokenizer.SetWorkers(fv.workers)
	if err := fv.tokenizer.BuildVocabulary(corpus); err != nil {
		return fmt.Errorf("build vocabulary: %w", err)
	}
	fv.logger.Debug("vocabulary built",
		slog.Int("documents", len(corpus)),
		slog.Int("tokens", fv.tokenizer.Vocabulary().Len()-1),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Vectorize returns one feature vector per document, each of length
// len(Tokens()). Documents are encoded concurrently.
func (fv *FrequencyVectorizer) Vectorize(docs []string) ([][]float64, error) {
	if fv.tokenizer.Vocabulary() == nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFitted, tokenizer.ErrNoVocabulary)
	}
	out := make([][]float64, len(docs))
	err := parallel.ForErr(len(docs), fv.workers, func(i int) error {
		v, err := fv.VectorizeLine(docs[i])
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VectorizeLine returns the feature vector of a single document.
func (fv *FrequencyVectorizer) VectorizeLine(doc string) ([]float64, error) {
	counts, err := fv.tokenizer.Encode(doc)
	if err != nil {
		if errors.Is(err, tokenizer.ErrNoVocabulary) {
			return nil, fmt.Errorf("%w: %w", ErrNotFitted, err)
		}
		return nil, err
	}
	v := make([]float64, len(counts))
	for i, c := range counts {
		v[i] = float64(c)
	}
	// normalization happens on raw counts, before TF-IDF
	metric.Normalize(v, fv.norm)
	if fv.tfidf {
		if err := fv.applyTFIDF(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (fv *FrequencyVectorizer) applyTFIDF(v []float64) error {
	vocab := fv.tokenizer.Vocabulary()
	docs := vocab.DocumentCount()
	for i, c := range v {
		if c == 0 {
			continue
		}
		df, err := vocab.DocumentFrequencyAt(i)
		if err != nil {
			return err
		}
		v[i] = TFIDF(c, docs, df)
	}
	return nil
}

// Tokens returns the vocabulary ordered by vector index, starting with
// tokenizer.UnknownToken. It is empty before GenTokens.
func (fv *FrequencyVectorizer) Tokens() []string {
	return fv.tokenizer.Tokens()
}

// Tokenizer returns the tokenizer owned by the vectorizer.
func (fv *FrequencyVectorizer) Tokenizer() tokenizer.Tokenizer {
	return fv.tokenizer
}

// UseTFIDF reports whether vectors are TF-IDF weighted.
func (fv *FrequencyVectorizer) UseTFIDF() bool { return fv.tfidf }

// Norm returns the configured normalization.
func (fv *FrequencyVectorizer) Norm() metric.Norm { return fv.norm }
