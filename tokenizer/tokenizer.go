// Package tokenizer builds bounded vocabularies from a corpus and encodes text
// against them.
package tokenizer

import (
	"errors"

	"github.com/samuel/go-vectorizer/text"
)

var (
	// ErrNoVocabulary is returned when encoding or decoding before BuildVocabulary.
	ErrNoVocabulary = errors.New("tokenizer: vocabulary has not been built")
	// ErrDecodeUnsupported is returned by tokenizers that cannot restore text.
	ErrDecodeUnsupported = errors.New("tokenizer: decode is not supported")
	// ErrIndexOutOfRange is returned by reverse lookups past the vocabulary.
	ErrIndexOutOfRange = errors.New("tokenizer: index out of range")
)

// ErrTokenNotFound is returned when asking for statistics of a token that is
// not part of the vocabulary.
type ErrTokenNotFound string

func (e ErrTokenNotFound) Error() string {
	return "tokenizer: token " + string(e) + " not in vocabulary"
}

// Tokenizer is the interface for a vocabulary based text tokenizer.
//
// The setters only take effect on the next BuildVocabulary call; there is no
// incremental update path.
type Tokenizer interface {
	BuildVocabulary(corpus []string) error
	// Encode returns per-index token counts for text. The result has
	// Vocabulary().Len() entries and unknown tokens are counted at UnknownIndex.
	Encode(text string) ([]int, error)
	Decode(indices []int) (string, error)

	SetMaxTokens(n int)
	SetLowercase(lowercase bool)
	SetStopWords(words []string)
	SetNgrams(mode text.Ngrams)
	SetWorkers(n int)

	// Vocabulary returns nil until BuildVocabulary has been called.
	Vocabulary() *Vocabulary
	Tokens() []string
	DocumentFrequency(token string) (int, error)
	DocumentCount() int
	TokenAt(index int) (string, error)
}

// Default values for tuneables
const (
	DefaultMaxTokens = 10000
	DefaultLowercase = true
)

// options holds the configuration shared by the tokenizer implementations.
type options struct {
	maxTokens int
	analyzer  text.Analyzer
	workers   int
}

func defaultOptions() options {
	return options{
		maxTokens: DefaultMaxTokens,
		analyzer:  text.Analyzer{Lowercase: DefaultLowercase, Ngrams: text.Unigram},
	}
}

func (o *options) SetMaxTokens(n int)          { o.maxTokens = n }
func (o *options) SetLowercase(lowercase bool) { o.analyzer.Lowercase = lowercase }
func (o *options) SetStopWords(words []string) { o.analyzer.StopWords = text.NewStopWordSet(words) }
func (o *options) SetNgrams(mode text.Ngrams)  { o.analyzer.Ngrams = mode }
func (o *options) SetWorkers(n int)            { o.workers = n }

// counts encodes tokens against vocab.
func counts(vocab *Vocabulary, tokens []string) []int {
	out := make([]int, vocab.Len())
	for _, t := range tokens {
		out[vocab.Index(t)]++
	}
	return out
}

// Indices expands a count vector into the multiset of indices it counts, in
// ascending index order. Decode(Indices(Encode(s))) restores the tokens of s
// for tokenizers that support decoding.
func Indices(counts []int) []int {
	n := 0
	for _, c := range counts {
		if c > 0 {
			n += c
		}
	}
	out := make([]int, 0, n)
	for i, c := range counts {
		for j := 0; j < c; j++ {
			out = append(out, i)
		}
	}
	return out
}

// New returns a tokenizer by name: "bag_of_words" (the default for "") or "simple".
func New(kind string) (Tokenizer, error) {
	switch kind {
	case "", "bag_of_words", "bagofwords", "bow":
		return NewBagOfWords(), nil
	case "simple":
		return NewSimple(), nil
	}
	return nil, errors.New("tokenizer: unknown tokenizer " + kind)
}
