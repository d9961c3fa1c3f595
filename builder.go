package vectorizer

import (
	"io"
	"log/slog"

	"github.com/samuel/go-vectorizer/metric"
	"github.com/samuel/go-vectorizer/text"
	"github.com/samuel/go-vectorizer/tokenizer"
)

// Default values for tuneables
const (
	DefaultMaxFeatures = 10000
	DefaultLowercase   = true
	DefaultTFIDF       = false
)

// Builder accumulates FrequencyVectorizer options. A non-positive MaxFeatures
// keeps every token of the corpus.
type Builder struct {
	MaxFeatures int
	Lowercase   bool
	TFIDF       bool
	Norm        metric.Norm
	StopWords   []string
	Ngrams      text.Ngrams
	Tokenizer   tokenizer.Tokenizer
	Workers     int // GOMAXPROCS when <= 0
	Logger      *slog.Logger
}

// NewBuilder returns a Builder with default settings: 10000 features,
// lowercasing, raw counts, no stop words, unigrams and a BagOfWords tokenizer.
func NewBuilder() *Builder {
	return &Builder{
		MaxFeatures: DefaultMaxFeatures,
		Lowercase:   DefaultLowercase,
		TFIDF:       DefaultTFIDF,
		Norm:        metric.NormNone,
		Ngrams:      text.Unigram,
	}
}

func (b *Builder) WithMaxFeatures(n int) *Builder { b.MaxFeatures = n; return b }

func (b *Builder) WithLowercase(lowercase bool) *Builder { b.Lowercase = lowercase; return b }

func (b *Builder) WithTFIDF(tfidf bool) *Builder { b.TFIDF = tfidf; return b }

func (b *Builder) WithNorm(norm metric.Norm) *Builder { b.Norm = norm; return b }

func (b *Builder) WithStopWords(words []string) *Builder { b.StopWords = words; return b }

func (b *Builder) WithNgrams(mode text.Ngrams) *Builder { b.Ngrams = mode; return b }

// WithTokenizer hands ownership of t to the vectorizer being built.
func (b *Builder) WithTokenizer(t tokenizer.Tokenizer) *Builder { b.Tokenizer = t; return b }

func (b *Builder) WithWorkers(n int) *Builder { b.Workers = n; return b }

func (b *Builder) WithLogger(logger *slog.Logger) *Builder { b.Logger = logger; return b }

// Build returns a FrequencyVectorizer with the accumulated options.
func (b *Builder) Build() *FrequencyVectorizer {
	tok := b.Tokenizer
	if tok == nil {
		tok = tokenizer.NewBagOfWords()
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var stopWords []string
	if len(b.StopWords) > 0 {
		stopWords = append([]string(nil), b.StopWords...)
	}
	return &FrequencyVectorizer{
		maxFeatures: b.MaxFeatures,
		lowercase:   b.Lowercase,
		tfidf:       b.TFIDF,
		norm:        b.Norm,
		stopWords:   stopWords,
		ngrams:      b.Ngrams,
		workers:     b.Workers,
		tokenizer:   tok,
		logger:      logger,
	}
}

// Default returns a FrequencyVectorizer with default settings.
func Default() *FrequencyVectorizer {
	return NewBuilder().Build()
}

// NewTokenizer returns the tokenizer named kind, "bag_of_words" or "simple".
// It is meant for options read from configuration files.
func NewTokenizer(kind string) (tokenizer.Tokenizer, error) {
	return tokenizer.New(kind)
}
