package text

import (
	"strings"

	"github.com/samuel/go-vectorizer/internal/parallel"
)

// StopWordSet is a set of tokens removed before n-gram expansion.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from words. A nil or empty list yields a nil set
// which filters nothing.
func NewStopWordSet(words []string) StopWordSet {
	if len(words) == 0 {
		return nil
	}
	set := make(StopWordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether token is a stop word.
func (s StopWordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Filter removes stop words from tokens in place and returns the shortened slice.
func (s StopWordSet) Filter(tokens []string) []string {
	if len(s) == 0 {
		return tokens
	}
	out := tokens[:0]
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Analyzer holds the options shared by vocabulary construction and encoding.
// The same Analyzer must be used for both so that documents are tokenized
// identically.
type Analyzer struct {
	Lowercase bool
	StopWords StopWordSet
	Ngrams    Ngrams
}

// Analyze returns the feature tokens of a single document.
func (a Analyzer) Analyze(line string) []string {
	fields := strings.Fields(Sanitize(line, a.Lowercase))
	fields = a.StopWords.Filter(fields)
	return Expand(fields, a.Ngrams)
}

// AnalyzeAll analyzes every line using at most workers goroutines
// (GOMAXPROCS when workers <= 0). The result is index-aligned with lines.
func (a Analyzer) AnalyzeAll(lines []string, workers int) [][]string {
	out := make([][]string, len(lines))
	parallel.For(len(lines), workers, func(i int) {
		out[i] = a.Analyze(lines[i])
	})
	return out
}
