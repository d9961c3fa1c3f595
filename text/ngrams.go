package text

import (
	"fmt"
	"strings"
)

// Ngrams selects which token n-grams become features.
type Ngrams int

const (
	// Unigram uses single words.
	Unigram Ngrams = iota
	// Bigram uses pairs of adjacent words.
	Bigram
	// Both uses bigrams followed by unigrams.
	Both
)

func (n Ngrams) String() string {
	switch n {
	case Unigram:
		return "unigram"
	case Bigram:
		return "bigram"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Ngrams(%d)", int(n))
}

// ParseNgrams converts a configuration value into an Ngrams mode. The empty
// string maps to Unigram.
func ParseNgrams(s string) (Ngrams, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unigram", "unigrams", "1":
		return Unigram, nil
	case "bigram", "bigrams", "2":
		return Bigram, nil
	case "both", "1-2":
		return Both, nil
	}
	return Unigram, fmt.Errorf("text: unknown ngram mode %q", s)
}

// Expand turns a token sequence into the features selected by mode.
// It never fails; an empty or single token input yields no bigrams.
func Expand(tokens []string, mode Ngrams) []string {
	switch mode {
	case Bigram:
		return bigrams(tokens)
	case Both:
		out := bigrams(tokens)
		return append(out, tokens...)
	}
	return tokens
}

func bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return []string{}
	}
	out := make([]string, 0, len(tokens)-1+len(tokens))
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
