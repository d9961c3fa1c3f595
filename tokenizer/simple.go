package tokenizer

import (
	"sort"
	"strings"
)

// Simple keeps the first distinct tokens of the corpus, sorted alphabetically,
// without any frequency ranking. Indices map back to tokens, so Decode is
// supported: unknown or out of range indices decode to UnknownToken.
type Simple struct {
	base
}

var _ Tokenizer = (*Simple)(nil)

// NewSimple returns a Simple tokenizer with default settings.
func NewSimple() *Simple {
	return &Simple{base{options: defaultOptions()}}
}

// BuildVocabulary keeps the first maxTokens distinct tokens (all of them when
// maxTokens <= 0) and indexes them in lexical order.
func (st *Simple) BuildVocabulary(corpus []string) error {
	docs := st.analyzer.AnalyzeAll(corpus, st.workers)
	counter := newDocCounter()
	for _, tokens := range docs {
		counter.add(tokens)
	}
	kept := counter.order
	if st.maxTokens > 0 && len(kept) > st.maxTokens {
		kept = kept[:st.maxTokens]
	}
	sorted := make([]string, len(kept))
	copy(sorted, kept)
	sort.Strings(sorted)
	st.vocab = newVocabulary(sorted, counter.freq, len(corpus))
	return nil
}

// Sequence returns the vocabulary index of every token of s, in order.
func (st *Simple) Sequence(s string) ([]int, error) {
	if st.vocab == nil {
		return nil, ErrNoVocabulary
	}
	tokens := st.analyzer.Analyze(s)
	out := make([]int, len(tokens))
	for i, t := range tokens {
		out[i] = st.vocab.Index(t)
	}
	return out, nil
}

// Decode joins the tokens at indices with single spaces.
func (st *Simple) Decode(indices []int) (string, error) {
	if st.vocab == nil {
		return "", ErrNoVocabulary
	}
	words := make([]string, len(indices))
	for i, idx := range indices {
		t, ok := st.vocab.Token(idx)
		if !ok {
			t = UnknownToken
		}
		words[i] = t
	}
	return strings.Join(words, " "), nil
}
