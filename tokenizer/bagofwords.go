package tokenizer

import (
	"sort"
)

// BagOfWords builds its vocabulary from the tokens appearing in the most
// documents. Token order is not kept, so Decode is not supported.
type BagOfWords struct {
	base
}

var _ Tokenizer = (*BagOfWords)(nil)

// NewBagOfWords returns a BagOfWords tokenizer with default settings.
func NewBagOfWords() *BagOfWords {
	return &BagOfWords{base{options: defaultOptions()}}
}

// docCounter accumulates per-token document frequencies in first-seen order.
// It is owned by a single BuildVocabulary call.
type docCounter struct {
	freq  map[string]int
	order []string // first-seen order; position+1 is the first-seen index
	seen  map[string]struct{}
}

func newDocCounter() *docCounter {
	return &docCounter{
		freq: make(map[string]int),
		seen: make(map[string]struct{}),
	}
}

// add counts each distinct non-empty token of one document once. A literal
// UnknownToken is left to the sentinel entry.
func (c *docCounter) add(tokens []string) {
	for _, t := range tokens {
		if t == "" || t == UnknownToken {
			continue
		}
		if _, dup := c.seen[t]; dup {
			continue
		}
		c.seen[t] = struct{}{}
		if _, ok := c.freq[t]; !ok {
			c.order = append(c.order, t)
		}
		c.freq[t]++
	}
	for t := range c.seen {
		delete(c.seen, t)
	}
}

// mostFrequent returns up to max tokens ranked by document frequency, ties kept
// in first-seen order. A non-positive max keeps every token in first-seen order.
func (c *docCounter) mostFrequent(max int) []string {
	ranked := make([]string, len(c.order))
	copy(ranked, c.order)
	if max <= 0 {
		return ranked
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.freq[ranked[i]] > c.freq[ranked[j]]
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// BuildVocabulary replaces the vocabulary with the most document-frequent
// tokens of corpus. Every line counts as one document.
func (bw *BagOfWords) BuildVocabulary(corpus []string) error {
	docs := bw.analyzer.AnalyzeAll(corpus, bw.workers)
	counter := newDocCounter()
	for _, tokens := range docs {
		counter.add(tokens)
	}
	bw.vocab = newVocabulary(counter.mostFrequent(bw.maxTokens), counter.freq, len(corpus))
	return nil
}

// Decode always fails: a bag of words does not preserve token order and
// n-grams or stop words make the input text unrecoverable.
func (bw *BagOfWords) Decode(indices []int) (string, error) {
	if bw.vocab == nil {
		return "", ErrNoVocabulary
	}
	return "", ErrDecodeUnsupported
}
