package tokenizer

const (
	// UnknownToken is the sentinel token stored at UnknownIndex.
	UnknownToken = "UNK"
	// UnknownIndex is the vector slot counting tokens outside the vocabulary.
	UnknownIndex = 0
)

// Entry is the position and document frequency of a vocabulary token.
type Entry struct {
	Index             int
	DocumentFrequency int
}

// Vocabulary is an immutable token -> Entry mapping. Index 0 is reserved for
// UnknownToken; retained tokens occupy the dense range 1..Len()-1.
// A Vocabulary is safe for concurrent reads.
type Vocabulary struct {
	entries   map[string]Entry
	tokens    []string // index -> token, tokens[0] == UnknownToken
	documents int
}

// newVocabulary takes ownership of tokens (ordered by index, without the
// sentinel) and their document frequencies.
func newVocabulary(tokens []string, docFreq map[string]int, documents int) *Vocabulary {
	v := &Vocabulary{
		entries:   make(map[string]Entry, len(tokens)),
		tokens:    make([]string, 0, len(tokens)+1),
		documents: documents,
	}
	v.tokens = append(v.tokens, UnknownToken)
	for _, t := range tokens {
		if t == UnknownToken {
			continue
		}
		v.entries[t] = Entry{Index: len(v.tokens), DocumentFrequency: docFreq[t]}
		v.tokens = append(v.tokens, t)
	}
	return v
}

// Len returns the vector length, including the unknown slot.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Lookup returns the entry for token. The sentinel resolves to index 0 with
// document frequency 0 unless the corpus itself produced that token.
func (v *Vocabulary) Lookup(token string) (Entry, bool) {
	if e, ok := v.entries[token]; ok {
		return e, true
	}
	if token == UnknownToken {
		return Entry{Index: UnknownIndex}, true
	}
	return Entry{}, false
}

// Index returns the slot of token, or UnknownIndex.
func (v *Vocabulary) Index(token string) int {
	if e, ok := v.entries[token]; ok {
		return e.Index
	}
	return UnknownIndex
}

// Token returns the token stored at index.
func (v *Vocabulary) Token(index int) (string, bool) {
	if index < 0 || index >= len(v.tokens) {
		return "", false
	}
	return v.tokens[index], true
}

// Tokens returns a copy of the tokens ordered by index, UnknownToken first.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// DocumentFrequency returns the number of corpus documents containing token.
func (v *Vocabulary) DocumentFrequency(token string) (int, error) {
	e, ok := v.Lookup(token)
	if !ok {
		return 0, ErrTokenNotFound(token)
	}
	return e.DocumentFrequency, nil
}

// DocumentFrequencyAt returns the document frequency of the token at index.
func (v *Vocabulary) DocumentFrequencyAt(index int) (int, error) {
	if index < 0 || index >= len(v.tokens) {
		return 0, ErrIndexOutOfRange
	}
	if index == UnknownIndex {
		return 0, nil
	}
	return v.entries[v.tokens[index]].DocumentFrequency, nil
}

// DocumentCount returns the number of documents the vocabulary was built from.
func (v *Vocabulary) DocumentCount() int {
	return v.documents
}

// base implements the read accessors shared by every tokenizer.
type base struct {
	options
	vocab *Vocabulary
}

func (b *base) Vocabulary() *Vocabulary { return b.vocab }

func (b *base) Tokens() []string {
	if b.vocab == nil {
		return nil
	}
	return b.vocab.Tokens()
}

func (b *base) DocumentFrequency(token string) (int, error) {
	if b.vocab == nil {
		return 0, ErrTokenNotFound(token)
	}
	return b.vocab.DocumentFrequency(token)
}

func (b *base) DocumentCount() int {
	if b.vocab == nil {
		return 0
	}
	return b.vocab.DocumentCount()
}

func (b *base) TokenAt(index int) (string, error) {
	if b.vocab == nil {
		return "", ErrNoVocabulary
	}
	t, ok := b.vocab.Token(index)
	if !ok {
		return "", ErrIndexOutOfRange
	}
	return t, nil
}

func (b *base) Encode(s string) ([]int, error) {
	if b.vocab == nil {
		return nil, ErrNoVocabulary
	}
	return counts(b.vocab, b.analyzer.Analyze(s)), nil
}
