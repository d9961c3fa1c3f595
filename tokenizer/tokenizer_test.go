package tokenizer

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/samuel/go-vectorizer/stopwords"
	"github.com/samuel/go-vectorizer/text"
)

var testCorpus = []string{
	"Hello, my name is bob!",
	"Beep boop I'm a bot",
	"Beep boop I'm a bob!",
}

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestBagOfWordsVocabulary(t *testing.T) {
	bw := NewBagOfWords()
	bw.SetMaxTokens(100)
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	want := []string{"UNK", "a", "beep", "bob", "boop", "bot", "hello", "im", "is", "my", "name"}
	if got := sorted(bw.Tokens()); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	if n := bw.Vocabulary().Len(); n != 11 {
		t.Fatalf("expected 11 slots, got %d", n)
	}
	if n := bw.DocumentCount(); n != 3 {
		t.Fatalf("expected 3 documents, got %d", n)
	}
	for token, want := range map[string]int{"beep": 2, "bob": 2, "hello": 1, "UNK": 0} {
		if got, err := bw.DocumentFrequency(token); err != nil {
			t.Fatal(err)
		} else if got != want {
			t.Errorf("DocumentFrequency(%q) = %d, want %d", token, got, want)
		}
	}
}

func TestBagOfWordsRankedOrder(t *testing.T) {
	bw := NewBagOfWords()
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	// document frequency 2 first, then 1, each group in first-seen order
	want := []string{"UNK", "bob", "beep", "boop", "im", "a", "hello", "my", "name", "is", "bot"}
	if got := bw.Tokens(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i, token := range want {
		if got, err := bw.TokenAt(i); err != nil || got != token {
			t.Fatalf("TokenAt(%d) = %q, %v", i, got, err)
		}
	}
	if _, err := bw.TokenAt(len(want)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestBagOfWordsCountsDocumentFrequency(t *testing.T) {
	bw := NewBagOfWords()
	err := bw.BuildVocabulary([]string{
		"Hello, my name is bob!",
		"Beep beep I'm a bot",
		"Beep boop I'm a bob!",
	})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := bw.DocumentFrequency("beep"); n != 2 {
		t.Fatalf("beep: expected document frequency 2, got %d", n)
	}
	if n, _ := bw.DocumentFrequency("bob"); n != 2 {
		t.Fatalf("bob: expected document frequency 2, got %d", n)
	}
}

func TestBagOfWordsTruncationTieBreak(t *testing.T) {
	bw := NewBagOfWords()
	bw.SetMaxTokens(2)
	if err := bw.BuildVocabulary([]string{"c b a", "a b c", "z"}); err != nil {
		t.Fatal(err)
	}
	want := []string{"UNK", "c", "b"}
	if got := bw.Tokens(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	if _, err := bw.DocumentFrequency("a"); err == nil {
		t.Fatal("expected error for truncated token")
	}
}

func TestBagOfWordsKeepAll(t *testing.T) {
	for _, max := range []int{0, -1} {
		bw := NewBagOfWords()
		bw.SetMaxTokens(max)
		if err := bw.BuildVocabulary(testCorpus); err != nil {
			t.Fatal(err)
		}
		want := []string{"UNK", "hello", "my", "name", "is", "bob", "beep", "boop", "im", "a", "bot"}
		if got := bw.Tokens(); !reflect.DeepEqual(got, want) {
			t.Fatalf("max=%d: tokens = %v, want %v", max, got, want)
		}
	}
}

func TestBagOfWordsBigrams(t *testing.T) {
	bw := NewBagOfWords()
	bw.SetNgrams(text.Bigram)
	if err := bw.BuildVocabulary([]string{"Hello, my name is bob!"}); err != nil {
		t.Fatal(err)
	}
	want := sorted([]string{"UNK", "hello my", "my name", "name is", "is bob"})
	if got := sorted(bw.Tokens()); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
}

func TestBagOfWordsBothWithStopWords(t *testing.T) {
	english, err := stopwords.Load("english")
	if err != nil {
		t.Fatal(err)
	}
	bw := NewBagOfWords()
	bw.SetNgrams(text.Both)
	bw.SetStopWords(english)
	if err := bw.BuildVocabulary([]string{"Hello, my name is bob!"}); err != nil {
		t.Fatal(err)
	}
	want := sorted([]string{"UNK", "bob", "hello", "hello name", "name", "name bob"})
	if got := sorted(bw.Tokens()); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
}

func TestBagOfWordsEmptyDocuments(t *testing.T) {
	bw := NewBagOfWords()
	bw.SetStopWords([]string{"the"})
	if err := bw.BuildVocabulary([]string{"", "!!!", "The", "word"}); err != nil {
		t.Fatal(err)
	}
	if got := bw.Tokens(); !reflect.DeepEqual(got, []string{"UNK", "word"}) {
		t.Fatalf("tokens = %v", got)
	}
	if n := bw.DocumentCount(); n != 4 {
		t.Fatalf("expected 4 documents, got %d", n)
	}
	counts, err := bw.Encode("...")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(counts, []int{0, 0}) {
		t.Fatalf("counts = %v", counts)
	}
}

func TestBagOfWordsEncode(t *testing.T) {
	bw := NewBagOfWords()
	if _, err := bw.Encode("hello"); !errors.Is(err, ErrNoVocabulary) {
		t.Fatalf("expected ErrNoVocabulary, got %v", err)
	}
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	counts, err := bw.Encode("Hello, I'm Bloop! Hello")
	if err != nil {
		t.Fatal(err)
	}
	want := make([]int, 11)
	want[UnknownIndex] = 1 // bloop
	want[bw.Vocabulary().Index("hello")] = 2
	want[bw.Vocabulary().Index("im")] = 1
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestBagOfWordsDecodeUnsupported(t *testing.T) {
	bw := NewBagOfWords()
	if _, err := bw.Decode([]int{1}); !errors.Is(err, ErrNoVocabulary) {
		t.Fatalf("expected ErrNoVocabulary, got %v", err)
	}
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	if _, err := bw.Decode([]int{1, 2}); !errors.Is(err, ErrDecodeUnsupported) {
		t.Fatalf("expected ErrDecodeUnsupported, got %v", err)
	}
}

func TestDocumentFrequencyUnknownToken(t *testing.T) {
	bw := NewBagOfWords()
	if _, err := bw.DocumentFrequency("bob"); err == nil {
		t.Fatal("expected error before build")
	}
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	_, err := bw.DocumentFrequency("alice")
	if err != ErrTokenNotFound("alice") {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestLiteralUnknownTokenMapsToSentinel(t *testing.T) {
	for _, tok := range []Tokenizer{NewBagOfWords(), NewSimple()} {
		tok.SetLowercase(false)
		if err := tok.BuildVocabulary([]string{"UNK bob", "UNK"}); err != nil {
			t.Fatal(err)
		}
		if got := tok.Tokens(); !reflect.DeepEqual(got, []string{"UNK", "bob"}) {
			t.Fatalf("%T: tokens = %v", tok, got)
		}
		if df, err := tok.DocumentFrequency("UNK"); err != nil || df != 0 {
			t.Fatalf("%T: DocumentFrequency(UNK) = %d %v, want 0", tok, df, err)
		}
		if idx := tok.Vocabulary().Index("UNK"); idx != UnknownIndex {
			t.Fatalf("%T: Index(UNK) = %d", tok, idx)
		}
		counts, err := tok.Encode("UNK zebra bob")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(counts, []int{2, 1}) {
			t.Fatalf("%T: Encode = %v, want [2 1]", tok, counts)
		}
	}
}

func TestRebuildReplacesVocabulary(t *testing.T) {
	bw := NewBagOfWords()
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	before := bw.Vocabulary()
	bw.SetMaxTokens(1)
	if err := bw.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	if before.Len() != 11 {
		t.Fatalf("old vocabulary changed: %d", before.Len())
	}
	if got := bw.Tokens(); !reflect.DeepEqual(got, []string{"UNK", "bob"}) {
		t.Fatalf("tokens = %v", got)
	}
}

func randomCorpus(rnd *rand.Rand) []string {
	words := []string{"alpha", "beta", "gamma", "delta", "eps", "zeta", "eta", "theta"}
	docs := make([]string, 1+rnd.Intn(20))
	for i := range docs {
		n := rnd.Intn(12)
		parts := make([]string, n)
		for j := range parts {
			parts[j] = words[rnd.Intn(len(words))]
		}
		docs[i] = strings.Join(parts, " ")
	}
	return docs
}

func TestVocabularyProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		corpus := randomCorpus(rnd)
		max := rnd.Intn(10) - 2
		for _, tok := range []Tokenizer{NewBagOfWords(), NewSimple()} {
			tok.SetMaxTokens(max)
			tok.SetWorkers(3)
			if err := tok.BuildVocabulary(corpus); err != nil {
				t.Fatal(err)
			}
			vocab := tok.Vocabulary()
			name := fmt.Sprintf("%T iter=%d max=%d", tok, iter, max)

			distinct := map[string]bool{}
			for _, doc := range corpus {
				for _, w := range strings.Fields(doc) {
					distinct[w] = true
				}
			}
			kept := vocab.Len() - 1
			if max > 0 && kept > max {
				t.Fatalf("%s: kept %d tokens", name, kept)
			}
			if max <= 0 && kept != len(distinct) {
				t.Fatalf("%s: kept %d of %d tokens", name, kept, len(distinct))
			}

			for i, token := range vocab.Tokens()[1:] {
				e, ok := vocab.Lookup(token)
				if !ok || e.Index != i+1 {
					t.Fatalf("%s: %q has entry %+v", name, token, e)
				}
				df := 0
				for _, doc := range corpus {
					if strings.Contains(" "+doc+" ", " "+token+" ") {
						df++
					}
				}
				if e.DocumentFrequency != df || df > vocab.DocumentCount() {
					t.Fatalf("%s: %q document frequency %d, want %d", name, token, e.DocumentFrequency, df)
				}
			}

			if max <= 0 {
				for _, doc := range corpus {
					counts, err := tok.Encode(doc)
					if err != nil {
						t.Fatal(err)
					}
					if counts[UnknownIndex] != 0 {
						t.Fatalf("%s: corpus document %q hit the unknown slot", name, doc)
					}
				}
			}
		}
	}
}

func TestSimpleTokenizer(t *testing.T) {
	st := NewSimple()
	if _, err := st.Sequence("hi"); !errors.Is(err, ErrNoVocabulary) {
		t.Fatalf("expected ErrNoVocabulary, got %v", err)
	}
	if err := st.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	want := []string{"UNK", "a", "beep", "bob", "boop", "bot", "hello", "im", "is", "my", "name"}
	if got := st.Tokens(); !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	seq, err := st.Sequence("Hello, I'm Bloop!")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seq, []int{6, 7, 0}) {
		t.Fatalf("sequence = %v", seq)
	}
	decoded, err := st.Decode(seq)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != "hello im UNK" {
		t.Fatalf("decoded %q", decoded)
	}
	if decoded, _ := st.Decode([]int{99, -1}); decoded != "UNK UNK" {
		t.Fatalf("out of range decoded %q", decoded)
	}
	if n, _ := st.DocumentFrequency("beep"); n != 2 {
		t.Fatalf("beep: expected 2, got %d", n)
	}
}

func TestSimpleTruncatesByFirstAppearance(t *testing.T) {
	st := NewSimple()
	st.SetMaxTokens(3)
	if err := st.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	if got := st.Tokens(); !reflect.DeepEqual(got, []string{"UNK", "hello", "my", "name"}) {
		t.Fatalf("tokens = %v", got)
	}
}

func TestSimpleRoundTrip(t *testing.T) {
	st := NewSimple()
	st.SetMaxTokens(0)
	if err := st.BuildVocabulary(testCorpus); err != nil {
		t.Fatal(err)
	}
	for _, line := range testCorpus {
		counts, err := st.Encode(line)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := st.Decode(Indices(counts))
		if err != nil {
			t.Fatal(err)
		}
		got := sorted(strings.Fields(decoded))
		want := sorted(strings.Fields(text.Sanitize(line, true)))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q: decoded %v, want %v", line, got, want)
		}
	}
}

func TestIndices(t *testing.T) {
	if got := Indices([]int{1, 0, 2, 0}); !reflect.DeepEqual(got, []int{0, 2, 2}) {
		t.Fatalf("got %v", got)
	}
	if got := Indices(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestNew(t *testing.T) {
	if tok, err := New(""); err != nil {
		t.Fatal(err)
	} else if _, ok := tok.(*BagOfWords); !ok {
		t.Fatalf("default tokenizer is %T", tok)
	}
	if tok, err := New("simple"); err != nil {
		t.Fatal(err)
	} else if _, ok := tok.(*Simple); !ok {
		t.Fatalf("simple tokenizer is %T", tok)
	}
	if _, err := New("wordpiece"); err == nil {
		t.Fatal("expected error")
	}
}
