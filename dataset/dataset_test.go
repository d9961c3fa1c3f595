package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLocalStore(t *testing.T) {
	store := NewLocalStore()

	if cats, err := store.Categories(); err != nil {
		t.Fatal(err)
	} else if len(cats) != 0 {
		t.Fatal("Number of categories should be 0")
	}

	if err := store.AddCategory("spam"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCategory("ham"); err != nil {
		t.Fatal(err)
	}
	if err := store.AddCategory("ham"); err != nil {
		t.Fatal(err)
	}

	if _, err := store.AddDocument("none", "blah"); err != ErrCategoryDoesNotExist("none") {
		t.Fatalf("Expected ErrCategoryDoesNotExist not %+v", err)
	}

	spamID, err := store.AddDocument("spam", "buy cheap pills")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddDocument("ham", "lunch at noon"); err != nil {
		t.Fatal(err)
	}

	if cats, err := store.Categories(); err != nil {
		t.Fatal(err)
	} else if cats["spam"] != 1 || cats["ham"] != 1 || len(cats) != 2 {
		t.Fatalf("unexpected categories %v", cats)
	}

	docs, err := store.Documents(nil)
	if err != nil {
		t.Fatal(err)
	}
	texts, labels := Split(docs)
	if !reflect.DeepEqual(texts, []string{"buy cheap pills", "lunch at noon"}) || !reflect.DeepEqual(labels, []string{"spam", "ham"}) {
		t.Fatalf("unexpected documents %+v", docs)
	}

	if docs, err := store.Documents([]string{"ham"}); err != nil {
		t.Fatal(err)
	} else if len(docs) != 1 || docs[0].Category != "ham" {
		t.Fatalf("unexpected ham documents %+v", docs)
	}
	if _, err := store.Documents([]string{"eggs"}); err != ErrCategoryDoesNotExist("eggs") {
		t.Fatalf("Expected ErrCategoryDoesNotExist not %+v", err)
	}

	if err := store.RemoveDocument(spamID); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveDocument(spamID); err != ErrDocumentDoesNotExist(spamID) {
		t.Fatalf("Expected ErrDocumentDoesNotExist not %+v", err)
	}
	if cats, _ := store.Categories(); cats["spam"] != 0 {
		t.Fatalf("spam count should be 0, got %d", cats["spam"])
	}

	names, err := CategoryNames(store)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"ham", "spam"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestReadDocuments(t *testing.T) {
	in := "text\nhello world\n\"quoted, with comma\", second\n"
	docs, err := ReadDocuments(strings.NewReader(in), true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello world", "quoted, with comma second"}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("docs = %q", docs)
	}
}

func TestReadDocumentsNormalizesUnicode(t *testing.T) {
	docs, err := ReadDocuments(strings.NewReader("cafe\u0301\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	if docs[0] != "caf\u00e9" {
		t.Fatalf("expected NFC text, got %q", docs[0])
	}
}

func TestReadLabeled(t *testing.T) {
	in := "this is a string,0\nanother one,1\n"
	docs, err := ReadLabeled(strings.NewReader(in), false, LabelLast)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || docs[0].Text != "this is a string" || docs[0].Category != "0" || docs[1].Category != "1" {
		t.Fatalf("unexpected documents %+v", docs)
	}

	docs, err = ReadLabeled(strings.NewReader("spam,win money\n"), false, LabelFirst)
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].Category != "spam" || docs[0].Text != "win money" {
		t.Fatalf("unexpected documents %+v", docs)
	}

	_, err = ReadLabeled(strings.NewReader("lonely\n"), false, LabelLast)
	if !errors.Is(err, ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel, got %v", err)
	}
}

func TestReadFeatures(t *testing.T) {
	in := "1.5,2,3,0\n20.24,3.823,10.2,1\n"
	x, y, err := ReadFeatures(strings.NewReader(in), false, LabelLast)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(x[1], []float64{20.24, 3.823, 10.2}) || !reflect.DeepEqual(y, []string{"0", "1"}) {
		t.Fatalf("x=%v y=%v", x, y)
	}
	if _, _, err := ReadFeatures(strings.NewReader("a,b,0\n"), false, LabelLast); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseLabelPosition(t *testing.T) {
	if p, err := ParseLabelPosition("First"); err != nil || p != LabelFirst {
		t.Fatalf("got %v %v", p, err)
	}
	if p, err := ParseLabelPosition(""); err != nil || p != LabelLast {
		t.Fatalf("got %v %v", p, err)
	}
	if _, err := ParseLabelPosition("middle"); err == nil {
		t.Fatal("expected error")
	}
}
