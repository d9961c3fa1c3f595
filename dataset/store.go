// Package dataset stores and loads labeled text documents used to build
// vocabularies and train classifiers.
package dataset

import (
	"sort"

	"github.com/google/uuid"
)

// ErrCategoryDoesNotExist is the error returned when a category doesn't exist.
type ErrCategoryDoesNotExist string

func (e ErrCategoryDoesNotExist) Error() string {
	return "dataset: category " + string(e) + " does not exist"
}

// ErrDocumentDoesNotExist is the error returned when a document ID is unknown.
type ErrDocumentDoesNotExist string

func (e ErrDocumentDoesNotExist) Error() string {
	return "dataset: document " + string(e) + " does not exist"
}

// Document is a labeled piece of text.
type Document struct {
	ID       string
	Category string
	Text     string
}

// Store is the storage interface for labeled documents
type Store interface {
	Categories() (map[string]int64, error) // category -> document count
	AddCategory(name string) error
	// AddDocument stores text under category and returns the new document ID.
	AddDocument(category, text string) (string, error)
	RemoveDocument(id string) error
	// Documents returns the documents of the given categories (all when nil)
	// in insertion order.
	Documents(categories []string) ([]Document, error)
}

type localStore struct {
	categories     []string
	documentCounts map[string]int64 // category -> count
	documents      []Document
}

// NewLocalStore returns a new in-memory store
func NewLocalStore() Store {
	return &localStore{
		categories:     make([]string, 0),
		documentCounts: make(map[string]int64),
	}
}

func (ls *localStore) AddCategory(name string) error {
	if _, ok := ls.documentCounts[name]; ok {
		return nil
	}
	ls.categories = append(ls.categories, name)
	ls.documentCounts[name] = 0
	return nil
}

func (ls *localStore) AddDocument(category, text string) (string, error) {
	if _, ok := ls.documentCounts[category]; !ok {
		return "", ErrCategoryDoesNotExist(category)
	}
	id := uuid.NewString()
	ls.documentCounts[category]++
	ls.documents = append(ls.documents, Document{ID: id, Category: category, Text: text})
	return id, nil
}

func (ls *localStore) RemoveDocument(id string) error {
	for i, d := range ls.documents {
		if d.ID == id {
			ls.documentCounts[d.Category]--
			ls.documents = append(ls.documents[:i], ls.documents[i+1:]...)
			return nil
		}
	}
	return ErrDocumentDoesNotExist(id)
}

func (ls *localStore) Categories() (map[string]int64, error) {
	counts := make(map[string]int64, len(ls.documentCounts))
	for k, v := range ls.documentCounts {
		counts[k] = v
	}
	return counts, nil
}

func (ls *localStore) Documents(categories []string) ([]Document, error) {
	var want map[string]bool
	if categories != nil {
		want = make(map[string]bool, len(categories))
		for _, c := range categories {
			if _, ok := ls.documentCounts[c]; !ok {
				return nil, ErrCategoryDoesNotExist(c)
			}
			want[c] = true
		}
	}
	docs := make([]Document, 0, len(ls.documents))
	for _, d := range ls.documents {
		if want == nil || want[d.Category] {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

// CategoryNames returns the categories of s sorted by name.
func CategoryNames(s Store) ([]string, error) {
	counts, err := s.Categories()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Split separates documents into parallel text and category slices.
func Split(docs []Document) (texts, categories []string) {
	texts = make([]string, len(docs))
	categories = make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
		categories[i] = d.Category
	}
	return texts, categories
}
