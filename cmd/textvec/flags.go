package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuel/go-vectorizer/internal/config"
)

// vectorizerFlags override the [vectorizer] section for a single command.
type vectorizerFlags struct {
	maxFeatures int
	lowercase   bool
	tfidf       bool
	norm        string
	stopWords   string
	ngrams      string
	tokenizer   string
	workers     int
}

func (f *vectorizerFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.maxFeatures, "max-features", 0, "Vocabulary size (<= 0 keeps every token)")
	fs.BoolVar(&f.lowercase, "lowercase", true, "Lowercase ASCII letters before tokenizing")
	fs.BoolVar(&f.tfidf, "tfidf", false, "Weight counts with TF-IDF")
	fs.StringVar(&f.norm, "norm", "", "Normalization applied before TF-IDF (none, l1, l2)")
	fs.StringVar(&f.stopWords, "stop-words", "", "Stop word language or file")
	fs.StringVar(&f.ngrams, "ngrams", "", "unigram, bigram or both")
	fs.StringVar(&f.tokenizer, "tokenizer", "", "bag_of_words or simple")
	fs.IntVar(&f.workers, "workers", 0, "Worker goroutines (0 uses every CPU)")
}

// apply copies the flags set on the command line into v.
func (f *vectorizerFlags) apply(cmd *cobra.Command, v *config.Vectorizer) {
	fs := cmd.Flags()
	if fs.Changed("max-features") {
		v.MaxFeatures = f.maxFeatures
	}
	if fs.Changed("lowercase") {
		v.Lowercase = f.lowercase
	}
	if fs.Changed("tfidf") {
		v.TFIDF = f.tfidf
	}
	if fs.Changed("norm") {
		v.Norm = f.norm
	}
	if fs.Changed("stop-words") {
		v.StopWords = f.stopWords
	}
	if fs.Changed("ngrams") {
		v.Ngrams = f.ngrams
	}
	if fs.Changed("tokenizer") {
		v.Tokenizer = strings.ToLower(strings.TrimSpace(f.tokenizer))
	}
	if fs.Changed("workers") {
		v.Workers = f.workers
	}
}
