package config

import (
	"fmt"
	"strings"

	"github.com/samuel/go-vectorizer/stopwords"
)

func (c *Config) normalize() error {
	if err := c.normalizeVectorizer(); err != nil {
		return err
	}
	c.normalizeClassifier()
	if err := c.normalizeStore(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *Config) normalizeVectorizer() error {
	v := &c.Vectorizer
	v.Norm = lowerTrim(v.Norm)
	if v.Norm == "" {
		v.Norm = defaultNorm
	}
	v.Ngrams = lowerTrim(v.Ngrams)
	if v.Ngrams == "" {
		v.Ngrams = defaultNgrams
	}
	v.Tokenizer = lowerTrim(v.Tokenizer)
	if v.Tokenizer == "" {
		v.Tokenizer = defaultTokenizer
	}
	v.StopWords = strings.TrimSpace(v.StopWords)
	if v.StopWords == "" || strings.EqualFold(v.StopWords, "none") {
		v.StopWords = ""
		return nil
	}
	if !isLanguage(v.StopWords) {
		expanded, err := expandPath(v.StopWords)
		if err != nil {
			return fmt.Errorf("vectorizer.stop_words: %w", err)
		}
		v.StopWords = expanded
	}
	return nil
}

func isLanguage(name string) bool {
	for _, lang := range stopwords.Languages() {
		if strings.EqualFold(lang, name) {
			return true
		}
	}
	return false
}

func (c *Config) normalizeClassifier() {
	c.Classifier.Distance = lowerTrim(c.Classifier.Distance)
	if c.Classifier.Distance == "" {
		c.Classifier.Distance = defaultDistance
	}
	c.Classifier.Norm = lowerTrim(c.Classifier.Norm)
	if c.Classifier.Norm == "" {
		c.Classifier.Norm = defaultNorm
	}
	c.Classifier.LabelColumn = lowerTrim(c.Classifier.LabelColumn)
	if c.Classifier.LabelColumn == "" {
		c.Classifier.LabelColumn = defaultLabelColumn
	}
}

func (c *Config) normalizeStore() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = defaultStorePath
	}
	var err error
	if c.Store.Path, err = expandPath(strings.TrimSpace(c.Store.Path)); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = lowerTrim(c.Logging.Format)
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = lowerTrim(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
