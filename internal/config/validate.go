package config

import (
	"errors"
	"fmt"

	"github.com/samuel/go-vectorizer/dataset"
	"github.com/samuel/go-vectorizer/metric"
	"github.com/samuel/go-vectorizer/text"
	"github.com/samuel/go-vectorizer/tokenizer"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVectorizer(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateVectorizer() error {
	if _, err := metric.ParseNorm(c.Vectorizer.Norm); err != nil {
		return fmt.Errorf("vectorizer.norm: %w", err)
	}
	if _, err := text.ParseNgrams(c.Vectorizer.Ngrams); err != nil {
		return fmt.Errorf("vectorizer.ngrams: %w", err)
	}
	if _, err := tokenizer.New(c.Vectorizer.Tokenizer); err != nil {
		return fmt.Errorf("vectorizer.tokenizer: %w", err)
	}
	if c.Vectorizer.Workers < 0 {
		return errors.New("vectorizer.workers must be zero (all CPUs) or positive")
	}
	return nil
}

func (c *Config) validateClassifier() error {
	if c.Classifier.K <= 0 {
		return errors.New("classifier.k must be positive")
	}
	if _, err := metric.ParseDistance(c.Classifier.Distance); err != nil {
		return fmt.Errorf("classifier.distance: %w", err)
	}
	if _, err := metric.ParseNorm(c.Classifier.Norm); err != nil {
		return fmt.Errorf("classifier.norm: %w", err)
	}
	if _, err := dataset.ParseLabelPosition(c.Classifier.LabelColumn); err != nil {
		return fmt.Errorf("classifier.label_column: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
}
