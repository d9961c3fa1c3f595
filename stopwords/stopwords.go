// Package stopwords loads stop-word lists by language name or from files.
package stopwords

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.txt
var bundled embed.FS

// ErrUnknownLanguage is returned when no bundled list exists for a language.
type ErrUnknownLanguage string

func (e ErrUnknownLanguage) Error() string {
	return "stopwords: no list for language " + string(e)
}

// Languages returns the names of the bundled lists.
func Languages() []string {
	entries, err := bundled.ReadDir("data")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(langs)
	return langs
}

// Load returns the bundled stop words for language (case-insensitive).
func Load(language string) ([]string, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" || strings.ContainsAny(lang, `/\.`) {
		return nil, ErrUnknownLanguage(language)
	}
	data, err := bundled.ReadFile("data/" + lang + ".txt")
	if err != nil {
		return nil, ErrUnknownLanguage(language)
	}
	return readLines(bytes.NewReader(data))
}

// LoadFile reads a stop-word file. Files ending in .yaml or .yml hold a
// "terms" list; anything else is read as one word per line with # comments.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	}
	return readLines(bytes.NewReader(data))
}

// Resolve accepts either a bundled language name or a path to a list file.
// The empty string resolves to no stop words.
func Resolve(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") {
		return nil, nil
	}
	words, err := Load(name)
	if err == nil {
		return words, nil
	}
	var unknown ErrUnknownLanguage
	if !errors.As(err, &unknown) {
		return nil, err
	}
	if _, statErr := os.Stat(name); statErr != nil {
		return nil, err
	}
	return LoadFile(name)
}

func parseYAML(data []byte) ([]string, error) {
	var list struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse stop words: %w", err)
	}
	words := make([]string, 0, len(list.Terms))
	for _, t := range list.Terms {
		if t = strings.TrimSpace(t); t != "" {
			words = append(words, t)
		}
	}
	return words, nil
}

func readLines(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
