// Package text normalizes raw lines and splits them into feature tokens.
//
// The pipeline for a single document is Sanitize, whitespace split, stop-word
// removal and n-gram expansion. Every step is a pure function of its input so
// documents can be analyzed concurrently.
package text

import (
	"regexp"
	"strings"
)

var (
	// punctuation touching a non-word character (or the end of the line),
	// and apostrophes glued to the front of a word.
	punctAtBoundary = regexp.MustCompile(`([,@#!?"'.</>]\B)|'\b`)
	// punctuation sitting directly in front of a word character.
	punctInWord = regexp.MustCompile(`[,@#!?"'.]\b`)
)

// Sanitize lowercases line (ASCII only) when lowercase is set, removes
// punctuation at word boundaries, splits words joined by punctuation and
// trims surrounding whitespace.
func Sanitize(line string, lowercase bool) string {
	if lowercase {
		line = lowerASCII(line)
	}
	line = punctAtBoundary.ReplaceAllLiteralString(line, "")
	line = punctInWord.ReplaceAllLiteralString(line, " ")
	return strings.TrimSpace(line)
}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
