package vectorizer

import "math"

// TFIDF weights count occurrences of a token appearing in docsWithToken of
// docs corpus documents: (1 + log10(count)) * log10(docs / (1 + docsWithToken)).
// A zero count always yields exactly 0.
func TFIDF(count float64, docs, docsWithToken int) float64 {
	if count == 0 {
		return 0
	}
	tf := 1 + math.Log10(count)
	idf := math.Log10(float64(docs) / (1 + float64(docsWithToken)))
	return tf * idf
}
