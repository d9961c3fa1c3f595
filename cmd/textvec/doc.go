// Command textvec builds vocabularies and feature vectors from CSV corpora,
// keeps labeled documents in a sqlite store, and scores a k-nearest-neighbours
// classifier on top of the vectors.
//
//	textvec vocab corpus.csv
//	textvec vectorize corpus.csv --tfidf --format json
//	textvec classify --train train.csv --test test.csv
//	textvec store import spam.csv
//	textvec config init
package main
