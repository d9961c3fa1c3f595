// Package config loads the textvec TOML configuration.
//
// Load starts from Default, overlays the file when it exists, normalizes
// enum strings and paths, then validates the result. The sections map onto
// the library: [vectorizer] feeds a vectorizer.Builder, [classifier] the kNN
// classifier, [store] the sqlite document store and [logging] the slog
// logger.
package config
