package config

import vectorizer "github.com/samuel/go-vectorizer"

const (
	defaultConfigPath  = "~/.config/textvec/config.toml"
	projectConfigName  = "textvec.toml"
	defaultStorePath   = "~/.local/share/textvec/documents.db"
	defaultNorm        = "none"
	defaultNgrams      = "unigram"
	defaultTokenizer   = "bag_of_words"
	defaultK           = 5
	defaultDistance    = "euclidean"
	defaultClassNorm   = "l2"
	defaultLogFormat   = "auto"
	defaultLogLevel    = "info"
	defaultLabelColumn = "last"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Vectorizer: Vectorizer{
			MaxFeatures: vectorizer.DefaultMaxFeatures,
			Lowercase:   vectorizer.DefaultLowercase,
			TFIDF:       vectorizer.DefaultTFIDF,
			Norm:        defaultNorm,
			Ngrams:      defaultNgrams,
			Tokenizer:   defaultTokenizer,
		},
		Classifier: Classifier{
			K:           defaultK,
			Distance:    defaultDistance,
			Norm:        defaultClassNorm,
			LabelColumn: defaultLabelColumn,
		},
		Store: Store{
			Path: defaultStorePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
