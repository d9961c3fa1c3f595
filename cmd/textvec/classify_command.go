package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/samuel/go-vectorizer/dataset"
	"github.com/samuel/go-vectorizer/internal/config"
	"github.com/samuel/go-vectorizer/knn"
	"github.com/samuel/go-vectorizer/metric"
)

type classifyOptions struct {
	vectorizer  vectorizerFlags
	trainPath   string
	testPath    string
	texts       []string
	fromStore   bool
	features    bool
	header      bool
	k           int
	labelColumn string
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Train a k-nearest-neighbours classifier and score or apply it",
		Long: "Train a k-nearest-neighbours classifier on labeled documents, from\n" +
			"--train or from the document store, then print the accuracy on --test\n" +
			"and the predicted label of every --text.\n\n" +
			"With --features the CSV files hold numeric vectors instead of text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			k := cfg.Classifier.K
			if cmd.Flags().Changed("k") {
				k = opts.k
			}
			column := cfg.Classifier.LabelColumn
			if cmd.Flags().Changed("label-column") {
				column = opts.labelColumn
			}
			pos, err := dataset.ParseLabelPosition(column)
			if err != nil {
				return err
			}
			if opts.features {
				return runClassifyFeatures(cmd, ctx, cfg, &opts, k, pos)
			}
			return runClassifyText(cmd, ctx, cfg, &opts, k, pos)
		},
	}

	opts.vectorizer.register(cmd)
	cmd.Flags().StringVar(&opts.trainPath, "train", "", "Labeled training CSV")
	cmd.Flags().StringVar(&opts.testPath, "test", "", "Labeled test CSV to score")
	cmd.Flags().StringArrayVarP(&opts.texts, "text", "t", nil, "Text to classify (repeatable)")
	cmd.Flags().BoolVar(&opts.fromStore, "from-store", false, "Train on the documents of the sqlite store")
	cmd.Flags().BoolVar(&opts.features, "features", false, "CSV files hold numeric feature vectors")
	cmd.Flags().BoolVar(&opts.header, "header", false, "Skip the first CSV record")
	cmd.Flags().IntVar(&opts.k, "k", 0, "Neighbours to vote (overrides classifier.k)")
	cmd.Flags().StringVar(&opts.labelColumn, "label-column", "", "Label column: first or last")
	return cmd
}

func runClassifyFeatures(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, opts *classifyOptions, k int, pos dataset.LabelPosition) error {
	if opts.trainPath == "" || opts.testPath == "" {
		return errors.New("--features needs both --train and --test")
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	trainX, trainY, err := readFeaturesFile(cmd, opts.trainPath, opts.header, pos)
	if err != nil {
		return err
	}
	testX, testY, err := readFeaturesFile(cmd, opts.testPath, opts.header, pos)
	if err != nil {
		return err
	}
	knnOpts, err := cfg.ClassifierOptions()
	if err != nil {
		return err
	}
	start := time.Now()
	c, err := knn.New(k, trainX, trainY, knnOpts...)
	if err != nil {
		return err
	}
	acc, err := c.Accuracy(testX, testY)
	if err != nil {
		return err
	}
	logger.Info("scored classifier",
		slog.Int("train", len(trainX)),
		slog.Int("test", len(testX)),
		slog.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %.4f (%d test vectors, k=%d)\n", acc, len(testX), k)
	return nil
}

func runClassifyText(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, opts *classifyOptions, k int, pos dataset.LabelPosition) error {
	if opts.trainPath == "" && !opts.fromStore {
		return errors.New("classify needs --train or --from-store")
	}
	if opts.testPath == "" && len(opts.texts) == 0 {
		return errors.New("nothing to classify: pass --test or --text")
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}

	var store dataset.Store
	if opts.fromStore {
		s, closeStore, err := ctx.openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
	} else {
		store = dataset.NewLocalStore()
		docs, err := readLabeledFile(cmd, opts.trainPath, opts.header, pos)
		if err != nil {
			return err
		}
		if err := importDocuments(store, docs); err != nil {
			return err
		}
	}

	fv, err := ctx.vectorizer(cmd, &opts.vectorizer)
	if err != nil {
		return err
	}
	tc, err := knn.NewTextClassifier(store, fv, k)
	if err != nil {
		return err
	}
	if tc.Distance, err = metric.ParseDistance(cfg.Classifier.Distance); err != nil {
		return err
	}
	if tc.Norm, err = metric.ParseNorm(cfg.Classifier.Norm); err != nil {
		return err
	}

	start := time.Now()
	if err := tc.Train(); err != nil {
		return fmt.Errorf("train classifier: %w", err)
	}
	logger.Info("trained classifier",
		slog.Int("features", len(fv.Tokens())),
		slog.Duration("elapsed", time.Since(start)),
	)

	out := cmd.OutOrStdout()
	if opts.testPath != "" {
		docs, err := readLabeledFile(cmd, opts.testPath, opts.header, pos)
		if err != nil {
			return err
		}
		texts, labels := dataset.Split(docs)
		acc, err := tc.Accuracy(texts, labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Accuracy: %.4f (%d test documents, k=%d)\n", acc, len(texts), k)
	}
	for _, text := range opts.texts {
		label, err := tc.Classify(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", label, text)
	}
	return nil
}

// importDocuments adds docs to store, creating their categories.
func importDocuments(store dataset.Store, docs []dataset.Document) error {
	for i, d := range docs {
		if err := store.AddCategory(d.Category); err != nil {
			return fmt.Errorf("add category %q: %w", d.Category, err)
		}
		if _, err := store.AddDocument(d.Category, d.Text); err != nil {
			return fmt.Errorf("add document %d: %w", i+1, err)
		}
	}
	return nil
}
