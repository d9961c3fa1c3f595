package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newVectorizeCommand(ctx *commandContext) *cobra.Command {
	var flags vectorizerFlags
	var header bool
	var inputPath string
	var format string

	cmd := &cobra.Command{
		Use:   "vectorize <corpus.csv>",
		Short: "Fit a vocabulary on a corpus and print document vectors",
		Long: "Fit a vocabulary on the corpus and print one vector per document.\n" +
			"With --input the vectors of another file are printed instead, encoded\n" +
			"against the corpus vocabulary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported format %q (use csv or json)", format)
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			corpus, err := readDocumentsFile(cmd, args[0], header)
			if err != nil {
				return err
			}
			docs := corpus
			if inputPath != "" {
				if docs, err = readDocumentsFile(cmd, inputPath, header); err != nil {
					return err
				}
			}

			fv, err := ctx.vectorizer(cmd, &flags)
			if err != nil {
				return err
			}
			start := time.Now()
			if err := fv.GenTokens(corpus); err != nil {
				return err
			}
			vectors, err := fv.Vectorize(docs)
			if err != nil {
				return err
			}
			logger.Info("vectorized documents",
				slog.Int("documents", len(docs)),
				slog.Int("features", len(fv.Tokens())),
				slog.Duration("elapsed", time.Since(start)),
			)

			if format == "json" {
				return writeJSON(cmd, struct {
					Tokens  []string    `json:"tokens"`
					Vectors [][]float64 `json:"vectors"`
				}{fv.Tokens(), vectors})
			}
			return writeVectorsCSV(cmd.OutOrStdout(), fv.Tokens(), vectors)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&header, "header", false, "Skip the first CSV record")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Documents to vectorize (defaults to the corpus)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format (csv, json)")
	return cmd
}
