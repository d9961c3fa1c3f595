package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type vocabEntry struct {
	Index             int    `json:"index"`
	Token             string `json:"token"`
	DocumentFrequency int    `json:"document_frequency"`
}

func newVocabCommand(ctx *commandContext) *cobra.Command {
	var flags vectorizerFlags
	var header bool
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "vocab <corpus.csv>",
		Short: "Build a vocabulary and print it by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := readDocumentsFile(cmd, args[0], header)
			if err != nil {
				return err
			}
			fv, err := ctx.vectorizer(cmd, &flags)
			if err != nil {
				return err
			}
			if err := fv.GenTokens(corpus); err != nil {
				return err
			}

			vocab := fv.Tokenizer().Vocabulary()
			n := vocab.Len()
			if limit > 0 && limit < n {
				n = limit
			}
			entries := make([]vocabEntry, 0, n)
			for i := 0; i < n; i++ {
				token, _ := vocab.Token(i)
				df, err := vocab.DocumentFrequencyAt(i)
				if err != nil {
					return err
				}
				entries = append(entries, vocabEntry{Index: i, Token: token, DocumentFrequency: df})
			}

			if jsonOut {
				return writeJSON(cmd, entries)
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{strconv.Itoa(e.Index), e.Token, strconv.Itoa(e.DocumentFrequency)}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(vocabColumns, rows))
			fmt.Fprintf(out, "%d tokens from %d documents\n", vocab.Len()-1, vocab.DocumentCount())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&header, "header", false, "Skip the first CSV record")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n entries")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a table")
	return cmd
}
