package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samuel/go-vectorizer/dataset"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeVectorsCSV writes a header of tokens followed by one row per vector.
func writeVectorsCSV(w io.Writer, tokens []string, vectors [][]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tokens); err != nil {
		return err
	}
	row := make([]string, len(tokens))
	for _, v := range vectors {
		for i, x := range v {
			row[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// openInput opens path for reading; "-" reads the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func readDocumentsFile(cmd *cobra.Command, path string, header bool) ([]string, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	docs, err := dataset.ReadDocuments(r, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

func readLabeledFile(cmd *cobra.Command, path string, header bool, pos dataset.LabelPosition) ([]dataset.Document, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	docs, err := dataset.ReadLabeled(r, header, pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

func readFeaturesFile(cmd *cobra.Command, path string, header bool, pos dataset.LabelPosition) ([][]float64, []string, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	x, y, err := dataset.ReadFeatures(r, header, pos)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, y, nil
}
