package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LabelPosition is the column holding the label of a CSV record.
type LabelPosition int

const (
	// LabelLast means the label is the last column.
	LabelLast LabelPosition = iota
	// LabelFirst means the label is the first column.
	LabelFirst
)

// ParseLabelPosition converts "first" or "last" into a LabelPosition.
func ParseLabelPosition(s string) (LabelPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return LabelLast, nil
	case "first":
		return LabelFirst, nil
	}
	return LabelLast, fmt.Errorf("dataset: unknown label position %q", s)
}

// ErrMissingLabel is returned for labeled records with fewer than two columns.
var ErrMissingLabel = errors.New("dataset: record has no label column")

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// readRecords reads every record of r, skipping the first when hasHeader is set.
func readRecords(r io.Reader, hasHeader bool) ([][]string, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}

func joinFields(fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, norm.NFC.String(f))
		}
	}
	return strings.Join(parts, " ")
}

// splitLabel separates the label column of a record from the remaining fields.
func splitLabel(record []string, pos LabelPosition) (label string, fields []string, err error) {
	if len(record) < 2 {
		return "", nil, ErrMissingLabel
	}
	if pos == LabelFirst {
		return strings.TrimSpace(record[0]), record[1:], nil
	}
	return strings.TrimSpace(record[len(record)-1]), record[:len(record)-1], nil
}

// ReadDocuments reads one unlabeled document per CSV record. Multiple columns
// are joined with a single space.
func ReadDocuments(r io.Reader, hasHeader bool) ([]string, error) {
	records, err := readRecords(r, hasHeader)
	if err != nil {
		return nil, err
	}
	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = joinFields(rec)
	}
	return docs, nil
}

// ReadLabeled reads labeled documents. The label column is the Category of
// each returned Document; the other columns form its Text.
func ReadLabeled(r io.Reader, hasHeader bool, pos LabelPosition) ([]Document, error) {
	records, err := readRecords(r, hasHeader)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, len(records))
	for i, rec := range records {
		label, fields, err := splitLabel(rec, pos)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		docs[i] = Document{Category: norm.NFC.String(label), Text: joinFields(fields)}
	}
	return docs, nil
}

// ReadFeatures reads numeric feature rows with a label column.
func ReadFeatures(r io.Reader, hasHeader bool, pos LabelPosition) ([][]float64, []string, error) {
	records, err := readRecords(r, hasHeader)
	if err != nil {
		return nil, nil, err
	}
	x := make([][]float64, len(records))
	y := make([]string, len(records))
	for i, rec := range records {
		label, fields, err := splitLabel(rec, pos)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("record %d column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		x[i] = row
		y[i] = label
	}
	return x, y, nil
}
