package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	if got := renderTable(nil, nil); got != "" {
		t.Fatalf("expected empty table, got %q", got)
	}

	out := renderTable(vocabColumns, [][]string{{"0", "UNK", "0"}, {"12", "bob"}})
	requireContains(t, out, "Index")
	requireContains(t, out, "Documents")
	requireContains(t, out, "bob")
	// numeric columns are right aligned
	requireContains(t, out, "│     0 │")
	requireContains(t, out, "│    12 │")
}

func TestRenderTableWrapsWideColumns(t *testing.T) {
	long := strings.Repeat("word ", 30)
	out := renderTable(documentColumns, [][]string{{"id", "spam", long}})
	for _, line := range strings.Split(out, "\n") {
		if n := len([]rune(line)); n > 110 {
			t.Fatalf("line not wrapped (%d runes): %q", n, line)
		}
	}
}
