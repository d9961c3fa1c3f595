package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one column of a rendered table.
type column struct {
	title   string
	numeric bool // right aligned
	width   int  // wrap after width runes; 0 means no limit
}

var (
	vocabColumns = []column{
		{title: "Index", numeric: true},
		{title: "Token", width: 40},
		{title: "Documents", numeric: true},
	}
	documentColumns = []column{
		{title: "ID"},
		{title: "Category", width: 24},
		{title: "Text", width: 60},
	}
	categoryColumns = []column{
		{title: "Category", width: 40},
		{title: "Documents", numeric: true},
	}
)

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		align := text.AlignLeft
		if c.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    c.width,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
