package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	formatTable    = "table"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatCSV, formatMarkdown:
		return true
	default:
		return false
	}
}

func render(w io.Writer, format string, r *result) error {
	header := make(table.Row, len(r.columns))
	for i, column := range r.columns {
		header[i] = column
	}

	t := table.NewWriter()
	t.AppendHeader(header)
	for _, row := range r.rows {
		t.AppendRow(table.Row(row))
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}

	var out string
	switch format {
	case formatTable:
		t.SetCaption("%d rows", len(r.rows))
		out = t.Render()
	case formatCSV:
		out = t.RenderCSV()
	case formatMarkdown:
		out = t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	_, err := fmt.Fprintln(w, out)

	return err
}
