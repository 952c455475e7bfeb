package formatter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDefault)
	// Headers are printed as given, not upper-cased
	t.Style().Format.Header = text.FormatDefault
	return t
}

// renderFieldTable prints a two column Field/Value table
func renderFieldTable(w io.Writer, columns []string, values []interface{}) error {
	t := newTable(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	for i, column := range columns {
		t.AppendRow(table.Row{column, cell(values[i], noneValue)})
	}
	t.Render()
	return nil
}

// renderTable prints rows under headers. Nothing is printed for an empty listing.
func renderTable(w io.Writer, headers []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	t := newTable(w)
	t.AppendHeader(toRow(lo.ToAnySlice(headers)))
	for _, row := range rows {
		t.AppendRow(toRow(lo.Map(row, func(v interface{}, _ int) interface{} {
			return cell(v, noneValue)
		})))
	}
	t.Render()
	return nil
}

func toRow(values []interface{}) table.Row {
	return table.Row(values)
}
