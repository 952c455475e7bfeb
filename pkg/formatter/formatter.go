package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Format selects how command results are rendered
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatValue Format = "value"
	FormatCSV   Format = "csv"
)

// Formats lists every supported output format
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatValue, FormatCSV}

// noneValue is how a null attribute reads in human oriented formats
const noneValue = "None"

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		names := lo.Map(Formats, func(f Format, _ int) string { return string(f) })
		return "", fmt.Errorf("invalid format %q: must be one of %s", s, strings.Join(names, ", "))
	}
	return f, nil
}

// Printer renders single records and listings in one format
type Printer struct {
	w      io.Writer
	format Format
}

// New creates a Printer writing to w
func New(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// PrintItem renders one record as field/value pairs
func (p *Printer) PrintItem(columns []string, values []interface{}) error {
	switch p.format {
	case FormatJSON:
		return writeJSON(p.w, orderedObject(columns, values))
	case FormatYAML:
		return writeYAML(p.w, yamlObject(columns, values))
	case FormatValue:
		for _, v := range values {
			if _, err := fmt.Fprintln(p.w, cell(v, noneValue)); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		rows := [][]interface{}{lo.ToAnySlice(columns), values}
		return writeCSV(p.w, rows)
	default:
		return renderFieldTable(p.w, columns, values)
	}
}

// PrintList renders a header tuple and its rows
func (p *Printer) PrintList(headers []string, rows iter.Seq[[]interface{}]) error {
	collected := slices.Collect(rows)

	switch p.format {
	case FormatJSON:
		objects := lo.Map(collected, func(row []interface{}, _ int) json.Marshaler {
			return orderedObject(headers, row)
		})
		return writeJSON(p.w, objects)
	case FormatYAML:
		return writeYAML(p.w, yamlList(headers, collected))
	case FormatValue:
		for _, row := range collected {
			cells := lo.Map(row, func(v interface{}, _ int) string { return cell(v, noneValue) })
			if _, err := fmt.Fprintln(p.w, strings.Join(cells, " ")); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		return writeCSV(p.w, append([][]interface{}{lo.ToAnySlice(headers)}, collected...))
	default:
		return renderTable(p.w, headers, collected)
	}
}

// cell renders one attribute value as text
func cell(v interface{}, none string) string {
	switch v := v.(type) {
	case nil:
		return none
	case []interface{}:
		parts := lo.Map(v, func(item interface{}, _ int) string { return cell(item, "") })
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		keys := lo.Keys(v)
		sort.Strings(keys)
		parts := lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("%s='%s'", k, cell(v[k], ""))
		})
		return strings.Join(parts, ", ")
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
