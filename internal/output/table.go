package output

import (
	"fmt"
	"io"

	"github.com/aryankumar/blox/internal/object"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats output as a two-column table of field paths
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Row is one flattened field: its dotted path and display value
type Row struct {
	Path  string
	Value string
}

// Flatten walks obj depth-first and returns one row per scalar.
// Nested keys are joined with "." and vector elements are indexed as
// "Key[i]". Empty descriptions are skipped, mirroring the tree output.
func Flatten(obj object.Object, currency string) []Row {
	var rows []Row
	flattenObject(&rows, "", obj, currency)
	return rows
}

func flattenObject(rows *[]Row, prefix string, obj object.Object, currency string) {
	for _, field := range obj.Fields() {
		path := field.Key
		if prefix != "" {
			path = prefix + "." + field.Key
		}
		flattenValue(rows, path, field.Value, currency)
	}
}

func flattenValue(rows *[]Row, path string, v object.Value, currency string) {
	switch v.Kind() {
	case object.KindObject:
		nested, _ := v.AsObject()
		flattenObject(rows, path, nested, currency)

	case object.KindVector:
		items := v.Items()
		if len(items) == 0 {
			*rows = append(*rows, Row{Path: path, Value: "[]"})
			return
		}
		for i, item := range items {
			flattenValue(rows, fmt.Sprintf("%s[%d]", path, i), item, currency)
		}

	case object.KindBool:
		b, _ := v.AsBool()
		*rows = append(*rows, Row{Path: path, Value: object.Conclusion(b).Label()})

	default:
		text, _ := v.AsString()
		switch v.Style() {
		case object.StyleDescription:
			if text == "" {
				return
			}
		case object.StylePrice:
			text += currency
		}
		*rows = append(*rows, Row{Path: path, Value: text})
	}
}

// Format outputs obj as a table
func (f *TableFormatter) Format(w io.Writer, obj object.Object) error {
	rows := Flatten(obj, f.options.currency())
	if len(rows) == 0 {
		return nil
	}

	colors := f.options.scheme(w)
	table := f.createTable(w)

	if !f.options.NoHeaders {
		headers := []string{"FIELD", "VALUE"}
		if !colors.Disabled {
			for i, h := range headers {
				headers[i] = colors.Header(h)
			}
		}
		table.SetHeader(headers)
	}

	for _, row := range rows {
		table.Append([]string{row.Path, row.Value})
	}

	table.Render()
	return nil
}

// createTable creates a borderless, left-aligned table
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}
