// Package csvdoc flattens a document's first table into delimited text:
// comma-separated for file export, tab-separated for spreadsheet-paste
// clipboard transfer. A document with no table block is an error, never
// a silently empty artifact.
package csvdoc

import (
	"strings"

	"github.com/Mou383251/capreport/model"
)

// Renderer produces comma-separated text from a document's first table.
type Renderer struct{}

// New creates a CSV renderer. It carries no branding; delimited text
// has nowhere to put it.
func New() *Renderer { return &Renderer{} }

// Ext returns the output file extension.
func (r *Renderer) Ext() string { return "csv" }

// Render flattens the first table block found under the TableFirst
// policy. Every cell is individually quoted, with internal quotes
// doubled, so commas and newlines inside cells survive.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	table, err := model.FirstTable(doc)
	if err != nil {
		return nil, err
	}
	return []byte(Flatten(table, ",", true)), nil
}

// Flatten joins a table into delimited text: headers first, then rows,
// newline-joined with no trailing newline. When quote is set, each cell
// is wrapped in double quotes with internal quotes doubled.
func Flatten(table *model.TableBlock, sep string, quote bool) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		for j, c := range cells {
			if j > 0 {
				sb.WriteString(sep)
			}
			if quote {
				sb.WriteByte('"')
				sb.WriteString(strings.ReplaceAll(c, `"`, `""`))
				sb.WriteByte('"')
			} else {
				sb.WriteString(c)
			}
		}
	}

	writeRow(table.Headers)
	for _, row := range table.Rows {
		sb.WriteByte('\n')
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		writeRow(cells)
	}
	return sb.String()
}
