package model

import "errors"

// ErrNoTable indicates a document with no table block anywhere. It is
// distinct from a found-but-empty table: zero rows is valid data, while
// not-found is an error condition for single-table exporters.
var ErrNoTable = errors.New("model: document contains no table block")

// TablePolicy names the rule a single-table exporter uses to choose
// tabular data from a multi-table document. The scan order is an
// explicit policy choice, not an accident of iteration.
type TablePolicy int

const (
	// TableFirst selects the first table block found by scanning
	// sections in order and, within a section, content in order.
	TableFirst TablePolicy = iota

	// TablePerSection is used by renderers that map each tabular
	// section to its own output unit, such as workbook sheets.
	TablePerSection
)

// FirstTable returns the document's first table block under the
// TableFirst policy, or ErrNoTable when the document has none.
func FirstTable(d *Document) (*TableBlock, error) {
	for _, sec := range d.Sections {
		for _, b := range sec.Content {
			if t, ok := b.(*TableBlock); ok {
				return t, nil
			}
		}
	}
	return nil, ErrNoTable
}

// SectionTables returns every table block in the section, in order.
func SectionTables(s Section) []*TableBlock {
	var tables []*TableBlock
	for _, b := range s.Content {
		if t, ok := b.(*TableBlock); ok {
			tables = append(tables, t)
		}
	}
	return tables
}
