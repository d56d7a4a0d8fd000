// Package xlsx renders a document as a spreadsheet workbook: one sheet
// per section that contains tabular data. Sections with only text or
// image content have no two-dimensional representation and are skipped
// silently; that omission is the documented behavior, not an error.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

// Column width hints in character-widths. The rightmost column
// conventionally holds free-text remarks and gets the wide hint.
const (
	colWidth        = 25
	remarksColWidth = 60
)

// Renderer produces XLSX workbooks.
type Renderer struct {
	brand brand.Config
}

// New creates a workbook renderer with the given branding.
func New(cfg brand.Config) *Renderer {
	return &Renderer{brand: cfg}
}

// Ext returns the output file extension.
func (r *Renderer) Ext() string { return "xlsx" }

// Render builds one sheet per tabular section under the TablePerSection
// policy. A document with no table block anywhere yields ErrNoTable.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{r.brand.HeaderColor.Hex()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	namer := newSheetNamer()
	sheets := 0
	for _, sec := range doc.Sections {
		tables := model.SectionTables(sec)
		if len(tables) == 0 {
			continue
		}

		// The engine starts with one default sheet; the first
		// qualifying section takes it over by rename. Creating and
		// later deleting the default instead would destroy a section
		// that happens to share its name.
		sheet := namer.name(sec.Title)
		if sheets == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, fmt.Errorf("renaming default sheet to %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("creating sheet %q: %w", sheet, err)
		}
		sheets++

		if err := writeTables(f, sheet, tables, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if sheets == 0 {
		return nil, model.ErrNoTable
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTables stacks the section's tables on one sheet, separated by a
// blank spacer row, and applies the column width hints from the widest
// table.
func writeTables(f *excelize.File, sheet string, tables []*model.TableBlock, headerStyle int) error {
	row := 1
	maxCols := 0
	for _, table := range tables {
		if table.ColCount() > maxCols {
			maxCols = table.ColCount()
		}

		header := make([]any, len(table.Headers))
		for j, h := range table.Headers {
			header[j] = h
		}
		if err := setRow(f, sheet, row, header); err != nil {
			return err
		}
		if err := styleHeader(f, sheet, row, len(header), headerStyle); err != nil {
			return err
		}
		row++

		for _, cells := range table.Rows {
			values := make([]any, len(cells))
			for j, c := range cells {
				values[j] = c.Value()
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}

		row++ // spacer between stacked tables
	}

	return setColumnWidths(f, sheet, maxCols)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleHeader(f *excelize.File, sheet string, row, cols, styleID int) error {
	if cols == 0 {
		return nil
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, styleID)
}

func setColumnWidths(f *excelize.File, sheet string, cols int) error {
	if cols == 0 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if cols > 1 {
		penultimate, err := excelize.ColumnNumberToName(cols - 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", penultimate, colWidth); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, last, last, remarksColWidth)
}
