package model

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockType identifies the concrete shape of a content block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeText
	BlockTypeTable
	BlockTypeImage
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeText:
		return "text"
	case BlockTypeTable:
		return "table"
	case BlockTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block is the closed variant of section content. The three
// implementations are TextBlock, TableBlock, and ImageBlock; the
// unexported marker keeps the set closed.
type Block interface {
	Type() BlockType
	block()
}

// TextBlock is an opaque, possibly multi-line run of narrative text.
// Renderers wrap it at render time.
type TextBlock struct {
	Text string
}

func (b *TextBlock) Type() BlockType { return BlockTypeText }
func (b *TextBlock) block()          {}

// Text creates a text block.
func Text(s string) *TextBlock { return &TextBlock{Text: s} }

// CellKind distinguishes the two scalar cell shapes.
type CellKind int

const (
	CellString CellKind = iota
	CellNumber
)

// Cell is one scalar table value: a string or a number, never a nested
// structure, since every target format flattens to two dimensions.
// The zero value is the empty string cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Str creates a string cell.
func Str(s string) Cell { return Cell{Kind: CellString, Text: s} }

// Num creates a numeric cell.
func Num(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }

// String returns the cell's display form. Numbers use the shortest
// representation that round-trips, so 1.0 renders as "1".
func (c Cell) String() string {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// Value returns the cell as a dynamically typed scalar, for writers
// whose engines take interface{} values.
func (c Cell) Value() any {
	if c.Kind == CellNumber {
		return c.Number
	}
	return c.Text
}

// TableBlock is a two-dimensional table: a header row plus data rows.
// Invariant: every row has exactly len(Headers) cells.
type TableBlock struct {
	Headers []string
	Rows    [][]Cell
}

func (b *TableBlock) Type() BlockType { return BlockTypeTable }
func (b *TableBlock) block()          {}

// NewTable creates a table block with the given header row.
func NewTable(headers ...string) *TableBlock {
	return &TableBlock{Headers: headers}
}

// AddRow appends a row and returns the table for chaining.
func (b *TableBlock) AddRow(cells ...Cell) *TableBlock {
	b.Rows = append(b.Rows, cells)
	return b
}

// ColCount returns the number of columns, taken from the header row.
func (b *TableBlock) ColCount() int { return len(b.Headers) }

// RowCount returns the number of data rows. Zero rows is a valid,
// empty table, distinct from "no table at all".
func (b *TableBlock) RowCount() int { return len(b.Rows) }

// Validate checks that every row matches the header width.
func (b *TableBlock) Validate() error {
	for i, row := range b.Rows {
		if len(row) != len(b.Headers) {
			return fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(b.Headers))
		}
	}
	return nil
}

// ToText returns a plain tab-separated representation, headers first.
func (b *TableBlock) ToText() string {
	var sb strings.Builder
	for j, h := range b.Headers {
		if j > 0 {
			sb.WriteString("\t")
		}
		sb.WriteString(h)
	}
	for _, row := range b.Rows {
		sb.WriteString("\n")
		for j, c := range row {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(c.String(), "\n", " "))
		}
	}
	return sb.String()
}

// ImageBlock is a decoded raster image with its natural pixel size.
// Only the print renderer draws images; the others ignore them.
type ImageBlock struct {
	Data   []byte
	MIME   string // image/png, image/jpeg, or image/gif
	Width  int    // natural width in pixels
	Height int    // natural height in pixels
}

func (b *ImageBlock) Type() BlockType { return BlockTypeImage }
func (b *ImageBlock) block()          {}
