package model

import "fmt"

// Orientation controls the page layout of a section in print rendering.
// Renderers without a per-section page concept ignore it.
type Orientation int

const (
	OrientationDefault Orientation = iota
	OrientationPortrait
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return "default"
	}
}

// Document is a complete report: a title plus ordered sections.
// Section order is significant; it is the document's table of contents.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one titled region of a report. A section with an empty
// Content slice is still rendered as a titled, contentless region by
// page-producing renderers; callers that want a section omitted must
// not include it.
type Section struct {
	Title       string
	Content     []Block
	Orientation Orientation
}

// NewDocument creates an empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// AddSection appends a section and returns the document for chaining.
func (d *Document) AddSection(s Section) *Document {
	d.Sections = append(d.Sections, s)
	return d
}

// Validate checks the structural invariants of the document: every
// table row must have exactly as many cells as the table has headers.
func (d *Document) Validate() error {
	for i, sec := range d.Sections {
		for j, b := range sec.Content {
			t, ok := b.(*TableBlock)
			if !ok {
				continue
			}
			if err := t.Validate(); err != nil {
				return fmt.Errorf("section %d (%q) block %d: %w", i, sec.Title, j, err)
			}
		}
	}
	return nil
}

// ReportTitle implements the Titled convention used by the raw renderer.
func (d *Document) ReportTitle() string { return d.Title }
