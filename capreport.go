// Package capreport exports a structured report document to several
// independent output formats: a paginated print document, a flowing
// word-processor document, a spreadsheet workbook, delimited text, and
// a raw structured dump.
//
// Basic usage:
//
//	exp := capreport.New(brand.Default())
//	artifact, err := exp.Export(doc, capreport.FormatPDF)
//	if err != nil {
//	    // handle error
//	}
//	os.WriteFile(artifact.Name, artifact.Data, 0o644)
//
// Every renderer is an explicit, injected service: a format without a
// registered renderer fails with ErrRendererUnavailable instead of
// silently producing nothing, and tests can substitute fakes with
// WithRenderer.
package capreport

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/csvdoc"
	"github.com/Mou383251/capreport/docx"
	"github.com/Mou383251/capreport/model"
	"github.com/Mou383251/capreport/naming"
	"github.com/Mou383251/capreport/pdfdoc"
	"github.com/Mou383251/capreport/rawdoc"
	"github.com/Mou383251/capreport/xlsx"
)

// ErrRendererUnavailable indicates an export request for a format with
// no registered renderer.
var ErrRendererUnavailable = errors.New("capreport: no renderer registered for format")

// Format identifies one output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Formats lists every built-in format in a stable order.
func Formats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatXLSX, FormatCSV, FormatJSON}
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Renderer converts a document into one output format.
type Renderer interface {
	Render(doc *model.Document) ([]byte, error)
	Ext() string
}

// Artifact is one exported file: the derived filename and its content.
// Artifacts from the same generation run share a slug and date stamp
// and differ only in extension.
type Artifact struct {
	Name string
	Data []byte
}

// Exporter routes documents to renderers. The zero value is not
// usable; construct with New.
type Exporter struct {
	renderers map[Format]Renderer
	clipboard *csvdoc.Clipboard
	now       func() time.Time
}

// New creates an exporter with every built-in renderer registered
// under the given branding.
func New(cfg brand.Config, opts ...Option) *Exporter {
	e := &Exporter{
		renderers: map[Format]Renderer{
			FormatPDF:  pdfdoc.New(cfg),
			FormatDOCX: docx.New(cfg),
			FormatXLSX: xlsx.New(cfg),
			FormatCSV:  csvdoc.New(),
			FormatJSON: rawdoc.New(),
		},
		clipboard: csvdoc.NewClipboard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the document in one format and derives its filename.
func (e *Exporter) Export(doc *model.Document, f Format) (Artifact, error) {
	return e.export(doc, f, e.now())
}

// ExportAll renders the document in each requested format. All
// artifacts share one timestamp so their names differ only in
// extension. It stops at the first failing renderer.
func (e *Exporter) ExportAll(doc *model.Document, formats ...Format) ([]Artifact, error) {
	now := e.now()
	artifacts := make([]Artifact, 0, len(formats))
	for _, f := range formats {
		a, err := e.export(doc, f, now)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func (e *Exporter) export(doc *model.Document, f Format, now time.Time) (Artifact, error) {
	r, ok := e.renderers[f]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %s", ErrRendererUnavailable, f)
	}
	data, err := r.Render(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("rendering %s: %w", f, err)
	}
	return Artifact{Name: naming.Filename(doc.Title, r.Ext(), now), Data: data}, nil
}

// CopyTable copies the document's first table to the system clipboard
// as tab-separated text and returns a confirmation message for the
// user. The call blocks until the clipboard write completes.
func (e *Exporter) CopyTable(doc *model.Document) (string, error) {
	return e.clipboard.Copy(doc)
}
