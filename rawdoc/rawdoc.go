// Package rawdoc serializes any payload, typically the document model
// itself, to indented JSON for archival and debugging use.
package rawdoc

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mou383251/capreport/model"
	"github.com/Mou383251/capreport/naming"
)

// Titled is implemented by payloads that carry a report title, letting
// the raw dump share the generation run's derived filename.
type Titled interface {
	ReportTitle() string
}

// Renderer dumps a document verbatim as indented JSON.
type Renderer struct{}

// New creates a raw renderer.
func New() *Renderer { return &Renderer{} }

// Ext returns the output file extension.
func (r *Renderer) Ext() string { return "json" }

// Render serializes the document model without interpretation.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	return Dump(doc)
}

// Dump serializes any payload to indented JSON.
func Dump(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing payload: %w", err)
	}
	return data, nil
}

// Name derives an output filename for the payload: the naming utility's
// form when the payload carries a title, a generic fallback otherwise.
func Name(v any, now time.Time) string {
	if titled, ok := v.(Titled); ok {
		return naming.Filename(titled.ReportTitle(), "json", now)
	}
	return naming.Filename("", "json", now)
}
