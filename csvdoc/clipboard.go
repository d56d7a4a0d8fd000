package csvdoc

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/Mou383251/capreport/model"
)

// Writer abstracts the system clipboard so tests can substitute a fake
// and so a missing clipboard backend fails loudly at the call site.
type Writer interface {
	WriteAll(text string) error
}

// systemWriter writes to the real system clipboard. The clipboard is a
// shared, single-slot resource; callers running exports concurrently
// must serialize on Copy.
type systemWriter struct{}

func (systemWriter) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Clipboard copies a document's first table as tab-separated text,
// suitable for pasting directly into a spreadsheet.
type Clipboard struct {
	w Writer
}

// NewClipboard creates a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard { return &Clipboard{w: systemWriter{}} }

// NewClipboardWith creates a Clipboard backed by the given writer.
func NewClipboardWith(w Writer) *Clipboard { return &Clipboard{w: w} }

// Copy flattens the first table block to tab-separated text and writes
// it to the clipboard. It blocks until the write completes and returns
// a human-readable confirmation on success; both the confirmation and
// any error are meant to be surfaced to the user verbatim.
func (c *Clipboard) Copy(doc *model.Document) (string, error) {
	table, err := model.FirstTable(doc)
	if err != nil {
		return "", err
	}
	if err := c.w.WriteAll(Flatten(table, "\t", false)); err != nil {
		return "", fmt.Errorf("writing to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied %d rows to the clipboard.", table.RowCount()), nil
}
