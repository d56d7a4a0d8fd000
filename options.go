package capreport

import (
	"time"

	"github.com/Mou383251/capreport/csvdoc"
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderer registers or replaces the renderer for a format.
func WithRenderer(f Format, r Renderer) Option {
	return func(e *Exporter) { e.renderers[f] = r }
}

// WithoutRenderer removes the renderer for a format, making exports of
// that format fail with ErrRendererUnavailable. It models an
// unavailable rendering engine.
func WithoutRenderer(f Format) Option {
	return func(e *Exporter) { delete(e.renderers, f) }
}

// WithClipboard replaces the clipboard writer, for tests and for hosts
// without a system clipboard.
func WithClipboard(w csvdoc.Writer) Option {
	return func(e *Exporter) { e.clipboard = csvdoc.NewClipboardWith(w) }
}

// WithNow overrides the clock used for filename date stamps.
func WithNow(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}
