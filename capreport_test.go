package capreport

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

func sampleDoc() *model.Document {
	return model.NewDocument("Workforce Plan").AddSection(model.Section{
		Title: "Data",
		Content: []model.Block{
			model.NewTable("A", "B").
				AddRow(model.Str("x"), model.Num(1)).
				AddRow(model.Str("y"), model.Num(2)),
		},
	})
}

func fixedClock() func() time.Time {
	at := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestExportFilenamesShareSlugAndStamp(t *testing.T) {
	exp := New(brand.Default(), WithNow(fixedClock()))

	artifacts, err := exp.ExportAll(sampleDoc(), Formats()...)
	require.NoError(t, err)
	require.Len(t, artifacts, 5)

	const base = "workforce-plan-official-report-2026-09-01."
	for i, f := range Formats() {
		assert.Equal(t, base+string(f), artifacts[i].Name)
		assert.NotEmpty(t, artifacts[i].Data)
	}
}

func TestExportUnavailableRenderer(t *testing.T) {
	exp := New(brand.Default(), WithoutRenderer(FormatDOCX))

	_, err := exp.Export(sampleDoc(), FormatDOCX)
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}

func TestExportUnknownFormat(t *testing.T) {
	exp := New(brand.Default())

	_, err := exp.Export(sampleDoc(), Format("odt"))
	assert.ErrorIs(t, err, ErrRendererUnavailable)
}

// stubRenderer lets tests observe routing without exercising an engine.
type stubRenderer struct {
	data []byte
	err  error
}

func (s *stubRenderer) Render(*model.Document) ([]byte, error) { return s.data, s.err }
func (s *stubRenderer) Ext() string                            { return "pdf" }

func TestWithRendererInjection(t *testing.T) {
	stub := &stubRenderer{data: []byte("fake pdf")}
	exp := New(brand.Default(), WithRenderer(FormatPDF, stub), WithNow(fixedClock()))

	a, err := exp.Export(sampleDoc(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake pdf"), a.Data)
	assert.Equal(t, "workforce-plan-official-report-2026-09-01.pdf", a.Name)
}

func TestExportAllStopsOnError(t *testing.T) {
	sentinel := errors.New("engine exploded")
	exp := New(brand.Default(), WithRenderer(FormatPDF, &stubRenderer{err: sentinel}))

	_, err := exp.ExportAll(sampleDoc(), FormatJSON, FormatPDF)
	assert.ErrorIs(t, err, sentinel)
}

func TestCSVExportRequiresTable(t *testing.T) {
	exp := New(brand.Default())
	textOnly := model.NewDocument("Notes").AddSection(model.Section{
		Title:   "S",
		Content: []model.Block{model.Text("prose")},
	})

	_, err := exp.Export(textOnly, FormatCSV)
	assert.ErrorIs(t, err, model.ErrNoTable)
}

type recordingClipboard struct {
	text string
}

func (r *recordingClipboard) WriteAll(text string) error {
	r.text = text
	return nil
}

func TestCopyTable(t *testing.T) {
	rec := &recordingClipboard{}
	exp := New(brand.Default(), WithClipboard(rec))

	msg, err := exp.CopyTable(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, "A\tB\nx\t1\ny\t2", rec.text)
	assert.Contains(t, msg, "2 rows")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("exe")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "exe"))
}
