package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

// renderParts renders the document and returns the package parts by name.
func renderParts(t *testing.T, doc *model.Document) map[string]string {
	t.Helper()

	data, err := New(brand.Default()).Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reopening package: %v", err)
	}

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestRenderPackageParts(t *testing.T) {
	doc := model.NewDocument("Plan").AddSection(model.Section{Title: "Overview"})
	parts := renderParts(t, doc)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/header1.xml",
		"word/footer1.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}
}

func TestRenderContent(t *testing.T) {
	doc := model.NewDocument("Capability Plan").
		AddSection(model.Section{
			Title:   "Narrative",
			Content: []model.Block{model.Text("First line.\nSecond line.")},
		}).
		AddSection(model.Section{
			Title: "Data",
			Content: []model.Block{
				model.NewTable("Name", "Remarks").AddRow(model.Str("Jones"), model.Cell{}),
			},
		})

	parts := renderParts(t, doc)
	body := parts["word/document.xml"]

	for _, want := range []string{
		"Capability Plan",
		"Narrative",
		"First line.",
		"Second line.",
		"<w:tbl>",
		"Jones",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// Newline-delimited text becomes separate paragraphs.
	if strings.Contains(body, "First line.\nSecond line.") {
		t.Error("text lines were not split into paragraphs")
	}

	// An empty cell is an empty string, never a literal null marker.
	if strings.Contains(body, "null") {
		t.Error("empty cell rendered as a null marker")
	}
}

func TestRenderHeaderFooter(t *testing.T) {
	cfg := brand.Default()
	parts := renderParts(t, model.NewDocument("Plan").AddSection(model.Section{Title: "S"}))

	if !strings.Contains(parts["word/header1.xml"], cfg.Organization) {
		t.Error("running header missing organization name")
	}

	footer := parts["word/footer1.xml"]
	if !strings.Contains(footer, cfg.Custodian) {
		t.Error("running footer missing custodian line")
	}
	for _, field := range []string{" PAGE ", " NUMPAGES "} {
		if !strings.Contains(footer, field) {
			t.Errorf("running footer missing %q field", field)
		}
	}
}

func TestRenderTableHeaderStyling(t *testing.T) {
	cfg := brand.Default()
	doc := model.NewDocument("Plan").AddSection(model.Section{
		Title:   "Data",
		Content: []model.Block{model.NewTable("A").AddRow(model.Str("x"))},
	})

	body := renderParts(t, doc)["word/document.xml"]
	if !strings.Contains(body, cfg.HeaderColor.Hex()) {
		t.Error("header row missing branding fill")
	}
	if !strings.Contains(body, `w:val="FFFFFF"`) {
		t.Error("header row missing inverted text color")
	}
}

func TestRenderIgnoresImages(t *testing.T) {
	doc := model.NewDocument("Plan").AddSection(model.Section{
		Title: "Pictures",
		Content: []model.Block{
			&model.ImageBlock{Data: []byte{1, 2, 3}, MIME: "image/png", Width: 1, Height: 1},
			model.Text("after the image"),
		},
	})

	body := renderParts(t, doc)["word/document.xml"]
	if !strings.Contains(body, "after the image") {
		t.Error("content after an image block was lost")
	}
}
