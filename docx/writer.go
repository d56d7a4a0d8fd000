// Package docx renders a document as a flowing word-processor file:
// a running header with the organization name, a running footer whose
// page numbers are field codes computed by the consuming viewer, and
// styled tables. Image blocks are silently ignored; the flowing layout
// model makes fixed image placement unreliable, and that omission is a
// deliberate scope limitation rather than a defect.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

// Page geometry in twentieths of a point: A4 with a one-inch margin.
const (
	pageWidth    = 11906
	pageHeight   = 16838
	pageMargin   = 1440
	edgeDistance = 720
)

// Font sizes in half-points.
const (
	titleSize   = "32"
	headingSize = "26"
)

// Renderer produces DOCX files.
type Renderer struct {
	brand brand.Config
}

// New creates a word-processor renderer with the given branding.
func New(cfg brand.Config) *Renderer {
	return &Renderer{brand: cfg}
}

// Ext returns the output file extension.
func (r *Renderer) Ext() string { return "docx" }

// Render builds the OOXML package for the document.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	body := bodyXML{
		SectPr: sectPrXML{
			HeaderRef: refXML{Type: "default", RID: "rId2"},
			FooterRef: refXML{Type: "default", RID: "rId3"},
			PgSz:      pgSzXML{W: pageWidth, H: pageHeight},
			PgMar: pgMarXML{
				Top: pageMargin, Right: pageMargin, Bottom: pageMargin, Left: pageMargin,
				Header: edgeDistance, Footer: edgeDistance,
			},
		},
	}

	body.Content = append(body.Content, styledPara(doc.Title, titleSize, true, "center"))
	for _, sec := range doc.Sections {
		body.Content = append(body.Content, r.sectionContent(sec)...)
	}

	document := documentXML{XmlnsW: nsW, XmlnsR: nsR, Body: body}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content any
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesPartXML},
		{"word/document.xml", document},
		{"word/header1.xml", r.headerPart()},
		{"word/footer1.xml", r.footerPart()},
	}
	for _, p := range parts {
		if err := writePart(zw, p.name, p.content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// sectionContent converts one section to body elements: a heading
// paragraph, one paragraph per newline-delimited text line, and one
// table per table block.
func (r *Renderer) sectionContent(sec model.Section) []any {
	content := []any{styledPara(sec.Title, headingSize, true, "")}
	for _, b := range sec.Content {
		switch v := b.(type) {
		case *model.TextBlock:
			for _, line := range strings.Split(v.Text, "\n") {
				content = append(content, plainPara(line))
			}
		case *model.TableBlock:
			content = append(content, r.table(v))
		case *model.ImageBlock:
			// Not representable in a flowing layout; skipped.
		}
	}
	return content
}

// table builds an OOXML table whose first row is styled as a header
// with inverted colors. Empty cells come through as empty strings.
func (r *Renderer) table(t *model.TableBlock) tableXML {
	border := borderXML{Val: "single", Size: 4, Color: "999999"}
	out := tableXML{
		Props: tblPropsXML{
			Width: tblWidthXML{W: 5000, Type: "pct"},
			Borders: tblBordersXML{
				Top: border, Left: border, Bottom: border, Right: border,
				InsideH: border, InsideV: border,
			},
		},
	}

	headerRow := rowXML{}
	for _, h := range t.Headers {
		headerRow.Cells = append(headerRow.Cells, cellXML{
			Props: &cellPropsXML{
				Shading: &shadingXML{Val: "clear", Fill: r.brand.HeaderColor.Hex()},
			},
			Paras: []paraXML{{Content: []any{runXML{
				Props: &runPropsXML{Bold: &emptyXML{}, Color: &valXML{Val: "FFFFFF"}},
				Text:  text(h),
			}}}},
		})
	}
	out.Rows = append(out.Rows, headerRow)

	for _, cells := range t.Rows {
		row := rowXML{}
		for _, c := range cells {
			row.Cells = append(row.Cells, cellXML{Paras: []paraXML{plainPara(c.String())}})
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// headerPart is the running header bearing the organization name.
func (r *Renderer) headerPart() headerXML {
	return headerXML{
		XmlnsW: nsW,
		Paras:  []paraXML{styledPara(r.brand.Organization, "20", true, "center")},
	}
}

// footerPart is the running footer: the custodian line, then a
// "Page X of Y" built from PAGE and NUMPAGES fields.
func (r *Renderer) footerPart() footerXML {
	pageLine := paraXML{
		Props: &paraPropsXML{Justification: &valXML{Val: "right"}},
		Content: []any{
			runXML{Text: text("Page ")},
			fldSimpleXML{Instr: " PAGE ", Runs: []runXML{{Text: text("1")}}},
			runXML{Text: text(" of ")},
			fldSimpleXML{Instr: " NUMPAGES ", Runs: []runXML{{Text: text("1")}}},
		},
	}
	return footerXML{
		XmlnsW: nsW,
		Paras:  []paraXML{plainPara(r.brand.Custodian), pageLine},
	}
}

func plainPara(s string) paraXML {
	return paraXML{Content: []any{runXML{Text: text(s)}}}
}

func styledPara(s, size string, bold bool, align string) paraXML {
	props := &runPropsXML{Size: &valXML{Val: size}}
	if bold {
		props.Bold = &emptyXML{}
	}
	p := paraXML{Content: []any{runXML{Props: props, Text: text(s)}}}
	if align != "" {
		p.Props = &paraPropsXML{Justification: &valXML{Val: align}}
	}
	return p
}

// text wraps a string, preserving leading and trailing whitespace.
func text(s string) *textXML {
	t := &textXML{Value: s}
	if strings.TrimSpace(s) != s {
		t.Space = "preserve"
	}
	return t
}

// writePart marshals one package part into the archive. String parts
// are written verbatim; struct parts get an XML declaration prefix.
func writePart(zw *zip.Writer, name string, content any) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}

	if s, ok := content.(string); ok {
		_, err = w.Write([]byte(s))
		return err
	}

	data, err := xml.Marshal(content)
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
