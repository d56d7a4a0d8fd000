// Package pdfdoc renders a document as a fixed-page-size (A4) printable
// artifact: an institutional header on every page, automatic pagination
// of long text and tables with repeated table headers, per-section page
// orientation, and a footer stamped with the final page count.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Mou383251/capreport/brand"
	"github.com/Mou383251/capreport/model"
)

// ErrEmptyDocument indicates a document with no sections; a paginated
// artifact must produce at least one page.
var ErrEmptyDocument = errors.New("pdfdoc: document has no sections")

// Page geometry in millimeters.
const (
	sideMargin    = 15
	headerTop     = 10
	contentTop    = 38
	footerReserve = 20
	blockSpacing  = 3
	emblemSize    = 18
)

// Table typography. Columns narrower than minColWidth shrink the cell
// font proportionally instead of truncating columns.
const (
	tableFontSize = 9.0
	minTableFont  = 5.0
	minColWidth   = 20.0
	cellPadding   = 2.0
)

// pixelsPerMM converts natural image sizes at the conventional 96 dpi.
const pixelsPerMM = 96.0 / 25.4

// Renderer produces paginated PDF files.
type Renderer struct {
	brand brand.Config
}

// New creates a print renderer with the given branding.
func New(cfg brand.Config) *Renderer {
	return &Renderer{brand: cfg}
}

// Ext returns the output file extension.
func (r *Renderer) Ext() string { return "pdf" }

// Render paginates the document into an A4 byte stream.
func (r *Renderer) Render(doc *model.Document) ([]byte, error) {
	if len(doc.Sections) == 0 {
		return nil, ErrEmptyDocument
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(sideMargin, contentTop, sideMargin)
	pdf.SetAutoPageBreak(true, footerReserve)
	pdf.AliasNbPages("")

	// The header is redrawn at the top of every page, including
	// continuation pages created by automatic page breaks.
	pdf.SetHeaderFunc(func() { r.header(pdf, doc.Title) })

	// The {nb} alias is substituted with the final page count after
	// pagination completes, which is when the count becomes known.
	pdf.SetFooterFunc(func() { r.footer(pdf) })

	images := 0
	for _, sec := range doc.Sections {
		// Every section starts a fresh page in its own orientation;
		// an explicit orientation switch never shares a page.
		pdf.AddPageFormat(orientationOf(sec), fpdf.SizeType{Wd: 210, Ht: 297})
		r.sectionTitle(pdf, sec.Title)

		for _, b := range sec.Content {
			switch v := b.(type) {
			case *model.TextBlock:
				r.text(pdf, v)
			case *model.TableBlock:
				r.table(pdf, v)
			case *model.ImageBlock:
				images++
				r.image(pdf, v, fmt.Sprintf("block-image-%d", images))
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orientationOf(sec model.Section) string {
	if sec.Orientation == model.OrientationLandscape {
		return "L"
	}
	return "P"
}

// header draws the institutional banner: emblem placeholder, the
// organization name, and the document title, then positions the cursor
// at the top content offset.
func (r *Renderer) header(pdf *fpdf.Fpdf, title string) {
	pageW, _ := pdf.GetPageSize()
	printable := pageW - 2*sideMargin

	pdf.SetDrawColor(int(r.brand.HeaderColor.R), int(r.brand.HeaderColor.G), int(r.brand.HeaderColor.B))
	pdf.Rect(sideMargin, headerTop, emblemSize, emblemSize, "D")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(sideMargin, headerTop+emblemSize/2-3)
	pdf.CellFormat(emblemSize, 6, r.brand.EmblemText, "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(sideMargin+emblemSize, headerTop+2)
	pdf.CellFormat(printable-2*emblemSize, 7, r.brand.Organization, "", 2, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(printable-2*emblemSize, 6, title, "", 0, "C", false, 0, "")

	pdf.Line(sideMargin, headerTop+emblemSize+4, pageW-sideMargin, headerTop+emblemSize+4)
	pdf.SetY(contentTop)
}

// footer stamps the custodian line on the left and "page i of n" on the
// right, inside the reserved bottom margin.
func (r *Renderer) footer(pdf *fpdf.Fpdf) {
	pageW, _ := pdf.GetPageSize()
	printable := pageW - 2*sideMargin

	pdf.SetY(-footerReserve + 6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(printable/2, 5, r.brand.Custodian, "", 0, "L", false, 0, "")
	pdf.CellFormat(printable/2, 5, fmt.Sprintf("page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *Renderer) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 7, title, "", "L", false)
	pdf.Ln(1)
}

// Body text line height in millimeters.
const textLineHeight = 5

// text wraps the block to the printable width. A block that would
// cross the bottom margin moves whole to a new page (with the header
// redrawn) when it fits on one; only blocks taller than a full page
// split across the automatic page break.
func (r *Renderer) text(pdf *fpdf.Fpdf, b *model.TextBlock) {
	pdf.SetFont("Helvetica", "", 10)

	pageW, pageH := pdf.GetPageSize()
	lines := len(pdf.SplitText(b.Text, pageW-2*sideMargin))
	if breakBefore(pdf.GetY(), float64(lines)*textLineHeight, pageH) {
		pdf.AddPage()
	}

	pdf.MultiCell(0, textLineHeight, b.Text, "", "L", false)
	pdf.Ln(blockSpacing)
}

// breakBefore reports whether a block of the given height should start
// a new page: it would cross the bottom margin from y, and it fits the
// content area of a fresh page.
func breakBefore(y, height, pageH float64) bool {
	breakAt := pageH - footerReserve
	return y+height > breakAt && height <= breakAt-contentTop
}

// table lays out rows manually so that a table running past the bottom
// margin continues on a new page with its header row repeated. Page
// breaks are checked per row, so automatic breaking is suspended.
func (r *Renderer) table(pdf *fpdf.Fpdf, t *model.TableBlock) {
	cols := t.ColCount()
	if cols == 0 {
		return
	}

	pageW, pageH := pdf.GetPageSize()
	printable := pageW - 2*sideMargin
	colW := printable / float64(cols)
	breakAt := pageH - footerReserve

	// More columns than fit the printable width shrink the font.
	fontSize := tableFontSize
	if colW < minColWidth {
		fontSize = tableFontSize * colW / minColWidth
		if fontSize < minTableFont {
			fontSize = minTableFont
		}
	}
	lineH := fontSize * 0.55

	pdf.SetAutoPageBreak(false, footerReserve)
	defer pdf.SetAutoPageBreak(true, footerReserve)

	headerRow := func() {
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetFillColor(int(r.brand.HeaderColor.R), int(r.brand.HeaderColor.G), int(r.brand.HeaderColor.B))
		pdf.SetTextColor(255, 255, 255)
		for _, h := range t.Headers {
			pdf.CellFormat(colW, lineH+cellPadding, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(lineH + cellPadding)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", fontSize)
	}

	if pdf.GetY()+2*(lineH+cellPadding) > breakAt {
		pdf.AddPage()
	}
	headerRow()

	for _, cells := range t.Rows {
		rowH := r.rowHeight(pdf, cells, colW, lineH)
		if pdf.GetY()+rowH > breakAt {
			pdf.AddPage()
			headerRow()
		}

		y := pdf.GetY()
		for j, c := range cells {
			cx := sideMargin + float64(j)*colW
			pdf.Rect(cx, y, colW, rowH, "D")
			pdf.SetXY(cx+cellPadding/2, y+cellPadding/2)
			pdf.MultiCell(colW-cellPadding, lineH, c.String(), "", "L", false)
		}
		pdf.SetXY(sideMargin, y+rowH)
	}
	pdf.Ln(blockSpacing)
}

// rowHeight is the height of the tallest wrapped cell in the row.
func (r *Renderer) rowHeight(pdf *fpdf.Fpdf, cells []model.Cell, colW, lineH float64) float64 {
	maxLines := 1
	for _, c := range cells {
		if lines := len(pdf.SplitText(c.String(), colW-cellPadding)); lines > maxLines {
			maxLines = lines
		}
	}
	return float64(maxLines)*lineH + cellPadding
}

// image draws the block at natural size, downscaled to the printable
// width when wider, starting a new page first when it would cross the
// bottom margin.
func (r *Renderer) image(pdf *fpdf.Fpdf, b *model.ImageBlock, name string) {
	imgType := imageType(b.MIME)
	if imgType == "" {
		return
	}

	pageW, pageH := pdf.GetPageSize()
	printable := pageW - 2*sideMargin

	w := float64(b.Width) / pixelsPerMM
	h := float64(b.Height) / pixelsPerMM
	if w > printable {
		h = h * printable / w
		w = printable
	}

	if pdf.GetY()+h > pageH-footerReserve {
		pdf.AddPage()
	}

	opts := fpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(b.Data))
	pdf.ImageOptions(name, sideMargin, pdf.GetY(), w, h, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + h + blockSpacing)
}

func imageType(mime string) string {
	switch mime {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}
