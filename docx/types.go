package docx

import "encoding/xml"

// XML namespaces used in the generated DOCX parts.
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// documentXML is the root of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML holds the ordered document content followed by the section
// properties. Content elements are paragraphs and tables; each carries
// its own XMLName so marshaling preserves order.
type bodyXML struct {
	Content []any
	SectPr  sectPrXML `xml:"w:sectPr"`
}

// sectPrXML carries page size, margins, and the running header/footer
// references.
type sectPrXML struct {
	HeaderRef refXML   `xml:"w:headerReference"`
	FooterRef refXML   `xml:"w:footerReference"`
	PgSz      pgSzXML  `xml:"w:pgSz"`
	PgMar     pgMarXML `xml:"w:pgMar"`
}

type refXML struct {
	Type string `xml:"w:type,attr"`
	RID  string `xml:"r:id,attr"`
}

type pgSzXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
}

// paraXML is a paragraph (<w:p>).
type paraXML struct {
	XMLName xml.Name      `xml:"w:p"`
	Props   *paraPropsXML `xml:"w:pPr,omitempty"`
	Content []any
}

type paraPropsXML struct {
	Justification *valXML `xml:"w:jc,omitempty"`
}

// runXML is a text run (<w:r>).
type runXML struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *runPropsXML `xml:"w:rPr,omitempty"`
	Text    *textXML     `xml:"w:t,omitempty"`
}

type runPropsXML struct {
	Bold  *emptyXML `xml:"w:b,omitempty"`
	Color *valXML   `xml:"w:color,omitempty"`
	Size  *valXML   `xml:"w:sz,omitempty"` // half-points
}

type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// fldSimpleXML is a simple field such as PAGE or NUMPAGES; the
// consuming viewer computes its value during its own layout pass.
type fldSimpleXML struct {
	XMLName xml.Name `xml:"w:fldSimple"`
	Instr   string   `xml:"w:instr,attr"`
	Runs    []runXML
}

type valXML struct {
	Val string `xml:"w:val,attr"`
}

type emptyXML struct{}

// tableXML is a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   tblPropsXML `xml:"w:tblPr"`
	Rows    []rowXML
}

type tblPropsXML struct {
	Width   tblWidthXML   `xml:"w:tblW"`
	Borders tblBordersXML `xml:"w:tblBorders"`
}

type tblWidthXML struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tblBordersXML struct {
	Top     borderXML `xml:"w:top"`
	Left    borderXML `xml:"w:left"`
	Bottom  borderXML `xml:"w:bottom"`
	Right   borderXML `xml:"w:right"`
	InsideH borderXML `xml:"w:insideH"`
	InsideV borderXML `xml:"w:insideV"`
}

type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Color string `xml:"w:color,attr"`
}

type rowXML struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []cellXML
}

type cellXML struct {
	XMLName xml.Name      `xml:"w:tc"`
	Props   *cellPropsXML `xml:"w:tcPr,omitempty"`
	Paras   []paraXML
}

type cellPropsXML struct {
	Shading *shadingXML `xml:"w:shd,omitempty"`
}

type shadingXML struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}

// headerXML is the root of word/header1.xml.
type headerXML struct {
	XMLName xml.Name `xml:"w:hdr"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Paras   []paraXML
}

// footerXML is the root of word/footer1.xml.
type footerXML struct {
	XMLName xml.Name `xml:"w:ftr"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Paras   []paraXML
}
