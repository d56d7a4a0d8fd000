package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// JSON codec for the document model. Blocks travel inside a tagged
// envelope ({"type": "text" | "table" | "image", ...}) so that a
// Document survives a round trip through the raw renderer and the CLI.

type documentJSON struct {
	Title    string        `json:"title"`
	Sections []sectionJSON `json:"sections"`
}

type sectionJSON struct {
	Title       string      `json:"title"`
	Orientation string      `json:"orientation,omitempty"`
	Content     []blockJSON `json:"content"`
}

type blockJSON struct {
	Type string `json:"type"`

	// text
	Text string `json:"text,omitempty"`

	// table
	Headers []string `json:"headers,omitempty"`
	Rows    [][]Cell `json:"rows,omitempty"`

	// image
	DataURL string `json:"dataUrl,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// MarshalJSON encodes the cell as a bare string or number.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// UnmarshalJSON accepts a string, a number, or null. Null coerces to
// the empty string cell rather than a literal "null" marker.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cell{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Str(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Num(n)
		return nil
	}
	return fmt.Errorf("cell value %s is not a scalar", data)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{Title: d.Title, Sections: make([]sectionJSON, 0, len(d.Sections))}
	for _, sec := range d.Sections {
		sj := sectionJSON{Title: sec.Title, Content: make([]blockJSON, 0, len(sec.Content))}
		if sec.Orientation != OrientationDefault {
			sj.Orientation = sec.Orientation.String()
		}
		for _, b := range sec.Content {
			bj, err := marshalBlock(b)
			if err != nil {
				return nil, err
			}
			sj.Content = append(sj.Content, bj)
		}
		out.Sections = append(out.Sections, sj)
	}
	return json.Marshal(out)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	d.Title = in.Title
	d.Sections = nil
	for _, sj := range in.Sections {
		sec := Section{Title: sj.Title}
		switch sj.Orientation {
		case "":
			sec.Orientation = OrientationDefault
		case "portrait":
			sec.Orientation = OrientationPortrait
		case "landscape":
			sec.Orientation = OrientationLandscape
		default:
			return fmt.Errorf("unknown orientation %q", sj.Orientation)
		}
		for _, bj := range sj.Content {
			b, err := unmarshalBlock(bj)
			if err != nil {
				return err
			}
			sec.Content = append(sec.Content, b)
		}
		d.Sections = append(d.Sections, sec)
	}
	return nil
}

func marshalBlock(b Block) (blockJSON, error) {
	switch v := b.(type) {
	case *TextBlock:
		return blockJSON{Type: "text", Text: v.Text}, nil
	case *TableBlock:
		headers := v.Headers
		if headers == nil {
			headers = []string{}
		}
		return blockJSON{Type: "table", Headers: headers, Rows: v.Rows}, nil
	case *ImageBlock:
		url := "data:" + v.MIME + ";base64," + base64.StdEncoding.EncodeToString(v.Data)
		return blockJSON{Type: "image", DataURL: url, Width: v.Width, Height: v.Height}, nil
	default:
		return blockJSON{}, fmt.Errorf("unknown block type %T", b)
	}
}

func unmarshalBlock(bj blockJSON) (Block, error) {
	switch bj.Type {
	case "text":
		return &TextBlock{Text: bj.Text}, nil
	case "table":
		return &TableBlock{Headers: bj.Headers, Rows: bj.Rows}, nil
	case "image":
		img, err := ParseDataURL(bj.DataURL)
		if err != nil {
			return nil, err
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", bj.Type)
	}
}
