package csvdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/Mou383251/capreport/model"
)

// planDoc is the canonical two-row fixture used across the flattening tests.
func planDoc(t *testing.T) *model.Document {
	t.Helper()

	return model.NewDocument("Plan").AddSection(model.Section{
		Title: "Data",
		Content: []model.Block{
			model.NewTable("A", "B").
				AddRow(model.Str("x"), model.Num(1)).
				AddRow(model.Str("y"), model.Num(2)),
		},
	})
}

func TestRenderCSV(t *testing.T) {
	got, err := New().Render(planDoc(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "\"A\",\"B\"\n\"x\",\"1\"\n\"y\",\"2\""
	if string(got) != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCSVQuoting(t *testing.T) {
	doc := model.NewDocument("Quotes").AddSection(model.Section{
		Title: "S",
		Content: []model.Block{
			model.NewTable("Remark").AddRow(model.Str(`said "yes", twice`)),
		},
	})

	got, err := New().Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\"Remark\"\n\"said \"\"yes\"\", twice\""
	if string(got) != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderCSVNoTable(t *testing.T) {
	doc := model.NewDocument("Text only").AddSection(model.Section{
		Title:   "S",
		Content: []model.Block{model.Text("nothing tabular")},
	})

	if _, err := New().Render(doc); !errors.Is(err, model.ErrNoTable) {
		t.Errorf("Render error = %v, want ErrNoTable", err)
	}
}

// fakeWriter records the last clipboard payload, optionally failing.
type fakeWriter struct {
	text string
	err  error
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestClipboardCopy(t *testing.T) {
	fake := &fakeWriter{}
	msg, err := NewClipboardWith(fake).Copy(planDoc(t))
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}

	if want := "A\tB\nx\t1\ny\t2"; fake.text != want {
		t.Errorf("clipboard payload = %q, want %q", fake.text, want)
	}
	if !strings.Contains(msg, "2 rows") {
		t.Errorf("confirmation = %q, want mention of 2 rows", msg)
	}
}

func TestClipboardCopyFailure(t *testing.T) {
	sentinel := errors.New("access denied")
	_, err := NewClipboardWith(&fakeWriter{err: sentinel}).Copy(planDoc(t))
	if !errors.Is(err, sentinel) {
		t.Errorf("Copy error = %v, want wrapped %v", err, sentinel)
	}
}

func TestClipboardCopyNoTable(t *testing.T) {
	doc := model.NewDocument("Empty").AddSection(model.Section{Title: "S"})
	if _, err := NewClipboardWith(&fakeWriter{}).Copy(doc); !errors.Is(err, model.ErrNoTable) {
		t.Errorf("Copy error = %v, want ErrNoTable", err)
	}
}
