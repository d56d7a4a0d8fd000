package naming

import (
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Workforce Plan", "workforce-plan"},
		{"collapsed whitespace", "Workforce   Capability \t Plan", "workforce-capability-plan"},
		{"punctuation", "Q3: Training / Needs (2026)", "q3-training-needs-2026"},
		{"diacritics", "Résumé Révision", "resume-revision"},
		{"leading and trailing junk", "  **Plan**  ", "plan"},
		{"empty", "", ""},
		{"only separators", "///---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.title); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 4, 5, 0, time.UTC)

	got := Filename("Workforce Plan", "pdf", now)
	want := "workforce-plan-official-report-2026-09-01.pdf"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	// A title with no usable runes falls back to the generic base.
	got = Filename("///", "json", now)
	want = "report-official-report-2026-09-01.json"
	if got != want {
		t.Errorf("Filename fallback = %q, want %q", got, want)
	}
}

func TestBaseSharedAcrossExtensions(t *testing.T) {
	now := time.Now()
	base := Base("Capability Needs Analysis", now)
	for _, ext := range []string{"pdf", "docx", "xlsx", "csv", "json"} {
		if got := Filename("Capability Needs Analysis", ext, now); got != base+"."+ext {
			t.Errorf("Filename(%s) = %q, want prefix %q", ext, got, base)
		}
	}
}
