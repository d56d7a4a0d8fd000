// Package naming derives the filesystem-safe, date-stamped filenames
// shared by every file-producing renderer. Files from the same
// generation run share one slug and date stamp and differ only in
// extension, so they are recognizably related on disk.
package naming

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// suffix marks every generated file as an official report artifact.
	suffix = "official-report"

	// fallback is used when a title slugs down to nothing.
	fallback = "report"
)

// Slug returns the lower-cased, separator-normalized form of a title:
// combining marks stripped, and every run of non-alphanumeric runes
// collapsed to a single hyphen.
func Slug(title string) string {
	var sb strings.Builder
	pending := false
	for _, r := range norm.NFD.String(title) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pending = false
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		pending = true
	}
	return sb.String()
}

// Base returns the date-stamped base name for a title:
// <slug>-official-report-<YYYY-MM-DD>.
func Base(title string, now time.Time) string {
	slug := Slug(title)
	if slug == "" {
		slug = fallback
	}
	return slug + "-" + suffix + "-" + now.Format("2006-01-02")
}

// Filename returns the full output filename for a title and extension.
func Filename(title, ext string, now time.Time) string {
	return Base(title, now) + "." + ext
}
