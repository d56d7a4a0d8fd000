package xlsx

import (
	"strconv"
	"strings"
)

// maxSheetNameLen is the workbook format's hard limit on sheet names.
const maxSheetNameLen = 31

// forbidden lists the runes Excel rejects in sheet names.
const forbidden = `:\/?*[]`

// sheetNamer hands out valid, unique sheet names for one workbook.
// Truncation to 31 runes can collide for section titles sharing a long
// prefix; collisions get a numeric discriminator suffix.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]bool)}
}

// name sanitizes and truncates the title, then de-duplicates it against
// the names already handed out.
func (n *sheetNamer) name(title string) string {
	base := sanitizeSheetName(title)
	if base == "" {
		base = "Sheet"
	}
	base = truncateRunes(base, maxSheetNameLen)

	if !n.used[base] {
		n.used[base] = true
		return base
	}

	for i := 2; ; i++ {
		suffix := " " + strconv.Itoa(i)
		candidate := truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
		if !n.used[candidate] {
			n.used[candidate] = true
			return candidate
		}
	}
}

func sanitizeSheetName(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if strings.ContainsRune(forbidden, r) {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
