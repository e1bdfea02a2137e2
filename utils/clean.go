package utils

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// CleanCell strips HTML tags from a raw CSV cell and collapses runs of
// whitespace into single spaces. Multiline fields (key skills) must keep
// their newlines because the item list is newline-delimited, so for those
// only the tags are removed.
func CleanCell(raw string, keepNewlines bool) string {
	s := htmlTagPattern.ReplaceAllString(raw, "")
	if keepNewlines {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		return strings.Join(lines, "\n")
	}
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens a display string to at most limit runes, appending an
// ellipsis marker when anything was cut off. Used for rendering only,
// filtering and sorting always see the full value.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
