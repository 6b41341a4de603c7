package summary

import (
	"regexp"
	"strings"
)

var (
	markupTag   = regexp.MustCompile(`<[^>]*>`)
	lineBreaker = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Clean strips markup tags and collapses the text to trimmed, non-empty
// lines joined by a single line break.
func Clean(raw string) string {
	return strings.Join(cleanLines(raw), "\n")
}

// StripMarkup removes every <...> tag from s.
func StripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}

func cleanLines(raw string) []string {
	text := lineBreaker.Replace(StripMarkup(raw))
	parts := strings.Split(text, "\n")

	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if line := strings.TrimSpace(part); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
