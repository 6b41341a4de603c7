// Package richtext turns rich-text editor output into plain lines.
package richtext

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	htmlTag    = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	listMarker = regexp.MustCompile(`^(?:[-*+•]|\d+[.)])\s+`)
	emphasis   = strings.NewReplacer("**", "", "__", "", "~~", "")
	escapes    = strings.NewReplacer(`\-`, "-", `\*`, "*", `\_`, "_", `\#`, "#", `\.`, ".", `\+`, "+")
)

// IsHTML reports whether s looks like markup rather than plain text
func IsHTML(s string) bool {
	return htmlTag.MatchString(s)
}

// ToMarkdown converts an HTML fragment into Markdown
func ToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// Lines returns the trimmed, non-empty lines of an editor fragment. HTML is
// converted to Markdown first; list markers and bold or strike markers are
// removed either way.
func Lines(fragment string) ([]string, error) {
	text := fragment
	if IsHTML(fragment) {
		markdown, err := ToMarkdown(fragment)
		if err != nil {
			return nil, err
		}
		text = escapes.Replace(markdown)
	}

	text = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = listMarker.ReplaceAllString(line, "")
		line = strings.TrimSpace(emphasis.Replace(line))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
