package summary

import (
	"regexp"
	"strings"
)

var listItem = regexp.MustCompile(`^(?:\d+[.)]|[-•*])\s+(.+)$`)

// ExtractSuggestions returns the numbered or bulleted items of a suggestion
// reply in order. A reply without list markers is returned one item per line,
// minus a trailing "Action Items:" cue echoed back by the generator.
func ExtractSuggestions(reply string) []string {
	lines := cleanLines(reply)

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if match := listItem.FindStringSubmatch(line); match != nil {
			if item := strings.TrimSpace(match[1]); item != "" {
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, line := range lines {
		title := strings.TrimRight(strings.TrimLeftFunc(line, isDecoration), ": *")
		if strings.EqualFold(title, "action items") {
			continue
		}
		items = append(items, line)
	}
	return items
}
