package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// section identifies a span of free text introduced by an anchor line.
type section int

const (
	sectionNone section = iota
	sectionOverview
	sectionMetrics
	sectionDecisions
	sectionActions
	sectionNextMeeting
	sectionTags
)

// maxTitleWords bounds the text before the colon of a title line, so prose
// that happens to mention "overview" or "tags" is not read as a heading.
const maxTitleWords = 6

type anchor struct {
	section section
	aliases []string
}

// anchors lists the recognized section labels, matched as whole words
// anywhere in a title line. The composer's own titles ("Meeting Overview",
// "Decisions Made", "Performance Metrics", "Next Meeting") all resolve here.
var anchors = []anchor{
	{sectionOverview, []string{"meeting summary", "overview"}},
	{sectionMetrics, []string{"performance metrics", "metrics"}},
	{sectionDecisions, []string{"key decisions", "decisions"}},
	{sectionActions, []string{"action items"}},
	{sectionNextMeeting, []string{"next meeting"}},
	{sectionTags, []string{"tags"}},
}

// spans maps each found section to its lines. The anchor line's inline text,
// if any, is the first line of the span.
type spans map[section][]string

// scanAnchors splits cleaned lines into sections. A span runs from its anchor
// line to the next anchor line or the end of input. When a section appears
// twice, the first occurrence wins and the repeat only closes the prior span.
// Tags also end at any other "Label:" line.
func scanAnchors(lines []string) spans {
	out := make(spans)
	current := sectionNone
	for _, line := range lines {
		if sec, inline, ok := matchAnchor(line); ok {
			if _, seen := out[sec]; seen {
				current = sectionNone
				continue
			}
			current = sec
			out[sec] = []string{}
			if inline != "" {
				out[sec] = append(out[sec], inline)
			}
			continue
		}
		if current == sectionTags && isLabelLine(line) {
			current = sectionNone
			continue
		}
		if current != sectionNone {
			out[current] = append(out[current], line)
		}
	}
	return out
}

// matchAnchor reports whether line is an anchor line. The title is the text
// before the first ':' (or the whole line without one); it must be short and
// contain a known label as a whole word, compared case-insensitively. Bullets
// and table rows are never anchors.
func matchAnchor(line string) (section, string, bool) {
	title, inline, ok := splitTitle(line)
	if !ok {
		return sectionNone, "", false
	}

	lowered := strings.ToLower(title)
	best, bestAt := sectionNone, -1
	for _, a := range anchors {
		for _, alias := range a.aliases {
			at := indexWord(lowered, alias)
			if at >= 0 && (bestAt < 0 || at < bestAt) {
				best, bestAt = a.section, at
			}
		}
	}
	if best == sectionNone {
		return sectionNone, "", false
	}
	return best, strings.TrimFunc(inline, isEmphasis), true
}

// splitTitle separates a candidate title line into its title and inline
// text. Lines that start with a bullet or pipe, or whose title runs longer
// than maxTitleWords, are not titles.
func splitTitle(line string) (string, string, bool) {
	body := strings.TrimLeftFunc(line, isDecoration)
	switch first, _ := utf8.DecodeRuneInString(body); first {
	case utf8.RuneError, '-', '•', '|':
		return "", "", false
	}

	title, inline := body, ""
	if i := strings.IndexByte(body, ':'); i >= 0 {
		title, inline = body[:i], body[i+1:]
	}
	words := len(strings.Fields(title))
	if words == 0 || words > maxTitleWords {
		return "", "", false
	}
	return title, inline, true
}

// isLabelLine reports whether line reads as "Label: value", the shape of a
// heading the parser does not know.
func isLabelLine(line string) bool {
	if !strings.Contains(line, ":") {
		return false
	}
	title, _, ok := splitTitle(line)
	return ok && strings.TrimFunc(title, isEmphasis) != ""
}

// indexWord returns the byte offset of the first occurrence of word in s
// that is not part of a longer word, or -1.
func indexWord(s, word string) int {
	for from := 0; from <= len(s)-len(word); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		at := from + i
		before, _ := utf8.DecodeLastRuneInString(s[:at])
		after, _ := utf8.DecodeRuneInString(s[at+len(word):])
		if !isWordRune(before) && !isWordRune(after) {
			return at
		}
		from = at + 1
	}
	return -1
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// isDecoration matches runes that may precede a label. Bullet markers and
// pipes are excluded so list items and table cells keep their meaning.
func isDecoration(r rune) bool {
	switch r {
	case '-', '•', '|':
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isEmphasis(r rune) bool {
	return r == '*' || r == '_' || unicode.IsSpace(r)
}

// spanLines keeps every non-empty line, with any bullet marker removed.
func spanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if item, ok := trimBullet(line); ok {
			line = item
		}
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// bulletItems keeps only "-" and "•" lines, with the marker removed.
func bulletItems(lines []string) []string {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		item, ok := trimBullet(line)
		if !ok || item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func trimBullet(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"-", "•"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

// splitTags tokenizes on '#', ',' and whitespace, dropping repeats while
// keeping first-seen order. Tokens carrying a ':' belong to some other label
// and are skipped.
func splitTags(lines []string) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, line := range lines {
		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == '#' || r == ',' || unicode.IsSpace(r)
		})
		for _, token := range tokens {
			token = strings.Trim(token, "*`-•")
			if token == "" || strings.Contains(token, ":") {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tags = append(tags, token)
		}
	}
	return tags
}
