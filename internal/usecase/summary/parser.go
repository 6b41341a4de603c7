package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// Mode selects how the parser reads its input
type Mode int

const (
	// ModeAuto reads strings as free text and objects as structured notes.
	ModeAuto Mode = iota
	// ModeStructured trusts named fields and never scans for anchors.
	ModeStructured
	// ModeFreeText cleans the text and slices it at anchor lines.
	ModeFreeText
	// ModeTranscript is free text without action table extraction.
	ModeTranscript
)

var modeNames = map[Mode]string{
	ModeAuto:       "auto",
	ModeStructured: "structured",
	ModeFreeText:   "freetext",
	ModeTranscript: "transcript",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name to a Mode. The empty string is ModeAuto.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ModeAuto, nil
	case "structured":
		return ModeStructured, nil
	case "freetext":
		return ModeFreeText, nil
	case "transcript":
		return ModeTranscript, nil
	}
	return ModeAuto, fmt.Errorf("unknown parse mode %q", name)
}

// Parser recovers a MeetingSummary from a generator reply or a structured
// object. It holds no state, so one instance can serve concurrent callers.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse is ParseWithMode with ModeAuto.
func (p *Parser) Parse(input any) (*entities.MeetingSummary, error) {
	return p.ParseWithMode(input, ModeAuto)
}

// ParseWithMode accepts a string, raw JSON bytes, a map or a MeetingSummary.
// Malformed content degrades to empty sections; the only error is
// ErrUnsupportedInput, returned for other input types or when the forced mode
// does not fit the input shape.
func (p *Parser) ParseWithMode(input any, mode Mode) (*entities.MeetingSummary, error) {
	text, object, summary, err := classify(input)
	if err != nil {
		return nil, err
	}

	isText := object == nil && summary == nil
	switch mode {
	case ModeAuto:
	case ModeStructured:
		if isText {
			return nil, fmt.Errorf("%w: structured mode needs an object, got text", usecaseErrors.ErrUnsupportedInput)
		}
	case ModeFreeText, ModeTranscript:
		if !isText {
			return nil, fmt.Errorf("%w: %s mode needs text, got an object", usecaseErrors.ErrUnsupportedInput, mode)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %s", usecaseErrors.ErrUnsupportedInput, mode)
	}

	switch {
	case summary != nil:
		return normalizeSummary(summary), nil
	case object != nil:
		return parseObject(object), nil
	default:
		return parseFreeText(text, mode != ModeTranscript), nil
	}
}

// classify sorts input into exactly one of text, decoded object or typed
// summary.
func classify(input any) (string, map[string]any, *entities.MeetingSummary, error) {
	switch v := input.(type) {
	case string:
		return v, nil, nil, nil
	case []byte:
		return classifyJSON(v)
	case json.RawMessage:
		return classifyJSON(v)
	case map[string]any:
		if v == nil {
			break
		}
		return "", v, nil, nil
	case entities.MeetingSummary:
		return "", nil, &v, nil
	case *entities.MeetingSummary:
		if v == nil {
			break
		}
		return "", nil, v, nil
	}
	return "", nil, nil, fmt.Errorf("%w: %T", usecaseErrors.ErrUnsupportedInput, input)
}

// classifyJSON reads a JSON object as structured notes and a JSON string as
// text. Any other bytes are taken as text verbatim.
func classifyJSON(raw []byte) (string, map[string]any, *entities.MeetingSummary, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{':
			var object map[string]any
			if err := json.Unmarshal(trimmed, &object); err == nil && object != nil {
				return "", object, nil, nil
			}
		case '"':
			var text string
			if err := json.Unmarshal(trimmed, &text); err == nil {
				return text, nil, nil, nil
			}
		}
	}
	return string(raw), nil, nil, nil
}

func parseFreeText(text string, withTable bool) *entities.MeetingSummary {
	m := entities.NewMeetingSummary()
	found := scanAnchors(cleanLines(text))

	m.Overview = bulletItems(found[sectionOverview])
	m.Metrics = bulletItems(found[sectionMetrics])
	m.Decisions = bulletItems(found[sectionDecisions])
	m.NextMeeting = spanLines(found[sectionNextMeeting])
	m.Tags = splitTags(found[sectionTags])

	if withTable {
		table := parseTable(found[sectionActions])
		if len(table.rows) > 0 {
			m.ActionHeaders = table.headers
			m.ActionItems = table.rows
			m.ActionGroups = groupRows(table.rows)
		}
	}
	return m
}

func parseObject(object map[string]any) *entities.MeetingSummary {
	m := entities.NewMeetingSummary()

	m.Overview = toLines(field(object, "overview", "meetingSummary", "summary"))
	m.Metrics = toLines(field(object, "metrics", "performanceMetrics"))
	m.Decisions = toLines(field(object, "decisions", "keyDecisions"))
	m.Tags = normalizeTags(toLines(field(object, "tags")))
	m.ActionGroups = decodeGroups(field(object, "actionGroups"))

	next := field(object, "nextMeeting")
	if fields, ok := next.(map[string]any); ok {
		var info entities.NextMeetingInfo
		if err := decodeLenient(fields, &info); err == nil {
			m.NextMeeting = toLines(info.Lines())
		}
	} else {
		m.NextMeeting = toLines(next)
	}
	return m
}

// normalizeSummary applies the structured-mode line rules to a typed value
// and returns a copy; the input is never modified.
func normalizeSummary(in *entities.MeetingSummary) *entities.MeetingSummary {
	m := entities.NewMeetingSummary()
	m.Overview = toLines(in.Overview)
	m.Metrics = toLines(in.Metrics)
	m.Decisions = toLines(in.Decisions)
	m.NextMeeting = toLines(in.NextMeeting)
	m.Tags = normalizeTags(toLines(in.Tags))

	for _, g := range in.ActionGroups {
		tasks := make([]entities.Task, len(g.Tasks))
		copy(tasks, g.Tasks)
		m.ActionGroups = append(m.ActionGroups, entities.ActionGroup{Assignee: g.Assignee, Tasks: tasks})
	}
	fillTaskIDs(m.ActionGroups)

	if len(in.ActionItems) > 0 {
		m.ActionHeaders = append([]string(nil), in.ActionHeaders...)
		for _, row := range in.ActionItems {
			dup := make(entities.ActionRow, len(row))
			for k, v := range row {
				dup[k] = v
			}
			m.ActionItems = append(m.ActionItems, dup)
		}
	}
	return m
}

// field returns the first present key.
func field(object map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := object[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// toLines joins arrays with line breaks, wraps scalars, then splits and
// strips markup per line. Blank lines are dropped.
func toLines(v any) []string {
	var text string
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		text = val
	case []string:
		text = strings.Join(val, "\n")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, strings.Join(toLines(item), "\n"))
		}
		text = strings.Join(parts, "\n")
	case map[string]any:
		return []string{}
	default:
		text = fmt.Sprint(val)
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(lineBreaker.Replace(text), "\n") {
		if line = strings.TrimSpace(StripMarkup(line)); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func normalizeTags(lines []string) []string {
	tags := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		tag := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// decodeGroups decodes each group on its own so one malformed entry does not
// drop the rest.
func decodeGroups(v any) []entities.ActionGroup {
	items, ok := v.([]any)
	if !ok {
		return []entities.ActionGroup{}
	}

	groups := make([]entities.ActionGroup, 0, len(items))
	for _, item := range items {
		var g entities.ActionGroup
		if err := decodeLenient(item, &g); err != nil {
			continue
		}
		if g.Tasks == nil {
			g.Tasks = []entities.Task{}
		}
		for i := range g.Tasks {
			if g.Tasks[i].Attachment != nil && g.Tasks[i].Attachment.Name == "" {
				g.Tasks[i].Attachment = nil
			}
		}
		groups = append(groups, g)
	}
	fillTaskIDs(groups)
	return groups
}

// fillTaskIDs gives id-less tasks a name-based id, so repeated parses agree.
func fillTaskIDs(groups []entities.ActionGroup) {
	for gi := range groups {
		for ti := range groups[gi].Tasks {
			t := &groups[gi].Tasks[ti]
			if t.ID == "" {
				t.ID = entities.DeterministicTaskID(groups[gi].Assignee, ti, t.Task)
			}
		}
	}
}

var attachmentType = reflect.TypeOf(entities.Attachment{})

// attachmentFromName lets clients send an attachment as a bare file name.
func attachmentFromName(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from == nil || to != attachmentType || from.Kind() != reflect.String {
		return data, nil
	}
	return entities.Attachment{Name: reflect.ValueOf(data).String()}, nil
}

// decodeLenient decodes with weak typing, so numeric ids from web clients
// become strings and "true" becomes a bool.
func decodeLenient(input any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       attachmentFromName,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
