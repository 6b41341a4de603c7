package dto

import (
	"encoding/json"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/richtext"
)

// Note formats accepted for overview, metrics and decisions.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// NotesRequest is the editable meeting notes submitted by the web client.
// With format "html" every overview, metrics and decisions entry is an
// editor fragment and is split into plain lines.
type NotesRequest struct {
	Format       string                   `json:"format" validate:"omitempty,oneof=text html"`
	Overview     []string                 `json:"overview"`
	Metrics      []string                 `json:"metrics"`
	Decisions    []string                 `json:"decisions"`
	ActionGroups []entities.ActionGroup   `json:"actionGroups"`
	NextMeeting  entities.NextMeetingInfo `json:"nextMeeting"`
	Tags         []string                 `json:"tags"`
}

// ToSummary converts the request into the canonical model
func (r NotesRequest) ToSummary() (*entities.MeetingSummary, error) {
	m := entities.NewMeetingSummary()

	var err error
	if m.Overview, err = r.lines(r.Overview); err != nil {
		return nil, err
	}
	if m.Metrics, err = r.lines(r.Metrics); err != nil {
		return nil, err
	}
	if m.Decisions, err = r.lines(r.Decisions); err != nil {
		return nil, err
	}
	if r.ActionGroups != nil {
		m.ActionGroups = r.ActionGroups
	}
	m.NextMeeting = r.NextMeeting.Lines()
	for _, tag := range r.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			m.Tags = append(m.Tags, tag)
		}
	}
	return m, nil
}

func (r NotesRequest) lines(entries []string) ([]string, error) {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if r.Format != FormatHTML {
			if entry = strings.TrimSpace(entry); entry != "" {
				out = append(out, entry)
			}
			continue
		}
		lines, err := richtext.Lines(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

// ParseRequest carries a generator reply (a JSON string) or a structured
// notes object to the parser.
type ParseRequest struct {
	Mode  string          `json:"mode" validate:"omitempty,oneof=auto structured freetext transcript"`
	Input json.RawMessage `json:"input" validate:"required"`
}

// SuggestionRequest asks for follow-up actions over either raw text or notes
type SuggestionRequest struct {
	Text  string        `json:"text" validate:"required_without=Notes"`
	Notes *NotesRequest `json:"notes"`
}

// EmailsRequest lists the groups to draft follow-up emails for
type EmailsRequest struct {
	ActionGroups []entities.ActionGroup `json:"actionGroups" validate:"required,min=1"`
	Sender       string                 `json:"sender" validate:"omitempty,max=120"`
}

// ExportRequest is the notes plus the suggestions to include in a report
type ExportRequest struct {
	NotesRequest
	Suggestions []string `json:"suggestions"`
}

// DashboardRequest carries the current action groups
type DashboardRequest struct {
	ActionGroups []entities.ActionGroup `json:"actionGroups"`
}

// TranscriptResponse is the text recovered from an uploaded recording
type TranscriptResponse struct {
	Text       string                   `json:"text"`
	Transcript *entities.MeetingSummary `json:"transcript,omitempty"`
}
