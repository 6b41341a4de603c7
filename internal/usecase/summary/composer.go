package summary

import (
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// NotSpecified marks an empty section in a composed prompt. Sections are never
// omitted, so a reader can always tell an empty section from a missing one.
const NotSpecified = "Not specified"

// SummaryInstruction is the fixed header of every summary prompt. The section
// names it asks for are the anchors the parser looks for.
const SummaryInstruction = "You are a professional meeting summarizer. " +
	"Given the following structured meeting data, generate a clear, concise, and well-formatted summary in the same structure. " +
	"If any field is 'Not specified', keep it as is. Do not invent information.\n" +
	"Answer with these sections, each title on its own line: " +
	"'Meeting Summary:' followed by '-' bullet points, " +
	"'Key Decisions:' followed by '-' bullet points, " +
	"'Action Items:' followed by a markdown table with the columns Task | Assignee | Deadline | Priority | Dependencies, " +
	"and 'Tags:' followed by a few #hashtags."

// SuggestionInstruction is the fixed header of every suggestion prompt.
const SuggestionInstruction = "Based on the following meeting notes or transcript, suggest 3-5 actionable follow-up items for the team. " +
	"Focus on specific, measurable actions that will help move the project forward."

// Task sub-field labels.
const (
	LabelAssignee     = "Assignee"
	LabelTask         = "Task"
	LabelDeadline     = "Deadline"
	LabelPriority     = "Priority"
	LabelDependencies = "Dependencies"
)

// Source is the input of a suggestion prompt: structured notes or free text
// such as a transcript.
type Source struct {
	Summary *entities.MeetingSummary
	Text    string
}

// FromSummary wraps structured notes.
func FromSummary(m *entities.MeetingSummary) Source {
	return Source{Summary: m}
}

// FromText wraps a transcript or any free text.
func FromText(text string) Source {
	return Source{Text: text}
}

// IsText reports whether the source is free text.
func (s Source) IsText() bool {
	return s.Summary == nil
}

type promptSection struct {
	title string
	body  string
}

// ComposeSummaryPrompt renders notes into the labeled prompt sent to the
// text-generation service. Output depends only on m.
func ComposeSummaryPrompt(m *entities.MeetingSummary) string {
	if m == nil {
		m = entities.NewMeetingSummary()
	}

	sections := []promptSection{
		{"📋 Meeting Overview:", renderLines(m.Overview)},
		{"📊 Performance Metrics:", renderLines(m.Metrics)},
		{"✅ Decisions Made:", renderLines(m.Decisions)},
		{"📝 Action Items:", renderActionGroups(m.ActionGroups)},
		{"📅 Next Meeting:", renderLines(m.NextMeeting)},
	}

	var b strings.Builder
	b.WriteString(SummaryInstruction)
	b.WriteString("\n\n")
	writeSections(&b, sections)
	return b.String()
}

// ComposeSuggestionPrompt asks for follow-up actions over notes or a
// transcript. The prompt ends with the "Action Items:" cue.
func ComposeSuggestionPrompt(src Source) string {
	var notes string
	if src.IsText() {
		notes = strings.TrimSpace(src.Text)
		if notes == "" {
			notes = NotSpecified
		}
	} else {
		var b strings.Builder
		writeSections(&b, []promptSection{
			{"Meeting Overview:", renderLines(src.Summary.Overview)},
			{"Performance Metrics:", renderLines(src.Summary.Metrics)},
			{"Decisions Made:", renderLines(src.Summary.Decisions)},
			{"Action Items:", renderActionGroups(src.Summary.ActionGroups)},
			{"Next Meeting:", renderLines(src.Summary.NextMeeting)},
		})
		notes = b.String()
	}

	var b strings.Builder
	b.WriteString(SuggestionInstruction)
	b.WriteString("\n\nMeeting Notes:\n")
	b.WriteString(notes)
	b.WriteString("\n\nAction Items:")
	return b.String()
}

func writeSections(b *strings.Builder, sections []promptSection) {
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.title)
		b.WriteString("\n")
		b.WriteString(s.body)
	}
}

func renderLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return NotSpecified
	}
	return strings.Join(kept, "\n")
}

// renderActionGroups writes one block per assignee with a numbered task list.
// Groups without an assignee and tasks without a name are skipped; validation
// is expected to have rejected them already.
func renderActionGroups(groups []entities.ActionGroup) string {
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		assignee := strings.TrimSpace(g.Assignee)
		if assignee == "" {
			continue
		}

		lines := []string{LabelAssignee + ": " + assignee}
		n := 0
		for _, t := range g.Tasks {
			if strings.TrimSpace(t.Task) == "" {
				continue
			}
			n++
			lines = append(lines, strconv.Itoa(n)+". "+renderTaskLine(t))
		}
		if n == 0 {
			continue
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(blocks) == 0 {
		return NotSpecified
	}
	return strings.Join(blocks, "\n\n")
}

// renderTaskLine includes only the sub-fields that are present, each behind a
// fixed label.
func renderTaskLine(t entities.Task) string {
	parts := []string{LabelTask + ": " + strings.TrimSpace(t.Task)}
	optional := []struct {
		label string
		value string
	}{
		{LabelDeadline, t.Deadline},
		{LabelPriority, t.Priority},
		{LabelDependencies, t.Dependencies},
	}
	for _, f := range optional {
		if v := strings.TrimSpace(f.value); v != "" {
			parts = append(parts, f.label+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}
