// Package export renders meeting summaries for people: PDF reports, emails
// and calendar links.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Column layout of the per-assignee task table, in mm. The widths add up to
// the printable width of an A4 page with default margins.
var taskColumns = []struct {
	title string
	width float64
}{
	{"Task", 60},
	{"Deadline", 30},
	{"Priority", 25},
	{"Dependencies", 50},
	{"Completed", 25},
}

// PDF renders the summary as an A4 report. Only non-empty sections are
// written; suggestions go last under "AI Suggestions".
func PDF(m *entities.MeetingSummary, suggestions []string) ([]byte, error) {
	if m == nil {
		m = entities.NewMeetingSummary()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Meeting Summary", "", "L", false)
	pdf.Ln(4)

	renderBullets(pdf, tr, "Meeting Overview", m.Overview)
	renderBullets(pdf, tr, "Performance Metrics", m.Metrics)
	renderBullets(pdf, tr, "Key Decisions", m.Decisions)
	renderActionGroups(pdf, tr, m.ActionGroups)
	renderBullets(pdf, tr, "Next Meeting", m.NextMeeting)

	if len(m.Tags) > 0 {
		renderHeading(pdf, "Tags")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr("#"+strings.Join(m.Tags, "  #")), "", "L", false)
		pdf.Ln(2)
	}

	if len(suggestions) > 0 {
		renderHeading(pdf, "AI Suggestions")
		pdf.SetFont("Helvetica", "", 10)
		for i, s := range suggestions {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, s)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}

func renderBullets(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	renderHeading(pdf, title)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr("• "+line), "", "L", false)
	}
}

func renderActionGroups(pdf *gofpdf.Fpdf, tr func(string) string, groups []entities.ActionGroup) {
	var named []entities.ActionGroup
	for _, g := range groups {
		if strings.TrimSpace(g.Assignee) != "" && g.TaskCount() > 0 {
			named = append(named, g)
		}
	}
	if len(named) == 0 {
		return
	}

	renderHeading(pdf, "Action Items")
	for _, g := range named {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(g.Assignee), "", "L", false)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range taskColumns {
			pdf.CellFormat(col.width, 6, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, t := range g.Tasks {
			if t.Task == "" {
				continue
			}
			completed := "No"
			if t.Completed {
				completed = "Yes"
			}
			cells := []string{t.Task, t.Deadline, t.Priority, t.Dependencies, completed}
			for i, col := range taskColumns {
				pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(3)
	}
}
