package export

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func sampleSummary() *entities.MeetingSummary {
	m := entities.NewMeetingSummary()
	m.Overview = []string{"Reviewed budget"}
	m.Decisions = []string{"Hired two engineers"}
	m.ActionGroups = []entities.ActionGroup{
		{Assignee: "Alice", Tasks: []entities.Task{
			{ID: "1", Task: "Write report", Deadline: "2026-10-20", Priority: "High", Attachment: &entities.Attachment{Name: "budget.xlsx"}},
			{ID: "2", Task: "Book room", Completed: true},
			{ID: "3", Task: ""},
		}},
		{Assignee: "", Tasks: []entities.Task{{ID: "4", Task: "Orphan"}}},
		{Assignee: "Bob", Tasks: []entities.Task{{ID: "5", Task: "Ship release", Dependencies: "QA sign-off"}}},
	}
	m.Tags = []string{"budget"}
	return m
}

func TestPDF_ProducesDocument(t *testing.T) {
	out, err := PDF(sampleSummary(), []string{"Schedule a design review"})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestPDF_EmptySummary(t *testing.T) {
	out, err := PDF(nil, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestEmails(t *testing.T) {
	emails, err := Emails(sampleSummary().ActionGroups, "")
	require.NoError(t, err)
	require.Len(t, emails, 2)

	alice := emails[0]
	assert.Equal(t, "Alice", alice.Assignee)
	assert.True(t, strings.HasPrefix(alice.Body, "Dear Alice,"))
	assert.Contains(t, alice.Body, "1. Write report\n   📅 Deadline: 2026-10-20\n   ⭐ Priority: High")
	assert.Contains(t, alice.Body, "2. Book room")
	assert.NotContains(t, alice.Body, "3.")
	assert.Contains(t, alice.Body, "📎 Attachments:\n- budget.xlsx")
	assert.True(t, strings.HasSuffix(alice.Body, "Best regards,\n"+DefaultSender))

	bob := emails[1]
	assert.Contains(t, bob.Body, "1. Ship release\n   🔗 Dependencies: QA sign-off")
	assert.NotContains(t, bob.Body, "Attachments")
}

func TestEmails_Sender(t *testing.T) {
	emails, err := Emails(sampleSummary().ActionGroups[:1], "Dana")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(emails[0].Body, "Best regards,\nDana"))
}

func TestCalendarURL(t *testing.T) {
	link := CalendarURL(entities.Task{Task: "Write report", Deadline: "2026-10-20", Priority: "High"}, "Alice")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Write report", q.Get("text"))
	assert.Equal(t, "20261020/20261021", q.Get("dates"))
	assert.Equal(t, "Assigned to: Alice\nPriority: High\nDependencies: ", q.Get("details"))
}

func TestCalendarURL_UnparsedDeadline(t *testing.T) {
	link := CalendarURL(entities.Task{Deadline: "next sprint"}, "Bob")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("dates"))
	assert.Equal(t, "Meeting Task", u.Query().Get("text"))
}

func TestParseDeadline(t *testing.T) {
	for _, in := range []string{"2026-10-20", "10/20/2026", "Oct 20, 2026", "2026-10-20T09:30:00Z"} {
		d, ok := ParseDeadline(in)
		require.True(t, ok, in)
		assert.Equal(t, "2026-10-20", d.Format("2006-01-02"), in)
	}
	_, ok := ParseDeadline("soon")
	assert.False(t, ok)
}
