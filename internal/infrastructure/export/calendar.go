package export

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const calendarBase = "https://calendar.google.com/calendar/render"

// deadlineLayouts are the date formats recognized in free-form deadlines
var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDeadline reads a deadline as a calendar date
func ParseDeadline(deadline string) (time.Time, bool) {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if d, err := time.Parse(layout, deadline); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// CalendarURL builds a Google Calendar "create event" link for a task. An
// all-day date is set only when the deadline parses as a date.
func CalendarURL(task entities.Task, assignee string) string {
	title := strings.TrimSpace(task.Task)
	if title == "" {
		title = "Meeting Task"
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	if d, ok := ParseDeadline(task.Deadline); ok {
		start := d.Format("20060102")
		end := d.AddDate(0, 0, 1).Format("20060102")
		q.Set("dates", start+"/"+end)
	}
	q.Set("details", fmt.Sprintf("Assigned to: %s\nPriority: %s\nDependencies: %s", assignee, task.Priority, task.Dependencies))

	return calendarBase + "?" + q.Encode()
}
