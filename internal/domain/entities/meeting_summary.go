package entities

// MeetingSummary is the canonical model shared by prompt composition and
// response parsing. Empty slices mean "not specified".
type MeetingSummary struct {
	Overview     []string      `json:"overview"`
	Metrics      []string      `json:"metrics"`
	Decisions    []string      `json:"decisions"`
	ActionGroups []ActionGroup `json:"actionGroups"`
	NextMeeting  []string      `json:"nextMeeting"`
	Tags         []string      `json:"tags"`

	// ActionItems and ActionHeaders hold the markdown table recovered from a
	// free-text reply. Structured input leaves them empty.
	ActionItems   []ActionRow `json:"actionItems"`
	ActionHeaders []string    `json:"actionHeaders,omitempty"`
}

// NewMeetingSummary returns a summary with every sequence initialized, so
// JSON output always carries [] rather than null.
func NewMeetingSummary() *MeetingSummary {
	return &MeetingSummary{
		Overview:     []string{},
		Metrics:      []string{},
		Decisions:    []string{},
		ActionGroups: []ActionGroup{},
		NextMeeting:  []string{},
		Tags:         []string{},
		ActionItems:  []ActionRow{},
	}
}

// IsEmpty reports whether no section carries any content.
func (m *MeetingSummary) IsEmpty() bool {
	if m == nil {
		return true
	}
	return len(m.Overview) == 0 &&
		len(m.Metrics) == 0 &&
		len(m.Decisions) == 0 &&
		len(m.ActionGroups) == 0 &&
		len(m.NextMeeting) == 0 &&
		len(m.Tags) == 0 &&
		len(m.ActionItems) == 0
}

// Next meeting labels, in render order.
const (
	NextMeetingDate      = "Date"
	NextMeetingTime      = "Time"
	NextMeetingLocation  = "Location"
	NextMeetingAgenda    = "Agenda"
	NextMeetingAttendees = "Attendees"
)

// NextMeetingInfo is the editable form of the next-meeting block.
type NextMeetingInfo struct {
	Date      string `json:"date" mapstructure:"date"`
	Time      string `json:"time" mapstructure:"time"`
	Location  string `json:"location" mapstructure:"location"`
	Agenda    string `json:"agenda" mapstructure:"agenda"`
	Attendees string `json:"attendees" mapstructure:"attendees"`
}

// Lines renders the filled-in fields as labeled lines ("Date: ...").
func (n NextMeetingInfo) Lines() []string {
	fields := []struct {
		label string
		value string
	}{
		{NextMeetingDate, n.Date},
		{NextMeetingTime, n.Time},
		{NextMeetingLocation, n.Location},
		{NextMeetingAgenda, n.Agenda},
		{NextMeetingAttendees, n.Attendees},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, f.label+": "+f.value)
	}
	return lines
}
