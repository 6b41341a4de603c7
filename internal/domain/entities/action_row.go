package entities

import "strings"

// ActionRow is one data row of an action-items table, keyed by header name.
// Header order lives in MeetingSummary.ActionHeaders.
type ActionRow map[string]string

// Lookup returns the first non-empty cell whose header matches one of the
// given names, ignoring case and surrounding whitespace.
func (r ActionRow) Lookup(names ...string) string {
	for _, name := range names {
		for header, value := range r {
			if strings.EqualFold(strings.TrimSpace(header), name) && value != "" {
				return value
			}
		}
	}
	return ""
}
