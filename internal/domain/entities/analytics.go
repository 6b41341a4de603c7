package entities

import "time"

// WeeklyFrequency counts meetings per weekday, indexed by time.Weekday
// (Sunday = 0).
type WeeklyFrequency [7]int

// Add increments the counter for the weekday of t.
func (f *WeeklyFrequency) Add(t time.Time) {
	f[t.Weekday()]++
}

// Total returns the number of recorded meetings.
func (f WeeklyFrequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// CompletionStats tracks how many named tasks are marked completed
type CompletionStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Incomplete returns the number of tasks still open, never negative.
func (c CompletionStats) Incomplete() int {
	if c.Total < c.Completed {
		return 0
	}
	return c.Total - c.Completed
}
