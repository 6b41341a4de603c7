package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// AnalyticsStore keeps the cross-session counters behind the dashboard
type AnalyticsStore interface {
	// Meeting frequency, indexed Sunday..Saturday
	RecordMeeting(ctx context.Context, at time.Time) error
	Frequency(ctx context.Context) (entities.WeeklyFrequency, error)

	// Completion of the most recently submitted notes. ok is false until a
	// value has been saved.
	SaveCompletion(ctx context.Context, stats entities.CompletionStats) error
	Completion(ctx context.Context) (stats entities.CompletionStats, ok bool, err error)
}
