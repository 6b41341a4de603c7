package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// Workload is the number of named tasks assigned to one person
type Workload struct {
	Assignee string `json:"assignee"`
	Tasks    int    `json:"tasks"`
}

// Dashboard is the data behind the analytics view
type Dashboard struct {
	Workloads  []Workload               `json:"workloads"`
	Completion entities.CompletionStats `json:"completion"`
	Frequency  entities.WeeklyFrequency `json:"frequency"`
}

// Workloads counts named tasks per assignee in first-seen order. Groups
// with a blank assignee are skipped; repeated assignees are summed.
func Workloads(groups []entities.ActionGroup) []Workload {
	out := make([]Workload, 0, len(groups))
	index := make(map[string]int, len(groups))
	for _, g := range groups {
		name := strings.TrimSpace(g.Assignee)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Workload{Assignee: name})
		}
		out[i].Tasks += g.TaskCount()
	}
	return out
}

// ComputeCompletion counts completed tasks among tasks that carry a name
func ComputeCompletion(groups []entities.ActionGroup) entities.CompletionStats {
	var stats entities.CompletionStats
	for _, g := range groups {
		for _, t := range g.Tasks {
			if t.Task == "" {
				continue
			}
			stats.Total++
			if t.Completed {
				stats.Completed++
			}
		}
	}
	return stats
}

// Service reads and updates the analytics store
type Service struct {
	store  repositories.AnalyticsStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates an analytics service. A nil store makes every call fail
// with ErrAnalyticsUnavailable.
func NewService(store repositories.AnalyticsStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// RecordMeeting counts a meeting held now
func (s *Service) RecordMeeting(ctx context.Context) error {
	if s.store == nil {
		return usecaseErrors.ErrAnalyticsUnavailable
	}
	return s.store.RecordMeeting(ctx, s.now())
}

// Frequency returns meetings per weekday
func (s *Service) Frequency(ctx context.Context) (entities.WeeklyFrequency, error) {
	if s.store == nil {
		return entities.WeeklyFrequency{}, usecaseErrors.ErrAnalyticsUnavailable
	}
	return s.store.Frequency(ctx)
}

// Dashboard computes workloads and completion for groups, saves the
// completion and returns it with the stored frequency. With no groups the
// last saved completion is returned instead.
func (s *Service) Dashboard(ctx context.Context, groups []entities.ActionGroup) (*Dashboard, error) {
	if s.store == nil {
		return nil, usecaseErrors.ErrAnalyticsUnavailable
	}

	d := &Dashboard{Workloads: Workloads(groups)}

	if len(groups) > 0 {
		d.Completion = ComputeCompletion(groups)
		if err := s.store.SaveCompletion(ctx, d.Completion); err != nil {
			return nil, fmt.Errorf("failed to save completion: %w", err)
		}
	} else {
		stats, _, err := s.store.Completion(ctx)
		if err != nil {
			return nil, err
		}
		d.Completion = stats
	}

	freq, err := s.store.Frequency(ctx)
	if err != nil {
		return nil, err
	}
	d.Frequency = freq

	if s.logger != nil {
		s.logger.Debug("📊 Dashboard computed",
			zap.Int("assignees", len(d.Workloads)),
			zap.Int("tasks_total", d.Completion.Total),
			zap.Int("meetings_total", freq.Total()),
		)
	}
	return d, nil
}
