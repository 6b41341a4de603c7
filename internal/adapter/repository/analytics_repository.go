package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

const defaultAnalyticsPrefix = "meeting-summarizer:analytics"

type analyticsRepository struct {
	client redis.Cmdable
	prefix string
}

// NewAnalyticsRepository stores counters in two Redis hashes under prefix:
// "<prefix>:frequency" (weekday -> count) and "<prefix>:completion".
func NewAnalyticsRepository(client redis.Cmdable, prefix string) repositories.AnalyticsStore {
	if prefix == "" {
		prefix = defaultAnalyticsPrefix
	}
	return &analyticsRepository{client: client, prefix: prefix}
}

func (r *analyticsRepository) frequencyKey() string  { return r.prefix + ":frequency" }
func (r *analyticsRepository) completionKey() string { return r.prefix + ":completion" }

// RecordMeeting increments the weekday counter atomically
func (r *analyticsRepository) RecordMeeting(ctx context.Context, at time.Time) error {
	field := strconv.Itoa(int(at.Weekday()))
	if err := r.client.HIncrBy(ctx, r.frequencyKey(), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record meeting: %w", err)
	}
	return nil
}

func (r *analyticsRepository) Frequency(ctx context.Context) (entities.WeeklyFrequency, error) {
	var freq entities.WeeklyFrequency

	values, err := r.client.HGetAll(ctx, r.frequencyKey()).Result()
	if err != nil {
		return freq, fmt.Errorf("failed to read meeting frequency: %w", err)
	}
	for field, raw := range values {
		day, err := strconv.Atoi(field)
		if err != nil || day < 0 || day > 6 {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return freq, fmt.Errorf("corrupt frequency counter %s=%q: %w", field, raw, err)
		}
		freq[day] = n
	}
	return freq, nil
}

func (r *analyticsRepository) SaveCompletion(ctx context.Context, stats entities.CompletionStats) error {
	err := r.client.HSet(ctx, r.completionKey(),
		"completed", stats.Completed,
		"total", stats.Total,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save completion stats: %w", err)
	}
	return nil
}

func (r *analyticsRepository) Completion(ctx context.Context) (entities.CompletionStats, bool, error) {
	var stats entities.CompletionStats

	values, err := r.client.HGetAll(ctx, r.completionKey()).Result()
	if err != nil {
		return stats, false, fmt.Errorf("failed to read completion stats: %w", err)
	}
	if len(values) == 0 {
		return stats, false, nil
	}

	if stats.Completed, err = strconv.Atoi(values["completed"]); err != nil {
		return stats, false, fmt.Errorf("corrupt completion counter: %w", err)
	}
	if stats.Total, err = strconv.Atoi(values["total"]); err != nil {
		return stats, false, fmt.Errorf("corrupt completion total: %w", err)
	}
	return stats, true, nil
}
