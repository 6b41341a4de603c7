package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

func setupAnalytics(t *testing.T) (repositories.AnalyticsStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAnalyticsRepository(client, "test"), mr
}

func TestAnalyticsRepository_Frequency(t *testing.T) {
	store, mr := setupAnalytics(t)
	ctx := context.Background()

	monday := time.Date(2026, time.October, 12, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.RecordMeeting(ctx, monday))
	require.NoError(t, store.RecordMeeting(ctx, monday.Add(7*24*time.Hour)))
	require.NoError(t, store.RecordMeeting(ctx, monday.Add(-24*time.Hour)))

	freq, err := store.Frequency(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.WeeklyFrequency{1, 2, 0, 0, 0, 0, 0}, freq)
	assert.Equal(t, "2", mr.HGet("test:frequency", "1"))
}

func TestAnalyticsRepository_FrequencyEmpty(t *testing.T) {
	store, _ := setupAnalytics(t)

	freq, err := store.Frequency(context.Background())
	require.NoError(t, err)
	assert.Zero(t, freq.Total())
}

func TestAnalyticsRepository_Completion(t *testing.T) {
	store, _ := setupAnalytics(t)
	ctx := context.Background()

	t.Run("missing until saved", func(t *testing.T) {
		_, ok, err := store.Completion(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.SaveCompletion(ctx, entities.CompletionStats{Completed: 3, Total: 5}))

		stats, ok, err := store.Completion(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, entities.CompletionStats{Completed: 3, Total: 5}, stats)
	})
}

func TestAnalyticsRepository_RedisDown(t *testing.T) {
	store, mr := setupAnalytics(t)
	mr.Close()

	err := store.RecordMeeting(context.Background(), time.Now())
	assert.Error(t, err)
}
