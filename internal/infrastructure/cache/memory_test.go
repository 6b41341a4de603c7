package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func TestMemoryStore_ConcurrentRecord(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	sunday := time.Date(2026, time.October, 11, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.RecordMeeting(ctx, sunday)
		}()
	}
	wg.Wait()

	freq, err := store.Frequency(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, freq[time.Sunday])
	assert.Equal(t, 50, freq.Total())
}

func TestMemoryStore_Completion(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Completion(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveCompletion(ctx, entities.CompletionStats{Completed: 1, Total: 4}))
	stats, ok, err := store.Completion(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, stats.Incomplete())
}
