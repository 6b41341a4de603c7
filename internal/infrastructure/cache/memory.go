package cache

import (
	"context"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

var _ repositories.AnalyticsStore = (*MemoryStore)(nil)

// MemoryStore is an in-process AnalyticsStore. Counters are lost on restart.
type MemoryStore struct {
	mu            sync.RWMutex
	frequency     entities.WeeklyFrequency
	completion    entities.CompletionStats
	hasCompletion bool
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// RecordMeeting counts a meeting on the weekday of at
func (ms *MemoryStore) RecordMeeting(_ context.Context, at time.Time) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.frequency.Add(at)
	return nil
}

// Frequency returns a copy of the weekday counters
func (ms *MemoryStore) Frequency(_ context.Context) (entities.WeeklyFrequency, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return ms.frequency, nil
}

// SaveCompletion replaces the stored completion stats
func (ms *MemoryStore) SaveCompletion(_ context.Context, stats entities.CompletionStats) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.completion = stats
	ms.hasCompletion = true
	return nil
}

// Completion returns the stored stats, if any
func (ms *MemoryStore) Completion(_ context.Context) (entities.CompletionStats, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return ms.completion, ms.hasCompletion, nil
}
