package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration("summary", OutcomeSuccess, 0.3)
	m.ObserveGeneration("summary", OutcomeSuccess, 0.7)
	m.ObserveGeneration("suggestion", OutcomeFailure, 1.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("summary", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("suggestion", OutcomeFailure)))
}

func TestObserveValidation_IgnoresZero(t *testing.T) {
	m := New()
	m.ObserveValidation("DuplicateTask", 0)
	m.ObserveValidation("DuplicateTask", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("DuplicateTask")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGeneration("summary", OutcomeSuccess, 1)
		m.ObserveSection("tags", true)
		m.ObserveMeeting()
		m.ObserveRequest("/health", "2xx")
	})
}

func TestRegistryIsIsolated(t *testing.T) {
	a, b := New(), New()
	a.ObserveMeeting()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.MeetingsRecorded))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.MeetingsRecorded))
}
