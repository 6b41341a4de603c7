package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors of the summarizer.
type Metrics struct {
	Registry *prometheus.Registry

	// Round-trip metrics
	GenerationsTotal   *prometheus.CounterVec
	GenerationSeconds  *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
	ParsedSections     *prometheus.CounterVec

	// Collaborators
	TranscriptionsTotal *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
	MeetingsRecorded    prometheus.Counter

	// HTTP
	RequestsTotal *prometheus.CounterVec
}

// New creates collectors on a fresh registry, so tests and servers never
// share global state.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_generations_total",
				Help: "Text-generation calls by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		GenerationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "summarizer_generation_seconds",
				Help:    "Latency of text-generation calls",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"kind"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_validation_failures_total",
				Help: "Validation issues by kind",
			},
			[]string{"kind"},
		),
		ParsedSections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_parsed_sections_total",
				Help: "Sections recovered from replies, by section and whether it was found",
			},
			[]string{"section", "found"},
		),
		TranscriptionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_transcriptions_total",
				Help: "Transcription requests by outcome",
			},
			[]string{"outcome"},
		),
		ExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_exports_total",
				Help: "Rendered exports by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		MeetingsRecorded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "summarizer_meetings_recorded_total",
				Help: "Meetings recorded in the analytics store",
			},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_http_requests_total",
				Help: "HTTP requests by route and status class",
			},
			[]string{"route", "status"},
		),
	}
}

// ObserveGeneration records one generation call. Safe on a nil receiver.
func (m *Metrics) ObserveGeneration(kind, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(kind, outcome).Inc()
	m.GenerationSeconds.WithLabelValues(kind).Observe(seconds)
}

// ObserveValidation counts issues by kind. Safe on a nil receiver.
func (m *Metrics) ObserveValidation(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ValidationFailures.WithLabelValues(kind).Add(float64(n))
}

// ObserveSection records whether a parsed section came back non-empty.
func (m *Metrics) ObserveSection(section string, found bool) {
	if m == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	m.ParsedSections.WithLabelValues(section, label).Inc()
}

// ObserveTranscription counts one transcription. Safe on a nil receiver.
func (m *Metrics) ObserveTranscription(outcome string) {
	if m == nil {
		return
	}
	m.TranscriptionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveExport counts one export. Safe on a nil receiver.
func (m *Metrics) ObserveExport(format, outcome string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, outcome).Inc()
}

// ObserveMeeting counts one recorded meeting. Safe on a nil receiver.
func (m *Metrics) ObserveMeeting() {
	if m == nil {
		return
	}
	m.MeetingsRecorded.Inc()
}

// ObserveRequest counts one HTTP request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(route, status string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, status).Inc()
}
