package summary

import (
	"context"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
)

// Generation parameters sent with each kind of prompt.
const (
	SummaryMaxTokens      = 800
	SuggestionMaxTokens   = 150
	GenerationTemperature = 0.5
)

// Generator returns a single completion for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string, params pkgai.GenerationParams) (string, error)
}

// Transcriber turns audio into transcript text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// MeetingRecorder counts generated summaries for analytics
type MeetingRecorder interface {
	RecordMeeting(ctx context.Context) error
}

// SummaryResult is the outcome of a full round-trip
type SummaryResult struct {
	Prompt     string                   `json:"prompt"`
	Raw        string                   `json:"raw"`
	Parsed     *entities.MeetingSummary `json:"parsed"`
	Structured *entities.MeetingSummary `json:"structured"`
}

// SuggestionResult holds the raw reply and the items found in it
type SuggestionResult struct {
	Prompt     string                   `json:"prompt"`
	Raw        string                   `json:"raw"`
	Items      []string                 `json:"items"`
	Transcript *entities.MeetingSummary `json:"transcript,omitempty"`
}

// Options configures a Service. Nil collaborators disable the operations that
// need them.
type Options struct {
	Generator   Generator
	Transcriber Transcriber
	Recorder    MeetingRecorder
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	Model       string
}

// Service runs the compose, generate and parse round-trip
type Service struct {
	parser      *Parser
	generator   Generator
	transcriber Transcriber
	recorder    MeetingRecorder
	metrics     *metrics.Metrics
	logger      *zap.Logger
	model       string
}

// NewService creates a new summary service
func NewService(opts Options) *Service {
	return &Service{
		parser:      NewParser(),
		generator:   opts.Generator,
		transcriber: opts.Transcriber,
		recorder:    opts.Recorder,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
		model:       opts.Model,
	}
}

// SummaryParams returns the parameters of a summary request
func (s *Service) SummaryParams() pkgai.GenerationParams {
	return pkgai.GenerationParams{Model: s.model, MaxTokens: SummaryMaxTokens, Temperature: GenerationTemperature}
}

// SuggestionParams returns the parameters of a suggestion request
func (s *Service) SuggestionParams() pkgai.GenerationParams {
	return pkgai.GenerationParams{Model: s.model, MaxTokens: SuggestionMaxTokens, Temperature: GenerationTemperature}
}

// Validate checks action groups and counts the issues found
func (s *Service) Validate(groups []entities.ActionGroup) Report {
	report := Validate(groups)
	for _, kind := range []IssueKind{IssueMissingAssignee, IssueMissingTaskName, IssueDuplicateTask} {
		s.metrics.ObserveValidation(string(kind), report.Count(kind))
	}
	return report
}

// ComposePrompt validates notes and returns the summary prompt without
// calling the generator.
func (s *Service) ComposePrompt(m *entities.MeetingSummary) (string, error) {
	if m == nil {
		return "", apperrors.ErrInvalidPayload()
	}
	if err := s.Validate(m.ActionGroups).Err(); err != nil {
		return "", err
	}
	return ComposeSummaryPrompt(m), nil
}

// Parse reads a reply or object with the given mode
func (s *Service) Parse(input any, mode Mode) (*entities.MeetingSummary, error) {
	m, err := s.parser.ParseWithMode(input, mode)
	if err != nil {
		return nil, apperrors.ErrUnsupportedInput(err)
	}
	return m, nil
}

// GenerateSummary validates the notes, asks the generator for a summary and
// parses the reply. Validation failures stop before any external call.
func (s *Service) GenerateSummary(ctx context.Context, m *entities.MeetingSummary) (*SummaryResult, error) {
	prompt, err := s.ComposePrompt(m)
	if err != nil {
		if s.logger != nil {
			s.logger.Info("⚠️ Meeting notes rejected", zap.Error(err))
		}
		return nil, err
	}
	if s.generator == nil {
		return nil, apperrors.ErrAIServiceUnavailable("generation")
	}

	if s.logger != nil {
		s.logger.Info("🤖 Generating summary",
			zap.Int("prompt_chars", len(prompt)),
			zap.Int("assignees", len(m.ActionGroups)),
		)
	}

	started := time.Now()
	raw, err := s.generator.Generate(ctx, prompt, s.SummaryParams())
	if err != nil {
		s.metrics.ObserveGeneration("summary", metrics.OutcomeFailure, time.Since(started).Seconds())
		if s.logger != nil {
			s.logger.Error("❌ Summary generation failed", zap.Error(err))
		}
		return nil, apperrors.ErrAISummaryFailed(err)
	}
	s.metrics.ObserveGeneration("summary", metrics.OutcomeSuccess, time.Since(started).Seconds())

	parsed, err := s.parser.ParseWithMode(raw, ModeFreeText)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	structured, err := s.parser.ParseWithMode(m, ModeStructured)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	s.observeSections(parsed)

	if s.recorder != nil {
		if err := s.recorder.RecordMeeting(ctx); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to record meeting", zap.Error(err))
		}
		s.metrics.ObserveMeeting()
	}

	if s.logger != nil {
		s.logger.Info("✅ Summary generated",
			zap.Int("raw_chars", len(raw)),
			zap.Int("overview", len(parsed.Overview)),
			zap.Int("decisions", len(parsed.Decisions)),
			zap.Int("action_rows", len(parsed.ActionItems)),
			zap.Int("tags", len(parsed.Tags)),
		)
	}

	return &SummaryResult{
		Prompt:     prompt,
		Raw:        raw,
		Parsed:     parsed,
		Structured: structured,
	}, nil
}

// SuggestActions asks for follow-up actions over notes or a transcript.
// Transcript sources are also parsed in transcript mode.
func (s *Service) SuggestActions(ctx context.Context, src Source) (*SuggestionResult, error) {
	if src.IsText() && strings.TrimSpace(src.Text) == "" {
		return nil, apperrors.ErrMissingText()
	}
	if s.generator == nil {
		return nil, apperrors.ErrAIServiceUnavailable("generation")
	}

	prompt := ComposeSuggestionPrompt(src)

	started := time.Now()
	raw, err := s.generator.Generate(ctx, prompt, s.SuggestionParams())
	if err != nil {
		s.metrics.ObserveGeneration("suggestion", metrics.OutcomeFailure, time.Since(started).Seconds())
		if s.logger != nil {
			s.logger.Error("❌ Suggestion generation failed", zap.Error(err))
		}
		return nil, apperrors.ErrAISuggestionFailed(err)
	}
	s.metrics.ObserveGeneration("suggestion", metrics.OutcomeSuccess, time.Since(started).Seconds())

	result := &SuggestionResult{
		Prompt: prompt,
		Raw:    raw,
		Items:  ExtractSuggestions(raw),
	}
	if src.IsText() {
		transcript, err := s.parser.ParseWithMode(src.Text, ModeTranscript)
		if err == nil {
			result.Transcript = transcript
		}
	}

	if s.logger != nil {
		s.logger.Info("💡 Suggestions generated",
			zap.Bool("from_text", src.IsText()),
			zap.Int("items", len(result.Items)),
		)
	}
	return result, nil
}

// Transcribe delegates to the transcription client
func (s *Service) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	if s.transcriber == nil {
		return "", apperrors.ErrAIServiceUnavailable("transcription")
	}

	text, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		s.metrics.ObserveTranscription(metrics.OutcomeFailure)
		if s.logger != nil {
			s.logger.Error("❌ Transcription failed", zap.Error(err))
		}
		return "", apperrors.ErrAITranscriptionFailed(err)
	}
	s.metrics.ObserveTranscription(metrics.OutcomeSuccess)

	if s.logger != nil {
		s.logger.Info("🎙️ Transcription completed", zap.Int("chars", len(text)))
	}
	return text, nil
}

func (s *Service) observeSections(m *entities.MeetingSummary) {
	s.metrics.ObserveSection("overview", len(m.Overview) > 0)
	s.metrics.ObserveSection("decisions", len(m.Decisions) > 0)
	s.metrics.ObserveSection("action_items", len(m.ActionItems) > 0)
	s.metrics.ObserveSection("tags", len(m.Tags) > 0)
}
