package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

const reply = "Meeting Summary:\n- Reviewed budget\n" +
	"Action Items:\n| Task | Assignee |\n|---|---|\n| Write report | Alice |\n" +
	"Tags: #budget"

type stubGenerator struct{ reply string }

func (s stubGenerator) Generate(context.Context, string, pkgai.GenerationParams) (string, error) {
	return s.reply, nil
}

type stubTranscriber struct{ text string }

func (s stubTranscriber) Transcribe(_ context.Context, audio io.Reader) (string, error) {
	_, err := io.ReadAll(audio)
	return s.text, err
}

type envelope struct {
	Code    interface{}       `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Info    string            `json:"info"`
	Details map[string]string `json:"details"`
}

func newTestServer(t *testing.T, opts summary.Options) *echo.Echo {
	t.Helper()

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	m := metrics.New()
	analyticsSvc := analytics.NewService(cache.NewMemoryStore(), zap.NewNop())
	opts.Recorder = analyticsSvc
	opts.Metrics = m
	svc := summary.NewService(opts)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.Use(httpmw.Metrics(m))

	NewRouter(cfg, m,
		NewSummaryHandler(svc, nil),
		NewReportHandler(m, nil),
		NewTranscriptionHandler(svc, 1<<20, nil),
		NewAnalyticsHandler(analyticsSvc, nil),
		map[string]string{"analytics": "memory"},
	).Setup(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

const duplicateNotes = `{"actionGroups":[{"assignee":"Alice","tasks":[
	{"id":"t1","task":"Write report"},{"id":"t2","task":" write REPORT"}]}]}`

func TestValidateEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/validate", duplicateNotes)
	require.Equal(t, http.StatusOK, rec.Code)

	var report summary.Report
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.False(t, report.OK)
	assert.Equal(t, summary.MsgDuplicateTask, report.Errors["t2"])
}

func TestPromptEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	t.Run("rejects duplicates", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/prompt", duplicateNotes)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Code)
		assert.Equal(t, summary.MsgDuplicateTask, env.Details["t2"])
	})

	t.Run("html notes", func(t *testing.T) {
		body := `{"format":"html","overview":["<ul><li>Reviewed <strong>budget</strong></li></ul>"]}`
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/prompt", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Contains(t, data.Prompt, "📋 Meeting Overview:\nReviewed budget")
	})

	t.Run("unknown format", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/prompt", `{"format":"docx"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, env.Details, "format")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/prompt", `{"overview":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PAYLOAD", env.Code)
	})
}

func TestGenerateEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{Generator: stubGenerator{reply: reply}})

	body := `{"overview":["Reviewed budget"],"actionGroups":[{"assignee":"Alice","tasks":[{"id":"a1","task":"Write report"}]}]}`
	rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/generate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result summary.SummaryResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, reply, result.Raw)
	assert.Equal(t, []string{"budget"}, result.Parsed.Tags)
	require.Len(t, result.Parsed.ActionGroups, 1)
	assert.Equal(t, "Alice", result.Parsed.ActionGroups[0].Assignee)

	_, freqEnv := doJSON(t, e, http.MethodGet, "/v1/analytics/frequency", "")
	var freq FrequencyResponse
	require.NoError(t, json.Unmarshal(freqEnv.Data, &freq))
	assert.Equal(t, 1, freq.Total)
	assert.Equal(t, "Sunday", freq.Days[0])
}

func TestGenerateEndpoint_NoGenerator(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/generate", `{"overview":["x"]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "AI_SERVICE_UNAVAILABLE", env.Code)
	assert.Equal(t, "generation", env.Details["service"])
}

func TestParseEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantTags []string
	}{
		{name: "reply string", body: `{"input":"Tags: #alpha, #beta"}`, wantCode: http.StatusOK, wantTags: []string{"alpha", "beta"}},
		{name: "notes object", body: `{"input":{"tags":["#gamma"]}}`, wantCode: http.StatusOK, wantTags: []string{"gamma"}},
		{name: "forced mode mismatch", body: `{"mode":"structured","input":"Tags: #a"}`, wantCode: http.StatusBadRequest},
		{name: "unknown mode", body: `{"mode":"yaml","input":"x"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "missing input", body: `{}`, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/parse", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantTags == nil {
				return
			}
			var parsed struct {
				Tags []string `json:"tags"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &parsed))
			assert.Equal(t, tt.wantTags, parsed.Tags)
		})
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{Generator: stubGenerator{reply: "1. Book a review\n2. Send notes"}})

	rec, env := doJSON(t, e, http.MethodPost, "/v1/suggestions", `{"text":"We discussed the launch"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result summary.SuggestionResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, []string{"Book a review", "Send notes"}, result.Items)

	rec, _ = doJSON(t, e, http.MethodPost, "/v1/suggestions", `{"notes":{"overview":["Launch"]}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/v1/suggestions", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTranscribeEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{Transcriber: stubTranscriber{text: "Overview:\n- Kickoff"}})

	t.Run("upload", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("file", "meeting.mp3")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake audio"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/transcribe", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		var data struct {
			Text       string `json:"text"`
			Transcript struct {
				Overview []string `json:"overview"`
			} `json:"transcript"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Overview:\n- Kickoff", data.Text)
		assert.Equal(t, []string{"Kickoff"}, data.Transcript.Overview)
	})

	t.Run("no file", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/transcribe", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_FILE", env.Code)
	})
}

func TestReportEndpoints(t *testing.T) {
	e := newTestServer(t, summary.Options{})
	groups := `{"actionGroups":[{"assignee":"Alice","tasks":[{"id":"a1","task":"Write report","deadline":"2026-10-20"}]}]}`

	t.Run("pdf", func(t *testing.T) {
		body := `{"overview":["Reviewed budget"],"suggestions":["Book a review"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/summaries/export/pdf", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("emails", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/emails", groups)
		require.Equal(t, http.StatusOK, rec.Code)

		var emails []struct {
			Assignee string `json:"assignee"`
			Email    string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &emails))
		require.Len(t, emails, 1)
		assert.Contains(t, emails[0].Email, "Dear Alice,")
	})

	t.Run("emails need groups", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/v1/summaries/emails", `{}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("calendar", func(t *testing.T) {
		rec, env := doJSON(t, e, http.MethodPost, "/v1/summaries/calendar", groups)
		require.Equal(t, http.StatusOK, rec.Code)

		var links []CalendarLink
		require.NoError(t, json.Unmarshal(env.Data, &links))
		require.Len(t, links, 1)
		assert.Contains(t, links[0].URL, "dates=20261020%2F20261021")
	})
}

func TestDashboardEndpoint(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	body := `{"actionGroups":[
		{"assignee":"Alice","tasks":[{"task":"a","completed":true},{"task":"b"}]},
		{"assignee":"Bob","tasks":[{"task":"c"}]}]}`
	rec, env := doJSON(t, e, http.MethodPost, "/v1/analytics/dashboard", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var d analytics.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, []analytics.Workload{{Assignee: "Alice", Tasks: 2}, {Assignee: "Bob", Tasks: 1}}, d.Workloads)
	assert.Equal(t, 1, d.Completion.Completed)
	assert.Equal(t, 3, d.Completion.Total)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestServer(t, summary.Options{})

	rec, _ := doJSON(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	e.ServeHTTP(metricsRec, req)
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `route="/health"`)
}
