package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

func newTestGroq(url string, retries uint64) *GroqClient {
	g := NewGroqClient(&config.GenerationConfig{
		APIKey:     "test-key",
		BaseURL:    url,
		Model:      "test-model",
		MaxRetries: retries,
	})
	g.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return g
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"content": content}}},
	})
}

func TestGenerate_SendsPromptAndParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Model != "test-model" || req.MaxTokens != 800 || req.Temperature != 0.5 {
			t.Fatalf("unexpected params %+v", req)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		writeCompletion(w, "Meeting Summary:\n- ok")
	}))
	defer ts.Close()

	out, err := newTestGroq(ts.URL, 0).Generate(context.Background(), "hello", GenerationParams{MaxTokens: 800, Temperature: 0.5})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "Meeting Summary:\n- ok" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestGenerate_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeCompletion(w, "done")
	}))
	defer ts.Close()

	out, err := newTestGroq(ts.URL, 3).Generate(context.Background(), "p", GenerationParams{})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "done" || atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("got %q after %d calls", out, calls)
	}
}

func TestGenerate_ClientErrorIsPermanent(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestGroq(ts.URL, 5).Generate(context.Background(), "p", GenerationParams{})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("4xx should not be retried, got %d calls", calls)
	}
}

func TestGenerate_EmptyChoicesIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	out, err := newTestGroq(ts.URL, 0).Generate(context.Background(), "p", GenerationParams{})
	if err != nil || out != "" {
		t.Fatalf("expected empty completion, got %q, %v", out, err)
	}
}
