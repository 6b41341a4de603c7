package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

const (
	defaultGroqURL   = "https://api.groq.com"
	defaultGroqModel = "llama-3.1-8b-instant"
)

// GenerationParams are sent with every completion request. A zero Model uses
// the client default.
type GenerationParams struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// StatusError is a non-2xx reply from an AI service
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

// Transient reports whether retrying may succeed
func (e *StatusError) Transient() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// GroqClient is a minimal client for Groq's OpenAI-compatible chat API
type GroqClient struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries uint64
	client     *http.Client
	newBackOff func() backoff.BackOff
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GenerationConfig) *GroqClient {
	g := &GroqClient{
		baseURL:    defaultGroqURL,
		model:      defaultGroqModel,
		maxRetries: 3,
		client:     &http.Client{Timeout: 30 * time.Second},
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	if cfg != nil {
		g.apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			g.baseURL = cfg.BaseURL
		}
		if cfg.Model != "" {
			g.model = cfg.Model
		}
		if cfg.Timeout > 0 {
			g.client.Timeout = cfg.Timeout
		}
		g.maxRetries = cfg.MaxRetries
	}
	if g.apiKey == "" {
		g.apiKey = os.Getenv("GROQ_API_KEY")
	}
	if cfg == nil {
		if base := os.Getenv("GROQ_API_URL"); base != "" {
			g.baseURL = base
		}
	}
	return g
}

// Configured reports whether an API key is available
func (g *GroqClient) Configured() bool {
	return g != nil && g.apiKey != ""
}

// ChatMessage is one message of a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends prompt as a single user message and returns the first
// completion. Transport errors, 429 and 5xx replies are retried with
// exponential backoff bounded by ctx; other 4xx replies fail at once. An empty
// completion is returned as "" without error.
func (g *GroqClient) Generate(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	model := params.Model
	if model == "" {
		model = g.model
	}
	body, err := json.Marshal(ChatRequest{
		Model:       model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(g.newBackOff(), g.maxRetries), ctx)
	return backoff.RetryWithData(func() (string, error) {
		content, err := g.complete(ctx, body)
		if err == nil {
			return content, nil
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Transient() {
			return "", backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}
		return "", err
	}, policy)
}

func (g *GroqClient) complete(ctx context.Context, body []byte) (string, error) {
	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{Service: "groq", StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", nil
	}
	return cr.Choices[0].Message.Content, nil
}
