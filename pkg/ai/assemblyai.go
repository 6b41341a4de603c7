package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// ErrEmptyTranscript is returned when a completed transcript carries no text
var ErrEmptyTranscript = errors.New("assemblyai returned an empty transcript")

// AssemblyAIClient uploads audio and waits for its transcript
type AssemblyAIClient struct {
	apiKey string
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}
	return &AssemblyAIClient{
		apiKey: apiKey,
		client: aai.NewClientWithOptions(opts...),
	}
}

// Configured reports whether an API key is available
func (c *AssemblyAIClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Transcribe uploads audio and blocks until AssemblyAI finishes, returning
// the transcript text.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	return transcriptText(transcript)
}

// transcriptText maps a finished transcript to its text or an error.
func transcriptText(t aai.Transcript) (string, error) {
	if t.Status == aai.TranscriptStatusError {
		return "", fmt.Errorf("assemblyai transcript %s failed: %s", aai.ToString(t.ID), aai.ToString(t.Error))
	}
	text := aai.ToString(t.Text)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}
