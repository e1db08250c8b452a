package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/onegreenvn/lecture-post-backend/internal/config"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
)

// Client sends one request to a generative backend and returns the raw text payload.
// An empty string with a nil error means the backend answered without text.
type Client interface {
	Complete(ctx context.Context, req prompt.Request) (string, error)
	Provider() string
	Model() string
}

// NewClient validates cfg and builds the client for the configured provider
func NewClient(cfg config.GenerationConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProviderClient(cfg)
}

// NewProviderClient builds the client for the configured provider without checking
// the credential. The generation service still refuses to dispatch without one.
func NewProviderClient(cfg config.GenerationConfig) (Client, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(cfg, httpClient), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg, httpClient), nil
	case config.ProviderMock:
		return &MockClient{ModelName: cfg.Model}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

// readErrorBody reads at most limit bytes of an error response
func readErrorBody(r io.Reader, limit int64) string {
	body, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}
