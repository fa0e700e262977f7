package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single completion call. Local inference on CPU is
// slow, so the bound is deliberately long; hitting it is treated as a
// transport error.
const DefaultTimeout = 5 * time.Minute

type Ollama struct {
	client  *resty.Client
	model   string
	timeout time.Duration
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Ollama{
		client:  resty.New().SetBaseURL(baseURL),
		model:   model,
		timeout: timeout,
	}
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var result ollamaGenerateResponse
	res, err := o.client.R().
		SetContext(ctx).
		SetBody(ollamaGenerateRequest{Model: o.model, Prompt: prompt, Stream: false}).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		slog.Error("ollama error: generate call failed", "model", o.model, "error", err)
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	if res.IsError() {
		slog.Error("ollama error: generate returned error status", "model", o.model, "status", res.StatusCode())
		return "", fmt.Errorf("ollama generation failed: status %d", res.StatusCode())
	}

	return result.Response, nil
}

// Ping checks that the Ollama server is reachable. Used by the startup
// supervisor, not on the request path.
func (o *Ollama) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := o.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return fmt.Errorf("ollama unreachable: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("ollama unreachable: status %d", res.StatusCode())
	}
	return nil
}
