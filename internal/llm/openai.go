package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI targets any OpenAI-compatible chat-completions runtime (vLLM,
// llama.cpp server, the hosted API). The prompt templates carry all of the
// instructions, so everything goes through a single user message.
type OpenAI struct {
	client  openai.Client
	model   string
	temp    float64
	timeout time.Duration
}

func NewOpenAI(baseURL, model string, temp float64, timeout time.Duration) *OpenAI {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var opts []option.RequestOption
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client:  openai.NewClient(opts...),
		model:   model,
		temp:    temp,
		timeout: timeout,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:       o.model,
		Temperature: openai.Float(o.temp),
	})
	if err != nil {
		slog.Error("openai error: chat completions failed", "model", o.model, "error", err)
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("openai generation failed: empty choices")
	}

	return res.Choices[0].Message.Content, nil
}
