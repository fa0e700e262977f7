// Package llm wraps the locally hosted text-completion service. The service
// is opaque: given a prompt it returns best-effort text with no structural
// guarantees and potentially minutes of latency, so callers bound every call
// with a long timeout and validate the output themselves.
package llm

import "context"

// Client is a plain text-completion boundary.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
