package triage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// minQuestions is the smallest follow-up list the templates ask for; a
// shorter (non-sentinel) list is structurally valid but incomplete.
const minQuestions = 2

// ParseError reports that LLM output could not be structurally validated.
// Cleaned carries the fence-stripped text so callers can fall back to
// displaying it verbatim instead of losing the response.
type ParseError struct {
	Cleaned string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrIncomplete marks a structurally valid response carrying fewer fields
// than expected. The partial result is still returned alongside it.
var ErrIncomplete = errors.New("model response incomplete")

// StripCodeFence removes a surrounding triple-backtick fence, with or
// without a "json" language tag, and trims whitespace. Text without a fence
// is returned trimmed, so normalization of already-clean JSON is a no-op.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(text, "```json"):
		text = strings.TrimPrefix(text, "```json")
	case strings.HasPrefix(text, "```"):
		text = strings.TrimPrefix(text, "```")
	default:
		return text
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ParseTriage normalizes raw LLM text into a TriageResult. Malformed JSON
// or a missing key yields a *ParseError; there is no partial triage result.
func ParseTriage(raw string) (TriageResult, error) {
	cleaned := StripCodeFence(raw)

	var fields map[string]string
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return TriageResult{}, &ParseError{Cleaned: cleaned, Err: err}
	}

	for _, key := range []string{"category", "reason", "doctor", "remedy"} {
		if fields[key] == "" {
			return TriageResult{}, &ParseError{Cleaned: cleaned, Err: fmt.Errorf("missing %q field", key)}
		}
	}

	return TriageResult{
		Category: fields["category"],
		Reason:   fields["reason"],
		Doctor:   fields["doctor"],
		Remedy:   fields["remedy"],
	}, nil
}

// ParseFollowUp normalizes raw LLM text into a FollowUpResult. A response
// with fewer questions than the templates request returns the partial list
// together with ErrIncomplete so the caller can still display what exists.
func ParseFollowUp(raw string) (FollowUpResult, error) {
	cleaned := StripCodeFence(raw)

	var result FollowUpResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return FollowUpResult{}, &ParseError{Cleaned: cleaned, Err: err}
	}

	if result.Questions == nil {
		return FollowUpResult{}, &ParseError{Cleaned: cleaned, Err: errors.New(`missing "follow_up_questions" field`)}
	}

	if !result.NoFurtherQuestions() && len(result.Questions) < minQuestions {
		return result, ErrIncomplete
	}
	return result, nil
}
