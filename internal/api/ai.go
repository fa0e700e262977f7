package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
	"github.com/shrawanc911/HealthSyncInnovators/internal/llm"
	"github.com/shrawanc911/HealthSyncInnovators/internal/prompt"
	"github.com/shrawanc911/HealthSyncInnovators/pkg/api"
)

// AIService is the raw prompt surface kept for the original browser client:
// it wraps the user's symptom text in the fixed instruction templates and
// passes the model's completion back untouched. Normalization happens in
// the caller (or in the intake controller for server-side sessions).
type AIService struct {
	llm llm.Client
}

func NewAIService(client llm.Client) *AIService {
	return &AIService{llm: client}
}

func (s *AIService) AddRoutes(r chi.Router) {
	r.Route("/AI", func(r chi.Router) {
		r.Post("/ask-en", RestHandler(s.followUp(language.English)))
		r.Post("/ask-hi", RestHandler(s.followUp(language.Hindi)))
		r.Post("/gen-en", RestHandler(s.generate(language.English)))
		r.Post("/gen-hi", RestHandler(s.generate(language.Hindi)))
	})
}

func (s *AIService) followUp(lang language.Tag) func(r *http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		req, err := ParseRequest[api.AskRequest](r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(req.Prompt) == "" {
			return nil, CodedErrorf(http.StatusBadRequest, "prompt is required")
		}

		return s.complete(r, prompt.BuildFollowUp(req.Prompt, lang))
	}
}

func (s *AIService) generate(lang language.Tag) func(r *http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		req, err := ParseRequest[api.GenerateRequest](r)
		if err != nil {
			return nil, err
		}
		if len(req.Prompt) == 0 {
			return nil, CodedErrorf(http.StatusBadRequest, "prompt is required")
		}

		return s.complete(r, prompt.BuildTriage(req.Prompt, lang))
	}
}

func (s *AIService) complete(r *http.Request, promptText string) (any, error) {
	out, err := s.llm.Generate(r.Context(), promptText)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "language model service unavailable")
	}

	response := strings.TrimSpace(out)
	if response == "" {
		response = "No response from AI."
	}
	return api.LLMResponse{Response: response}, nil
}
