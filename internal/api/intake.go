package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shrawanc911/HealthSyncInnovators/internal/intake"
	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
	"github.com/shrawanc911/HealthSyncInnovators/pkg/api"
)

// IntakeService exposes the server-side dialogue controller. The browser
// drives it with plain text submissions (typed, virtual keyboard, or
// speech-to-text output) and polls the transcript while a request is
// pending.
type IntakeService struct {
	manager *intake.Manager
}

func NewIntakeService(manager *intake.Manager) *IntakeService {
	return &IntakeService{manager: manager}
}

func (s *IntakeService) AddRoutes(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/", RestHandler(s.StartSession))
		r.Get("/{session_id}", RestHandler(s.GetSession))
		r.Post("/{session_id}/messages", RestHandler(s.SubmitMessage))
		r.Post("/{session_id}/generate", RestHandler(s.GenerateTriage))
		r.Post("/{session_id}/language", RestHandler(s.ChangeLanguage))
		r.Delete("/{session_id}", RestHandler(s.EndSession))
	})
}

func (s *IntakeService) StartSession(r *http.Request) (any, error) {
	req, err := ParseRequest[api.StartSessionRequest](r)
	if err != nil {
		return nil, err
	}

	lang := language.Tag(req.Language)
	if !lang.Valid() {
		return nil, CodedErrorf(http.StatusBadRequest, "unsupported language %q", req.Language)
	}

	session := s.manager.Create(lang)
	return api.StartSessionResponse{
		SessionID:  session.ID().String(),
		Stage:      string(session.Stage()),
		Transcript: toAPIMessages(session.Transcript()),
	}, nil
}

func (s *IntakeService) GetSession(r *http.Request) (any, error) {
	session, err := s.session(r)
	if err != nil {
		return nil, err
	}
	return s.state(session, false), nil
}

func (s *IntakeService) SubmitMessage(r *http.Request) (any, error) {
	session, err := s.session(r)
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.SubmitMessageRequest](r)
	if err != nil {
		return nil, err
	}
	if req.Text == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "text is required")
	}

	res := session.Submit(req.Text)
	return s.state(session, res.Mismatch), nil
}

func (s *IntakeService) GenerateTriage(r *http.Request) (any, error) {
	session, err := s.session(r)
	if err != nil {
		return nil, err
	}

	if err := session.Generate(); err != nil {
		switch {
		case errors.Is(err, intake.ErrNoSymptoms):
			return nil, CodedErrorf(http.StatusBadRequest, "no symptoms recorded yet")
		case errors.Is(err, intake.ErrRequestPending):
			return nil, CodedErrorf(http.StatusConflict, "a request is already pending")
		default:
			return nil, err
		}
	}

	return s.state(session, false), nil
}

func (s *IntakeService) ChangeLanguage(r *http.Request) (any, error) {
	session, err := s.session(r)
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.ChangeLanguageRequest](r)
	if err != nil {
		return nil, err
	}

	lang := language.Tag(req.Language)
	if !lang.Valid() {
		return nil, CodedErrorf(http.StatusBadRequest, "unsupported language %q", req.Language)
	}

	session.Reset(lang)
	return s.state(session, false), nil
}

func (s *IntakeService) EndSession(r *http.Request) (any, error) {
	id, err := URLParamUUID(r, "session_id")
	if err != nil {
		return nil, err
	}
	s.manager.Remove(id)
	return nil, nil
}

func (s *IntakeService) session(r *http.Request) (*intake.Session, error) {
	id, err := URLParamUUID(r, "session_id")
	if err != nil {
		return nil, err
	}

	session, ok := s.manager.Get(id)
	if !ok {
		return nil, CodedErrorf(http.StatusNotFound, "session not found")
	}
	return session, nil
}

func (s *IntakeService) state(session *intake.Session, mismatch bool) api.SessionStateResponse {
	return api.SessionStateResponse{
		Stage:      string(session.Stage()),
		Pending:    session.Pending(),
		Mismatch:   mismatch,
		Transcript: toAPIMessages(session.Transcript()),
	}
}

func toAPIMessages(messages []intake.Message) []api.Message {
	out := make([]api.Message, len(messages))
	for i, msg := range messages {
		out[i] = api.Message{Sender: string(msg.Sender), Text: msg.Text}
	}
	return out
}
