package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shrawanc911/HealthSyncInnovators/internal/database"
	"github.com/shrawanc911/HealthSyncInnovators/internal/intake"
	pkgapi "github.com/shrawanc911/HealthSyncInnovators/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// gatedLLM blocks each Generate call until released, so tests can observe
// the pending state deterministically.
type gatedLLM struct {
	response string
	gate     chan struct{}
}

func (g *gatedLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if g.gate != nil {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.response, nil
}

func newIntakeRouter(t *testing.T, client *gatedLLM) chi.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())

	manager := intake.NewManager(client, database.NewStore(db), 8)
	router := chi.NewRouter()
	NewIntakeService(manager).AddRoutes(router)
	return router
}

func startSession(t *testing.T, router chi.Router, lang string) pkgapi.StartSessionResponse {
	t.Helper()

	rec := postJSON(t, router, "/session/", pkgapi.StartSessionRequest{Language: lang})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pkgapi.StartSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func submitText(t *testing.T, router chi.Router, sessionID, text string) (pkgapi.SessionStateResponse, int) {
	t.Helper()

	rec := postJSON(t, router, "/session/"+sessionID+"/messages", pkgapi.SubmitMessageRequest{Text: text})

	var resp pkgapi.SessionStateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return resp, rec.Code
}

func sessionState(t *testing.T, router chi.Router, sessionID string) (pkgapi.SessionStateResponse, int) {
	t.Helper()

	rec := getJSON(t, router, "/session/"+sessionID)

	var resp pkgapi.SessionStateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return resp, rec.Code
}

func TestStartSession(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})

	resp := startSession(t, router, "english")
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, string(intake.StageCollectingName), resp.Stage)
	require.Len(t, resp.Transcript, 1)
	assert.Equal(t, "bot", resp.Transcript[0].Sender)
}

func TestStartSessionUnsupportedLanguage(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})

	rec := postJSON(t, router, "/session/", pkgapi.StartSessionRequest{Language: "klingon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAdvancesStages(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})
	session := startSession(t, router, "english")

	resp, code := submitText(t, router, session.SessionID, "Asha")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(intake.StageCollectingAge), resp.Stage)

	resp, code = submitText(t, router, session.SessionID, "34")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(intake.StageCollectingGender), resp.Stage)

	resp, code = submitText(t, router, session.SessionID, "female")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(intake.StageCollectingSymptoms), resp.Stage)
}

func TestSubmitLanguageMismatch(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})
	session := startSession(t, router, "english")

	resp, code := submitText(t, router, session.SessionID, "मुझे बुखार है")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Mismatch)
	assert.Equal(t, string(intake.StageCollectingName), resp.Stage)
}

func TestGenerateWithoutSymptoms(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})
	session := startSession(t, router, "english")

	rec := postJSON(t, router, "/session/"+session.SessionID+"/generate", struct{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateConflictWhilePending(t *testing.T) {
	gate := make(chan struct{})
	client := &gatedLLM{response: `{"follow_up_questions": ["How long?", "Any fever?"]}`, gate: gate}
	router := newIntakeRouter(t, client)
	session := startSession(t, router, "english")

	submitText(t, router, session.SessionID, "Asha")
	submitText(t, router, session.SessionID, "34")
	submitText(t, router, session.SessionID, "female")

	resp, code := submitText(t, router, session.SessionID, "headache since morning")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Pending)

	rec := postJSON(t, router, "/session/"+session.SessionID+"/generate", struct{}{})
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(gate)
	require.Eventually(t, func() bool {
		state, code := sessionState(t, router, session.SessionID)
		return code == http.StatusOK && !state.Pending
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGenerateTriageFlow(t *testing.T) {
	client := &gatedLLM{response: `{"category": "Home Care", "reason": "mild viral symptoms", "doctor": "General Physician", "remedy": "rest and fluids"}`}
	router := newIntakeRouter(t, client)
	session := startSession(t, router, "english")

	submitText(t, router, session.SessionID, "Asha")
	submitText(t, router, session.SessionID, "34")
	submitText(t, router, session.SessionID, "female")

	// Wait for the follow-up round triggered by the first symptom before
	// asking for the verdict.
	submitText(t, router, session.SessionID, "headache since morning")
	require.Eventually(t, func() bool {
		state, code := sessionState(t, router, session.SessionID)
		return code == http.StatusOK && !state.Pending
	}, 2*time.Second, 10*time.Millisecond)

	rec := postJSON(t, router, "/session/"+session.SessionID+"/generate", struct{}{})
	require.Equal(t, http.StatusOK, rec.Code)

	var state pkgapi.SessionStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, string(intake.StageGeneratingTriage), state.Stage)

	require.Eventually(t, func() bool {
		state, code := sessionState(t, router, session.SessionID)
		return code == http.StatusOK && !state.Pending
	}, 2*time.Second, 10*time.Millisecond)

	state, _ = sessionState(t, router, session.SessionID)
	last := state.Transcript[len(state.Transcript)-1]
	assert.Equal(t, "bot", last.Sender)
	assert.Contains(t, last.Text, "Home Care")
}

func TestChangeLanguageResetsSession(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})
	session := startSession(t, router, "english")

	submitText(t, router, session.SessionID, "Asha")

	rec := postJSON(t, router, "/session/"+session.SessionID+"/language", pkgapi.ChangeLanguageRequest{Language: "hindi"})
	require.Equal(t, http.StatusOK, rec.Code)

	var state pkgapi.SessionStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, string(intake.StageCollectingName), state.Stage)
	require.Len(t, state.Transcript, 1)
}

func TestSessionNotFound(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})

	_, code := sessionState(t, router, "1b671a64-40d5-491e-99b0-da01ff1f3341")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEndSession(t *testing.T) {
	router := newIntakeRouter(t, &gatedLLM{})
	session := startSession(t, router, "english")

	req := httptest.NewRequest(http.MethodDelete, "/session/"+session.SessionID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, code := sessionState(t, router, session.SessionID)
	assert.Equal(t, http.StatusNotFound, code)
}
