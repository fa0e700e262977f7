package api

import "github.com/google/uuid"

// ---- AI passthrough surface ----

type AskRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateRequest struct {
	Prompt []string `json:"prompt"`
}

// LLMResponse carries the model's raw text; the caller normalizes it.
type LLMResponse struct {
	Response string `json:"response"`
}

// ---- Patient records ----

type AddAppointmentRequest struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	Symptoms   []string `json:"symptoms"`
	DoctorType string   `json:"doctorType"`
}

type AddAppointmentResponse struct {
	Message string `json:"message"`
}

type PatientRecord struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Symptoms   []string  `json:"symptoms"`
	DoctorType string    `json:"doctorType"`
}

type GetPatientsResponse struct {
	Data []PatientRecord `json:"data"`
}

// GetPatientsParams are the query params of the dashboard listing.
type GetPatientsParams struct {
	// Date filters records to one UTC day, formatted 2006-01-02. Empty
	// returns everything.
	Date string `schema:"date"`
}

// ---- Intake sessions ----

type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type StartSessionRequest struct {
	Language string `json:"language"`
}

type StartSessionResponse struct {
	SessionID  string    `json:"session_id"`
	Stage      string    `json:"stage"`
	Transcript []Message `json:"transcript"`
}

type SubmitMessageRequest struct {
	Text string `json:"text"`
}

type SessionStateResponse struct {
	Stage      string    `json:"stage"`
	Pending    bool      `json:"pending"`
	Mismatch   bool      `json:"mismatch,omitempty"`
	Transcript []Message `json:"transcript"`
}

type ChangeLanguageRequest struct {
	Language string `json:"language"`
}

// ---- Health ----

type HealthResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
	LLM    bool   `json:"llm"`
}
