// Package intake implements the conversational intake state machine: a
// per-session dialogue that collects patient demographics, gathers symptom
// descriptions, asks the language model for follow-up questions, and finally
// turns the accumulated log into a triage categorization.
package intake

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
	"github.com/shrawanc911/HealthSyncInnovators/internal/llm"
	"github.com/shrawanc911/HealthSyncInnovators/internal/prompt"
	"github.com/shrawanc911/HealthSyncInnovators/internal/triage"
)

type Stage string

const (
	StageCollectingName     Stage = "collecting_name"
	StageCollectingAge      Stage = "collecting_age"
	StageCollectingGender   Stage = "collecting_gender"
	StageCollectingSymptoms Stage = "collecting_symptoms"
	StageGeneratingTriage   Stage = "generating_triage"
)

type Sender string

const (
	SenderUser   Sender = "user"
	SenderBot    Sender = "bot"
	SenderSystem Sender = "system"
)

// Message is one transcript entry. Immutable once appended; the transient
// "thinking" placeholder is the only entry that gets replaced, never
// re-parsed.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

type Patient struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
}

// RecordStore persists finalized appointments. The session only submits a
// creation request and discards its own copy.
type RecordStore interface {
	CreatePatientRecord(ctx context.Context, name string, age int, gender string, symptoms []string, doctorType string) error
}

var (
	ErrRequestPending = errors.New("a generation request is already pending")
	ErrNoSymptoms     = errors.New("no symptoms recorded yet")
)

// Session is one active conversation. All state mutations happen under the
// session mutex in response to discrete events (submission, generate
// trigger, LLM response arrival, language change), so no two events
// interleave. The LLM calls themselves run in goroutines and re-enter
// through merge with a generation token: a reset bumps the generation, and
// late responses from a superseded session are discarded instead of merged.
type Session struct {
	mu sync.Mutex

	id    uuid.UUID
	llm   llm.Client
	store RecordStore

	language   language.Tag
	stage      Stage
	patient    Patient
	symptomLog []string
	transcript []Message

	generation uint64
	pending    bool
}

func NewSession(id uuid.UUID, lang language.Tag, client llm.Client, store RecordStore) *Session {
	s := &Session{
		id:    id,
		llm:   client,
		store: store,
	}
	s.reset(lang)
	return s
}

// SubmitResult reports what one submission did, for the HTTP surface.
type SubmitResult struct {
	Mismatch bool
	Detected language.Tag
	Stage    Stage
	Pending  bool
}

// Submit processes one user submission according to the current stage.
func (s *Session) Submit(text string) SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return SubmitResult{Stage: s.stage, Pending: s.pending}
	}

	set := messagesFor(s.language)

	detected := language.Detect(text, s.language)
	if detected != language.Unknown && detected != s.language {
		// Input discarded; one inline warning, no stage advancement.
		s.append(SenderSystem, set.mismatchText(detected, s.language))
		return SubmitResult{Mismatch: true, Detected: detected, Stage: s.stage, Pending: s.pending}
	}

	s.append(SenderUser, text)

	switch s.stage {
	case StageCollectingName:
		s.patient.Name = text
		s.append(SenderBot, set.askAge)
		s.stage = StageCollectingAge

	case StageCollectingAge:
		s.patient.Age = text
		s.append(SenderBot, set.askGender)
		s.stage = StageCollectingGender

	case StageCollectingGender:
		s.patient.Gender = text
		s.append(SenderBot, set.askSymptoms)
		s.stage = StageCollectingSymptoms

	case StageCollectingSymptoms:
		s.symptomLog = append(s.symptomLog, text)
		// At most one request in flight: submissions made while a request
		// is pending are queued into the log without a second placeholder.
		if !s.pending {
			s.startFollowUp()
		}

	case StageGeneratingTriage:
		// Late symptom additions are still collected; they ride along with
		// the next generation attempt.
		s.symptomLog = append(s.symptomLog, text)
	}

	return SubmitResult{Stage: s.stage, Pending: s.pending}
}

// Generate triggers triage categorization over the full symptom log. It is
// the explicit external trigger: the symptoms stage never advances on its
// own. Re-triggering after a failed attempt is allowed; re-triggering while
// a request is pending is refused.
func (s *Session) Generate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return ErrRequestPending
	}
	if len(s.symptomLog) == 0 {
		return ErrNoSymptoms
	}

	s.stage = StageGeneratingTriage

	symptoms := make([]string, len(s.symptomLog))
	copy(symptoms, s.symptomLog)
	patient := s.patient

	gen, idx := s.beginRequest()
	go s.runTriage(gen, idx, prompt.BuildTriage(symptoms, s.language), patient, symptoms, s.language)

	return nil
}

// Reset switches the session language and discards the conversation:
// transcript, patient, and symptom log are cleared, the stage returns to
// name collection, and any in-flight request is superseded.
func (s *Session) Reset(lang language.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(lang)
}

func (s *Session) reset(lang language.Tag) {
	s.generation++
	s.pending = false
	s.language = lang
	s.stage = StageCollectingName
	s.patient = Patient{}
	s.symptomLog = nil
	s.transcript = []Message{{Sender: SenderBot, Text: messagesFor(lang).greeting}}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Language() language.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Patient() Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patient
}

func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Session) SymptomLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := make([]string, len(s.symptomLog))
	copy(log, s.symptomLog)
	return log
}

func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript := make([]Message, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

func (s *Session) append(sender Sender, text string) {
	s.transcript = append(s.transcript, Message{Sender: sender, Text: text})
}

// beginRequest marks a request in flight and appends the "thinking"
// placeholder that the response will replace. Caller holds the lock.
func (s *Session) beginRequest() (gen uint64, idx int) {
	s.pending = true
	s.append(SenderBot, messagesFor(s.language).thinking)
	return s.generation, len(s.transcript) - 1
}

// startFollowUp issues the async follow-up request over the full symptom
// log. Caller holds the lock.
func (s *Session) startFollowUp() {
	symptoms := strings.Join(s.symptomLog, ". ")
	gen, idx := s.beginRequest()
	go s.runFollowUp(gen, idx, prompt.BuildFollowUp(symptoms, s.language), s.language)
}

func (s *Session) runFollowUp(gen uint64, idx int, promptText string, lang language.Tag) {
	set := messagesFor(lang)

	raw, err := s.llm.Generate(context.Background(), promptText)
	if err != nil {
		s.merge(gen, idx, Message{Sender: SenderSystem, Text: set.transportError})
		return
	}

	result, err := triage.ParseFollowUp(raw)
	switch {
	case errors.Is(err, triage.ErrIncomplete):
		// Show what exists.
		s.merge(gen, idx, Message{Sender: SenderBot, Text: set.followUpText(result.Questions)})
	case err != nil:
		var perr *triage.ParseError
		if errors.As(err, &perr) {
			// Degrade to the raw text rather than losing the response.
			s.merge(gen, idx, Message{Sender: SenderBot, Text: perr.Cleaned})
		} else {
			s.merge(gen, idx, Message{Sender: SenderSystem, Text: set.transportError})
		}
	case result.NoFurtherQuestions():
		s.merge(gen, idx, Message{Sender: SenderBot, Text: set.noFollowUp})
	default:
		s.merge(gen, idx, Message{Sender: SenderBot, Text: set.followUpText(result.Questions)})
	}
}

func (s *Session) runTriage(gen uint64, idx int, promptText string, patient Patient, symptoms []string, lang language.Tag) {
	set := messagesFor(lang)

	raw, err := s.llm.Generate(context.Background(), promptText)
	if err != nil {
		s.merge(gen, idx, Message{Sender: SenderSystem, Text: set.transportError})
		return
	}

	result, err := triage.ParseTriage(raw)
	if err != nil {
		var perr *triage.ParseError
		if errors.As(err, &perr) {
			s.merge(gen, idx, Message{Sender: SenderBot, Text: perr.Cleaned})
		} else {
			s.merge(gen, idx, Message{Sender: SenderSystem, Text: set.transportError})
		}
		return
	}

	// The store write is a side effect of the response, so it obeys the
	// same supersession rule as the transcript: a reset that happened
	// while the request was in flight discards everything, the record
	// included.
	if s.superseded(gen) {
		slog.Info("discarding response for superseded session", "session_id", s.id)
		return
	}

	var extra []Message
	if saveErr := s.persistRecord(patient, symptoms, result); saveErr != nil {
		slog.Error("error saving patient record", "session_id", s.id, "error", saveErr)
		extra = append(extra, Message{Sender: SenderSystem, Text: set.saveError})
	}

	s.merge(gen, idx, Message{Sender: SenderBot, Text: set.triageText(result)}, extra...)
}

// persistRecord submits the finalized appointment to the record store. Runs
// outside the session lock; the store write is a suspension point.
func (s *Session) persistRecord(patient Patient, symptoms []string, result triage.TriageResult) error {
	if s.store == nil {
		return nil
	}

	age, err := strconv.Atoi(strings.TrimSpace(patient.Age))
	if err != nil || age <= 0 {
		slog.Warn("skipping record: age is not a positive integer", "session_id", s.id, "age", patient.Age)
		return nil
	}

	return s.store.CreatePatientRecord(context.Background(), patient.Name, age, patient.Gender, symptoms, result.Doctor)
}

// superseded reports whether gen is no longer the session's current
// generation.
func (s *Session) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.generation
}

// merge applies an asynchronous LLM outcome: the placeholder is replaced in
// place, extra messages are appended after it. Outcomes from a superseded
// generation are discarded.
func (s *Session) merge(gen uint64, idx int, replacement Message, extra ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		slog.Info("discarding response for superseded session", "session_id", s.id)
		return
	}

	s.pending = false
	if idx >= 0 && idx < len(s.transcript) {
		s.transcript[idx] = replacement
	}
	s.transcript = append(s.transcript, extra...)
}
