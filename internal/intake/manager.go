package intake

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
	"github.com/shrawanc911/HealthSyncInnovators/internal/llm"
)

type sessionEntry struct {
	session      *Session
	lastAccessed time.Time
}

// Manager owns the live sessions, keyed by id. Conversations are not
// persisted across reloads, so the registry is bounded and evicts the least
// recently used session when full.
type Manager struct {
	lock     sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
	maxSize  int

	llm   llm.Client
	store RecordStore
}

func NewManager(client llm.Client, store RecordStore, maxSize int) *Manager {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Manager{
		sessions: make(map[uuid.UUID]*sessionEntry, maxSize),
		maxSize:  maxSize,
		llm:      client,
		store:    store,
	}
}

// Create starts a session in the given language and returns it.
func (m *Manager) Create(lang language.Tag) *Session {
	m.lock.Lock()
	defer m.lock.Unlock()

	if len(m.sessions) >= m.maxSize {
		m.evictOldest()
	}

	session := NewSession(uuid.New(), lang, m.llm, m.store)
	m.sessions[session.ID()] = &sessionEntry{
		session:      session,
		lastAccessed: time.Now(),
	}
	return session
}

// Get returns the session with the given id, refreshing its access time.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastAccessed = time.Now()
	return entry.session, true
}

// Remove drops a session; used when the kiosk closes a conversation.
func (m *Manager) Remove(id uuid.UUID) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) evictOldest() {
	oldestID := uuid.Nil
	var oldestTime time.Time
	for id, entry := range m.sessions {
		if oldestID == uuid.Nil || entry.lastAccessed.Before(oldestTime) {
			oldestID = id
			oldestTime = entry.lastAccessed
		}
	}
	if oldestID != uuid.Nil {
		delete(m.sessions, oldestID)
	}
}

func (m *Manager) size() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.sessions)
}
