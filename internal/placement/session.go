package placement

import (
	"sync"

	"github.com/linguabridge/backend/internal/levels"
)

// Session is the mutable difficulty-tracking state for one test-taker's
// adaptive run. Level is the single source of truth for difficulty and
// moves at most one step per answer.
type Session struct {
	ID    string
	Level string
}

// Adjust moves the session one level up on a correct answer and one
// level down on an incorrect one, clamped to the CEFR scale.
func (s *Session) Adjust(wasCorrect bool) {
	if wasCorrect {
		s.Level = levels.Up(s.Level)
	} else {
		s.Level = levels.Down(s.Level)
	}
}

// SessionStore keeps placement sessions in memory, keyed by a
// caller-supplied id. Sessions for different ids never interfere; the
// mutex guards only the map, so concurrent reuse of one id is
// last-write-wins on the level.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// defaultSessionID serves callers that do not supply an id.
const defaultSessionID = "default"

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for the id, creating it at the default level
// on first use.
func (st *SessionStore) Get(id string) *Session {
	if id == "" {
		id = defaultSessionID
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		sess = &Session{ID: id, Level: levels.DefaultLevel}
		st.sessions[id] = sess
	}
	return sess
}

// Drop discards a finished session.
func (st *SessionStore) Drop(id string) {
	if id == "" {
		id = defaultSessionID
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
