package memory

import (
	"math/rand"
	"sync"
	"time"

	"sky-bot/internal/domain/game"
)

// SessionStore is an in-memory game session store keyed by Telegram user ID.
// A single mutex covers the map and the random source, which makes
// Create/Create and Create/Remove races for the same key impossible.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*game.Session
	rng      *rand.Rand
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*game.Session),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Get returns the user's active session, if any
func (s *SessionStore) Get(userID int64) (*game.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	return session, ok
}

// Create stores a fresh session with a random target in [1,100] and returns
// it with true. An existing session is returned untouched with false.
func (s *SessionStore) Create(userID int64) (*game.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[userID]; ok {
		return existing, false
	}

	target := game.MinTarget + s.rng.Intn(game.MaxTarget-game.MinTarget+1)
	session := game.NewSession(userID, target)
	s.sessions[userID] = session
	return session, true
}

// Remove deletes the user's session; no-op when absent
func (s *SessionStore) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// Len returns the number of active sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
