package memory

import (
	"sync"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultWindowTurns = 20 // 10 exchanges
	DefaultIdleTimeout = time.Hour

	// sweepThreshold triggers an opportunistic eviction pass when the store
	// grows past this many sessions. There is no background timer; an evicted
	// session simply reappears as new on its next message.
	sweepThreshold = 256
)

// SessionStore keeps per-conversation history in process memory, keyed by an
// opaque identifier. History is a sliding window: the oldest turns are
// dropped first once the window is full.
//
// Overlapping requests for the same identifier are not serialized; the last
// completed Append wins. The store only guarantees that a user/assistant turn
// pair lands atomically, never a half-applied pair. Per-session locking was
// considered and rejected: a recruiter thread is effectively single-writer,
// and losing one exchange under a race is acceptable where a corrupted turn
// list is not.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	window   int
	idle     time.Duration

	now func() time.Time
}

func NewSessionStore(window int, idle time.Duration) *SessionStore {
	if window <= 0 {
		window = DefaultWindowTurns
	}
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	return &SessionStore{
		sessions: make(map[string]*Session),
		window:   window,
		idle:     idle,
		now:      time.Now,
	}
}

// Resolve returns the session identifier to use for this exchange and a copy
// of its retained history. An absent or unrecognized identifier mints a fresh
// one with empty history, indistinguishable from a genuinely new
// conversation.
func (s *SessionStore) Resolve(sessionID string) (string, []Turn) {
	if sessionID == "" {
		return uuid.NewString(), nil
	}

	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return uuid.NewString(), nil
	}

	turns := make([]Turn, len(session.Turns))
	copy(turns, session.Turns)
	s.mu.RUnlock()

	return sessionID, turns
}

// Append records one completed exchange as an atomic user/assistant turn
// pair, trims the window FIFO and touches the activity timestamp. The session
// is created if it does not exist yet.
func (s *SessionStore) Append(sessionID, userContent, assistantContent string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &Session{ID: sessionID}
		s.sessions[sessionID] = session
	}

	session.AddUserTurn(userContent)
	session.AddAssistantTurn(assistantContent)
	if overflow := len(session.Turns) - s.window; overflow > 0 {
		session.Turns = session.Turns[overflow:]
	}
	session.LastActivity = s.now()

	if len(s.sessions) > sweepThreshold {
		s.evictExpiredLocked()
	}
}

// EvictExpired removes every session idle longer than the configured timeout
// and returns how many were dropped.
func (s *SessionStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictExpiredLocked()
}

func (s *SessionStore) evictExpiredLocked() int {
	cutoff := s.now().Add(-s.idle)
	evicted := 0
	for id, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		logger.Info("Evicted idle sessions",
			zap.Int("evicted", evicted),
			zap.Int("remaining", len(s.sessions)))
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
