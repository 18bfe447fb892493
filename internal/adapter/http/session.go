package http

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the cookie that carries the session token.
const SessionCookie = "planner_session"

type session struct {
	username  string
	expiresAt time.Time
}

// SessionManager issues and resolves in-memory session tokens. Tokens
// are random UUIDs with a fixed TTL; restarting the process logs
// everyone out.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
	now      func() time.Time
}

// NewSessionManager creates a manager with the given token TTL.
func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// Issue creates a new token bound to username. Expired entries are
// pruned on each issue so abandoned sessions do not pile up.
func (m *SessionManager) Issue(username string) string {
	token := uuid.New().String()
	m.mu.Lock()
	now := m.now()
	for t, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, t)
		}
	}
	m.sessions[token] = session{username: username, expiresAt: now.Add(m.ttl)}
	m.mu.Unlock()
	return token
}

// Resolve returns the username for a token, or "" if the token is
// unknown or expired. Expired tokens are dropped on access.
func (m *SessionManager) Resolve(token string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if !ok {
		return ""
	}
	if m.now().After(sess.expiresAt) {
		delete(m.sessions, token)
		return ""
	}
	return sess.username
}

// Revoke removes a token. Unknown tokens are a no-op.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
