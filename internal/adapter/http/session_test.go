package http

import (
	"testing"
	"time"
)

func TestSessionManager_IssueResolve(t *testing.T) {
	m := NewSessionManager(time.Hour)
	token := m.Issue("alice")
	if token == "" {
		t.Fatal("empty token")
	}
	if got := m.Resolve(token); got != "alice" {
		t.Errorf("resolve: want alice, got %q", got)
	}
	if got := m.Resolve("unknown-token"); got != "" {
		t.Errorf("unknown token resolved to %q", got)
	}
}

func TestSessionManager_Expiry(t *testing.T) {
	m := NewSessionManager(time.Hour)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	token := m.Issue("bob")
	m.now = func() time.Time { return base.Add(59 * time.Minute) }
	if got := m.Resolve(token); got != "bob" {
		t.Errorf("before expiry: want bob, got %q", got)
	}
	m.now = func() time.Time { return base.Add(61 * time.Minute) }
	if got := m.Resolve(token); got != "" {
		t.Errorf("after expiry: want empty, got %q", got)
	}
	// Expired token is gone even if the clock goes back.
	m.now = func() time.Time { return base }
	if got := m.Resolve(token); got != "" {
		t.Errorf("expired token resurrected as %q", got)
	}
}

func TestSessionManager_IssuePrunesExpired(t *testing.T) {
	m := NewSessionManager(time.Hour)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	stale := m.Issue("alice")
	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	fresh := m.Issue("bob")

	m.mu.Lock()
	_, staleKept := m.sessions[stale]
	size := len(m.sessions)
	m.mu.Unlock()
	if staleKept {
		t.Error("expired session survived Issue")
	}
	if size != 1 {
		t.Errorf("want 1 live session, got %d", size)
	}
	if got := m.Resolve(fresh); got != "bob" {
		t.Errorf("fresh token: want bob, got %q", got)
	}
}

func TestSessionManager_Revoke(t *testing.T) {
	m := NewSessionManager(time.Hour)
	token := m.Issue("carol")
	m.Revoke(token)
	if got := m.Resolve(token); got != "" {
		t.Errorf("revoked token resolved to %q", got)
	}
}
