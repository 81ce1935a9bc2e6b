package domain

import (
	"sync"
	"time"
)

// CredentialEntry binds a CredentialSet to the session that owns it.
// Credentials are never mutated after construction; a re-authorization stores a new entry.
type CredentialEntry struct {
	SessionID   string         // Opaque session identifier from the session cookie
	Credentials *CredentialSet // At most one set per session
	timeout     time.Duration  // Configurable session lifetime

	mu         sync.RWMutex
	lastAccess time.Time
}

// NewCredentialEntry creates a new entry for a session with a configurable timeout.
// A zero or negative timeout never expires.
func NewCredentialEntry(sessionID string, creds *CredentialSet, timeout time.Duration) *CredentialEntry {
	return &CredentialEntry{
		SessionID:   sessionID,
		Credentials: creds,
		timeout:     timeout,
		lastAccess:  time.Now(),
	}
}

// Touch records an access at the given time
func (e *CredentialEntry) Touch(at time.Time) {
	e.mu.Lock()
	e.lastAccess = at
	e.mu.Unlock()
}

// LastAccess returns the time of the most recent access
func (e *CredentialEntry) LastAccess() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastAccess
}

// AccessedBefore reports whether the entry was last accessed before cutoff
func (e *CredentialEntry) AccessedBefore(cutoff time.Time) bool {
	return e.LastAccess().Before(cutoff)
}

// IsExpired checks if the entry has outlived the session it belongs to
func (e *CredentialEntry) IsExpired() bool {
	if e.timeout <= 0 {
		return false
	}
	return time.Since(e.LastAccess()) > e.timeout
}

// Snapshot returns a copy of the credentials to prevent external modification
func (e *CredentialEntry) Snapshot() *CredentialSet {
	if e.Credentials == nil {
		return nil
	}
	c := *e.Credentials
	if e.Credentials.Scopes != nil {
		c.Scopes = make([]string, len(e.Credentials.Scopes))
		copy(c.Scopes, e.Credentials.Scopes)
	}
	return &c
}
