package session

import (
	"github.com/spec-kit/hr-console/internal/domain"
)

// User is the cached identity attached to a session.
type User struct {
	ID       int         `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// Session is the client-held proof of authentication: the bearer token plus
// the cached user profile. Both are set and cleared together.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether a user profile is resident.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// Store persists the current session and serves it synchronously.
//
// Load must never fail on malformed persisted state: any unreadable or
// corrupted value is treated as no session and the stale value is removed.
type Store interface {
	// Load reads the persisted session into memory. Called once at startup.
	Load() (Session, error)
	// Current returns the in-memory session without touching storage.
	Current() Session
	// Set persists token and user together; the next Current observes both.
	Set(token string, user User) error
	// Clear removes token and user together.
	Clear() error
}
