package events

import (
	"time"

	"github.com/spec-kit/hr-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionStarted EventType = "session_started"
	EventSessionCleared EventType = "session_cleared"
	EventSessionExpired EventType = "session_expired"
	EventNoticeRaised   EventType = "notice_raised"
)

// Event represents a client-side lifecycle event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionStartedPayload payload.
type SessionStartedPayload struct {
	UserID int         `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// SessionExpiredPayload payload.
type SessionExpiredPayload struct {
	Endpoint string `json:"endpoint"`
}

// NoticeRaisedPayload payload.
type NoticeRaisedPayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
