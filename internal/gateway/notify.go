package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/events"
)

// Notifier surfaces transient user-facing notices, the console's analog of
// toast messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Notice is one retained notification.
type Notice struct {
	ID      string    `json:"id"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const noticeRetention = 50

// NoticeCenter retains recent notices for the view layer and mirrors them
// to the log and the event dispatcher.
type NoticeCenter struct {
	logger     *zap.Logger
	dispatcher events.Dispatcher

	mu      sync.Mutex
	notices []Notice
}

// NewNoticeCenter builds a notice center.
func NewNoticeCenter(logger *zap.Logger, dispatcher events.Dispatcher) *NoticeCenter {
	return &NoticeCenter{logger: logger, dispatcher: dispatcher}
}

// Success records an informational notice.
func (n *NoticeCenter) Success(message string) {
	n.record("success", message)
	n.logger.Info("notice", zap.String("message", message))
}

// Error records an error notice.
func (n *NoticeCenter) Error(message string) {
	n.record("error", message)
	n.logger.Warn("notice", zap.String("message", message))
}

// Recent returns retained notices, newest last.
func (n *NoticeCenter) Recent() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.notices))
	copy(out, n.notices)
	return out
}

func (n *NoticeCenter) record(level, message string) {
	notice := Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	n.mu.Lock()
	n.notices = append(n.notices, notice)
	if len(n.notices) > noticeRetention {
		n.notices = n.notices[len(n.notices)-noticeRetention:]
	}
	n.mu.Unlock()

	if n.dispatcher != nil {
		_ = n.dispatcher.Publish(context.Background(), events.Event{
			ID:        notice.ID,
			Type:      events.EventNoticeRaised,
			Timestamp: notice.At,
			Payload:   events.NoticeRaisedPayload{Level: level, Message: message},
		})
	}
}
