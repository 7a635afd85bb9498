package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/events"
	"github.com/spec-kit/hr-console/internal/session"
)

// SessionWatcher clears the stored session once its token expiry passes,
// instead of waiting for the next request to bounce with a 401.
type SessionWatcher struct {
	store      session.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
	interval   time.Duration
}

// NewSessionWatcher builds the watcher.
func NewSessionWatcher(store session.Store, dispatcher events.Dispatcher, logger *zap.Logger, interval time.Duration) *SessionWatcher {
	return &SessionWatcher{store: store, dispatcher: dispatcher, logger: logger, interval: interval}
}

// Run ticks until the context is cancelled.
func (w *SessionWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check clears the session if its token has expired. Tokens without a
// readable expiry claim are left alone; the server remains the authority.
func (w *SessionWatcher) Check(ctx context.Context) {
	sess := w.store.Current()
	if sess.Token == "" {
		return
	}

	expiry, err := session.InspectExpiry(sess.Token)
	if err != nil {
		return
	}
	if time.Now().Before(expiry) {
		return
	}

	if err := w.store.Clear(); err != nil {
		w.logger.Warn("failed to clear expired session", zap.Error(err))
		return
	}
	w.logger.Info("session expired locally", zap.Time("expiry", expiry))

	if w.dispatcher != nil {
		_ = w.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionExpired,
			Timestamp: time.Now(),
			Payload:   events.SessionExpiredPayload{Endpoint: "local-expiry"},
		})
	}
}
