package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/events"
)

func TestNoticeCenterRetainsAndPublishes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventNoticeRaised, func(_ context.Context, ev events.Event) error {
		published = append(published, ev)
		return nil
	})

	center := NewNoticeCenter(zap.NewNop(), dispatcher)
	center.Success("Login successful!")
	center.Error("Server error. Please try again later.")

	recent := center.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "success", recent[0].Level)
	assert.Equal(t, "error", recent[1].Level)
	assert.Equal(t, "Server error. Please try again later.", recent[1].Message)

	require.Len(t, published, 2)
	payload, ok := published[0].Payload.(events.NoticeRaisedPayload)
	require.True(t, ok)
	assert.Equal(t, "Login successful!", payload.Message)
}

func TestNoticeCenterRetentionLimit(t *testing.T) {
	center := NewNoticeCenter(zap.NewNop(), nil)
	for i := 0; i < noticeRetention+10; i++ {
		center.Error("overflow")
	}
	assert.Len(t, center.Recent(), noticeRetention)
}

func TestLoginRedirectorLatch(t *testing.T) {
	r := NewLoginRedirector()
	assert.False(t, r.ConsumePending())

	r.GoToLogin()
	assert.True(t, r.ConsumePending())
	assert.False(t, r.ConsumePending())
}
