package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherFanOut(t *testing.T) {
	d := NewInMemoryDispatcher()

	var first, second int
	d.Subscribe(EventSessionExpired, func(context.Context, Event) error {
		first++
		return nil
	})
	d.Subscribe(EventSessionExpired, func(context.Context, Event) error {
		second++
		return nil
	})
	d.Subscribe(EventSessionStarted, func(context.Context, Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionExpired}))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var delivered bool
	d.Subscribe(EventNoticeRaised, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventNoticeRaised, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventNoticeRaised}))
	assert.True(t, delivered)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionCleared}))
}
