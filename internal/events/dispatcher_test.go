package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-registry/internal/events"
)

func TestInMemoryDispatcher_PublishInvokesSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []string
	dispatcher.Subscribe(events.EventUserCreated, func(_ context.Context, evt events.Event) error {
		received = append(received, "first:"+evt.UserID)
		return nil
	})
	dispatcher.Subscribe(events.EventUserCreated, func(_ context.Context, evt events.Event) error {
		received = append(received, "second:"+evt.UserID)
		return nil
	})
	dispatcher.Subscribe(events.EventUserDeactivated, func(_ context.Context, _ events.Event) error {
		received = append(received, "deactivated")
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserCreated, UserID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:u-1", "second:u-1"}, received)
}

func TestInMemoryDispatcher_PublishWithoutSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserDeactivated}))
}

func TestInMemoryDispatcher_PublishJoinsHandlerErrors(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	errFirst := errors.New("first failed")
	errThird := errors.New("third failed")

	calls := 0
	dispatcher.Subscribe(events.EventUserCreated, func(context.Context, events.Event) error {
		calls++
		return errFirst
	})
	dispatcher.Subscribe(events.EventUserCreated, func(context.Context, events.Event) error {
		calls++
		return nil
	})
	dispatcher.Subscribe(events.EventUserCreated, func(context.Context, events.Event) error {
		calls++
		return errThird
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserCreated})
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
}
