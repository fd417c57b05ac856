package event_bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEvent EventType = "test.event"

func TestEventBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewEventBus()

	var received []Event
	unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
		received = append(received, e)
		return nil
	})
	defer unsubscribe()

	err := bus.Publish(NewEvent(context.Background(), testEvent, "payload"))
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, testEvent, received[0].Type)
	assert.Equal(t, "payload", received[0].Data)
}

func TestEventBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(NewEvent(context.Background(), testEvent, nil)))
	unsubscribe()
	require.NoError(t, bus.Publish(NewEvent(context.Background(), testEvent, nil)))

	assert.Equal(t, 1, calls)
}

func TestEventBus_HandlerErrorIsReported(t *testing.T) {
	bus := NewEventBus()

	unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
		return assert.AnError
	})
	defer unsubscribe()

	err := bus.Publish(NewEvent(context.Background(), testEvent, nil))
	assert.Error(t, err)
}

func TestEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewEventBus()

	unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
		panic("handler exploded")
	})
	defer unsubscribe()

	err := bus.Publish(NewEvent(context.Background(), testEvent, nil))
	assert.Error(t, err)
}

func TestEventBus_CancelledContextSkipsPublish(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	unsubscribe := bus.Subscribe(testEvent, func(e Event) error {
		calls++
		return nil
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(NewEvent(ctx, testEvent, nil))
	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestSubscribeTyped(t *testing.T) {
	type payload struct {
		Name string
	}
	bus := NewEventBus()

	var received []payload
	unsubscribe := SubscribeTyped(bus, testEvent, func(e EventT[payload]) error {
		received = append(received, e.Data)
		return nil
	})
	defer unsubscribe()

	require.NoError(t, bus.Publish(NewEvent(context.Background(), testEvent, payload{Name: "typed"})))
	// Mismatched payload types are skipped, not an error.
	require.NoError(t, bus.Publish(NewEvent(context.Background(), testEvent, "not the payload")))
	require.NoError(t, bus.Publish(NewEvent(context.Background(), testEvent, nil)))

	require.Len(t, received, 1)
	assert.Equal(t, "typed", received[0].Name)
}
