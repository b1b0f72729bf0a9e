package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus()

	var got []*Event
	bus.Subscribe(EventBookingCreated, func(e *Event) error {
		got = append(got, e)
		return nil
	})

	bus.Publish(&Event{Type: EventBookingCreated})
	bus.Publish(&Event{Type: EventOrderPlaced})

	require.Len(t, got, 1)
	assert.Equal(t, EventBookingCreated, got[0].Type)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestEventBus_MultipleSubscribers(t *testing.T) {
	bus := NewEventBus()

	var first, second int
	bus.Subscribe(EventOrderPlaced, func(*Event) error { first++; return nil })
	bus.Subscribe(EventOrderPlaced, func(*Event) error { second++; return nil })

	bus.Publish(&Event{Type: EventOrderPlaced})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewEventBus()

	var reached bool
	bus.Subscribe(EventUserRegistered, func(*Event) error { return errors.New("boom") })
	bus.Subscribe(EventUserRegistered, func(*Event) error { reached = true; return nil })

	bus.Publish(&Event{Type: EventUserRegistered})
	assert.True(t, reached)
}

func TestEventBus_PublishJSON(t *testing.T) {
	bus := NewEventBus()

	var payload OrderEventPayload
	bus.Subscribe(EventOrderPlaced, func(e *Event) error {
		return json.Unmarshal(e.Payload, &payload)
	})

	err := bus.PublishJSON(EventOrderPlaced, OrderEventPayload{OrderID: 11, TotalAmount: 55})
	require.NoError(t, err)
	assert.Equal(t, int64(11), payload.OrderID)
	assert.Equal(t, float64(55), payload.TotalAmount)
}

func TestEventBus_NilBusIsSafe(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishJSON(EventOrderPlaced, nil))
}
