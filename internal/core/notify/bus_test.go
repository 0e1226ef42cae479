package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []Notification
	bus.Subscribe(func(n Notification) {
		received = append(received, n)
	})

	bus.Errorf("test error: %d", 42)
	bus.Infof("info msg")
	bus.Warnf("warn msg")
	bus.Successf("saved %s", "a.py")

	require.Len(t, received, 4)
	assert.Equal(t, LevelError, received[0].Level)
	assert.Equal(t, "test error: 42", received[0].Message)
	assert.Equal(t, LevelInfo, received[1].Level)
	assert.Equal(t, LevelWarning, received[2].Level)
	assert.Equal(t, LevelSuccess, received[3].Level)
	assert.Equal(t, "saved a.py", received[3].Message)
}

func TestBus_Publish_sets_CreatedAt(t *testing.T) {
	bus := NewBus()

	var got Notification
	bus.Subscribe(func(n Notification) { got = n })

	bus.Infof("hello")
	assert.False(t, got.CreatedAt.IsZero())

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	bus.Publish(Notification{Level: LevelInfo, Message: "fixed", CreatedAt: fixed})
	assert.Equal(t, fixed, got.CreatedAt)
}

func TestBus_Publish_multiple_subscribers(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func(Notification) { a++ })
	bus.Subscribe(func(Notification) { b++ })

	bus.Infof("one")
	bus.Infof("two")

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestBus_Publish_without_subscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Infof("nobody listening") })
}
