package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), Event{ApplicationID: "app-1", Action: string(EventApplicationCreated)})
	require.NoError(t, err)

	events, err := store.ListByApplication(context.Background(), "app-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(EventApplicationCreated), events[0].Action)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestPublisher_AsyncModeFlushesOnClose(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))

	for i := 0; i < 5; i++ {
		require.NoError(t, pub.Emit(context.Background(), Event{ApplicationID: "app-2", Action: string(EventStepCompleted)}))
	}
	pub.Close()
	pub.Close()

	events, err := store.ListByApplication(context.Background(), "app-2")
	require.NoError(t, err)
	assert.Len(t, events, 5)
}
