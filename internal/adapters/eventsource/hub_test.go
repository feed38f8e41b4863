package eventsource

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sitegrab/internal/domain"
)

func TestHub_DeliversAllTabs(t *testing.T) {
	hub := NewHub()

	var got []domain.RequestEvent
	sub, err := hub.Subscribe(1, func(event domain.RequestEvent) {
		got = append(got, event)
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	hub.Publish(domain.RequestEvent{TabID: 1, URL: "https://example.com/a.js"})
	hub.Publish(domain.RequestEvent{TabID: 2, URL: "https://example.com/b.js"})

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].TabID, "filtering by tab is the subscriber's job")
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()

	var first, second int
	subA, err := hub.Subscribe(1, func(domain.RequestEvent) { first++ })
	require.NoError(t, err)
	subB, err := hub.Subscribe(1, func(domain.RequestEvent) { second++ })
	require.NoError(t, err)

	assert.Equal(t, 2, hub.Publish(domain.RequestEvent{URL: "https://example.com/"}))

	subA.Unsubscribe()
	assert.Equal(t, 1, hub.Publish(domain.RequestEvent{URL: "https://example.com/"}))

	subB.Unsubscribe()
	assert.Equal(t, 0, hub.Publish(domain.RequestEvent{URL: "https://example.com/"}))

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()
	sub, err := hub.Subscribe(1, func(domain.RequestEvent) {})
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_UnsubscribeWaitsForDelivery(t *testing.T) {
	hub := NewHub()

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	delivered := 0

	sub, err := hub.Subscribe(1, func(domain.RequestEvent) {
		close(entered)
		<-release
		mu.Lock()
		delivered++
		mu.Unlock()
	})
	require.NoError(t, err)

	go hub.Publish(domain.RequestEvent{URL: "https://example.com/"})
	<-entered

	unsubscribed := make(chan struct{})
	go func() {
		sub.Unsubscribe()
		close(unsubscribed)
	}()

	select {
	case <-unsubscribed:
		t.Fatal("Unsubscribe returned during a delivery")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-unsubscribed

	mu.Lock()
	assert.Equal(t, 1, delivered)
	mu.Unlock()
}
