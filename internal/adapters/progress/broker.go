package progress

import (
	"context"
	"sync"

	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
)

// DefaultClientBufferSize is the per-subscriber event buffer
const DefaultClientBufferSize = 100

// Broker implements ports.ProgressNotifier by fanning events out to
// subscribers. Sends never block: a subscriber whose buffer is full is
// disconnected.
type Broker struct {
	bufferSize int
	clients    map[int]*client
	mu         sync.Mutex
	nextID     int
}

var _ ports.ProgressNotifier = (*Broker)(nil)

type client struct {
	events chan Event
	id     int
}

// NewBroker creates a broker. bufferSize <= 0 uses DefaultClientBufferSize.
func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = DefaultClientBufferSize
	}
	return &Broker{
		bufferSize: bufferSize,
		clients:    make(map[int]*client),
	}
}

// Subscribe registers a subscriber until ctx is done or cleanup is called.
// The channel is closed when the subscription ends.
func (b *Broker) Subscribe(ctx context.Context) (events <-chan Event, cleanup func()) {
	b.mu.Lock()
	c := &client{events: make(chan Event, b.bufferSize), id: b.nextID}
	b.nextID++
	b.clients[c.id] = c
	total := len(b.clients)
	b.mu.Unlock()

	logging.Logger.Debug("Progress subscriber added", "client_id", c.id, "total_clients", total)

	stop := context.AfterFunc(ctx, func() { b.remove(c.id) })
	cleanup = func() {
		stop()
		b.remove(c.id)
	}
	return c.events, cleanup
}

// ClientCount returns the number of subscribers
func (b *Broker) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close disconnects every subscriber
func (b *Broker) Close() {
	b.mu.Lock()
	clients := b.clients
	b.clients = make(map[int]*client)
	b.mu.Unlock()

	for _, c := range clients {
		close(c.events)
	}
}

// Publish delivers event to every subscriber
func (b *Broker) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, c := range b.clients {
		select {
		case c.events <- event:
		default:
			logging.Logger.Warn("Progress subscriber too slow, disconnecting",
				"client_id", id,
				"event_type", event.Type)
			delete(b.clients, id)
			close(c.events)
		}
	}
}

func (b *Broker) remove(id int) {
	b.mu.Lock()
	c, ok := b.clients[id]
	if ok {
		delete(b.clients, id)
	}
	b.mu.Unlock()

	if ok {
		close(c.events)
		logging.Logger.Debug("Progress subscriber removed", "client_id", id)
	}
}

func (b *Broker) FileCaptured(path string) {
	b.Publish(NewFileCapturedEvent(path))
}

func (b *Broker) PendingCountChanged(count int, urls []string) {
	b.Publish(NewPendingChangedEvent(count, urls))
}

func (b *Broker) SessionError(message string) {
	b.Publish(NewSessionErrorEvent(message))
}

func (b *Broker) SessionStarted() {
	b.Publish(NewSessionEvent(EventSessionStarted))
}

func (b *Broker) SessionStopped() {
	b.Publish(NewSessionEvent(EventSessionStopped))
}
