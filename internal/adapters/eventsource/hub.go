package eventsource

import (
	"sync"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
)

// Hub is an in-process ports.RequestSource. Every published event goes to
// every subscriber whatever tab it came from; subscribers filter by tab.
type Hub struct {
	handlers map[int]ports.RequestHandler
	mu       sync.RWMutex
	nextID   int
}

var _ ports.RequestSource = (*Hub)(nil)

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]ports.RequestHandler)}
}

// Subscribe registers handler. tabID is only recorded for logging.
func (h *Hub) Subscribe(tabID int, handler ports.RequestHandler) (ports.Subscription, error) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = handler
	h.mu.Unlock()

	logging.Logger.Debug("Request source subscribed", "subscription_id", id, "tab_id", tabID)
	return &subscription{hub: h, id: id}, nil
}

// Publish delivers event to every subscriber and returns how many received it.
// Handlers run on the caller's goroutine.
func (h *Hub) Publish(event domain.RequestEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, handler := range h.handlers {
		handler(event)
	}
	return len(h.handlers)
}

// SubscriberCount returns the number of live subscriptions
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

type subscription struct {
	hub  *Hub
	id   int
	once sync.Once
}

// Unsubscribe waits for in-progress deliveries, so no event reaches the
// handler once it returns
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.handlers, s.id)
		s.hub.mu.Unlock()

		logging.Logger.Debug("Request source unsubscribed", "subscription_id", s.id)
	})
}
