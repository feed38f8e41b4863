package ports

import "github.com/renato0307/sitegrab/internal/domain"

// RequestHandler receives observed request events
type RequestHandler func(event domain.RequestEvent)

// RequestSource delivers outgoing browser requests. A source may deliver
// events from other tabs than the one subscribed to, and must not invoke
// the handler before Subscribe returns.
type RequestSource interface {
	Subscribe(tabID int, handler RequestHandler) (Subscription, error)
}

// Subscription is held while capturing. No events are delivered after
// Unsubscribe returns.
type Subscription interface {
	Unsubscribe()
}
