package progress

import "time"

// Event types published to progress subscribers
const (
	EventSessionStarted = "session:started"
	EventSessionStopped = "session:stopped"
	EventSessionError   = "session:error"
	EventFileCaptured   = "file:captured"
	EventPendingChanged = "pending:changed"
)

// Event is one progress notification.
// Rendered as "event: <Type>\ndata: <JSON Data>\n\n" on the SSE stream.
type Event struct {
	Data any    `json:"data"`
	Type string `json:"type"`
}

// FileCapturedData is the payload for file:captured events
type FileCapturedData struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// PendingChangedData is the payload for pending:changed events
type PendingChangedData struct {
	Count     int      `json:"count"`
	Timestamp string   `json:"timestamp"`
	URLs      []string `json:"urls"`
}

// SessionErrorData is the payload for session:error events
type SessionErrorData struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SessionData is the payload for session:started and session:stopped events
type SessionData struct {
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewFileCapturedEvent creates a file:captured event
func NewFileCapturedEvent(path string) Event {
	return Event{Type: EventFileCaptured, Data: FileCapturedData{Path: path, Timestamp: timestamp()}}
}

// NewPendingChangedEvent creates a pending:changed event
func NewPendingChangedEvent(count int, urls []string) Event {
	if urls == nil {
		urls = []string{}
	}
	return Event{Type: EventPendingChanged, Data: PendingChangedData{Count: count, Timestamp: timestamp(), URLs: urls}}
}

// NewSessionErrorEvent creates a session:error event
func NewSessionErrorEvent(message string) Event {
	return Event{Type: EventSessionError, Data: SessionErrorData{Message: message, Timestamp: timestamp()}}
}

// NewSessionEvent creates a session:started or session:stopped event
func NewSessionEvent(eventType string) Event {
	return Event{Type: eventType, Data: SessionData{Timestamp: timestamp()}}
}
