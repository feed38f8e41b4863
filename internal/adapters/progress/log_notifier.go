package progress

import (
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
)

// LogNotifier implements ports.ProgressNotifier by logging every event
type LogNotifier struct{}

var _ ports.ProgressNotifier = LogNotifier{}

func (LogNotifier) FileCaptured(path string) {
	logging.Logger.Info("File captured", "path", path)
}

func (LogNotifier) PendingCountChanged(count int, _ []string) {
	logging.Logger.Debug("Pending fetches changed", "count", count)
}

func (LogNotifier) SessionError(message string) {
	logging.Logger.Error("Capture session error", "message", message)
}

func (LogNotifier) SessionStarted() {
	logging.Logger.Info("Capture session started")
}

func (LogNotifier) SessionStopped() {
	logging.Logger.Info("Capture session stopped")
}

// Multi fans notifications out to several notifiers in order
type Multi []ports.ProgressNotifier

var _ ports.ProgressNotifier = Multi{}

func (m Multi) FileCaptured(path string) {
	for _, n := range m {
		n.FileCaptured(path)
	}
}

func (m Multi) PendingCountChanged(count int, urls []string) {
	for _, n := range m {
		n.PendingCountChanged(count, urls)
	}
}

func (m Multi) SessionError(message string) {
	for _, n := range m {
		n.SessionError(message)
	}
}

func (m Multi) SessionStarted() {
	for _, n := range m {
		n.SessionStarted()
	}
}

func (m Multi) SessionStopped() {
	for _, n := range m {
		n.SessionStopped()
	}
}
