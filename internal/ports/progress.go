package ports

// ProgressNotifier receives capture progress for display
type ProgressNotifier interface {
	FileCaptured(path string)
	PendingCountChanged(count int, urls []string)
	SessionError(message string)
	SessionStarted()
	SessionStopped()
}
