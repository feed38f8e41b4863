package services

import "github.com/renato0307/sitegrab/internal/domain"

// CaptureOptions tunes the capture service
type CaptureOptions struct {
	// MaxConcurrentFetches bounds in-flight downloads; <= 0 uses DefaultMaxConcurrentFetches
	MaxConcurrentFetches int
	// Normalizer maps resource URLs to relative paths; nil uses domain.SubstringNormalizer
	Normalizer domain.URLNormalizer
}

// StopResult describes a finished capture session
type StopResult struct {
	ArchiveName string
	ArchiveSize int
	BaseURL     string
	FailedCount int
	FileCount   int
	SavedTo     string
	SessionID   string
}

// CaptureStatus is a snapshot of the capture service
type CaptureStatus struct {
	BaseURL     string
	FailedCount int
	FileCount   int
	PendingURLs []string
	Persisted   *domain.CaptureStatus
	SessionID   string
	State       domain.CaptureState
	TabID       int
}

// PathResolution shows how a resource URL maps into an archive
type PathResolution struct {
	ArchivePath string `json:"archive_path"`
	BaseURL     string `json:"base_url"`
	Normalized  string `json:"normalized"`
	ResourceURL string `json:"resource_url"`
}
