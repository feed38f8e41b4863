package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCommandMisuse    = errors.New("command not valid in current capture state")
	ErrAlreadyCapturing = fmt.Errorf("%w: capture already in progress", ErrCommandMisuse)
	ErrNotCapturing     = fmt.Errorf("%w: no capture in progress", ErrCommandMisuse)

	// ErrBodyTooLarge is wrapped by a FetchError whose response body exceeded the fetch size limit
	ErrBodyTooLarge = errors.New("response body exceeds size limit")
)

// InvalidPathError is returned when a URL path fragment cannot be percent-decoded.
// The resource is skipped, the session continues.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// FetchError is returned when a resource could not be downloaded.
// StatusCode is zero for network-level failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsNetwork reports whether the failure happened before any HTTP status was received
func (e *FetchError) IsNetwork() bool { return e.StatusCode == 0 }

// FinalizeError is returned when the archive sink cannot produce the container bytes.
// It ends the session.
type FinalizeError struct {
	Err error
}

func (e *FinalizeError) Error() string {
	return fmt.Sprintf("failed to finalize archive: %v", e.Err)
}

func (e *FinalizeError) Unwrap() error { return e.Err }

// SaveError is returned when the finished archive cannot be persisted
type SaveError struct {
	Filename string
	Err      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save archive %s: %v", e.Filename, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
