package ports

import (
	"context"

	"github.com/renato0307/sitegrab/internal/domain"
)

// CaptureStateReader reads the persisted capture status
type CaptureStateReader interface {
	Load(ctx context.Context) (*domain.CaptureStatus, error)
}

// CaptureStateWriter records the capture flag and file count
type CaptureStateWriter interface {
	SetActive(ctx context.Context, active bool, sessionID, baseURL string) error
	SetFileCount(ctx context.Context, count int) error
}

// CaptureStateRepository is the composite interface
type CaptureStateRepository interface {
	CaptureStateReader
	CaptureStateWriter
	Close() error
}
