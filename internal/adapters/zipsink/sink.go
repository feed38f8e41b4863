package zipsink

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/renato0307/sitegrab/internal/ports"
)

var (
	// ErrSinkClosed is returned by Put and Finalize once the archive is finalized
	ErrSinkClosed = errors.New("archive already finalized")
	// ErrArchiveTooLarge is returned by Finalize when the stored entries exceed MaxBytes
	ErrArchiveTooLarge = errors.New("archive exceeds size limit")
)

// Options configures new archives
type Options struct {
	// MaxBytes bounds the total size of stored entries; <= 0 means unlimited
	MaxBytes int64
	// Modified is stamped on every entry; zero uses the time of Finalize
	Modified time.Time
}

// Sink implements ports.ArchiveSink on an in-memory zip container.
// Entries are written uncompressed in path order. A later Put for the same
// path replaces the earlier content.
type Sink struct {
	closed  bool
	entries map[string][]byte
	mu      sync.Mutex
	opts    Options
	size    int64
}

var _ ports.ArchiveSink = (*Sink)(nil)

// New creates an empty archive
func New(opts Options) *Sink {
	return &Sink{
		entries: make(map[string][]byte),
		opts:    opts,
	}
}

// Put stores data under path
func (s *Sink) Put(path string, data []byte) error {
	if path == "" {
		return errors.New("archive path must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	if previous, ok := s.entries[path]; ok {
		s.size -= int64(len(previous))
	}
	s.entries[path] = data
	s.size += int64(len(data))
	return nil
}

// Len returns the number of distinct entries
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Finalize serializes the container and closes the sink
func (s *Sink) Finalize() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSinkClosed
	}
	s.closed = true

	if s.opts.MaxBytes > 0 && s.size > s.opts.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes stored, limit %d", ErrArchiveTooLarge, s.size, s.opts.MaxBytes)
	}

	modified := s.opts.Modified
	if modified.IsZero() {
		modified = time.Now()
	}

	paths := make([]string, 0, len(s.entries))
	for path := range s.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, path := range paths {
		entry, err := w.CreateHeader(&zip.FileHeader{
			Name:     path,
			Method:   zip.Store,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create entry %s: %w", path, err)
		}
		if _, err := entry.Write(s.entries[path]); err != nil {
			return nil, fmt.Errorf("failed to write entry %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}

	s.entries = nil
	return buf.Bytes(), nil
}

// Factory creates sinks sharing the same options
type Factory struct {
	Options Options
}

var _ ports.ArchiveFactory = Factory{}

// NewArchive creates an empty archive
func (f Factory) NewArchive() ports.ArchiveSink {
	return New(f.Options)
}
