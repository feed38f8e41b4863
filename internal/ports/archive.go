package ports

import "context"

// ArchiveSink collects captured files. Put may be called concurrently for
// distinct paths. Finalize is called once and consumes the sink.
type ArchiveSink interface {
	Put(path string, data []byte) error
	Finalize() ([]byte, error)
}

// ArchiveFactory creates one sink per capture session
type ArchiveFactory interface {
	NewArchive() ArchiveSink
}

// ArchiveSaver persists finished archives outside the process and returns
// where the archive ended up
type ArchiveSaver interface {
	Save(ctx context.Context, filenameSuggestion string, data []byte) (string, error)
}
