package filesaver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/ports"
	"github.com/renato0307/sitegrab/paths"
)

// maxConflictSuffix bounds the "name (N).zip" search
const maxConflictSuffix = 10000

// Saver implements ports.ArchiveSaver by writing archives into a directory.
// An existing file is never overwritten; the new one gets a numbered name.
type Saver struct {
	dir string
}

var _ ports.ArchiveSaver = (*Saver)(nil)

// New creates a saver writing into dir, expanding a leading ~
func New(dir string) *Saver {
	return &Saver{dir: paths.ExpandPath(dir)}
}

// Dir returns the output directory
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes data as filenameSuggestion (or a numbered variant) and returns the path written
func (s *Saver) Save(ctx context.Context, filenameSuggestion string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := filepath.Base(filepath.Clean(filenameSuggestion))
	if name == "." || name == string(filepath.Separator) || name == ".." {
		return "", fmt.Errorf("invalid archive file name %q", filenameSuggestion)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxConflictSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(s.dir, candidate)

		// O_EXCL makes the existence check and the create atomic
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close %s: %w", path, err)
		}

		logging.Logger.Info("Archive written", "path", path, "size", len(data))
		return path, nil
	}

	return "", fmt.Errorf("no free file name for %s in %s", name, s.dir)
}
