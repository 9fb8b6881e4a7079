package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local implements Storage on a flat directory: every blob is a single file
// named by its key, no subdirectories.
type Local struct {
	dir string
}

// NewLocal creates the storage directory if it is absent and returns a
// ready-to-use Local store.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the storage directory path.
func (l *Local) Dir() string {
	return l.dir
}

// Upload writes reader to a file named key. A partially written file is
// removed on copy failure.
func (l *Local) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", key, err)
	}

	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %q: %w", key, err)
	}
	return nil
}

// Open opens the blob stored under key for reading.
func (l *Local) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", key, err)
	}
	return f, nil
}

// path resolves key inside the storage directory, rejecting anything that
// would escape it. Keys are generated server-side, so a hit here means a bug
// or a forged request.
func (l *Local) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.dir, key), nil
}
