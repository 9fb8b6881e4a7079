package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rs/xid"

	"github.com/filedrop/service/internal/storage"
)

// maxIDAttempts bounds the id allocation retry loop. xid embeds a per-process
// counter, so two in-process generations cannot collide; a second attempt is
// already exceptional.
const maxIDAttempts = 5

// extPattern accepts plain dot-extensions. Anything else (path separators,
// spaces, control bytes) is dropped so stored names stay flat and URL-safe.
var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)

// Service owns the upload and resolve flows: it allocates short ids, writes
// blobs, and keeps the registry in step with storage.
type Service struct {
	reg   *Registry
	store storage.Storage
}

// NewService creates a new share Service.
func NewService(reg *Registry, store storage.Storage) *Service {
	return &Service{reg: reg, store: store}
}

// Store persists one upload: it derives the stored name from a fresh short
// id plus the original filename's extension, writes the bytes, and registers
// the mapping. The id becomes visible only after the blob write completes.
// The reader must be seekable so a lost id race can rewind and retry under a
// fresh id.
func (s *Service) Store(ctx context.Context, originalName string, f io.ReadSeeker, size int64) (Entry, error) {
	ext := safeExt(originalName)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return Entry{}, fmt.Errorf("rewind upload: %w", err)
		}

		id := xid.New().String()
		e := Entry{
			ID:         id,
			StoredName: id + ext,
			Size:       size,
			UploadedAt: time.Now().UTC(),
		}

		if err := s.store.Upload(ctx, e.StoredName, f, size, contentType); err != nil {
			return Entry{}, fmt.Errorf("store blob: %w", err)
		}
		if s.reg.Insert(e) {
			return e, nil
		}
	}
	return Entry{}, errors.New("could not allocate a unique id")
}

// Resolve returns the entry registered under id.
func (s *Service) Resolve(id string) (Entry, error) {
	return s.reg.Get(id)
}

// OpenBlob opens the stored bytes for the given entry. The caller must close
// the returned reader.
func (s *Service) OpenBlob(ctx context.Context, e Entry) (io.ReadCloser, error) {
	return s.store.Open(ctx, e.StoredName)
}

// List returns all registered entries, newest first.
func (s *Service) List() []Entry {
	return s.reg.List()
}

// IsNotFound returns true when the error indicates an unknown id.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// safeExt extracts the extension from an uploaded filename, keeping its case
// so the stored name's extension always matches the original's. Hostile or
// exotic extensions become empty, which classifies the file as download-only.
func safeExt(name string) string {
	ext := filepath.Ext(name)
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}
