// Package storage defines the interface for blob storage operations.
// Implementations are swapped by changing the concrete type injected at
// startup: the default Local backend keeps blobs flat on disk, the MinIO
// backend works with any S3-compatible provider (MinIO, ArvanCloud, AWS S3).
package storage

import (
	"context"
	"io"
)

// Storage is the interface for writing and reading stored blobs. Keys are
// flat stored filenames ({id}{ext}). There is no delete; uploaded files
// live until the operator cleans up.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Open returns a reader over the blob stored under key. The caller must
	// close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
