package storage

import (
	"context"
	"io"
)

// Storage persists photo blobs under relative paths.
type Storage interface {
	// Save writes content at the given relative path, creating parents.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the blob at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error
}
