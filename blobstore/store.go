// Package blobstore abstracts where corpus files come from: the local
// file system, process memory, or an object store. Subpackages provide
// S3 (AWS SDK v2) and MinIO backends.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a read-only source of named corpus blobs.
type Store interface {
	// Open opens the named blob for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
