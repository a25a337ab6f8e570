package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local implements Store using the local file system.
type Local struct {
	root string
}

// NewLocal creates a Local store rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open opens a blob for reading.
func (s *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, name))
}
