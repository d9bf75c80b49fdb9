package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("blob not found")

// BlobStore persists one opaque blob. Save replaces the previous blob atomically.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
