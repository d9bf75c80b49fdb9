package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
)

var _ BlobStore = (*fileStore)(nil)

// fileStore keeps the blob zstd-compressed in a single file.
type fileStore struct {
	path    string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	mu      sync.Mutex
}

// NewFile creates a BlobStore backed by the file at path.
func NewFile(path string) (BlobStore, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &fileStore{
		path:    path,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func (f *fileStore) Load(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out, err := f.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", f.path, err)
	}
	log.Debug("Loaded blob from file", "path", f.path, "bytes", len(out))
	return out, nil
}

// Save writes to a temp file, syncs it and renames it over the previous blob.
func (f *fileStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	compressed := f.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	log.Debug("Saved blob to file", "path", f.path, "bytes", len(compressed))
	return nil
}
