package blobstore

import (
	"context"
	"sync"
)

// Mock is an in-memory BlobStore for testing.
// It is safe for concurrent use.
type Mock struct {
	mu   sync.Mutex
	data []byte

	// Spies for method calls
	LoadFunc func(ctx context.Context) ([]byte, error)
	SaveFunc func(ctx context.Context, data []byte) error

	// Call records
	SaveCalls int
}

// NewMock creates an empty mock; Load returns ErrNotFound until something is saved.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *Mock) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, data); err != nil {
			return err
		}
	}
	m.data = append([]byte(nil), data...)
	return nil
}

// Data returns a copy of the last saved blob.
func (m *Mock) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
