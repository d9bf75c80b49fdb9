package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

var _ BlobStore = (*sqliteStore)(nil)

// DefaultName is the snapshots row holding the score store.
const DefaultName = "scores"

// sqliteStore keeps the blob as a single row of the snapshots table.
type sqliteStore struct {
	db   *sql.DB
	name string
}

// NewSQLite creates a BlobStore that stores the blob under name in the snapshots table.
func NewSQLite(db *sql.DB, name string) BlobStore {
	return &sqliteStore{
		db:   db,
		name: name,
	}
}

func (s *sqliteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE name = ?", s.name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("Failed to load snapshot", "error", err, "name", s.name)
		return nil, err
	}
	return data, nil
}

func (s *sqliteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at;
	`, s.name, data, time.Now().Unix())
	if err != nil {
		log.Error("Failed to save snapshot", "error", err, "name", s.name)
		return err
	}
	log.Debug("Saved snapshot", "name", s.name, "bytes", len(data))
	return nil
}
