package scores

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/blobstore"
)

// Open loads the saved scores from blob. A missing blob starts an empty store.
func Open(ctx context.Context, blob blobstore.BlobStore) (*Store, error) {
	s := &Store{
		users: make(userDays),
		blob:  blob,
	}

	data, err := blob.Load(ctx)
	if errors.Is(err, blobstore.ErrNotFound) {
		log.Info("No saved scores found, starting with an empty store")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	users, err := decodeState(data)
	if err != nil {
		return nil, err
	}
	s.users = users
	log.Info("Loaded saved scores", "users", len(users))
	return s, nil
}

// Record stores entry for (user, day) and persists the whole store.
// An existing entry is never overwritten. If the store cannot be saved the
// entry is rolled back and an error wrapping ErrPersistence is returned.
func (s *Store) Record(ctx context.Context, user string, day int, entry Entry) error {
	if user == "" {
		return ErrInvalidUser
	}
	if day <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}
	if !entry.Valid() {
		return ErrInvalidEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	days, known := s.users[user]
	if _, ok := days[day]; ok {
		return fmt.Errorf("%w: %s, day %d", ErrAlreadyPlayed, user, day)
	}
	if !known {
		days = make(map[int]Entry)
		s.users[user] = days
	}
	days[day] = entry

	if err := s.persistLocked(ctx); err != nil {
		delete(days, day)
		if !known {
			delete(s.users, user)
		}
		log.Error("Rolled back score after persistence failure", "error", err, "user", user, "day", day)
		return err
	}

	log.Debug("Recorded score", "user", user, "day", day, "score", entry)
	return nil
}

// persistLocked saves the full store, retrying once. Callers hold the write lock.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := encodeState(s.users)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	err = s.blob.Save(ctx, data)
	if err != nil {
		log.Warn("Failed to save scores, retrying", "error", err)
		err = s.blob.Save(ctx, data)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Store) Entry(user string, day int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.entry(user, day)
}

// DaysPlayed returns the user's recorded days in ascending order.
func (s *Store) DaysPlayed(user string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.daysPlayed(user)
}

func (s *Store) FirstDayPlayed(user string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.firstDayPlayed(user)
}

// Users returns every known user, sorted.
func (s *Store) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.userList()
}

// Snapshot copies the current state for read-only computation.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Snapshot{users: s.users.clone()}
}
