package scores

import "errors"

var (
	// ErrAlreadyPlayed is returned when a user submits a day that already has an entry.
	ErrAlreadyPlayed = errors.New("already played this day")

	// ErrPersistence means the store could not be saved; the triggering write was rolled back.
	ErrPersistence = errors.New("failed to persist scores")

	// ErrNoScores is returned when there is nothing recorded to compute from.
	ErrNoScores = errors.New("no scores recorded")

	ErrInvalidUser  = errors.New("missing user handle")
	ErrInvalidDay   = errors.New("day must be a positive integer")
	ErrInvalidEntry = errors.New("invalid score entry")
)
