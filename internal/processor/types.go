package processor

import (
	"errors"

	"github.com/mauv0809/wordle-tribble/internal/audit"
	"github.com/mauv0809/wordle-tribble/internal/leaderboard"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

var (
	// ErrInvalidUser is the store's error, re-exported for transport code.
	ErrInvalidUser = scores.ErrInvalidUser
	// ErrInvalidSubmission means the text or token is not a Wordle result.
	ErrInvalidSubmission = errors.New("not a Wordle result")
)

// Processor is the entry point for the transport layer: it validates and
// records submissions and renders leaderboards from a fresh snapshot.
type Processor struct {
	store       ScoreStore
	engine      *scoring.Engine
	annotations leaderboard.Annotations
	metrics     metrics.Metrics
	counters    metrics.CounterStore
	audit       audit.Recorder
}

// Board is the JSON view of both leaderboards.
type Board struct {
	LastDay int               `json:"last_day"`
	Daily   []leaderboard.Row `json:"daily"`
	Global  []leaderboard.Row `json:"global"`
	// Lifetime holds the legacy lifetime average per user.
	Lifetime map[string]float64 `json:"lifetime_average"`
}
