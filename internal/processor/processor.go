package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/audit"
	"github.com/mauv0809/wordle-tribble/internal/leaderboard"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/parser"
	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

// New creates a new Processor. A nil recorder disables auditing.
func New(store ScoreStore, engine *scoring.Engine, annotations leaderboard.Annotations, metrics metrics.Metrics, counters metrics.CounterStore, recorder audit.Recorder) *Processor {
	if recorder == nil {
		recorder = audit.Nop()
	}
	return &Processor{
		store:       store,
		engine:      engine,
		annotations: annotations,
		metrics:     metrics,
		counters:    counters,
		audit:       recorder,
	}
}

// Submit records the result of day for user. token is "1".."6" or "X".
func (p *Processor) Submit(ctx context.Context, user string, day int, token string) error {
	start := time.Now()
	defer func() {
		p.metrics.ObserveSubmitDuration(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(user) == "" {
		p.reject(metrics.ReasonInvalidUser)
		return ErrInvalidUser
	}
	if day <= 0 {
		p.reject(metrics.ReasonInvalidSubmission)
		return fmt.Errorf("%w: %w", ErrInvalidSubmission, scores.ErrInvalidDay)
	}
	entry, err := scores.ParseToken(token)
	if err != nil {
		p.reject(metrics.ReasonInvalidSubmission)
		return fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	err = p.store.Record(ctx, user, day, entry)
	switch {
	case err == nil:
	case errors.Is(err, scores.ErrAlreadyPlayed):
		log.Info("Score already recorded", "user", user, "day", day)
		p.reject(metrics.ReasonAlreadyPlayed)
		return err
	case errors.Is(err, scores.ErrPersistence):
		log.Error("Failed to persist score", "error", err, "user", user, "day", day)
		p.metrics.IncPersistenceFailures()
		p.reject(metrics.ReasonPersistence)
		return err
	default:
		log.Error("Failed to record score", "error", err, "user", user, "day", day)
		return err
	}

	log.Info("Saved score", "user", user, "day", day, "score", entry)
	p.metrics.IncSubmissionsAccepted()
	p.counters.Increment(metrics.CounterSubmissions)
	p.audit.Record(user, day, entry)
	return nil
}

// SubmitMessage parses a shared Wordle result and submits it.
func (p *Processor) SubmitMessage(ctx context.Context, user string, text string) (parser.Result, error) {
	if strings.TrimSpace(user) == "" {
		p.reject(metrics.ReasonInvalidUser)
		return parser.Result{}, ErrInvalidUser
	}
	res, ok := parser.Parse(text)
	if !ok {
		p.reject(metrics.ReasonInvalidSubmission)
		return parser.Result{}, ErrInvalidSubmission
	}
	return res, p.Submit(ctx, user, res.Day, res.Token)
}

func (p *Processor) reject(reason string) {
	p.metrics.IncSubmissionsRejected(reason)
	p.counters.Increment(metrics.CounterRejections)
}

// Reply is the chat answer to a submission by user that ended with err.
func Reply(user string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("Saved @%s score of the day.", user)
	case errors.Is(err, ErrInvalidUser):
		return "ERROR: you must have a username to play."
	case errors.Is(err, ErrInvalidSubmission):
		return "ERROR: the bot only accepts messages generated by Wordle"
	case errors.Is(err, scores.ErrAlreadyPlayed):
		return fmt.Sprintf("ERROR: @%s has already played this day.", user)
	default:
		return fmt.Sprintf("ERROR: could not save @%s score, please try again later.", user)
	}
}

// current takes a snapshot and derives the last played day from it.
func (p *Processor) current() (*scores.Snapshot, int, error) {
	snap := p.store.Snapshot()
	lastDay, err := scores.LastDay(snap)
	return snap, lastDay, err
}

// DailyLeaderboardText renders the leaderboard of the last played day.
func (p *Processor) DailyLeaderboardText() string {
	snap, lastDay, err := p.current()
	if err != nil {
		return leaderboard.EmptyText
	}
	rows := leaderboard.Decorate(leaderboard.Daily(snap, lastDay, p.engine), p.annotations)
	p.rendered(metrics.BoardDaily)
	return leaderboard.DailyText(lastDay, rows)
}

// GlobalLeaderboardText renders the windowed leaderboard.
func (p *Processor) GlobalLeaderboardText() string {
	snap, lastDay, err := p.current()
	if err != nil {
		return leaderboard.EmptyText
	}
	rows := leaderboard.Decorate(leaderboard.Global(snap, lastDay, p.engine), p.annotations)
	p.rendered(metrics.BoardGlobal)
	return leaderboard.GlobalText(p.engine.Params().Window, rows)
}

// Leaderboards returns both boards and the legacy metric. An empty store
// yields an empty board with LastDay 0.
func (p *Processor) Leaderboards() Board {
	board := Board{
		Daily:    []leaderboard.Row{},
		Global:   []leaderboard.Row{},
		Lifetime: map[string]float64{},
	}
	snap, lastDay, err := p.current()
	if err != nil {
		return board
	}

	board.LastDay = lastDay
	board.Daily = leaderboard.Decorate(leaderboard.Daily(snap, lastDay, p.engine), p.annotations)
	board.Global = leaderboard.Decorate(leaderboard.Global(snap, lastDay, p.engine), p.annotations)
	for _, user := range snap.Users() {
		if avg, ok := p.engine.LifetimeAverage(snap, lastDay, user); ok {
			board.Lifetime[user] = avg
		}
	}
	p.rendered(metrics.BoardDaily)
	p.rendered(metrics.BoardGlobal)
	return board
}

// GlobalChart renders the global leaderboard as a PNG.
func (p *Processor) GlobalChart() ([]byte, error) {
	snap, lastDay, err := p.current()
	if err != nil {
		return nil, err
	}
	rows := leaderboard.Global(snap, lastDay, p.engine)
	title := fmt.Sprintf("Global leaderboard, day %d (%d-days window)", lastDay, p.engine.Params().Window)
	png, err := leaderboard.RenderChart(title, rows)
	if err != nil {
		return nil, err
	}
	p.rendered(metrics.BoardChart)
	return png, nil
}

func (p *Processor) rendered(board string) {
	p.metrics.IncLeaderboardRenders(board)
	p.counters.Increment(metrics.CounterLeaderboards)
}

// PersonalStats returns the per-attempt breakdown for user.
func (p *Processor) PersonalStats(user string) (scores.Stats, error) {
	if strings.TrimSpace(user) == "" {
		return scores.Stats{}, ErrInvalidUser
	}
	p.counters.Increment(metrics.CounterStatsRequested)
	return p.store.Snapshot().Stats(user)
}

// PersonalStatsText renders PersonalStats for chat.
func (p *Processor) PersonalStatsText(user string) string {
	stats, err := p.PersonalStats(user)
	switch {
	case errors.Is(err, ErrInvalidUser):
		return Reply(user, err)
	case err != nil:
		return leaderboard.NoStatsText
	}
	return leaderboard.StatsText(stats)
}

func (p *Processor) HelpText() string {
	return leaderboard.HelpText(p.engine.Params())
}
