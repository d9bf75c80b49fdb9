package processor

import (
	"context"

	"github.com/mauv0809/wordle-tribble/internal/scores"
)

// ScoreStore defines the score operations required by the processor.
type ScoreStore interface {
	Record(ctx context.Context, user string, day int, entry scores.Entry) error
	Snapshot() *scores.Snapshot
}
