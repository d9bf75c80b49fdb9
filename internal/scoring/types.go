package scoring

import (
	"errors"
	"fmt"
)

// Params are the tunable constants of both metrics.
type Params struct {
	// FailValue is substituted for a failed puzzle.
	FailValue float64
	// MissValue is substituted for a day without any entry. It must not be lower than FailValue.
	MissValue float64
	// Window is the number of trailing days the weighted score looks at.
	Window int
	// DayBonus and DayMalus only affect the legacy lifetime average.
	DayBonus float64
	DayMalus float64
}

// DefaultParams returns the values the leaderboard has always used.
func DefaultParams() Params {
	return Params{
		FailValue: 7,
		MissValue: 8,
		Window:    10,
		DayBonus:  0.10,
		DayMalus:  0.20,
	}
}

func (p Params) Validate() error {
	if p.Window < 1 {
		return fmt.Errorf("window must be at least 1 day, got %d", p.Window)
	}
	if p.MissValue < p.FailValue {
		return errors.New("missing a day cannot score better than failing it")
	}
	return nil
}

// Engine computes per-user metrics. It holds no state besides its params
// and is safe for concurrent use.
type Engine struct {
	params  Params
	weights []float64
}
