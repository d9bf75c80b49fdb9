package scoring

import (
	"math"

	"github.com/mauv0809/wordle-tribble/internal/scores"
)

const (
	firstWeight = 0.1
	lastWeight  = 1.0
)

// New creates an Engine. Params are expected to be validated by the caller.
func New(params Params) *Engine {
	return &Engine{
		params:  params,
		weights: linspace(firstWeight, lastWeight, params.Window),
	}
}

func (e *Engine) Params() Params {
	return e.params
}

// WindowStart is the first day of the window ending at lastDay, before any
// truncation to a user's first day.
func (e *Engine) WindowStart(lastDay int) int {
	return lastDay - e.params.Window + 1
}

// Weights returns the n weights closest to 1.0, oldest first.
func (e *Engine) Weights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n > len(e.weights) {
		n = len(e.weights)
	}
	out := make([]float64, n)
	copy(out, e.weights[len(e.weights)-n:])
	return out
}

// Value is the numeric score of an entry: its guess count, or FailValue.
func (e *Engine) Value(entry scores.Entry) float64 {
	if entry.IsFailed() {
		return e.params.FailValue
	}
	return float64(entry.Guesses())
}

// WindowedScore is the weighted average over the trailing window ending at
// lastDay, never reaching back before the user's first day. Days without an
// entry count as MissValue. Lower is better. It reports false when the user
// has no entries.
func (e *Engine) WindowedScore(snap *scores.Snapshot, lastDay int, user string) (float64, bool) {
	first, ok := snap.FirstDayPlayed(user)
	if !ok {
		return 0, false
	}

	start := e.WindowStart(lastDay)
	if start < first {
		start = first
	}
	n := lastDay - start + 1
	if n <= 0 {
		return 0, false
	}

	weights := e.Weights(n)
	var sum, total float64
	for i, w := range weights {
		day := start + i
		v := e.params.MissValue
		if entry, played := snap.Entry(user, day); played {
			v = e.Value(entry)
		}
		sum += w * v
		total += w
	}
	return round2(sum / total), true
}

// LifetimeAverage is the legacy metric: the mean of every entry, minus
// DayBonus per day played, plus DayMalus per day missed since the first day.
func (e *Engine) LifetimeAverage(snap *scores.Snapshot, lastDay int, user string) (float64, bool) {
	days := snap.DaysPlayed(user)
	if len(days) == 0 {
		return 0, false
	}

	var sum float64
	for _, day := range days {
		entry, _ := snap.Entry(user, day)
		sum += e.Value(entry)
	}
	n := float64(len(days))
	missed := float64(lastDay-days[0]+1) - n
	s := sum/n - e.params.DayBonus*n + e.params.DayMalus*missed
	return round2(s), true
}

// linspace returns n evenly spaced points from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// round2 rounds half away from zero to two decimals, judged on the exact
// value of v rather than on the rounded product v*100.
func round2(v float64) float64 {
	p := v * 100
	r := math.Round(p)
	if math.Abs(p-math.Trunc(p)) == 0.5 {
		// p landed on a tie; the exact residual tells which side v was on.
		if rem := math.FMA(v, 100, -p); rem < 0 {
			r = math.Floor(p)
		} else if rem > 0 {
			r = math.Ceil(p)
		}
	}
	return r / 100
}
