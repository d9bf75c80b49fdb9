package scoring

import (
	"testing"

	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type days = map[int]scores.Entry

func snapshot(users map[string]days) *scores.Snapshot {
	m := make(map[string]map[int]scores.Entry, len(users))
	for u, d := range users {
		m[u] = d
	}
	return scores.NewSnapshot(m)
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.Window = 0
	assert.Error(t, p.Validate())

	p = DefaultParams()
	p.MissValue = 6
	assert.Error(t, p.Validate())
}

func TestWeights(t *testing.T) {
	e := New(DefaultParams())

	all := e.Weights(10)
	require.Len(t, all, 10)
	for i, w := range all {
		assert.InDelta(t, 0.1*float64(i+1), w, 1e-9)
	}
	assert.Equal(t, 1.0, all[9])

	last3 := e.Weights(3)
	require.Len(t, last3, 3)
	assert.InDelta(t, 0.8, last3[0], 1e-9)
	assert.InDelta(t, 0.9, last3[1], 1e-9)
	assert.Equal(t, 1.0, last3[2])

	assert.Len(t, e.Weights(25), 10, "Never more weights than the window")
	assert.Nil(t, e.Weights(0))

	p := DefaultParams()
	p.Window = 1
	assert.Equal(t, []float64{0.1}, New(p).Weights(1))
}

func TestWindowedScore(t *testing.T) {
	e := New(DefaultParams())

	t.Run("unknown user has no score", func(t *testing.T) {
		_, ok := e.WindowedScore(snapshot(nil), 100, "ann")
		assert.False(t, ok)
	})

	t.Run("window truncated to the first day played", func(t *testing.T) {
		snap := snapshot(map[string]days{"ann": {100: scores.Guessed(3)}})
		s, ok := e.WindowedScore(snap, 100, "ann")
		require.True(t, ok)
		assert.Equal(t, 3.0, s, "A single day in the window is the day's value")
	})

	t.Run("failure is scored as FailValue", func(t *testing.T) {
		snap := snapshot(map[string]days{"bob": {100: scores.Failed()}})
		s, ok := e.WindowedScore(snap, 100, "bob")
		require.True(t, ok)
		assert.Equal(t, 7.0, s)
	})

	t.Run("full window with misses and a failure", func(t *testing.T) {
		snap := snapshot(map[string]days{"ann": {
			80:  scores.Guessed(1), // before the window, ignored
			99:  scores.Failed(),
			100: scores.Guessed(2),
		}})
		// weights 0.1..1.0 sum to 5.5; days 91..98 missed (8), 99 failed (7), 100 solved in 2.
		// (8*3.6 + 7*0.9 + 2*1.0) / 5.5 = 37.1 / 5.5 = 6.745...
		s, ok := e.WindowedScore(snap, 100, "ann")
		require.True(t, ok)
		assert.Equal(t, 6.75, s)
	})

	t.Run("played every day of the window", func(t *testing.T) {
		d := days{}
		for day := 91; day <= 100; day++ {
			d[day] = scores.Guessed(4)
		}
		s, ok := e.WindowedScore(snapshot(map[string]days{"ann": d}), 100, "ann")
		require.True(t, ok)
		assert.Equal(t, 4.0, s)
	})

	t.Run("partial window uses the weights nearest one", func(t *testing.T) {
		snap := snapshot(map[string]days{"ann": {98: scores.Guessed(2), 100: scores.Guessed(4)}})
		// days 98..100 with weights 0.8, 0.9, 1.0: (2*0.8 + 8*0.9 + 4*1.0) / 2.7 = 12.8 / 2.7
		s, ok := e.WindowedScore(snap, 100, "ann")
		require.True(t, ok)
		assert.Equal(t, 4.74, s)
	})

	t.Run("last day before the user's first day", func(t *testing.T) {
		snap := snapshot(map[string]days{"ann": {100: scores.Guessed(2)}})
		_, ok := e.WindowedScore(snap, 90, "ann")
		assert.False(t, ok)
	})
}

func TestWindowedScore_MoreMissesNeverImprove(t *testing.T) {
	e := New(DefaultParams())
	full := days{}
	for day := 91; day <= 100; day++ {
		full[day] = scores.Guessed(5)
	}

	prev, ok := e.WindowedScore(snapshot(map[string]days{"ann": full}), 100, "ann")
	require.True(t, ok)

	// Remove days one at a time, keeping the first day so the window stays 10 days long.
	for day := 92; day <= 100; day++ {
		delete(full, day)
		s, ok := e.WindowedScore(snapshot(map[string]days{"ann": full}), 100, "ann")
		require.True(t, ok)
		assert.GreaterOrEqual(t, s, prev, "Missing day %d must not improve the score", day)
		prev = s
	}
	assert.Equal(t, 7.95, prev, "Only the oldest day played: (5*0.1 + 8*5.4) / 5.5")
}

func TestLifetimeAverage(t *testing.T) {
	e := New(DefaultParams())

	_, ok := e.LifetimeAverage(snapshot(nil), 100, "ann")
	assert.False(t, ok)

	s, ok := e.LifetimeAverage(snapshot(map[string]days{"ann": {100: scores.Guessed(3)}}), 100, "ann")
	require.True(t, ok)
	assert.Equal(t, 2.9, s, "3 - 0.1 bonus, no missed days")

	s, ok = e.LifetimeAverage(snapshot(map[string]days{"ann": {98: scores.Guessed(3), 100: scores.Failed()}}), 100, "ann")
	require.True(t, ok)
	assert.Equal(t, 5.0, s, "mean 5 - 0.2 bonus + 0.2 malus for day 99")
}

func TestValue(t *testing.T) {
	p := DefaultParams()
	p.FailValue = 9
	p.MissValue = 10
	e := New(p)
	assert.Equal(t, 9.0, e.Value(scores.Failed()))
	assert.Equal(t, 2.0, e.Value(scores.Guessed(2)))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.0, 3.0},
		{6.4049, 6.4},
		{2.125, 2.13},
		{-2.125, -2.13},
		// 3.425 is stored just below the half-cent; v*100 rounds up to 342.5.
		{3.4249999999999998, 3.42},
		{1.3249999999999999556, 1.32},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round2(tt.in), "round2(%v)", tt.in)
	}
}

func TestWindowedScore_JustBelowHalfCent(t *testing.T) {
	e := New(DefaultParams())
	snap := snapshot(map[string]days{
		"ann": {96: scores.Guessed(1), 97: scores.Guessed(1), 98: scores.Guessed(1), 99: scores.Guessed(4)},
		"bob": {100: scores.Guessed(2)},
	})

	// (0.6 + 0.7 + 0.8 + 4*0.9 + 8*1.0) / 4.0 = 3.425, stored as 3.42499999...
	s, ok := e.WindowedScore(snap, 100, "ann")
	require.True(t, ok)
	assert.Equal(t, 3.42, s)
}

func TestLifetimeAverage_JustBelowHalfCent(t *testing.T) {
	e := New(DefaultParams())
	played := days{100: scores.Guessed(2)}
	for day := 88; day <= 94; day++ {
		played[day] = scores.Guessed(1)
	}

	// 9/8 - 0.1*8 + 0.2*5 = 1.325, stored as 1.32499999...
	s, ok := e.LifetimeAverage(snapshot(map[string]days{"ann": played}), 100, "ann")
	require.True(t, ok)
	assert.Equal(t, 1.32, s)
}
