package scores_test

import (
	"testing"

	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	for token, want := range map[string]scores.Entry{
		"1": scores.Guessed(1),
		"6": scores.Guessed(6),
		"X": scores.Failed(),
	} {
		got, err := scores.ParseToken(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
		assert.Equal(t, token, got.Token())
	}

	for _, token := range []string{"", "0", "7", "x", "-1", "3/6"} {
		_, err := scores.ParseToken(token)
		assert.ErrorIs(t, err, scores.ErrInvalidEntry, token)
	}
}

func TestEntry(t *testing.T) {
	f := scores.Failed()
	assert.True(t, f.Valid())
	assert.True(t, f.IsFailed())
	assert.Zero(t, f.Guesses())

	g := scores.Guessed(4)
	assert.True(t, g.Valid())
	assert.False(t, g.IsFailed())
	assert.Equal(t, 4, g.Guesses())

	assert.False(t, scores.Entry{}.Valid())
}

func TestLastDay(t *testing.T) {
	_, err := scores.LastDay(scores.NewSnapshot(nil))
	assert.ErrorIs(t, err, scores.ErrNoScores)

	_, err = scores.LastDay(scores.NewSnapshot(map[string]map[int]scores.Entry{"ann": {}}))
	assert.ErrorIs(t, err, scores.ErrNoScores, "A user without entries does not define a day")

	snap := scores.NewSnapshot(map[string]map[int]scores.Entry{
		"ann": {100: scores.Guessed(3), 90: scores.Guessed(2)},
		"bob": {104: scores.Failed()},
		"cat": {1: scores.Guessed(5)},
	})
	last, err := scores.LastDay(snap)
	require.NoError(t, err)
	assert.Equal(t, 104, last)
}

func TestStats(t *testing.T) {
	snap := scores.NewSnapshot(map[string]map[int]scores.Entry{
		"ann": {
			1: scores.Guessed(3),
			2: scores.Guessed(3),
			3: scores.Guessed(1),
			4: scores.Failed(),
			5: scores.Guessed(6),
		},
	})

	stats, err := snap.Stats("ann")
	require.NoError(t, err)
	assert.Equal(t, scores.Stats{
		User:        "ann",
		GamesPlayed: 5,
		Guesses:     [scores.MaxGuesses]int{1, 0, 2, 0, 0, 1},
		Failed:      1,
	}, stats)

	_, err = snap.Stats("bob")
	assert.ErrorIs(t, err, scores.ErrNoScores)
}

func TestNewSnapshot_Copies(t *testing.T) {
	src := map[string]map[int]scores.Entry{"ann": {1: scores.Guessed(2)}}
	snap := scores.NewSnapshot(src)
	src["ann"][2] = scores.Guessed(3)

	assert.Equal(t, []int{1}, snap.DaysPlayed("ann"))
}
