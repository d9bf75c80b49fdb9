package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  Result
		match bool
	}{
		{"solved", "Wordle 100 3/6\n\n⬛🟨⬛⬛⬛\n🟩🟩🟩🟩🟩", Result{Day: 100, Token: "3"}, true},
		{"failed", "Wordle 242 X/6", Result{Day: 242, Token: "X"}, true},
		{"hard mode", "Wordle 800 4/6*", Result{Day: 800, Token: "4"}, true},
		{"thousands separator", "Wordle 1,234 2/6", Result{Day: 1234, Token: "2"}, true},
		{"two separators", "Wordle 1,234,567 5/6", Result{Day: 1234567, Token: "5"}, true},
		{"doubled separator", "Wordle 1,,2 3/6", Result{}, false},
		{"short group", "Wordle 12,34 3/6", Result{}, false},
		{"trailing separator", "Wordle 100, 3/6", Result{}, false},
		{"leading separator", "Wordle ,100 3/6", Result{}, false},
		{"seven guesses", "Wordle 100 7/6", Result{}, false},
		{"not at start", "look: Wordle 100 3/6", Result{}, false},
		{"lowercase", "wordle 100 3/6", Result{}, false},
		{"day zero", "Wordle 0 3/6", Result{}, false},
		{"empty", "", Result{}, false},
		{"chatter", "who is playing today?", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
