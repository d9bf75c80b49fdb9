package scores

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// FailToken is the token Wordle prints when the word was not found.
const FailToken = "X"

// MaxGuesses is the attempt budget of a puzzle.
const MaxGuesses = 6

// Entry is a user's outcome for one day: solved in 1 to 6 guesses, or failed.
// The zero value is not a valid entry.
type Entry struct {
	guesses int
	failed  bool
}

// Guessed returns an entry for a puzzle solved in n guesses.
func Guessed(n int) Entry {
	return Entry{guesses: n}
}

// Failed returns an entry for a puzzle that was attempted but not solved.
func Failed() Entry {
	return Entry{failed: true}
}

// ParseToken converts a raw result token ("1".."6" or "X") into an Entry.
func ParseToken(token string) (Entry, error) {
	if token == FailToken {
		return Failed(), nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidEntry, token)
	}
	e := Guessed(n)
	if !e.Valid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidEntry, token)
	}
	return e, nil
}

func (e Entry) Valid() bool {
	if e.failed {
		return e.guesses == 0
	}
	return e.guesses >= 1 && e.guesses <= MaxGuesses
}

func (e Entry) IsFailed() bool {
	return e.failed
}

// Guesses returns the number of guesses, or 0 for a failed entry.
func (e Entry) Guesses() int {
	if e.failed {
		return 0
	}
	return e.guesses
}

// Token is the persisted form of the entry.
func (e Entry) Token() string {
	if e.failed {
		return FailToken
	}
	return strconv.Itoa(e.guesses)
}

func (e Entry) String() string {
	return e.Token()
}

// EncodeMsgpack stores the entry as its token so a failure never becomes a number on disk.
func (e Entry) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(e.Token())
}

func (e *Entry) DecodeMsgpack(dec *msgpack.Decoder) error {
	token, err := dec.DecodeString()
	if err != nil {
		return err
	}
	parsed, err := ParseToken(token)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
