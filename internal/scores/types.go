package scores

import (
	"sort"
	"sync"

	"github.com/mauv0809/wordle-tribble/internal/blobstore"
)

// Store is the source of truth for every user's daily entries.
// Every successful write is persisted through the blob store before it returns.
type Store struct {
	mu    sync.RWMutex
	users userDays
	blob  blobstore.BlobStore
}

// Snapshot is an immutable copy of the store taken under a single read lock.
type Snapshot struct {
	users userDays
}

// Stats summarizes a user's history.
type Stats struct {
	User        string `json:"user"`
	GamesPlayed int    `json:"games_played"`
	// Guesses[i] counts puzzles solved in i+1 guesses.
	Guesses [MaxGuesses]int `json:"guesses"`
	Failed  int             `json:"failed"`
}

type userDays map[string]map[int]Entry

func (u userDays) clone() userDays {
	out := make(userDays, len(u))
	for user, days := range u {
		cp := make(map[int]Entry, len(days))
		for day, e := range days {
			cp[day] = e
		}
		out[user] = cp
	}
	return out
}

func (u userDays) entry(user string, day int) (Entry, bool) {
	e, ok := u[user][day]
	return e, ok
}

func (u userDays) daysPlayed(user string) []int {
	days := make([]int, 0, len(u[user]))
	for day := range u[user] {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

func (u userDays) firstDayPlayed(user string) (int, bool) {
	first, found := 0, false
	for day := range u[user] {
		if !found || day < first {
			first, found = day, true
		}
	}
	return first, found
}

func (u userDays) userList() []string {
	users := make([]string, 0, len(u))
	for user := range u {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}
