package scores

// NewSnapshot builds a snapshot from a literal map, copying it.
func NewSnapshot(users map[string]map[int]Entry) *Snapshot {
	return &Snapshot{users: userDays(users).clone()}
}

func (s *Snapshot) Entry(user string, day int) (Entry, bool) {
	return s.users.entry(user, day)
}

func (s *Snapshot) DaysPlayed(user string) []int {
	return s.users.daysPlayed(user)
}

func (s *Snapshot) FirstDayPlayed(user string) (int, bool) {
	return s.users.firstDayPlayed(user)
}

func (s *Snapshot) Users() []string {
	return s.users.userList()
}

// Entries counts every recorded entry across all users.
func (s *Snapshot) Entries() int {
	n := 0
	for _, days := range s.users {
		n += len(days)
	}
	return n
}

// Stats returns the per-attempt breakdown for user.
func (s *Snapshot) Stats(user string) (Stats, error) {
	days := s.users[user]
	if len(days) == 0 {
		return Stats{}, ErrNoScores
	}

	stats := Stats{User: user, GamesPlayed: len(days)}
	for _, e := range days {
		if e.IsFailed() {
			stats.Failed++
			continue
		}
		stats.Guesses[e.Guesses()-1]++
	}
	return stats, nil
}
