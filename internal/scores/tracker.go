package scores

// LastDay returns the most recent day anyone has played. It is derived by a
// full scan on every call and returns ErrNoScores for an empty snapshot.
func LastDay(snap *Snapshot) (int, error) {
	last, found := 0, false
	for _, days := range snap.users {
		for day := range days {
			if !found || day > last {
				last, found = day, true
			}
		}
	}
	if !found {
		return 0, ErrNoScores
	}
	return last, nil
}
