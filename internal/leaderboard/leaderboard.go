package leaderboard

import (
	"sort"
	"strings"

	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

// Daily ranks the users who played lastDay by that day's score.
func Daily(snap *scores.Snapshot, lastDay int, engine *scoring.Engine) []Row {
	var rows []Row
	for _, user := range snap.Users() {
		entry, ok := snap.Entry(user, lastDay)
		if !ok {
			continue
		}
		rows = append(rows, Row{User: user, Score: engine.Value(entry)})
	}
	return rank(rows)
}

// Global ranks every user who has played by their windowed score.
func Global(snap *scores.Snapshot, lastDay int, engine *scoring.Engine) []Row {
	windowStart := engine.WindowStart(lastDay)

	var rows []Row
	for _, user := range snap.Users() {
		score, ok := engine.WindowedScore(snap, lastDay, user)
		if !ok {
			continue
		}
		days := snap.DaysPlayed(user)
		inWindow := 0
		for _, day := range days {
			if day >= windowStart && day <= lastDay {
				inWindow++
			}
		}
		rows = append(rows, Row{
			User:       user,
			Score:      score,
			TotalDays:  len(days),
			WindowDays: inWindow,
		})
	}
	return rank(rows)
}

// rank sorts by score, then case-insensitive handle, then the raw handle so
// that the order never depends on input order. Ranks are assigned 1..N.
func rank(rows []Row) []Row {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score < rows[j].Score
		}
		li, lj := strings.ToLower(rows[i].User), strings.ToLower(rows[j].User)
		if li != lj {
			return li < lj
		}
		return rows[i].User < rows[j].User
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// Decorate sets the display marker of each row: a medal for the top three,
// combined with the user's annotation if any. It never reorders rows.
func Decorate(rows []Row, annotations Annotations) []Row {
	for i := range rows {
		marker := medals[rows[i].Rank]
		if a, ok := annotations[rows[i].User]; ok {
			if a.Replace {
				marker = a.Marker
			} else {
				marker = strings.TrimSpace(marker + " " + a.Marker)
			}
		}
		rows[i].Marker = marker
	}
	return rows
}
