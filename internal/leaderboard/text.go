package leaderboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

const (
	EmptyText   = "No users have played yet."
	NoStatsText = "You haven't submitted any score yet."
	WordleURL   = "https://www.nytimes.com/games/wordle/index.html"
)

// FormatScore prints a score without trailing zeros: 3, 4.5, 6.75.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func prefix(r Row) string {
	if r.Marker == "" {
		return fmt.Sprintf("%d. @%s", r.Rank, r.User)
	}
	return fmt.Sprintf("%d. %s @%s", r.Rank, r.Marker, r.User)
}

func DailyText(lastDay int, rows []Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 LEADERBOARD OF DAY %d\n\n", lastDay)
	for _, r := range rows {
		fmt.Fprintf(&b, "%s ( %s )\n", prefix(r), FormatScore(r.Score))
	}
	return b.String()
}

func GlobalText(window int, rows []Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 GLOBAL LEADERBOARD (%d-days window)\n", window)
	fmt.Fprintf(&b, "[ score | total games | games in last %d days ]\n\n", window)
	for _, r := range rows {
		fmt.Fprintf(&b, "%s ( %s ) [ %d ] [ %d ]\n", prefix(r), FormatScore(r.Score), r.TotalDays, r.WindowDays)
	}
	return b.String()
}

func StatsText(stats scores.Stats) string {
	var b strings.Builder
	b.WriteString("📊 YOUR STATS\n\n")
	fmt.Fprintf(&b, "You played %d game(s)\n", stats.GamesPlayed)
	for i, n := range stats.Guesses {
		moves := "moves"
		if i == 0 {
			moves = "move"
		}
		fmt.Fprintf(&b, "You guessed in *%d* %s %d time(s)\n", i+1, moves, n)
	}
	fmt.Fprintf(&b, "You failed %d time(s)\n", stats.Failed)
	return b.String()
}

// HelpText explains how to play and how the global score works.
func HelpText(p scoring.Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Play from the official Wordle website (%s) and share your result here.\n\n", WordleURL)
	fmt.Fprintf(&b, "Your score on the leaderboard is the linearly weighted average of your games in the last %d days. ", p.Window)
	b.WriteString("The lower the score, the better. ")
	fmt.Fprintf(&b, "If you fail to guess the word of the day, you get a score of %s. ", FormatScore(p.FailValue))
	fmt.Fprintf(&b, "For every day you don't play since you started, you get a score of %s.", FormatScore(p.MissValue))
	return b.String()
}
