package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/processor"
	"github.com/mauv0809/wordle-tribble/internal/scores"
)

func LeaderboardHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, proc.Leaderboards())
	}
}

func ChartHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		png, err := proc.GlobalChart()
		if errors.Is(err, scores.ErrNoScores) {
			http.Error(w, "No users have played yet.", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Failed to render chart", http.StatusInternalServerError)
			log.Error("Failed to render leaderboard chart", "error", err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			log.Error("Failed to write chart", "error", err)
		}
	}
}

func StatsHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := strings.TrimPrefix(strings.TrimSpace(r.URL.Query().Get("user")), "@")
		stats, err := proc.PersonalStats(user)
		switch {
		case errors.Is(err, processor.ErrInvalidUser):
			http.Error(w, "Query parameter 'user' is required.", http.StatusBadRequest)
			return
		case errors.Is(err, scores.ErrNoScores):
			http.Error(w, "User has not played yet.", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats", "error", err, "user", user)
			return
		}
		respondWithJSON(w, http.StatusOK, stats)
	}
}

func CountersHandler(counters metrics.CounterStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := counters.GetAll()
		if err != nil {
			http.Error(w, "Failed to get counters", http.StatusInternalServerError)
			log.Error("Failed to get counters from store", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, all)
	}
}
