package handlers

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/notifier"
	"github.com/mauv0809/wordle-tribble/internal/processor"
	"github.com/slack-go/slack"
)

func LeaderboardCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := notifier.FormatLeaderboardResponse(proc.DailyLeaderboardText(), proc.GlobalLeaderboardText())
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, msg)
	}
}

// StatsCommandHandler answers /stats for the caller, or for the handle given
// as the command text.
func StatsCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		user := strings.TrimPrefix(strings.TrimSpace(cmd.Text), "@")
		if user == "" {
			user, err = notifier.ResolveHandle(r.Context(), cmd.UserID)
			if err != nil {
				log.Warn("Could not resolve Slack handle, falling back to user name", "error", err, "user_id", cmd.UserID)
				user = cmd.UserName
			}
		}

		log.Info("Received stats command", "user", user)
		msg, err := notifier.FormatStatsResponse(user, proc.PersonalStatsText(user))
		if err != nil {
			http.Error(w, "Failed to format stats", http.StatusInternalServerError)
			log.Error("Failed to format stats", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, msg)
	}
}

func HelpCommandHandler(proc *processor.Processor, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, err := notifier.FormatHelpResponse(proc.HelpText())
		if err != nil {
			http.Error(w, "Failed to format help", http.StatusInternalServerError)
			log.Error("Failed to format help", "error", err)
			return
		}
		respondWithJSON(w, http.StatusOK, msg)
	}
}
