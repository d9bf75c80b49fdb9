package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/notifier"
	"github.com/mauv0809/wordle-tribble/internal/processor"
	"github.com/slack-go/slack/slackevents"
)

// SlackEventsHandler receives Events API callbacks. Wordle results posted in
// channelID are submitted and answered in thread. An empty channelID accepts
// every channel the bot is in.
func SlackEventsHandler(proc *processor.Processor, notifier notifier.Notifier, channelID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		// Slack retries when we are slow to answer; the first delivery was already handled.
		if retry := r.Header.Get("X-Slack-Retry-Num"); retry != "" {
			log.Info("Skipping Slack retry", "retry", retry, "reason", r.Header.Get("X-Slack-Retry-Reason"))
			w.WriteHeader(http.StatusOK)
			return
		}

		event, err := slackevents.ParseEvent(json.RawMessage(bodyBytes), slackevents.OptionNoVerifyToken())
		if err != nil {
			log.Error("Failed to parse event payload", "error", err)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		switch event.Type {
		case slackevents.URLVerification:
			challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
			if !ok {
				http.Error(w, "Invalid challenge", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(challenge.Challenge))
			return

		case slackevents.CallbackEvent:
			log.Info("Received event", "type", event.InnerEvent.Type)
			if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
				handleMessage(r, proc, notifier, channelID, msg)
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// handleMessage submits a channel message that looks like a Wordle result.
// Ordinary chatter is ignored; text starting with "Wordle" that does not
// parse gets an error reply.
func handleMessage(r *http.Request, proc *processor.Processor, notifier notifier.Notifier, channelID string, msg *slackevents.MessageEvent) {
	if channelID != "" && msg.Channel != channelID {
		log.Debug("Ignoring message from different channel", "channel", msg.Channel)
		return
	}
	if msg.BotID != "" || msg.SubType != "" {
		log.Debug("Ignoring bot or edited message", "subtype", msg.SubType)
		return
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(msg.Text)), "wordle") {
		return
	}

	// Slack may hang up before we answer; the submission and its reply still go through.
	ctx := context.WithoutCancel(r.Context())
	user, err := notifier.ResolveHandle(ctx, msg.User)
	if err != nil {
		log.Warn("Could not resolve Slack handle", "error", err, "user_id", msg.User)
		user = ""
	}

	_, err = proc.SubmitMessage(ctx, user, strings.TrimSpace(msg.Text))
	reply := processor.Reply(user, err)
	if err := notifier.SendReply(ctx, msg.Channel, msg.TimeStamp, reply, IsDryRunFromContext(r)); err != nil {
		log.Error("Failed to reply to submission", "error", err, "user", user)
	}
}
