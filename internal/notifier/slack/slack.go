package slack

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}

var _ notifier.Notifier = &Notifier{}

const sendTimeout = 10 * time.Second

// Notifier talks to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	counters  metrics.CounterStore

	mu      sync.RWMutex
	handles map[string]string
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics, counters metrics.CounterStore) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics, counters)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, counters metrics.CounterStore) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		counters:  counters,
		handles:   make(map[string]string),
	}
}

func (s *Notifier) SendReply(ctx context.Context, channel, threadTS, text string, dryRun bool) error {
	if channel == "" {
		channel = s.channelID
	}
	if dryRun {
		log.Info("[Dry Run] Would send Slack message", "channel", channel, "thread_ts", threadTS, "text", text)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}
	channelID, timestamp, err := s.api.PostMessageContext(ctx, channel, opts...)
	if err != nil {
		s.metrics.IncSlackMessageFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channel)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackMessageSent()
	s.counters.Increment(metrics.CounterSlackMessages)
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// ResolveHandle returns the Slack username of userID. Results are cached
// for the lifetime of the process.
func (s *Notifier) ResolveHandle(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	handle, ok := s.handles[userID]
	s.mu.RUnlock()
	if ok {
		return handle, nil
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	user, err := s.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	handle = user.Name
	if handle == "" {
		handle = user.Profile.DisplayName
	}
	if handle == "" {
		return "", fmt.Errorf("user %s has no username", userID)
	}

	s.mu.Lock()
	s.handles[userID] = handle
	s.mu.Unlock()
	return handle, nil
}

// FormatLeaderboardResponse formats both leaderboards for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(daily, global string) (any, error) {
	return s.formatLeaderboard(daily, global), nil
}

// FormatStatsResponse formats a user's stats for a slash command response.
func (s *Notifier) FormatStatsResponse(user, stats string) (any, error) {
	return s.formatStats(user, stats), nil
}

// FormatHelpResponse formats the help text for a slash command response.
func (s *Notifier) FormatHelpResponse(help string) (any, error) {
	return s.formatHelp(help), nil
}

// formatLeaderboard creates the leaderboard message using Block Kit.
// The first line of each rendered board becomes its header.
func (s *Notifier) formatLeaderboard(daily, global string) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, boardBlocks(daily)...)
	if global != "" && global != daily {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, boardBlocks(global)...)
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.ResponseType = slack.ResponseTypeInChannel
	return msg
}

func boardBlocks(text string) []slack.Block {
	header, body, found := strings.Cut(strings.TrimSpace(text), "\n")
	if !found {
		return []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", header, true, false), nil, nil),
		}
	}
	return []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", header, true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.TrimSpace(body), true, false), nil, nil),
	}
}

// formatStats creates the stats message using Block Kit. It is only shown to the requester.
func (s *Notifier) formatStats(user, stats string) slack.Message {
	header, body, _ := strings.Cut(strings.TrimSpace(stats), "\n")
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*%s* for @%s", header, user), false, false), nil, nil),
	}
	if body = strings.TrimSpace(body); body != "" {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.ResponseType = slack.ResponseTypeEphemeral
	return msg
}

func (s *Notifier) formatHelp(help string) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "How it works", true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", help, false, false), nil, nil),
		slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", "Commands: `/leaderboard`, `/stats`, `/help`", false, false)),
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.ResponseType = slack.ResponseTypeEphemeral
	return msg
}
