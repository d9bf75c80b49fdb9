package notifier

import "context"

// Notifier defines a high-level interface for talking to the chat workspace.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendReply posts text to channel, in the thread of threadTS when set.
	// An empty channel means the configured default channel.
	SendReply(ctx context.Context, channel, threadTS, text string, dryRun bool) error
	// ResolveHandle maps a workspace user ID to the handle shown on leaderboards.
	ResolveHandle(ctx context.Context, userID string) (string, error)

	// For formatting responses for slash commands
	FormatLeaderboardResponse(daily, global string) (any, error)
	FormatStatsResponse(user, stats string) (any, error)
	FormatHelpResponse(help string) (any, error)
}
