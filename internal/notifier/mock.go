package notifier

import (
	"context"
	"sync"
)

var _ Notifier = (*Mock)(nil)

// Reply is a recorded SendReply call.
type Reply struct {
	Channel  string
	ThreadTS string
	Text     string
	DryRun   bool
}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendReplyFunc     func(ctx context.Context, channel, threadTS, text string, dryRun bool) error
	ResolveHandleFunc func(ctx context.Context, userID string) (string, error)

	// Call records
	SendReplyCalls []Reply
}

// NewMock creates a new mock instance. By default ResolveHandle returns the
// user ID unchanged.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendReply(ctx context.Context, channel, threadTS, text string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendReplyCalls = append(m.SendReplyCalls, Reply{Channel: channel, ThreadTS: threadTS, Text: text, DryRun: dryRun})
	if m.SendReplyFunc != nil {
		return m.SendReplyFunc(ctx, channel, threadTS, text, dryRun)
	}
	return nil
}

func (m *Mock) ResolveHandle(ctx context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ResolveHandleFunc != nil {
		return m.ResolveHandleFunc(ctx, userID)
	}
	return userID, nil
}

// Replies returns a copy of the recorded SendReply calls.
func (m *Mock) Replies() []Reply {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Reply(nil), m.SendReplyCalls...)
}

func (m *Mock) FormatLeaderboardResponse(daily, global string) (any, error) {
	return map[string]string{"daily": daily, "global": global}, nil
}

func (m *Mock) FormatStatsResponse(user, stats string) (any, error) {
	return map[string]string{"user": user, "stats": stats}, nil
}

func (m *Mock) FormatHelpResponse(help string) (any, error) {
	return map[string]string{"help": help}, nil
}
