package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/wordle-tribble/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	getUserInfoContextFunc func(ctx context.Context, user string) (*slackapi.User, error)

	postCalls     []string
	userInfoCalls int
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.postCalls = append(m.postCalls, channelID)
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return channelID, "123456789.12345", nil
}

func (m *mockSlackAPI) GetUserInfoContext(ctx context.Context, user string) (*slackapi.User, error) {
	m.userInfoCalls++
	if m.getUserInfoContextFunc != nil {
		return m.getUserInfoContextFunc(ctx, user)
	}
	return &slackapi.User{ID: user, Name: "ann"}, nil
}

func TestSendReply_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics, nil)

	require.NoError(t, notifier.SendReply(context.Background(), "", "", "hello", true))
	assert.Equal(t, 0, metrics.SlackMessageSent())
}

func TestSendReply_Success(t *testing.T) {
	api := &mockSlackAPI{}
	metr := metrics.NewMock()
	counters := metrics.NewMockCounters()
	notifier := NewNotifierWithAPI(api, "C123", metr, counters)

	require.NoError(t, notifier.SendReply(context.Background(), "", "", "hello", false))
	require.NoError(t, notifier.SendReply(context.Background(), "C999", "1.2", "hi", false))

	assert.Equal(t, []string{"C123", "C999"}, api.postCalls, "Empty channel falls back to the default")
	assert.Equal(t, 2, metr.SlackMessageSent())
	assert.Equal(t, 0, metr.SlackMessageFailed())
	all, err := counters.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 2, all[metrics.CounterSlackMessages])
}

func TestSendReply_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}
	metr := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metr, metrics.NewMockCounters())

	err := notifier.SendReply(context.Background(), "", "", "hello", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metr.SlackMessageSent())
	assert.Equal(t, 1, metr.SlackMessageFailed())
}

func TestResolveHandle(t *testing.T) {
	t.Run("cached after first lookup", func(t *testing.T) {
		api := &mockSlackAPI{}
		notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock(), nil)

		for i := 0; i < 3; i++ {
			handle, err := notifier.ResolveHandle(context.Background(), "U1")
			require.NoError(t, err)
			assert.Equal(t, "ann", handle)
		}
		assert.Equal(t, 1, api.userInfoCalls)
	})

	t.Run("falls back to display name", func(t *testing.T) {
		api := &mockSlackAPI{
			getUserInfoContextFunc: func(ctx context.Context, user string) (*slackapi.User, error) {
				return &slackapi.User{ID: user, Profile: slackapi.UserProfile{DisplayName: "Ann"}}, nil
			},
		}
		notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock(), nil)
		handle, err := notifier.ResolveHandle(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, "Ann", handle)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		api := &mockSlackAPI{
			getUserInfoContextFunc: func(ctx context.Context, user string) (*slackapi.User, error) {
				return nil, errors.New("user_not_found")
			},
		}
		notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock(), nil)
		_, err := notifier.ResolveHandle(context.Background(), "U1")
		assert.Error(t, err)
		_, err = notifier.ResolveHandle(context.Background(), "U1")
		assert.Error(t, err)
		assert.Equal(t, 2, api.userInfoCalls)
	})
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	daily := "📅 LEADERBOARD OF DAY 100\n\n1. 🥇 @ann ( 3 )\n"
	global := "🏆 GLOBAL LEADERBOARD (10-days window)\n[ score | total games | games in last 10 days ]\n\n1. 🥇 @ann ( 3 ) [ 1 ] [ 1 ]\n"

	msg := client.formatLeaderboard(daily, global)
	assert.Equal(t, slackapi.ResponseTypeInChannel, msg.ResponseType)
	require.Len(t, msg.Blocks.BlockSet, 5, "Expected header, section, divider, header, section")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "📅 LEADERBOARD OF DAY 100", header.Text.Text)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Second block should be a SectionBlock")
	assert.Equal(t, "1. 🥇 @ann ( 3 )", section.Text.Text)

	_, ok = msg.Blocks.BlockSet[2].(*slackapi.DividerBlock)
	assert.True(t, ok, "Third block should be a DividerBlock")

	globalSection, ok := msg.Blocks.BlockSet[4].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "[ score | total games | games in last 10 days ]\n\n1. 🥇 @ann ( 3 ) [ 1 ] [ 1 ]", globalSection.Text.Text)
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatLeaderboard("No users have played yet.", "No users have played yet.")
	require.Len(t, msg.Blocks.BlockSet, 1, "The empty text is shown once")
	section, ok := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "No users have played yet.", section.Text.Text)
}

func TestFormatStats(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatStats("ann", "📊 YOUR STATS\n\nYou played 1 game(s)\n")
	assert.Equal(t, slackapi.ResponseTypeEphemeral, msg.ResponseType)
	require.Len(t, msg.Blocks.BlockSet, 2)
	title := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	assert.Equal(t, "*📊 YOUR STATS* for @ann", title.Text.Text)
}

func TestFormatHelp(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	resp, err := client.FormatHelpResponse("Play Wordle.")
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 3)
}
