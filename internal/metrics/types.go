package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	SubmissionsAccepted prometheus.Counter
	SubmissionsRejected *prometheus.CounterVec
	PersistenceFailures prometheus.Counter
	LeaderboardRenders  *prometheus.CounterVec
	SubmitDuration      prometheus.Histogram
	SlackMessageSent    prometheus.Counter
	SlackMessageFailed  prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}

// Rejection reasons used as the "reason" label.
const (
	ReasonInvalidUser       = "invalid_user"
	ReasonInvalidSubmission = "invalid_submission"
	ReasonAlreadyPlayed     = "already_played"
	ReasonPersistence       = "persistence"
)

// Board names used as the "board" label.
const (
	BoardDaily  = "daily"
	BoardGlobal = "global"
	BoardChart  = "chart"
)

// Keys of the persistent counters.
const (
	CounterSubmissions    = "submissions_accepted"
	CounterRejections     = "submissions_rejected"
	CounterLeaderboards   = "leaderboards_rendered"
	CounterSlackMessages  = "slack_messages_sent"
	CounterStatsRequested = "stats_requested"
)
