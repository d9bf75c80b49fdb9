package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SubmissionsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_submissions_accepted_total",
			Help: "The total number of scores recorded.",
		}),
		SubmissionsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_submissions_rejected_total",
			Help: "The total number of rejected submissions, by reason.",
		}, []string{"reason"}),
		PersistenceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_persistence_failures_total",
			Help: "The total number of store saves that failed after retrying.",
		}),
		LeaderboardRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_leaderboard_renders_total",
			Help: "The total number of leaderboards rendered, by board.",
		}, []string{"board"}),
		SubmitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_submit_duration_seconds",
			Help:    "The duration of a submission including the store save.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		SlackMessageSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_slack_messages_sent_total",
			Help: "The total number of Slack messages successfully sent.",
		}),
		SlackMessageFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_slack_messages_failed_total",
			Help: "The total number of Slack messages that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SubmissionsAccepted,
		s.SubmissionsRejected,
		s.PersistenceFailures,
		s.LeaderboardRenders,
		s.SubmitDuration,
		s.SlackMessageSent,
		s.SlackMessageFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSubmissionsAccepted() {
	s.SubmissionsAccepted.Inc()
}

func (s *Service) IncSubmissionsRejected(reason string) {
	s.SubmissionsRejected.WithLabelValues(reason).Inc()
}

func (s *Service) IncPersistenceFailures() {
	s.PersistenceFailures.Inc()
}

func (s *Service) IncLeaderboardRenders(board string) {
	s.LeaderboardRenders.WithLabelValues(board).Inc()
}

func (s *Service) ObserveSubmitDuration(duration float64) {
	s.SubmitDuration.Observe(duration)
}

func (s *Service) IncSlackMessageSent() {
	s.SlackMessageSent.Inc()
}

func (s *Service) IncSlackMessageFailed() {
	s.SlackMessageFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
