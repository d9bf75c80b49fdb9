package http

import (
	"net/http"

	"github.com/mauv0809/wordle-tribble/internal/config"
	"github.com/mauv0809/wordle-tribble/internal/http/handlers"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/notifier"
	"github.com/mauv0809/wordle-tribble/internal/processor"
)

func NewServer(processor *processor.Processor, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.CounterStore, cfg config.Config) *Server {
	server := &Server{
		Processor:      processor,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Counters:       counters,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Slack endpoints additionally verify the request signature.
	slackVerify := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/api/leaderboard", Chain(handlers.LeaderboardHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("/api/leaderboard/chart.png", Chain(handlers.ChartHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("/api/stats", Chain(handlers.StatsHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("/api/counters", Chain(handlers.CountersHandler(s.Counters), paramsMiddleware))
	s.Router.Handle("/slack/events", Chain(handlers.SlackEventsHandler(s.Processor, s.Notifier, s.Cfg.Slack.ChannelID), paramsMiddleware, postOnly, slackVerify))
	s.Router.Handle("/slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Processor, s.Notifier), paramsMiddleware, postOnly, slackVerify))
	s.Router.Handle("/slack/command/stats", Chain(handlers.StatsCommandHandler(s.Processor, s.Notifier), paramsMiddleware, postOnly, slackVerify))
	s.Router.Handle("/slack/command/help", Chain(handlers.HelpCommandHandler(s.Processor, s.Notifier), paramsMiddleware, postOnly, slackVerify))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
