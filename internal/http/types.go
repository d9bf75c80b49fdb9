package http

import (
	"net/http"

	"github.com/mauv0809/wordle-tribble/internal/config"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/notifier"
	"github.com/mauv0809/wordle-tribble/internal/processor"
)

type Server struct {
	Processor      *processor.Processor
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Counters       metrics.CounterStore
	Cfg            config.Config
	Router         *http.ServeMux
}
