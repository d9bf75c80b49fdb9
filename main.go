package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/audit"
	"github.com/mauv0809/wordle-tribble/internal/blobstore"
	"github.com/mauv0809/wordle-tribble/internal/config"
	"github.com/mauv0809/wordle-tribble/internal/database"
	server "github.com/mauv0809/wordle-tribble/internal/http"
	"github.com/mauv0809/wordle-tribble/internal/metrics"
	"github.com/mauv0809/wordle-tribble/internal/notifier/slack"
	"github.com/mauv0809/wordle-tribble/internal/processor"
	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()
	log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())

	var blob blobstore.BlobStore
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		blob = blobstore.NewSQLite(db, blobstore.DefaultName)
	default:
		blob, err = blobstore.NewFile(cfg.Store.File)
		if err != nil {
			log.Fatalf("Failed to open store file: %s", err)
		}
	}
	log.Info("Using score store backend", "backend", cfg.Store.Backend)

	store, err := scores.Open(context.Background(), blob)
	if err != nil {
		log.Fatalf("Failed to load scores: %s", err)
	}
	log.Info("Scores loaded", "users", len(store.Users()), "entries", store.Snapshot().Entries())

	recorder := audit.NewFile(cfg.AuditLogFile)
	defer func() {
		if err := recorder.Close(); err != nil {
			log.Error("Failed to close audit log", "error", err)
		}
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	counters := metrics.New(db)
	if cfg.Slack.Token == "" {
		log.Warn("SLACK_BOT_TOKEN is not set; Slack replies and handle lookups will fail")
	}
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc, counters)
	processor := processor.New(store, scoring.New(cfg.Scoring), cfg.Annotations, metricsSvc, counters, recorder)

	s := server.NewServer(
		processor,
		notifier,
		metricsSvc,
		metricsHandler,
		counters,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// In-flight submissions finish their store save before the server stops.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
