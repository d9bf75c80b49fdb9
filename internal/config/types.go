package config

import (
	"github.com/mauv0809/wordle-tribble/internal/leaderboard"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
)

// Config holds all configuration for the application.
type Config struct {
	Port     string
	LogLevel string
	Store    StoreConfig
	DBName   string
	Turso    TursoConfig
	Slack    SlackConfig
	Scoring  scoring.Params
	// Annotations decorate specific users on the leaderboards.
	Annotations  leaderboard.Annotations
	AuditLogFile string
}

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type StoreConfig struct {
	Backend string
	File    string
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
