package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/wordle-tribble/internal/leaderboard"
	"github.com/mauv0809/wordle-tribble/internal/scoring"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := fromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return cfg
}

// fromEnv builds a Config from lookup, which has the signature of os.LookupEnv.
func fromEnv(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvDefault := func(key, def string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return def
	}

	var parseErr error
	getFloat := func(key string, def float64) float64 {
		raw, ok := lookup(key)
		if !ok || raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("invalid %s %q: %w", key, raw, err)
		}
		return v
	}
	getInt := func(key string, def int) int {
		raw, ok := lookup(key)
		if !ok || raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("invalid %s %q: %w", key, raw, err)
		}
		return v
	}

	defaults := scoring.DefaultParams()
	cfg := Config{
		Port:     getEnv("PORT"),
		LogLevel: getEnvDefault("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Backend: getEnvDefault("STORE_BACKEND", BackendFile),
			File:    getEnvDefault("STORE_FILE", "leaderboard.msgpack.zst"),
		},
		DBName: getEnvDefault("DB_NAME", "wordle.db"),
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:         getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvDefault("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvDefault("SLACK_SIGNING_SECRET", ""),
		},
		Scoring: scoring.Params{
			FailValue: getFloat("SCORE_FAIL_VALUE", defaults.FailValue),
			MissValue: getFloat("SCORE_MISS_VALUE", defaults.MissValue),
			Window:    getInt("SCORE_WINDOW", defaults.Window),
			DayBonus:  getFloat("SCORE_DAY_BONUS", defaults.DayBonus),
			DayMalus:  getFloat("SCORE_DAY_MALUS", defaults.DayMalus),
		},
		AuditLogFile: getEnvDefault("AUDIT_LOG_FILE", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variable %s is not set", missing[0])
	}
	if parseErr != nil {
		return Config{}, parseErr
	}
	if err := cfg.Scoring.Validate(); err != nil {
		return Config{}, err
	}
	switch cfg.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	annotations, err := LoadAnnotations(getEnvDefault("ANNOTATIONS_FILE", ""))
	if err != nil {
		return Config{}, err
	}
	cfg.Annotations = annotations
	return cfg, nil
}

// LoadAnnotations reads a YAML annotation table:
//
//	pla_10:
//	  marker: "💩"
//	  replace: true
//
// An empty path yields an empty table.
func LoadAnnotations(path string) (leaderboard.Annotations, error) {
	annotations := leaderboard.Annotations{}
	if path == "" {
		return annotations, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations file: %w", err)
	}
	if err := yaml.Unmarshal(data, &annotations); err != nil {
		return nil, fmt.Errorf("failed to parse annotations file %s: %w", path, err)
	}
	log.Info("Loaded leaderboard annotations", "path", path, "count", len(annotations))
	return annotations, nil
}
