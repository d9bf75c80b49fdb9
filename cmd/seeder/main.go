package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/wordle-tribble/internal/blobstore"
	"github.com/mauv0809/wordle-tribble/internal/database"
	"github.com/mauv0809/wordle-tribble/internal/scores"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"STORE_BACKEND":     "file",
		"STORE_FILE":        "leaderboard.msgpack.zst",
		"DB_NAME":           "wordle.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"SEED_USERS":        "12",
		"SEED_DAYS":         "30",
		"SEED_LAST_DAY":     "1000",
		"SEED":              "42",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	return config
}

func atoi(cfg map[string]string, key string) int {
	v, err := strconv.Atoi(cfg[key])
	if err != nil || v <= 0 {
		log.Fatalf("Error: %s must be a positive integer, got %q", key, cfg[key])
	}
	return v
}

func main() {
	log.Info("Starting score seeder...")
	cfg := loadConfig()
	ctx := context.Background()

	var blob blobstore.BlobStore
	switch cfg["STORE_BACKEND"] {
	case "sqlite":
		db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		defer teardown()
		blob = blobstore.NewSQLite(db, blobstore.DefaultName)
	default:
		var err error
		blob, err = blobstore.NewFile(cfg["STORE_FILE"])
		if err != nil {
			log.Fatalf("Failed to open store file: %s", err)
		}
	}

	store, err := scores.Open(ctx, blob)
	if err != nil {
		log.Fatalf("Failed to load scores: %s", err)
	}

	numUsers := atoi(cfg, "SEED_USERS")
	numDays := atoi(cfg, "SEED_DAYS")
	lastDay := atoi(cfg, "SEED_LAST_DAY")
	seed, err := strconv.ParseUint(cfg["SEED"], 10, 64)
	if err != nil {
		log.Fatalf("Error: SEED must be an unsigned integer: %s", err)
	}
	faker := gofakeit.New(seed)

	log.Info("Preparing to seed scores...", "users", numUsers, "days", numDays, "last_day", lastDay)
	startTime := time.Now()

	recorded, skipped := 0, 0
	for i := 0; i < numUsers; i++ {
		user := faker.Username()
		// Each player joins somewhere in the range and skips some days.
		firstDay := lastDay - faker.Number(0, numDays-1)
		for day := firstDay; day <= lastDay; day++ {
			if day <= 0 || faker.Number(1, 100) <= 20 {
				continue
			}
			entry := scores.Guessed(faker.Number(2, scores.MaxGuesses))
			if faker.Number(1, 100) <= 8 {
				entry = scores.Failed()
			}
			err := store.Record(ctx, user, day, entry)
			switch {
			case err == nil:
				recorded++
			case errors.Is(err, scores.ErrAlreadyPlayed):
				skipped++
			default:
				log.Fatalf("Failed to record score for %s day %d: %s", user, day, err)
			}
		}
	}

	log.Info("Seeding complete.", "recorded", recorded, "skipped", skipped, "users", len(store.Users()), "duration", time.Since(startTime))
}
