// Command cleanup-tokens deletes expired refresh tokens. It is meant to be
// run periodically (cron or a scheduled job); the API never blocks on it.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/token"
	"github.com/calmbird/moodtrack-backend/internal/app"
	"github.com/calmbird/moodtrack-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	removed, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("delete expired tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup complete", slog.Int("removed", removed))
}
