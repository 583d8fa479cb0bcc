package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/calmbird/moodtrack-backend/migrations"
)

// runMigrations applies all pending embedded migrations. goose requires a
// *sql.DB, so a short-lived database/sql connection is opened alongside the
// pgx pool.
func runMigrations(ctx context.Context, logger *slog.Logger, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	logger.InfoContext(ctx, "migrations applied", slog.Int("count", len(results)))
	return nil
}
