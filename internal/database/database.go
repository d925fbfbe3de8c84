package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// connectTimeout bounds how long startup waits for Postgres to accept connections.
const connectTimeout = 15 * time.Second

// NewConnection opens a connection pool and blocks until the database answers a ping.
func NewConnection(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := waitForPing(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("successfully connected to database")
	return db, nil
}

func waitForPing(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		logger.Warn("unable to establish database connection, retrying...", "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("database connection timed out or was cancelled: %w (last error: %v)", ctx.Err(), err)
		case <-ticker.C:
		}
	}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
