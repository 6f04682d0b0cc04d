package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/moodloom/backend/internal/config"
	"github.com/moodloom/backend/internal/logger"
)

// NewPostgres opens the Postgres connection pool used by the mood and
// interaction stores.
func NewPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	logger.Info("connected to PostgreSQL", logger.String("db", cfg.Name))

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS moods (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			feeling TEXT NOT NULL,
			intensity INTEGER,
			context TEXT,
			triggers TEXT[],
			notes TEXT,
			location TEXT,
			weather TEXT,
			activity TEXT,
			social_context TEXT,
			energy_level INTEGER,
			stress_level INTEGER,
			sleep_quality INTEGER,
			duration_minutes INTEGER,
			change_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_moods_user_created ON moods(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS content (
			id UUID PRIMARY KEY,
			content_type TEXT NOT NULL,
			title TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS content_interactions (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			content_id UUID NOT NULL REFERENCES content(id),
			interaction_type TEXT NOT NULL,
			interaction_value INTEGER,
			mood_at_interaction TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_user_created ON content_interactions(user_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	logger.Info("database migrations completed")
	return nil
}
