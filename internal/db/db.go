package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB is the shared database handle, nil when no database is configured.
var DB *sql.DB

// Init opens the Postgres connection and bootstraps the schema.
func Init(databaseURL string) error {
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}

	d, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.PingContext(ctx); err != nil {
		d.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = d
	return migrate()
}

func migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS voice_calls (
			id UUID PRIMARY KEY,
			call_sid TEXT,
			recording_sid TEXT,
			recording_url TEXT NOT NULL DEFAULT '',
			duration_seconds INTEGER,
			transcript TEXT,
			reply TEXT,
			audio_url TEXT,
			status TEXT NOT NULL,
			failed_stage TEXT,
			error_message TEXT,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create voice_calls table: %w", err)
	}
	return nil
}
