package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"orator/internal/logger"
)

type migrationStep struct {
	Name string
	SQL  string
}

// books.author intentionally allows empty string. pages.book_id carries no
// foreign key; book existence is validated at the HTTP layer.
var steps = []migrationStep{
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id         UUID        PRIMARY KEY,
  title      TEXT        NOT NULL,
  author     TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_pages",
		SQL: `CREATE TABLE IF NOT EXISTS pages (
  id           UUID        PRIMARY KEY,
  book_id      UUID        NOT NULL,
  image_url    TEXT        NOT NULL,
  page_content JSONB,
  status       TEXT        NOT NULL CHECK (status IN ('processing', 'completed', 'error')),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pages_book_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pages_book_id ON pages (book_id, created_at, id);`,
	},
	{
		Name: "create_index_pages_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pages_status_updated_at ON pages (status, updated_at);`,
	},
	{
		Name: "create_table_tts_results",
		SQL: `CREATE TABLE IF NOT EXISTS tts_results (
  id         UUID        PRIMARY KEY,
  text       TEXT        NOT NULL,
  audio_url  TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks for the 'pages' sentinel table and runs the schema
// steps if it is missing. Steps are idempotent, so a partially applied schema
// is repaired on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	log := logger.WithComponent("database").With().Str("db_host", dbHost).Logger()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.pages') IS NOT NULL").Scan(&exists); err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("db_migration_check_failed")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		log.Info().Dur("duration", time.Since(start)).Msg("db_migration_skip")
		return nil
	}

	log.Info().Msg("db_migration_start")
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).Str("migration_step", step.Name).
				Dur("step_duration", time.Since(stepStart)).Msg("db_migration_failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info().Str("migration_step", step.Name).
			Dur("step_duration", time.Since(stepStart)).Msg("db_migration_step")
	}

	log.Info().Dur("duration", time.Since(start)).Msg("db_migration_success")
	return nil
}
