package postgres

import (
	"context"
	"fmt"

	"github.com/alcyxob/fitness-ai/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		google_id     TEXT UNIQUE,
		strava_id     TEXT UNIQUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS body_parts (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS workout_lists (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		body_part_id BIGINT NOT NULL REFERENCES body_parts(id),
		name         TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS workout_lists_user_created_idx ON workout_lists (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id              BIGSERIAL PRIMARY KEY,
		workout_list_id BIGINT NOT NULL REFERENCES workout_lists(id) ON DELETE CASCADE,
		equipment_id    BIGINT NOT NULL REFERENCES equipment(id),
		position        INT NOT NULL,
		name            TEXT NOT NULL,
		steps           TEXT NOT NULL,
		sets            INT NOT NULL CHECK (sets >= 1),
		repetitions     INT NOT NULL CHECK (repetitions >= 1),
		youtube_url     TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (workout_list_id, position)
	)`,
}

// Migrate creates the schema if needed and seeds the reference catalogs.
// It is safe to run repeatedly.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	batch := &pgx.Batch{}
	for _, name := range domain.DefaultBodyParts {
		batch.Queue(`INSERT INTO body_parts (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	}
	for _, name := range domain.DefaultEquipment {
		batch.Queue(`INSERT INTO equipment (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}

	return nil
}
