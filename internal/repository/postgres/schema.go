package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/studevo/Studevo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// DBTX is the subset of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id             TEXT PRIMARY KEY,
		email          TEXT NOT NULL UNIQUE,
		password       TEXT NOT NULL,
		first_name     TEXT NOT NULL DEFAULT '',
		last_name      TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		address        TEXT NOT NULL DEFAULT '',
		education      TEXT NOT NULL DEFAULT '',
		skills         TEXT NOT NULL DEFAULT '',
		experience     TEXT NOT NULL DEFAULT '',
		projects       TEXT NOT NULL DEFAULT '',
		certifications TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS organizations (
		id         TEXT PRIMARY KEY,
		org_name   TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		phone      TEXT NOT NULL DEFAULT '',
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id               TEXT PRIMARY KEY,
		org_id           TEXT NOT NULL,
		org_name         TEXT NOT NULL,
		title            VARCHAR(100) NOT NULL,
		type             TEXT NOT NULL,
		description      VARCHAR(2000) NOT NULL,
		location         TEXT NOT NULL DEFAULT 'Remote',
		duration_start   TIMESTAMPTZ,
		duration_end     TIMESTAMPTZ,
		deadline         TIMESTAMPTZ,
		application_link TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL DEFAULT 'draft',
		revision         BIGINT NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS posts_org_created_idx ON posts (org_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS posts_status_created_idx ON posts (status, created_at DESC)`,
}

// EnsureSchema creates the tables and indexes when missing.
func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// notFound maps an empty single-row result to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
