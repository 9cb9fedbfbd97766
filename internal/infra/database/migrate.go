package database

import (
	"context"
	"database/sql"
)

// Migrate creates the leads table if it does not exist. The resume blob
// lives inline with the record; fine at this scale, revisit before resumes
// get large or numerous.
func Migrate(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS leads (
			id              TEXT PRIMARY KEY,
			first_name      TEXT NOT NULL,
			last_name       TEXT NOT NULL,
			email           TEXT NOT NULL,
			resume_filename TEXT NOT NULL,
			resume_data     BYTEA NOT NULL,
			state           TEXT NOT NULL DEFAULT 'PENDING'
				CHECK (state IN ('PENDING', 'REACHED_OUT')),
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	_, err := db.ExecContext(ctx, query)
	return err
}
