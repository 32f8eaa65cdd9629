package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on question stems and
// solution notes for admin content lookups.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_questions_stem_gin
		ON questions USING gin(to_tsvector('english', stem))`)
	if err != nil {
		return fmt.Errorf("failed to create stem GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_questions_solution_notes_gin
		ON questions USING gin(to_tsvector('english', COALESCE(solution_notes, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create solution_notes GIN index: %w", err)
	}

	return nil
}
