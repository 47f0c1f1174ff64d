package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateRuntimeIndexes creates PostgreSQL indexes that Ent schema cannot
// express. Idempotent; also applied by the initial migration so test setups
// that use Schema.Create instead of golang-migrate get the same constraints.
func CreateRuntimeIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one running session per ticket.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS execution_sessions_one_running_per_ticket
		ON execution_sessions (ticket_id)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running-session index: %w", err)
	}

	// Full-text search over ticket titles and descriptions.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_search_gin
		ON tickets USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create ticket search index: %w", err)
	}

	return nil
}
