package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. Must match 000001_init.up.sql; also applied to
// Ent-created test schemas so tests see the same constraints as production.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one pending approval request per (execution, step).
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS approvalrequest_execution_step_pending
		ON approval_requests (execution_id, step_id)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending-approval unique index: %w", err)
	}

	return nil
}
