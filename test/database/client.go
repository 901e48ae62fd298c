package database

import (
	"testing"

	"github.com/batonworks/baton/pkg/database"
	"github.com/batonworks/baton/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	// SetupTestDatabase migrates the schema, applies the partial unique
	// indexes and registers cleanup of the schema and connections.
	entClient, db := util.SetupTestDatabase(t)

	return database.NewClientFromEnt(entClient, db)
}
