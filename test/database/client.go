// Package database provides a ready-to-use database client for integration
// tests in other packages.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/pkg/database"
	"github.com/fleetworks/conductor/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client on an isolated schema.
// In CI (when CI_DATABASE_URL is set) it connects to the external PostgreSQL
// service container; locally it uses a shared testcontainer. Cleanup is
// registered on t automatically.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Auto-migration covers the Ent-expressible schema; the partial unique
	// and GIN indexes come from the same helper production startup uses.
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateRuntimeIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
