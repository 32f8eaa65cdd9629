package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/prepforge/quanta/pkg/database"
	"github.com/prepforge/quanta/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a *database.Client backed by its own schema on the
// shared test database, with migrations and GIN indexes applied. Cleanup
// (schema drop, connection close) is registered by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
