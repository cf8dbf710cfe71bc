// Package testdb opens migrated in-memory sqlite databases for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/infrastructure/database"
	"github.com/adagency-io/adagency/internal/infrastructure/migration"
	"github.com/adagency-io/adagency/internal/shared/config"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

// New returns a fresh sqlite database with the full schema applied and
// foreign keys enforced. It is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	log := logger.NewNopLogger()
	db, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, log, database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	strategy := migration.NewGooseStrategy(config.DriverSQLite, log)
	require.NoError(t, strategy.Migrate(context.Background(), db))

	return db
}
