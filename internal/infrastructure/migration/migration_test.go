package migration

import (
	"context"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adagency-io/adagency/internal/shared/config"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestDialect(t *testing.T) {
	assert.Equal(t, goose.DialectMySQL, Dialect(config.DriverMySQL))
	assert.Equal(t, goose.DialectPostgres, Dialect(config.DriverPostgres))
	assert.Equal(t, goose.DialectSQLite3, Dialect(config.DriverSQLite))
}

func TestEmbeddedScriptsPerDialect(t *testing.T) {
	for _, dir := range []string{"mysql", "postgres", "sqlite3"} {
		entries, err := scripts.ReadDir("scripts/" + dir)
		require.NoError(t, err, dir)
		assert.NotEmpty(t, entries, dir)
	}
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := NewGooseStrategy(config.DriverSQLite, logger.NewNopLogger())

	require.NoError(t, NewManagerWithStrategy(s, logger.NewNopLogger()).Migrate(ctx, db))

	for _, table := range []string{
		constants.TableAdvertisers,
		constants.TableAgents,
		constants.TableAds,
		constants.TableContracts,
		constants.TableAnalytics,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	statuses, err := s.Status(ctx, db)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Applied)
	assert.EqualValues(t, 1, statuses[0].Version)
	assert.Contains(t, statuses[0].Path, ".sql")

	// running again is a no-op
	require.NoError(t, s.Migrate(ctx, db))

	require.NoError(t, s.MigrateDown(ctx, db, 1))
	assert.False(t, db.Migrator().HasTable(constants.TableAdvertisers))

	statuses, err = s.Status(ctx, db)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Applied)
}

func TestNewManager_PicksStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	assert.Equal(t, "goose", NewManager(StrategyGoose, config.DriverMySQL, log).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("", config.DriverMySQL, log).GetStrategy().GetName())
	assert.Equal(t, "gorm_auto_migrate", NewManager(StrategyGorm, config.DriverMySQL, log).GetStrategy().GetName())
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, NewManager(StrategyGorm, config.DriverSQLite, logger.NewNopLogger()).Migrate(context.Background(), db))

	assert.True(t, db.Migrator().HasTable(constants.TableContracts))
	assert.True(t, db.Migrator().HasColumn(constants.TableAnalytics, "measured_at"))
}
