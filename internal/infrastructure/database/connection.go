package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adagency-io/adagency/internal/infrastructure/metrics"
	"github.com/adagency-io/adagency/internal/shared/config"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

// Options tweaks how Open builds the connection.
type Options struct {
	// Metrics registers the Prometheus query callbacks.
	Metrics bool
}

// Open connects to the configured database and returns the pool handle.
// The caller owns the handle and must release it with Close.
func Open(cfg *config.DatabaseConfig, log logger.Interface, opts Options) (*gorm.DB, error) {
	driver := cfg.GetDriver()

	gormLogger := gormlogger.New(
		&filteredLogger{log: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector(driver, cfg.GetDSN()), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: driver != config.DriverSQLite,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if driver == config.DriverSQLite {
		// sqlite serialises writers; a single connection also keeps
		// ":memory:" databases shared across queries.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if opts.Metrics {
		if err := metrics.RegisterGormCallbacks(db); err != nil {
			return nil, fmt.Errorf("failed to register metrics callbacks: %w", err)
		}
	}

	log.Infow("database connection established",
		"driver", driver,
		"database", databaseName(cfg, driver),
	)

	return db, nil
}

func dialector(driver, dsn string) gorm.Dialector {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn)
	case config.DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			SkipInitializeWithVersion: true,
		})
	}
}

func databaseName(cfg *config.DatabaseConfig, driver string) string {
	if driver == config.DriverSQLite {
		return cfg.GetDSN()
	}
	return cfg.Database
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}

// filteredLogger routes gorm output into the application logger and drops
// driver housekeeping queries.
type filteredLogger struct {
	log logger.Interface
}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lower := strings.ToLower(msg)

	if strings.Contains(lower, "information_schema.schemata") ||
		strings.Contains(lower, "select version()") {
		return
	}

	switch {
	case strings.Contains(lower, "error"):
		l.log.Errorw("database error", "details", msg)
	case strings.Contains(lower, "slow sql"):
		l.log.Warnw("slow query", "details", msg)
	default:
		l.log.Debugw("database query", "details", msg)
	}
}
