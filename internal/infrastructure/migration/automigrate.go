package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AdvertiserModel{},
		&models.AgentModel{},
		&models.AdModel{},
		&models.ContractModel{},
		&models.AnalyticsModel{},
	}
}

// GormAutoMigrateStrategy creates tables from the gorm models. It adds no
// foreign keys; delete guards do not depend on them.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	ms := AutoMigrateModels()
	s.logger.Infow("starting gorm auto migration", "models_count", len(ms))

	if err := db.WithContext(ctx).AutoMigrate(ms...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
