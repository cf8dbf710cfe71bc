package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/db"
)

// StatsRepositoryImpl answers the dashboard aggregates.
type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(gdb *gorm.DB) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{db: gdb}
}

func (r *StatsRepositoryImpl) CountAdvertisers(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AdvertiserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count advertisers: %w", err)
	}
	return count, nil
}

func (r *StatsRepositoryImpl) CountAds(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AdModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ads: %w", err)
	}
	return count, nil
}

// CountActiveContracts relies on known statuses being stored lower-cased.
func (r *StatsRepositoryImpl) CountActiveContracts(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Where("status IN ?", vo.ActiveStatuses).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active contracts: %w", err)
	}
	return count, nil
}

// TotalViews sums viewers over every analytics record; no rows is zero.
func (r *StatsRepositoryImpl) TotalViews(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnalyticsModel{}).
		Select("COALESCE(SUM(viewers), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum analytics viewers: %w", err)
	}
	return total, nil
}
