package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

type AnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnalyticsMapper
}

func NewAnalyticsRepository(gdb *gorm.DB) analytics.Repository {
	return &AnalyticsRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAnalyticsMapper(),
	}
}

// listing selects records with their ad text and advertiser name, best
// rated first.
func (r *AnalyticsRepositoryImpl) listing(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.AnalyticsModel{}).
		Select("analytics.*, " +
			"COALESCE(ads.info, '') AS ad_info, " +
			"COALESCE(advertisers.name, '') AS advertiser_name").
		Joins("LEFT JOIN ads ON ads.id = analytics.ad_id").
		Joins("LEFT JOIN advertisers ON advertisers.id = ads.advertiser_id").
		Order("analytics.rating DESC").
		Order("analytics.id")
}

func (r *AnalyticsRepositoryImpl) find(q *gorm.DB) ([]*analytics.Listing, error) {
	var rows []*models.AnalyticsListingRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	listings, err := r.mapper.ToListings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map analytics rows: %w", err)
	}
	return listings, nil
}

func (r *AnalyticsRepositoryImpl) List(ctx context.Context) ([]*analytics.Listing, error) {
	listings, err := r.find(r.listing(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	return listings, nil
}

func (r *AnalyticsRepositoryImpl) ListByAd(ctx context.Context, adID uint) ([]*analytics.Listing, error) {
	listings, err := r.find(r.listing(ctx).Where("analytics.ad_id = ?", adID))
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics by ad: %w", err)
	}
	return listings, nil
}

func (r *AnalyticsRepositoryImpl) GetByID(ctx context.Context, id uint) (*analytics.Listing, error) {
	listings, err := r.find(r.listing(ctx).Where("analytics.id = ?", id).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics by ID: %w", err)
	}
	if len(listings) == 0 {
		return nil, nil
	}
	return listings[0], nil
}

func (r *AnalyticsRepositoryImpl) Create(ctx context.Context, record *analytics.Record) error {
	model := r.mapper.ToModel(record)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create analytics: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set analytics ID: %w", err)
	}
	return nil
}

func (r *AnalyticsRepositoryImpl) Update(ctx context.Context, record *analytics.Record) error {
	model := r.mapper.ToModel(record)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AnalyticsModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"ad_id":       model.AdID,
			"viewers":     model.Viewers,
			"engagement":  model.Engagement,
			"rating":      model.Rating,
			"measured_at": model.MeasuredAt,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update analytics: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("analytics record not found")
	}
	return nil
}

func (r *AnalyticsRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AnalyticsModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete analytics: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("analytics record not found")
	}
	return nil
}
