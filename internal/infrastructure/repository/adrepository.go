package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

type AdRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdMapper
}

func NewAdRepository(gdb *gorm.DB) ad.Repository {
	return &AdRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAdMapper(),
	}
}

// listing selects ads with their advertiser name.
func (r *AdRepositoryImpl) listing(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.AdModel{}).
		Select("ads.*, COALESCE(advertisers.name, '') AS advertiser_name").
		Joins("LEFT JOIN advertisers ON advertisers.id = ads.advertiser_id")
}

func (r *AdRepositoryImpl) List(ctx context.Context) ([]*ad.Listing, error) {
	var rows []*models.AdListingRow
	if err := r.listing(ctx).Scopes(db.OrderByNewest(constants.TableAds, "date_published")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}

	listings, err := r.mapper.ToListings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map ad rows: %w", err)
	}
	return listings, nil
}

func (r *AdRepositoryImpl) GetByID(ctx context.Context, id uint) (*ad.Listing, error) {
	var rows []*models.AdListingRow
	if err := r.listing(ctx).Where("ads.id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get ad by ID: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	listing, err := r.mapper.ToListing(rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to map ad row: %w", err)
	}
	return listing, nil
}

func (r *AdRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.AdModel{}, id)
}

func (r *AdRepositoryImpl) Create(ctx context.Context, a *ad.Ad) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ad ID: %w", err)
	}
	return nil
}

func (r *AdRepositoryImpl) Update(ctx context.Context, a *ad.Ad) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AdModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"advertiser_id":  model.AdvertiserID,
			"info":           model.Info,
			"cost":           model.Cost,
			"date_published": model.DatePublished,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ad: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ad not found")
	}
	return nil
}

func (r *AdRepositoryImpl) DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotReferencedBy(constants.TableAds, constants.TableAnalytics, "ad_id")).
		Where(constants.TableAds+".id = ?", id).
		Delete(&models.AdModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete ad: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AdRepositoryImpl) CountAnalytics(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AnalyticsModel{}).Where("ad_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ad analytics: %w", err)
	}
	return count, nil
}
