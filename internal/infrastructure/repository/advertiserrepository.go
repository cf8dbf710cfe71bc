package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

type AdvertiserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdvertiserMapper
}

func NewAdvertiserRepository(gdb *gorm.DB) advertiser.Repository {
	return &AdvertiserRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAdvertiserMapper(),
	}
}

func (r *AdvertiserRepositoryImpl) List(ctx context.Context) ([]*advertiser.Advertiser, error) {
	var modelList []*models.AdvertiserModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list advertisers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map advertiser models to entities: %w", err)
	}
	return entities, nil
}

func (r *AdvertiserRepositoryImpl) GetByID(ctx context.Context, id uint) (*advertiser.Advertiser, error) {
	var model models.AdvertiserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get advertiser by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map advertiser model to entity: %w", err)
	}
	return entity, nil
}

func (r *AdvertiserRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.AdvertiserModel{}, id)
}

func (r *AdvertiserRepositoryImpl) Create(ctx context.Context, a *advertiser.Advertiser) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create advertiser: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set advertiser ID: %w", err)
	}
	return nil
}

func (r *AdvertiserRepositoryImpl) Update(ctx context.Context, a *advertiser.Advertiser) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AdvertiserModel{}).
		Where("id = ?", a.ID()).
		Updates(map[string]any{
			"name":       a.Name(),
			"email":      a.Email(),
			"phone":      a.Phone(),
			"updated_at": a.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update advertiser: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("advertiser not found")
	}
	return nil
}

// DeleteIfUnreferenced deletes the advertiser only when no ad and no contract
// points at it. The check and the delete are one statement.
func (r *AdvertiserRepositoryImpl) DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(
			db.NotReferencedBy(constants.TableAdvertisers, constants.TableAds, "advertiser_id"),
			db.NotReferencedBy(constants.TableAdvertisers, constants.TableContracts, "advertiser_id"),
		).
		Where(constants.TableAdvertisers+".id = ?", id).
		Delete(&models.AdvertiserModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete advertiser: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AdvertiserRepositoryImpl) CountReferences(ctx context.Context, id uint) (advertiser.References, error) {
	var refs advertiser.References
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AdModel{}).Where("advertiser_id = ?", id).Count(&refs.Ads).Error; err != nil {
		return refs, fmt.Errorf("failed to count advertiser ads: %w", err)
	}
	if err := tx.Model(&models.ContractModel{}).Where("advertiser_id = ?", id).Count(&refs.Contracts).Error; err != nil {
		return refs, fmt.Errorf("failed to count advertiser contracts: %w", err)
	}
	return refs, nil
}
