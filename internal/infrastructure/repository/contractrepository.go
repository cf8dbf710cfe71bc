package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/contract"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

type ContractRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ContractMapper
}

func NewContractRepository(gdb *gorm.DB) contract.Repository {
	return &ContractRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewContractMapper(),
	}
}

// listing selects contracts with the names of both parties.
func (r *ContractRepositoryImpl) listing(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Select("contracts.*, " +
			"COALESCE(advertisers.name, '') AS advertiser_name, " +
			"COALESCE(agents.full_name, '') AS agent_name").
		Joins("LEFT JOIN advertisers ON advertisers.id = contracts.advertiser_id").
		Joins("LEFT JOIN agents ON agents.id = contracts.agent_id")
}

func (r *ContractRepositoryImpl) List(ctx context.Context) ([]*contract.Listing, error) {
	var rows []*models.ContractListingRow
	if err := r.listing(ctx).Scopes(db.OrderByNewest(constants.TableContracts, "date_signed")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	listings, err := r.mapper.ToListings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map contract rows: %w", err)
	}
	return listings, nil
}

func (r *ContractRepositoryImpl) GetByID(ctx context.Context, id uint) (*contract.Listing, error) {
	var rows []*models.ContractListingRow
	if err := r.listing(ctx).Where("contracts.id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get contract by ID: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	listing, err := r.mapper.ToListing(rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to map contract row: %w", err)
	}
	return listing, nil
}

func (r *ContractRepositoryImpl) Create(ctx context.Context, c *contract.Contract) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set contract ID: %w", err)
	}
	return nil
}

func (r *ContractRepositoryImpl) Update(ctx context.Context, c *contract.Contract) error {
	model := r.mapper.ToModel(c)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"advertiser_id": model.AdvertiserID,
			"agent_id":      model.AgentID,
			"date_signed":   model.DateSigned,
			"duration":      model.Duration,
			"amount":        model.Amount,
			"status":        model.Status,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contract not found")
	}
	return nil
}

func (r *ContractRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ContractModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("contract not found")
	}
	return nil
}
