package mappers

import (
	"fmt"

	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

type AdMapper interface {
	ToEntity(model *models.AdModel) (*ad.Ad, error)
	ToModel(entity *ad.Ad) *models.AdModel
	ToListing(row *models.AdListingRow) (*ad.Listing, error)
	ToListings(rows []*models.AdListingRow) ([]*ad.Listing, error)
}

type AdMapperImpl struct{}

func NewAdMapper() AdMapper {
	return &AdMapperImpl{}
}

func (m *AdMapperImpl) ToEntity(model *models.AdModel) (*ad.Ad, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ad.ReconstructAd(
		model.ID,
		model.AdvertiserID,
		model.Info,
		model.Cost,
		fromDate(model.DatePublished),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ad entity: %w", err)
	}

	return entity, nil
}

func (m *AdMapperImpl) ToModel(entity *ad.Ad) *models.AdModel {
	if entity == nil {
		return nil
	}

	return &models.AdModel{
		ID:            entity.ID(),
		AdvertiserID:  entity.AdvertiserID(),
		Info:          entity.Info(),
		Cost:          entity.Cost(),
		DatePublished: toDate(entity.DatePublished()),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *AdMapperImpl) ToListing(row *models.AdListingRow) (*ad.Listing, error) {
	if row == nil {
		return nil, nil
	}

	entity, err := m.ToEntity(&row.AdModel)
	if err != nil {
		return nil, err
	}

	return &ad.Listing{Ad: entity, AdvertiserName: row.AdvertiserName}, nil
}

func (m *AdMapperImpl) ToListings(rows []*models.AdListingRow) ([]*ad.Listing, error) {
	return mapper.MapSliceWithError(rows, m.ToListing)
}
