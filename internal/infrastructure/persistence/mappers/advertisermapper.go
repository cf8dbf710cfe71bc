package mappers

import (
	"fmt"

	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

type AdvertiserMapper interface {
	ToEntity(model *models.AdvertiserModel) (*advertiser.Advertiser, error)
	ToModel(entity *advertiser.Advertiser) *models.AdvertiserModel
	ToEntities(models []*models.AdvertiserModel) ([]*advertiser.Advertiser, error)
}

type AdvertiserMapperImpl struct{}

func NewAdvertiserMapper() AdvertiserMapper {
	return &AdvertiserMapperImpl{}
}

func (m *AdvertiserMapperImpl) ToEntity(model *models.AdvertiserModel) (*advertiser.Advertiser, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := advertiser.ReconstructAdvertiser(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct advertiser entity: %w", err)
	}

	return entity, nil
}

func (m *AdvertiserMapperImpl) ToModel(entity *advertiser.Advertiser) *models.AdvertiserModel {
	if entity == nil {
		return nil
	}

	return &models.AdvertiserModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *AdvertiserMapperImpl) ToEntities(models []*models.AdvertiserModel) ([]*advertiser.Advertiser, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
