package mappers

import (
	"fmt"
	"time"

	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

type AnalyticsMapper interface {
	ToEntity(model *models.AnalyticsModel) (*analytics.Record, error)
	ToModel(entity *analytics.Record) *models.AnalyticsModel
	ToListing(row *models.AnalyticsListingRow) (*analytics.Listing, error)
	ToListings(rows []*models.AnalyticsListingRow) ([]*analytics.Listing, error)
}

type AnalyticsMapperImpl struct{}

func NewAnalyticsMapper() AnalyticsMapper {
	return &AnalyticsMapperImpl{}
}

func (m *AnalyticsMapperImpl) ToEntity(model *models.AnalyticsModel) (*analytics.Record, error) {
	if model == nil {
		return nil, nil
	}

	var measuredAt *time.Time
	if model.MeasuredAt != nil {
		t := fromDate(*model.MeasuredAt)
		measuredAt = &t
	}

	entity, err := analytics.ReconstructRecord(
		model.ID,
		analytics.Metrics{
			AdID:       model.AdID,
			Viewers:    model.Viewers,
			Engagement: model.Engagement,
			Rating:     model.Rating,
			MeasuredAt: measuredAt,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct analytics entity: %w", err)
	}

	return entity, nil
}

func (m *AnalyticsMapperImpl) ToModel(entity *analytics.Record) *models.AnalyticsModel {
	if entity == nil {
		return nil
	}

	model := &models.AnalyticsModel{
		ID:         entity.ID(),
		AdID:       entity.AdID(),
		Viewers:    entity.Viewers(),
		Engagement: entity.Engagement(),
		Rating:     entity.Rating(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}

	if entity.MeasuredAt() != nil {
		d := toDate(*entity.MeasuredAt())
		model.MeasuredAt = &d
	}

	return model
}

func (m *AnalyticsMapperImpl) ToListing(row *models.AnalyticsListingRow) (*analytics.Listing, error) {
	if row == nil {
		return nil, nil
	}

	entity, err := m.ToEntity(&row.AnalyticsModel)
	if err != nil {
		return nil, err
	}

	return &analytics.Listing{
		Record:         entity,
		AdInfo:         row.AdInfo,
		AdvertiserName: row.AdvertiserName,
	}, nil
}

func (m *AnalyticsMapperImpl) ToListings(rows []*models.AnalyticsListingRow) ([]*analytics.Listing, error) {
	return mapper.MapSliceWithError(rows, m.ToListing)
}
