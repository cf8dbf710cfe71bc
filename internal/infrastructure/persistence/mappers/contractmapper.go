package mappers

import (
	"fmt"

	"github.com/adagency-io/adagency/internal/domain/contract"
	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

type ContractMapper interface {
	ToEntity(model *models.ContractModel) (*contract.Contract, error)
	ToModel(entity *contract.Contract) *models.ContractModel
	ToListing(row *models.ContractListingRow) (*contract.Listing, error)
	ToListings(rows []*models.ContractListingRow) ([]*contract.Listing, error)
}

type ContractMapperImpl struct{}

func NewContractMapper() ContractMapper {
	return &ContractMapperImpl{}
}

func (m *ContractMapperImpl) ToEntity(model *models.ContractModel) (*contract.Contract, error) {
	if model == nil {
		return nil, nil
	}

	duration, err := vo.ParseDuration(model.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract duration %q: %w", model.Duration, err)
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract status: %w", err)
	}

	entity, err := contract.ReconstructContract(
		model.ID,
		contract.Terms{
			AdvertiserID: model.AdvertiserID,
			AgentID:      model.AgentID,
			DateSigned:   fromDate(model.DateSigned),
			Duration:     duration,
			Amount:       model.Amount,
			Status:       status,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contract entity: %w", err)
	}

	return entity, nil
}

func (m *ContractMapperImpl) ToModel(entity *contract.Contract) *models.ContractModel {
	if entity == nil {
		return nil
	}

	return &models.ContractModel{
		ID:           entity.ID(),
		AdvertiserID: entity.AdvertiserID(),
		AgentID:      entity.AgentID(),
		DateSigned:   toDate(entity.DateSigned()),
		Duration:     entity.Duration().String(),
		Amount:       entity.Amount(),
		Status:       entity.Status().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *ContractMapperImpl) ToListing(row *models.ContractListingRow) (*contract.Listing, error) {
	if row == nil {
		return nil, nil
	}

	entity, err := m.ToEntity(&row.ContractModel)
	if err != nil {
		return nil, err
	}

	return &contract.Listing{
		Contract:       entity,
		AdvertiserName: row.AdvertiserName,
		AgentName:      row.AgentName,
	}, nil
}

func (m *ContractMapperImpl) ToListings(rows []*models.ContractListingRow) ([]*contract.Listing, error) {
	return mapper.MapSliceWithError(rows, m.ToListing)
}
