package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

type AgentMapper interface {
	ToEntity(model *models.AgentModel) (*agent.Agent, error)
	ToModel(entity *agent.Agent) *models.AgentModel
	ToEntities(models []*models.AgentModel) ([]*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToEntity(model *models.AgentModel) (*agent.Agent, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := agent.ReconstructAgent(
		model.ID,
		model.FullName,
		model.Phone,
		model.CommissionRate,
		fromDate(model.HireDate),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct agent entity: %w", err)
	}

	return entity, nil
}

func (m *AgentMapperImpl) ToModel(entity *agent.Agent) *models.AgentModel {
	if entity == nil {
		return nil
	}

	return &models.AgentModel{
		ID:             entity.ID(),
		FullName:       entity.FullName(),
		Phone:          entity.Phone(),
		CommissionRate: entity.CommissionRate(),
		HireDate:       toDate(entity.HireDate()),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *AgentMapperImpl) ToEntities(models []*models.AgentModel) ([]*agent.Agent, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}

// toDate drops the clock and pins the value to UTC midnight.
func toDate(t time.Time) datatypes.Date {
	y, mo, d := t.Date()
	return datatypes.Date(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC))
}

// fromDate reads a DATE column back as a UTC calendar day. Drivers return
// the value in their session location, so only the date parts are kept.
func fromDate(d datatypes.Date) time.Time {
	return time.Time(toDate(time.Time(d)))
}
