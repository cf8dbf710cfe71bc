package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/mappers"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(gdb *gorm.DB) agent.Repository {
	return &AgentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepositoryImpl) List(ctx context.Context) ([]*agent.Agent, error) {
	var modelList []*models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map agent models to entities: %w", err)
	}
	return entities, nil
}

func (r *AgentRepositoryImpl) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map agent model to entity: %w", err)
	}
	return entity, nil
}

func (r *AgentRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.AgentModel{}, id)
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set agent ID: %w", err)
	}
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AgentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"full_name":       model.FullName,
			"phone":           model.Phone,
			"commission_rate": model.CommissionRate,
			"hire_date":       model.HireDate,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("agent not found")
	}
	return nil
}

func (r *AgentRepositoryImpl) DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotReferencedBy(constants.TableAgents, constants.TableContracts, "agent_id")).
		Where(constants.TableAgents+".id = ?", id).
		Delete(&models.AgentModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete agent: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AgentRepositoryImpl) CountContracts(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ContractModel{}).Where("agent_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count agent contracts: %w", err)
	}
	return count, nil
}
