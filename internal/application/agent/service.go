// Package agent implements the agent use cases.
package agent

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/agent/dto"
	"github.com/adagency-io/adagency/internal/application/common"
	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type Service struct {
	repo      agent.Repository
	txManager common.TransactionManager
	logger    logger.Interface
}

func NewService(repo agent.Repository, txManager common.TransactionManager, logger logger.Interface) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*dto.AgentResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list agents", "error", err)
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return dto.ToAgentResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.AgentResponse, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAgentResponse(a), nil
}

func (s *Service) Create(ctx context.Context, cmd dto.AgentCommand) (*dto.AgentResponse, error) {
	a, err := agent.NewAgent(cmd.FullName, cmd.Phone, cmd.CommissionRate, cmd.HireDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Errorw("failed to create agent", "phone", utils.MaskPhone(cmd.Phone), "error", err)
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	s.logger.Infow("agent created", "agent_id", a.ID())
	return dto.ToAgentResponse(a), nil
}

func (s *Service) Update(ctx context.Context, id uint, cmd dto.AgentCommand) (*dto.AgentResponse, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Update(cmd.FullName, cmd.Phone, cmd.CommissionRate, cmd.HireDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update agent", "agent_id", id, "error", err)
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	s.logger.Infow("agent updated", "agent_id", id)
	return dto.ToAgentResponse(a), nil
}

// Delete removes an agent that has no contracts.
func (s *Service) Delete(ctx context.Context, id uint) (*dto.AgentResponse, error) {
	var deleted *agent.Agent

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		removed, err := s.repo.DeleteIfUnreferenced(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}
		if removed {
			deleted = a
			return nil
		}

		contracts, err := s.repo.CountContracts(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count agent contracts: %w", err)
		}
		if contracts > 0 {
			return errors.NewConflictError("agent is referenced by contracts", fmt.Sprintf("%d contracts", contracts))
		}
		return errors.NewNotFoundError("agent not found")
	})
	if err != nil {
		if !errors.IsAppError(err) {
			s.logger.Errorw("failed to delete agent", "agent_id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("agent deleted", "agent_id", id)
	return dto.ToAgentResponse(deleted), nil
}

func (s *Service) load(ctx context.Context, id uint) (*agent.Agent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get agent", "agent_id", id, "error", err)
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found")
	}
	return a, nil
}
