// Package contract implements the contract use cases.
package contract

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/contract/dto"
	"github.com/adagency-io/adagency/internal/domain/contract"
	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

// PartyLookup checks that a referenced advertiser or agent exists.
type PartyLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type Service struct {
	repo        contract.Repository
	advertisers PartyLookup
	agents      PartyLookup
	logger      logger.Interface
}

func NewService(repo contract.Repository, advertisers, agents PartyLookup, logger logger.Interface) *Service {
	return &Service{
		repo:        repo,
		advertisers: advertisers,
		agents:      agents,
		logger:      logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*dto.ContractResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list contracts", "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return dto.ToContractResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.ContractResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToContractResponse(l), nil
}

func (s *Service) Create(ctx context.Context, cmd dto.ContractCommand) (*dto.ContractResponse, error) {
	terms, err := s.terms(ctx, cmd)
	if err != nil {
		return nil, err
	}

	c, err := contract.NewContract(terms)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.IsForeignKeyError(err) {
			return nil, errors.NewValidationError("advertiser or agent not found")
		}
		s.logger.Errorw("failed to create contract", "advertiser_id", cmd.AdvertiserID, "agent_id", cmd.AgentID, "error", err)
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.logger.Infow("contract created", "contract_id", c.ID(), "duration", c.Duration().String())
	return s.Get(ctx, c.ID())
}

func (s *Service) Update(ctx context.Context, id uint, cmd dto.ContractCommand) (*dto.ContractResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	terms, err := s.terms(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err := l.Contract.Update(terms); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, l.Contract); err != nil {
		switch {
		case errors.IsNotFoundError(err):
			return nil, err
		case errors.IsForeignKeyError(err):
			return nil, errors.NewValidationError("advertiser or agent not found")
		}
		s.logger.Errorw("failed to update contract", "contract_id", id, "error", err)
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}

	s.logger.Infow("contract updated", "contract_id", id)
	return s.Get(ctx, id)
}

// Delete removes a contract. Deleting an id that is already gone is NotFound.
func (s *Service) Delete(ctx context.Context, id uint) (*dto.ContractResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to delete contract", "contract_id", id, "error", err)
		return nil, fmt.Errorf("failed to delete contract: %w", err)
	}

	s.logger.Infow("contract deleted", "contract_id", id)
	return dto.ToContractResponse(l), nil
}

// terms validates the value objects and checks both parties exist.
func (s *Service) terms(ctx context.Context, cmd dto.ContractCommand) (contract.Terms, error) {
	duration, err := vo.FromValueUnit(cmd.DurationValue, cmd.DurationUnit)
	if err != nil {
		return contract.Terms{}, errors.NewValidationError(err.Error())
	}
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return contract.Terms{}, errors.NewValidationError(err.Error())
	}

	if err := s.ensureExists(ctx, s.advertisers, "advertiser", cmd.AdvertiserID); err != nil {
		return contract.Terms{}, err
	}
	if err := s.ensureExists(ctx, s.agents, "agent", cmd.AgentID); err != nil {
		return contract.Terms{}, err
	}

	return contract.Terms{
		AdvertiserID: cmd.AdvertiserID,
		AgentID:      cmd.AgentID,
		DateSigned:   cmd.DateSigned,
		Duration:     duration,
		Amount:       cmd.Amount,
		Status:       status,
	}, nil
}

func (s *Service) ensureExists(ctx context.Context, lookup PartyLookup, entity string, id uint) error {
	if id == 0 {
		return errors.NewValidationError(entity + " is required")
	}
	ok, err := lookup.Exists(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to check "+entity, entity+"_id", id, "error", err)
		return fmt.Errorf("failed to check %s: %w", entity, err)
	}
	if !ok {
		return errors.NewValidationError(entity + " not found")
	}
	return nil
}

func (s *Service) load(ctx context.Context, id uint) (*contract.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get contract", "contract_id", id, "error", err)
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if l == nil || l.Contract == nil {
		return nil, errors.NewNotFoundError("contract not found")
	}
	return l, nil
}
