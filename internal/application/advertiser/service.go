// Package advertiser implements the advertiser use cases.
package advertiser

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/advertiser/dto"
	"github.com/adagency-io/adagency/internal/application/common"
	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type Service struct {
	repo      advertiser.Repository
	txManager common.TransactionManager
	logger    logger.Interface
}

func NewService(repo advertiser.Repository, txManager common.TransactionManager, logger logger.Interface) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*dto.AdvertiserResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list advertisers", "error", err)
		return nil, fmt.Errorf("failed to list advertisers: %w", err)
	}
	return dto.ToAdvertiserResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.AdvertiserResponse, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAdvertiserResponse(a), nil
}

func (s *Service) Create(ctx context.Context, cmd dto.AdvertiserCommand) (*dto.AdvertiserResponse, error) {
	a, err := advertiser.NewAdvertiser(cmd.Name, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Errorw("failed to create advertiser", "email", utils.MaskEmail(cmd.Email), "error", err)
		return nil, fmt.Errorf("failed to create advertiser: %w", err)
	}

	s.logger.Infow("advertiser created", "advertiser_id", a.ID())
	return dto.ToAdvertiserResponse(a), nil
}

func (s *Service) Update(ctx context.Context, id uint, cmd dto.AdvertiserCommand) (*dto.AdvertiserResponse, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Update(cmd.Name, cmd.Email, cmd.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update advertiser", "advertiser_id", id, "error", err)
		return nil, fmt.Errorf("failed to update advertiser: %w", err)
	}

	s.logger.Infow("advertiser updated", "advertiser_id", id)
	return dto.ToAdvertiserResponse(a), nil
}

// Delete removes an advertiser that no ad or contract references. The
// existence check, the guarded delete and the reference count all run in one
// transaction, so a concurrent insert of a dependent row cannot slip between
// the check and the delete.
func (s *Service) Delete(ctx context.Context, id uint) (*dto.AdvertiserResponse, error) {
	var deleted *advertiser.Advertiser

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		removed, err := s.repo.DeleteIfUnreferenced(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete advertiser: %w", err)
		}
		if removed {
			deleted = a
			return nil
		}

		refs, err := s.repo.CountReferences(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count advertiser references: %w", err)
		}
		if refs.InUse() {
			return errors.NewConflictError("advertiser is referenced by ads or contracts", refs.String())
		}
		return errors.NewNotFoundError("advertiser not found")
	})
	if err != nil {
		if !errors.IsAppError(err) {
			s.logger.Errorw("failed to delete advertiser", "advertiser_id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("advertiser deleted", "advertiser_id", id)
	return dto.ToAdvertiserResponse(deleted), nil
}

func (s *Service) load(ctx context.Context, id uint) (*advertiser.Advertiser, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get advertiser", "advertiser_id", id, "error", err)
		return nil, fmt.Errorf("failed to get advertiser: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("advertiser not found")
	}
	return a, nil
}
