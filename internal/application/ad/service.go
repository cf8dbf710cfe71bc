// Package ad implements the ad use cases.
package ad

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/ad/dto"
	"github.com/adagency-io/adagency/internal/application/common"
	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

// AdvertiserLookup checks that a referenced advertiser exists.
type AdvertiserLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type Service struct {
	repo        ad.Repository
	advertisers AdvertiserLookup
	renderer    dto.InfoRenderer
	txManager   common.TransactionManager
	logger      logger.Interface
}

func NewService(
	repo ad.Repository,
	advertisers AdvertiserLookup,
	renderer dto.InfoRenderer,
	txManager common.TransactionManager,
	logger logger.Interface,
) *Service {
	return &Service{
		repo:        repo,
		advertisers: advertisers,
		renderer:    renderer,
		txManager:   txManager,
		logger:      logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*dto.AdResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list ads", "error", err)
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	return s.toResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.AdResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(l), nil
}

func (s *Service) Create(ctx context.Context, cmd dto.AdCommand) (*dto.AdResponse, error) {
	a, err := ad.NewAd(cmd.AdvertiserID, cmd.Info, cmd.Cost, cmd.DatePublished)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.ensureAdvertiser(ctx, cmd.AdvertiserID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errors.IsForeignKeyError(err) {
			return nil, errors.NewValidationError("advertiser not found")
		}
		s.logger.Errorw("failed to create ad", "advertiser_id", cmd.AdvertiserID, "error", err)
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	s.logger.Infow("ad created", "ad_id", a.ID(), "advertiser_id", a.AdvertiserID())
	return s.Get(ctx, a.ID())
}

func (s *Service) Update(ctx context.Context, id uint, cmd dto.AdCommand) (*dto.AdResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	a := l.Ad
	if err := a.Update(cmd.AdvertiserID, cmd.Info, cmd.Cost, cmd.DatePublished); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.ensureAdvertiser(ctx, cmd.AdvertiserID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		switch {
		case errors.IsNotFoundError(err):
			return nil, err
		case errors.IsForeignKeyError(err):
			return nil, errors.NewValidationError("advertiser not found")
		}
		s.logger.Errorw("failed to update ad", "ad_id", id, "error", err)
		return nil, fmt.Errorf("failed to update ad: %w", err)
	}

	s.logger.Infow("ad updated", "ad_id", id)
	return s.Get(ctx, id)
}

// Delete removes an ad that has no analytics records.
func (s *Service) Delete(ctx context.Context, id uint) (*dto.AdResponse, error) {
	var deleted *ad.Listing

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		l, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		removed, err := s.repo.DeleteIfUnreferenced(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete ad: %w", err)
		}
		if removed {
			deleted = l
			return nil
		}

		records, err := s.repo.CountAnalytics(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count ad analytics: %w", err)
		}
		if records > 0 {
			return errors.NewConflictError("ad is referenced by analytics records", fmt.Sprintf("%d analytics records", records))
		}
		return errors.NewNotFoundError("ad not found")
	})
	if err != nil {
		if !errors.IsAppError(err) {
			s.logger.Errorw("failed to delete ad", "ad_id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("ad deleted", "ad_id", id)
	return s.toResponse(deleted), nil
}

// toResponse renders the ad copy. A rendering failure is logged and leaves
// info_html empty; the raw info is still returned.
func (s *Service) toResponse(l *ad.Listing) *dto.AdResponse {
	if l == nil || l.Ad == nil {
		return nil
	}

	infoHTML := ""
	if s.renderer != nil {
		rendered, err := s.renderer.ToHTMLSanitized(l.Ad.Info())
		if err != nil {
			s.logger.Warnw("failed to render ad info", "ad_id", l.Ad.ID(), "error", err)
		} else {
			infoHTML = rendered
		}
	}
	return dto.ToAdResponse(l, infoHTML)
}

func (s *Service) toResponses(items []*ad.Listing) []*dto.AdResponse {
	return mapper.MapSlicePtr(items, s.toResponse)
}

func (s *Service) ensureAdvertiser(ctx context.Context, advertiserID uint) error {
	ok, err := s.advertisers.Exists(ctx, advertiserID)
	if err != nil {
		s.logger.Errorw("failed to check advertiser", "advertiser_id", advertiserID, "error", err)
		return fmt.Errorf("failed to check advertiser: %w", err)
	}
	if !ok {
		return errors.NewValidationError("advertiser not found")
	}
	return nil
}

func (s *Service) load(ctx context.Context, id uint) (*ad.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get ad", "ad_id", id, "error", err)
		return nil, fmt.Errorf("failed to get ad: %w", err)
	}
	if l == nil || l.Ad == nil {
		return nil, errors.NewNotFoundError("ad not found")
	}
	return l, nil
}
