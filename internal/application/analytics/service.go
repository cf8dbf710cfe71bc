// Package analytics implements the analytics record use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/analytics/dto"
	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

// AdLookup checks that a referenced ad exists.
type AdLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type Service struct {
	repo   analytics.Repository
	ads    AdLookup
	logger logger.Interface
}

func NewService(repo analytics.Repository, ads AdLookup, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		ads:    ads,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*dto.AnalyticsResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list analytics", "error", err)
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	return dto.ToAnalyticsResponses(items), nil
}

// ListByAd returns the records of one ad; an unknown ad is NotFound.
func (s *Service) ListByAd(ctx context.Context, adID uint) ([]*dto.AnalyticsResponse, error) {
	ok, err := s.ads.Exists(ctx, adID)
	if err != nil {
		s.logger.Errorw("failed to check ad", "ad_id", adID, "error", err)
		return nil, fmt.Errorf("failed to check ad: %w", err)
	}
	if !ok {
		return nil, errors.NewNotFoundError("ad not found")
	}

	items, err := s.repo.ListByAd(ctx, adID)
	if err != nil {
		s.logger.Errorw("failed to list ad analytics", "ad_id", adID, "error", err)
		return nil, fmt.Errorf("failed to list ad analytics: %w", err)
	}
	return dto.ToAnalyticsResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*dto.AnalyticsResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAnalyticsResponse(l), nil
}

func (s *Service) Create(ctx context.Context, cmd dto.AnalyticsCommand) (*dto.AnalyticsResponse, error) {
	r, err := analytics.NewRecord(toMetrics(cmd))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.ensureAd(ctx, cmd.AdID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.IsForeignKeyError(err) {
			return nil, errors.NewValidationError("ad not found")
		}
		s.logger.Errorw("failed to create analytics record", "ad_id", cmd.AdID, "error", err)
		return nil, fmt.Errorf("failed to create analytics record: %w", err)
	}

	s.logger.Infow("analytics record created", "analytics_id", r.ID(), "ad_id", r.AdID())
	return s.Get(ctx, r.ID())
}

func (s *Service) Update(ctx context.Context, id uint, cmd dto.AnalyticsCommand) (*dto.AnalyticsResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.Record.Update(toMetrics(cmd)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.ensureAd(ctx, cmd.AdID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, l.Record); err != nil {
		switch {
		case errors.IsNotFoundError(err):
			return nil, err
		case errors.IsForeignKeyError(err):
			return nil, errors.NewValidationError("ad not found")
		}
		s.logger.Errorw("failed to update analytics record", "analytics_id", id, "error", err)
		return nil, fmt.Errorf("failed to update analytics record: %w", err)
	}

	s.logger.Infow("analytics record updated", "analytics_id", id)
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) (*dto.AnalyticsResponse, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to delete analytics record", "analytics_id", id, "error", err)
		return nil, fmt.Errorf("failed to delete analytics record: %w", err)
	}

	s.logger.Infow("analytics record deleted", "analytics_id", id)
	return dto.ToAnalyticsResponse(l), nil
}

func (s *Service) ensureAd(ctx context.Context, adID uint) error {
	ok, err := s.ads.Exists(ctx, adID)
	if err != nil {
		s.logger.Errorw("failed to check ad", "ad_id", adID, "error", err)
		return fmt.Errorf("failed to check ad: %w", err)
	}
	if !ok {
		return errors.NewValidationError("ad not found")
	}
	return nil
}

func (s *Service) load(ctx context.Context, id uint) (*analytics.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get analytics record", "analytics_id", id, "error", err)
		return nil, fmt.Errorf("failed to get analytics record: %w", err)
	}
	if l == nil || l.Record == nil {
		return nil, errors.NewNotFoundError("analytics record not found")
	}
	return l, nil
}

func toMetrics(cmd dto.AnalyticsCommand) analytics.Metrics {
	return analytics.Metrics{
		AdID:       cmd.AdID,
		Viewers:    cmd.Viewers,
		Engagement: cmd.Engagement,
		Rating:     cmd.Rating,
		MeasuredAt: cmd.MeasuredAt,
	}
}
