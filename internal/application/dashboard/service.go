// Package dashboard implements the derived read endpoints: counts and totals.
package dashboard

import (
	"context"
	"fmt"

	"github.com/adagency-io/adagency/internal/application/dashboard/dto"
	"github.com/adagency-io/adagency/internal/shared/logger"
)

// StatsRepository answers aggregate queries. Every method returns 0 for an
// empty table.
type StatsRepository interface {
	CountAdvertisers(ctx context.Context) (int64, error)
	CountAds(ctx context.Context) (int64, error)
	CountActiveContracts(ctx context.Context) (int64, error)
	TotalViews(ctx context.Context) (int64, error)
}

type Service struct {
	repo   StatsRepository
	logger logger.Interface
}

func NewService(repo StatsRepository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) AdvertiserCount(ctx context.Context) (int64, error) {
	return s.query(ctx, "advertiser count", s.repo.CountAdvertisers)
}

func (s *Service) AdCount(ctx context.Context) (int64, error) {
	return s.query(ctx, "ad count", s.repo.CountAds)
}

func (s *Service) ActiveContractCount(ctx context.Context) (int64, error) {
	return s.query(ctx, "active contract count", s.repo.CountActiveContracts)
}

func (s *Service) TotalViews(ctx context.Context) (int64, error) {
	return s.query(ctx, "total views", s.repo.TotalViews)
}

// Stats collects every counter in one response.
func (s *Service) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var (
		stats dto.StatsResponse
		err   error
	)

	if stats.Advertisers, err = s.AdvertiserCount(ctx); err != nil {
		return nil, err
	}
	if stats.Ads, err = s.AdCount(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveContracts, err = s.ActiveContractCount(ctx); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = s.TotalViews(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Service) query(ctx context.Context, name string, fn func(context.Context) (int64, error)) (int64, error) {
	n, err := fn(ctx)
	if err != nil {
		s.logger.Errorw("failed to query "+name, "error", err)
		return 0, fmt.Errorf("failed to query %s: %w", name, err)
	}
	return n, nil
}
