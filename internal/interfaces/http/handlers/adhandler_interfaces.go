package handlers

import (
	"context"

	addto "github.com/adagency-io/adagency/internal/application/ad/dto"
	analyticsdto "github.com/adagency-io/adagency/internal/application/analytics/dto"
)

type adService interface {
	List(ctx context.Context) ([]*addto.AdResponse, error)
	Get(ctx context.Context, id uint) (*addto.AdResponse, error)
	Create(ctx context.Context, cmd addto.AdCommand) (*addto.AdResponse, error)
	Update(ctx context.Context, id uint, cmd addto.AdCommand) (*addto.AdResponse, error)
	Delete(ctx context.Context, id uint) (*addto.AdResponse, error)
}

type adCounter interface {
	AdCount(ctx context.Context) (int64, error)
}

type adAnalyticsLister interface {
	ListByAd(ctx context.Context, adID uint) ([]*analyticsdto.AnalyticsResponse, error)
}
