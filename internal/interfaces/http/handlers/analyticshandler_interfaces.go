package handlers

import (
	"context"

	analyticsdto "github.com/adagency-io/adagency/internal/application/analytics/dto"
)

type analyticsService interface {
	List(ctx context.Context) ([]*analyticsdto.AnalyticsResponse, error)
	Get(ctx context.Context, id uint) (*analyticsdto.AnalyticsResponse, error)
	Create(ctx context.Context, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error)
	Update(ctx context.Context, id uint, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error)
	Delete(ctx context.Context, id uint) (*analyticsdto.AnalyticsResponse, error)
}

type viewsTotaler interface {
	TotalViews(ctx context.Context) (int64, error)
}
