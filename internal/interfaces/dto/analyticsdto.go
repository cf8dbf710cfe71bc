package dto

import (
	analyticsdto "github.com/adagency-io/adagency/internal/application/analytics/dto"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AnalyticsRequest is the body of POST and PUT /analytics.
type AnalyticsRequest struct {
	AdID       uint     `json:"adId" validate:"required"`
	Viewers    *int64   `json:"viewers" validate:"required,gte=0"`
	Engagement *float64 `json:"engagement" validate:"required,gte=0,lte=1"`
	Rating     *float64 `json:"rating" validate:"required,gte=0,lte=10"`
	MeasuredAt string   `json:"measuredAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *AnalyticsRequest) ToCommand() (analyticsdto.AnalyticsCommand, error) {
	cmd := analyticsdto.AnalyticsCommand{
		AdID:       r.AdID,
		Viewers:    *r.Viewers,
		Engagement: *r.Engagement,
		Rating:     *r.Rating,
	}

	if r.MeasuredAt != "" {
		measured, err := utils.ParseDate(r.MeasuredAt)
		if err != nil {
			return analyticsdto.AnalyticsCommand{}, errors.NewValidationError("invalid measurement date", r.MeasuredAt)
		}
		cmd.MeasuredAt = &measured
	}

	return cmd, nil
}
