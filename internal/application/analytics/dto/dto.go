package dto

import (
	"time"

	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/shared/mapper"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type AnalyticsCommand struct {
	AdID       uint
	Viewers    int64
	Engagement float64
	Rating     float64
	MeasuredAt *time.Time
}

type AnalyticsResponse struct {
	ID             uint      `json:"id"`
	AdID           uint      `json:"ad_id"`
	AdInfo         string    `json:"ad_info"`
	AdvertiserName string    `json:"advertiser_name"`
	Viewers        int64     `json:"viewers"`
	Engagement     float64   `json:"engagement"`
	Rating         float64   `json:"rating"`
	MeasuredAt     *string   `json:"measured_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToAnalyticsResponse(l *analytics.Listing) *AnalyticsResponse {
	if l == nil || l.Record == nil {
		return nil
	}

	r := l.Record
	var measuredAt *string
	if r.MeasuredAt() != nil {
		s := utils.FormatDate(*r.MeasuredAt())
		measuredAt = &s
	}

	return &AnalyticsResponse{
		ID:             r.ID(),
		AdID:           r.AdID(),
		AdInfo:         l.AdInfo,
		AdvertiserName: l.AdvertiserName,
		Viewers:        r.Viewers(),
		Engagement:     r.Engagement(),
		Rating:         r.Rating(),
		MeasuredAt:     measuredAt,
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func ToAnalyticsResponses(items []*analytics.Listing) []*AnalyticsResponse {
	return mapper.MapSlicePtr(items, ToAnalyticsResponse)
}
