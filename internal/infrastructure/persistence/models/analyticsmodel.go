package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

type AnalyticsModel struct {
	ID         uint    `gorm:"primaryKey"`
	AdID       uint    `gorm:"not null;index"`
	Viewers    int64   `gorm:"not null;default:0"`
	Engagement float64 `gorm:"type:decimal(5,4);not null;default:0"`
	Rating     float64 `gorm:"type:decimal(4,2);not null;default:0"`
	MeasuredAt *datatypes.Date
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AnalyticsModel) TableName() string {
	return constants.TableAnalytics
}

// AnalyticsListingRow is a record joined with its ad and the ad's advertiser.
type AnalyticsListingRow struct {
	AnalyticsModel
	AdInfo         string
	AdvertiserName string
}
