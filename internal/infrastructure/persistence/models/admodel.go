package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

type AdModel struct {
	ID            uint           `gorm:"primaryKey"`
	AdvertiserID  uint           `gorm:"not null;index"`
	Info          string         `gorm:"type:text;not null"`
	Cost          float64        `gorm:"type:decimal(12,2);not null"`
	DatePublished datatypes.Date `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AdModel) TableName() string {
	return constants.TableAds
}

// AdListingRow is an ad joined with its advertiser's name.
type AdListingRow struct {
	AdModel
	AdvertiserName string
}
