package models

import (
	"time"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

type AdvertiserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdvertiserModel) TableName() string {
	return constants.TableAdvertisers
}
