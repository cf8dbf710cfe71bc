package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

type ContractModel struct {
	ID           uint           `gorm:"primaryKey"`
	AdvertiserID uint           `gorm:"not null;index"`
	AgentID      uint           `gorm:"not null;index"`
	DateSigned   datatypes.Date `gorm:"not null"`
	Duration     string         `gorm:"size:64;not null"`
	Amount       float64        `gorm:"type:decimal(14,2);not null"`
	Status       string         `gorm:"size:32;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ContractModel) TableName() string {
	return constants.TableContracts
}

// ContractListingRow is a contract joined with the names of both parties.
type ContractListingRow struct {
	ContractModel
	AdvertiserName string
	AgentName      string
}
