package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/adagency-io/adagency/internal/shared/constants"
)

type AgentModel struct {
	ID             uint           `gorm:"primaryKey"`
	FullName       string         `gorm:"size:255;not null"`
	Phone          string         `gorm:"size:50;not null"`
	CommissionRate float64        `gorm:"type:decimal(5,2);not null"`
	HireDate       datatypes.Date `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AgentModel) TableName() string {
	return constants.TableAgents
}
