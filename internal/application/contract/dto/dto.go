package dto

import (
	"time"

	"github.com/adagency-io/adagency/internal/domain/contract"
	"github.com/adagency-io/adagency/internal/shared/i18n"
	"github.com/adagency-io/adagency/internal/shared/mapper"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type ContractCommand struct {
	AdvertiserID  uint
	AgentID       uint
	DateSigned    time.Time
	DurationValue int
	DurationUnit  string
	Amount        float64
	Status        string
}

// DurationParts is the decomposed contract period.
type DurationParts struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

type ContractResponse struct {
	ID             uint          `json:"id"`
	AdvertiserID   uint          `json:"advertiser_id"`
	AdvertiserName string        `json:"advertiser_name"`
	AgentID        uint          `json:"agent_id"`
	AgentName      string        `json:"agent_name"`
	DateSigned     string        `json:"date_signed"`
	Duration       DurationParts `json:"duration"`
	DurationValue  int           `json:"duration_value"`
	DurationUnit   string        `json:"duration_unit"`
	DurationLabel  string        `json:"duration_label"`
	Amount         float64       `json:"amount"`
	AmountLabel    string        `json:"amount_label"`
	Status         string        `json:"status"`
	Active         bool          `json:"active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func ToContractResponse(l *contract.Listing) *ContractResponse {
	if l == nil || l.Contract == nil {
		return nil
	}

	c := l.Contract
	d := c.Duration()
	value, unit := d.Primary()

	return &ContractResponse{
		ID:             c.ID(),
		AdvertiserID:   c.AdvertiserID(),
		AdvertiserName: l.AdvertiserName,
		AgentID:        c.AgentID(),
		AgentName:      l.AgentName,
		DateSigned:     utils.FormatDate(c.DateSigned()),
		Duration: DurationParts{
			Years:  d.Years(),
			Months: d.Months(),
			Days:   d.Days(),
		},
		DurationValue: value,
		DurationUnit:  unit,
		DurationLabel: i18n.DurationLabel(d.Years(), d.Months(), d.Days()),
		Amount:        c.Amount(),
		AmountLabel:   i18n.AmountLabel(c.Amount()),
		Status:        c.Status().String(),
		Active:        c.IsActive(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func ToContractResponses(items []*contract.Listing) []*ContractResponse {
	return mapper.MapSlicePtr(items, ToContractResponse)
}
