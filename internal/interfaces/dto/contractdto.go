package dto

import (
	contractdto "github.com/adagency-io/adagency/internal/application/contract/dto"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/services/markdown"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// ContractRequest is the body of POST and PUT /contracts. An empty
// durationUnit means days.
type ContractRequest struct {
	AdvertiserID  uint    `json:"advertiserId" validate:"required"`
	AgentID       uint    `json:"agentId" validate:"required"`
	DateSigned    string  `json:"dateSigned" validate:"required,datetime=2006-01-02"`
	DurationValue int     `json:"durationValue" validate:"required,gt=0"`
	DurationUnit  string  `json:"durationUnit" validate:"omitempty,oneof=days months years"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Status        string  `json:"status" validate:"required,max=32"`
}

func (r *ContractRequest) stripMarkup() {
	r.Status = markdown.StripTags(r.Status)
}

func (r *ContractRequest) ToCommand() (contractdto.ContractCommand, error) {
	signed, err := utils.ParseDate(r.DateSigned)
	if err != nil {
		return contractdto.ContractCommand{}, errors.NewValidationError("invalid signing date", r.DateSigned)
	}

	return contractdto.ContractCommand{
		AdvertiserID:  r.AdvertiserID,
		AgentID:       r.AgentID,
		DateSigned:    signed,
		DurationValue: r.DurationValue,
		DurationUnit:  r.DurationUnit,
		Amount:        r.Amount,
		Status:        r.Status,
	}, nil
}
