package dto

import (
	agentdto "github.com/adagency-io/adagency/internal/application/agent/dto"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/services/markdown"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AgentRequest is the body of POST and PUT /agents. The snake_case
// spellings are accepted as aliases; camelCase wins when both are sent.
type AgentRequest struct {
	FullName       string   `json:"fullName" validate:"required,max=255"`
	Phone          string   `json:"phone" validate:"required,max=50"`
	CommissionRate *float64 `json:"commissionRate" validate:"required,gte=0,lte=100"`
	HireDate       string   `json:"hireDate" validate:"required,datetime=2006-01-02"`

	FullNameAlias       string   `json:"full_name" validate:"-" swaggerignore:"true"`
	CommissionRateAlias *float64 `json:"commission_rate" validate:"-" swaggerignore:"true"`
	HireDateAlias       string   `json:"hire_date" validate:"-" swaggerignore:"true"`
}

func (r *AgentRequest) applyAliases() {
	if r.FullName == "" {
		r.FullName = r.FullNameAlias
	}
	if r.CommissionRate == nil {
		r.CommissionRate = r.CommissionRateAlias
	}
	if r.HireDate == "" {
		r.HireDate = r.HireDateAlias
	}
}

func (r *AgentRequest) stripMarkup() {
	r.FullName = markdown.StripTags(r.FullName)
	r.Phone = markdown.StripTags(r.Phone)
}

func (r *AgentRequest) ToCommand() (agentdto.AgentCommand, error) {
	hireDate, err := utils.ParseDate(r.HireDate)
	if err != nil {
		return agentdto.AgentCommand{}, errors.NewValidationError("invalid hire date", r.HireDate)
	}

	return agentdto.AgentCommand{
		FullName:       r.FullName,
		Phone:          r.Phone,
		CommissionRate: *r.CommissionRate,
		HireDate:       hireDate,
	}, nil
}
