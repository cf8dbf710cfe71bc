package dto

import (
	"time"

	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/shared/mapper"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type AgentCommand struct {
	FullName       string
	Phone          string
	CommissionRate float64
	HireDate       time.Time
}

type AgentResponse struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	CommissionRate float64   `json:"commission_rate"`
	HireDate       string    `json:"hire_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToAgentResponse(a *agent.Agent) *AgentResponse {
	if a == nil {
		return nil
	}
	return &AgentResponse{
		ID:             a.ID(),
		FullName:       a.FullName(),
		Phone:          a.Phone(),
		CommissionRate: a.CommissionRate(),
		HireDate:       utils.FormatDate(a.HireDate()),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func ToAgentResponses(items []*agent.Agent) []*AgentResponse {
	return mapper.MapSlicePtr(items, ToAgentResponse)
}
