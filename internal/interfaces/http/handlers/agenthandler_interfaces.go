package handlers

import (
	"context"

	agentdto "github.com/adagency-io/adagency/internal/application/agent/dto"
)

type agentService interface {
	List(ctx context.Context) ([]*agentdto.AgentResponse, error)
	Get(ctx context.Context, id uint) (*agentdto.AgentResponse, error)
	Create(ctx context.Context, cmd agentdto.AgentCommand) (*agentdto.AgentResponse, error)
	Update(ctx context.Context, id uint, cmd agentdto.AgentCommand) (*agentdto.AgentResponse, error)
	Delete(ctx context.Context, id uint) (*agentdto.AgentResponse, error)
}
