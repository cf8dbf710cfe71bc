package agent

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Agent, error)
	GetByID(ctx context.Context, id uint) (*Agent, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, agent *Agent) error
	Update(ctx context.Context, agent *Agent) error
	// DeleteIfUnreferenced removes the agent only when no contract references
	// it. It reports whether a row was removed.
	DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error)
	CountContracts(ctx context.Context, id uint) (int64, error)
}
