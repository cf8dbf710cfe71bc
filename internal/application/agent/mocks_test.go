package agent

import (
	"context"

	"github.com/adagency-io/adagency/internal/domain/agent"
)

type mockRepository struct {
	ListFunc                 func(ctx context.Context) ([]*agent.Agent, error)
	GetByIDFunc              func(ctx context.Context, id uint) (*agent.Agent, error)
	ExistsFunc               func(ctx context.Context, id uint) (bool, error)
	CreateFunc               func(ctx context.Context, a *agent.Agent) error
	UpdateFunc               func(ctx context.Context, a *agent.Agent) error
	DeleteIfUnreferencedFunc func(ctx context.Context, id uint) (bool, error)
	CountContractsFunc       func(ctx context.Context, id uint) (int64, error)
}

func (m *mockRepository) List(ctx context.Context) ([]*agent.Agent, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockRepository) Create(ctx context.Context, a *agent.Agent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, a *agent.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockRepository) DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error) {
	if m.DeleteIfUnreferencedFunc != nil {
		return m.DeleteIfUnreferencedFunc(ctx, id)
	}
	return false, nil
}

func (m *mockRepository) CountContracts(ctx context.Context, id uint) (int64, error) {
	if m.CountContractsFunc != nil {
		return m.CountContractsFunc(ctx, id)
	}
	return 0, nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
