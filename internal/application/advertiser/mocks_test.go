package advertiser

import (
	"context"

	"github.com/adagency-io/adagency/internal/domain/advertiser"
)

type mockRepository struct {
	ListFunc                 func(ctx context.Context) ([]*advertiser.Advertiser, error)
	GetByIDFunc              func(ctx context.Context, id uint) (*advertiser.Advertiser, error)
	ExistsFunc               func(ctx context.Context, id uint) (bool, error)
	CreateFunc               func(ctx context.Context, a *advertiser.Advertiser) error
	UpdateFunc               func(ctx context.Context, a *advertiser.Advertiser) error
	DeleteIfUnreferencedFunc func(ctx context.Context, id uint) (bool, error)
	CountReferencesFunc      func(ctx context.Context, id uint) (advertiser.References, error)
}

func (m *mockRepository) List(ctx context.Context) ([]*advertiser.Advertiser, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*advertiser.Advertiser, error) {
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

func (m *mockRepository) Create(ctx context.Context, a *advertiser.Advertiser) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, a *advertiser.Advertiser) error {
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

func (m *mockRepository) CountReferences(ctx context.Context, id uint) (advertiser.References, error) {
	if m.CountReferencesFunc != nil {
		return m.CountReferencesFunc(ctx, id)
	}
	return advertiser.References{}, nil
}

// mockTxManager runs fn inline and records how often it was used.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
