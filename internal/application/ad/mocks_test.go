package ad

import (
	"context"
	"strings"

	"github.com/adagency-io/adagency/internal/domain/ad"
)

type mockRepository struct {
	ListFunc                 func(ctx context.Context) ([]*ad.Listing, error)
	GetByIDFunc              func(ctx context.Context, id uint) (*ad.Listing, error)
	ExistsFunc               func(ctx context.Context, id uint) (bool, error)
	CreateFunc               func(ctx context.Context, a *ad.Ad) error
	UpdateFunc               func(ctx context.Context, a *ad.Ad) error
	DeleteIfUnreferencedFunc func(ctx context.Context, id uint) (bool, error)
	CountAnalyticsFunc       func(ctx context.Context, id uint) (int64, error)
}

func (m *mockRepository) List(ctx context.Context) ([]*ad.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*ad.Listing, error) {
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

func (m *mockRepository) Create(ctx context.Context, a *ad.Ad) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, a *ad.Ad) error {
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

func (m *mockRepository) CountAnalytics(ctx context.Context, id uint) (int64, error) {
	if m.CountAnalyticsFunc != nil {
		return m.CountAnalyticsFunc(ctx, id)
	}
	return 0, nil
}

type mockAdvertiserLookup struct {
	known map[uint]bool
}

func (m *mockAdvertiserLookup) Exists(_ context.Context, id uint) (bool, error) {
	return m.known[id], nil
}

type mockRenderer struct {
	err error
}

func (m mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "<p>" + strings.TrimSpace(markdown) + "</p>\n", nil
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
