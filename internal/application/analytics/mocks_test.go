package analytics

import (
	"context"

	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/shared/errors"
)

type memoryRepository struct {
	items  map[uint]*analytics.Record
	nextID uint
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: map[uint]*analytics.Record{}}
}

func (m *memoryRepository) List(context.Context) ([]*analytics.Listing, error) {
	result := make([]*analytics.Listing, 0, len(m.items))
	for _, r := range m.items {
		result = append(result, listing(r))
	}
	return result, nil
}

func (m *memoryRepository) ListByAd(_ context.Context, adID uint) ([]*analytics.Listing, error) {
	var result []*analytics.Listing
	for _, r := range m.items {
		if r.AdID() == adID {
			result = append(result, listing(r))
		}
	}
	return result, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uint) (*analytics.Listing, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return listing(r), nil
}

func (m *memoryRepository) Create(_ context.Context, r *analytics.Record) error {
	m.nextID++
	m.items[m.nextID] = r
	return r.SetID(m.nextID)
}

func (m *memoryRepository) Update(_ context.Context, r *analytics.Record) error {
	if _, ok := m.items[r.ID()]; !ok {
		return errors.NewNotFoundError("analytics record not found")
	}
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return errors.NewNotFoundError("analytics record not found")
	}
	delete(m.items, id)
	return nil
}

func listing(r *analytics.Record) *analytics.Listing {
	return &analytics.Listing{Record: r, AdInfo: "Баннер", AdvertiserName: "Acme"}
}

type mockAdLookup map[uint]bool

func (m mockAdLookup) Exists(_ context.Context, id uint) (bool, error) {
	return m[id], nil
}
