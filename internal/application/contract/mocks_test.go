package contract

import (
	"context"

	"github.com/adagency-io/adagency/internal/domain/contract"
	"github.com/adagency-io/adagency/internal/shared/errors"
)

// memoryRepository is an in-memory contract.Repository.
type memoryRepository struct {
	items  map[uint]*contract.Contract
	nextID uint

	CreateErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: map[uint]*contract.Contract{}}
}

func (m *memoryRepository) List(context.Context) ([]*contract.Listing, error) {
	result := make([]*contract.Listing, 0, len(m.items))
	for _, c := range m.items {
		result = append(result, m.listing(c))
	}
	return result, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uint) (*contract.Listing, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return m.listing(c), nil
}

func (m *memoryRepository) Create(_ context.Context, c *contract.Contract) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	m.items[m.nextID] = c
	return c.SetID(m.nextID)
}

func (m *memoryRepository) Update(_ context.Context, c *contract.Contract) error {
	if _, ok := m.items[c.ID()]; !ok {
		return errors.NewNotFoundError("contract not found")
	}
	m.items[c.ID()] = c
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return errors.NewNotFoundError("contract not found")
	}
	delete(m.items, id)
	return nil
}

func (m *memoryRepository) listing(c *contract.Contract) *contract.Listing {
	return &contract.Listing{Contract: c, AdvertiserName: "Acme", AgentName: "Иванов"}
}

type mockLookup map[uint]bool

func (m mockLookup) Exists(_ context.Context, id uint) (bool, error) {
	return m[id], nil
}
