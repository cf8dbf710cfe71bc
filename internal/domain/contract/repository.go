package contract

import "context"

type Repository interface {
	// List returns contracts newest first by signing date.
	List(ctx context.Context) ([]*Listing, error)
	GetByID(ctx context.Context, id uint) (*Listing, error)
	Create(ctx context.Context, contract *Contract) error
	Update(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, id uint) error
}
