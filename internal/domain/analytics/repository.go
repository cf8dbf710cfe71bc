package analytics

import "context"

type Repository interface {
	// List returns records best rated first.
	List(ctx context.Context) ([]*Listing, error)
	ListByAd(ctx context.Context, adID uint) ([]*Listing, error)
	GetByID(ctx context.Context, id uint) (*Listing, error)
	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id uint) error
}
