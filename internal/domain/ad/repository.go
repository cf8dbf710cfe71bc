package ad

import "context"

type Repository interface {
	// List returns ads newest first by publication date.
	List(ctx context.Context) ([]*Listing, error)
	GetByID(ctx context.Context, id uint) (*Listing, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, ad *Ad) error
	Update(ctx context.Context, ad *Ad) error
	// DeleteIfUnreferenced removes the ad only when it has no analytics
	// records. It reports whether a row was removed.
	DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error)
	CountAnalytics(ctx context.Context, id uint) (int64, error)
}
