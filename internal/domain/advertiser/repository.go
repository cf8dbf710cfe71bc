package advertiser

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Advertiser, error)
	GetByID(ctx context.Context, id uint) (*Advertiser, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, advertiser *Advertiser) error
	Update(ctx context.Context, advertiser *Advertiser) error
	// DeleteIfUnreferenced removes the advertiser only when no ad or contract
	// references it, as a single statement. It reports whether a row was removed.
	DeleteIfUnreferenced(ctx context.Context, id uint) (bool, error)
	CountReferences(ctx context.Context, id uint) (References, error)
}
