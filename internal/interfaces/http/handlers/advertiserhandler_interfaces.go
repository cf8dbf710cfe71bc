package handlers

import (
	"context"

	advertiserdto "github.com/adagency-io/adagency/internal/application/advertiser/dto"
)

// Service interfaces for AdvertiserHandler

type advertiserService interface {
	List(ctx context.Context) ([]*advertiserdto.AdvertiserResponse, error)
	Get(ctx context.Context, id uint) (*advertiserdto.AdvertiserResponse, error)
	Create(ctx context.Context, cmd advertiserdto.AdvertiserCommand) (*advertiserdto.AdvertiserResponse, error)
	Update(ctx context.Context, id uint, cmd advertiserdto.AdvertiserCommand) (*advertiserdto.AdvertiserResponse, error)
	Delete(ctx context.Context, id uint) (*advertiserdto.AdvertiserResponse, error)
}

type advertiserCounter interface {
	AdvertiserCount(ctx context.Context) (int64, error)
}
