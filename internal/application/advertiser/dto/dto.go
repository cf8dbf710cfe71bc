package dto

import (
	"time"

	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/shared/mapper"
)

// AdvertiserCommand carries the fields of a create or full update.
type AdvertiserCommand struct {
	Name  string
	Email string
	Phone string
}

type AdvertiserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAdvertiserResponse(a *advertiser.Advertiser) *AdvertiserResponse {
	if a == nil {
		return nil
	}
	return &AdvertiserResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToAdvertiserResponses(items []*advertiser.Advertiser) []*AdvertiserResponse {
	return mapper.MapSlicePtr(items, ToAdvertiserResponse)
}
