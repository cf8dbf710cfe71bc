package dto

import (
	advertiserdto "github.com/adagency-io/adagency/internal/application/advertiser/dto"
	"github.com/adagency-io/adagency/internal/shared/services/markdown"
)

// AdvertiserRequest is the body of POST and PUT /advertisers.
type AdvertiserRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"required,max=50"`
}

func (r *AdvertiserRequest) stripMarkup() {
	r.Name = markdown.StripTags(r.Name)
	r.Phone = markdown.StripTags(r.Phone)
}

func (r *AdvertiserRequest) ToCommand() advertiserdto.AdvertiserCommand {
	return advertiserdto.AdvertiserCommand{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
