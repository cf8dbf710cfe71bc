package dto

import (
	addto "github.com/adagency-io/adagency/internal/application/ad/dto"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AdRequest is the body of POST and PUT /ads. Info may contain Markdown.
type AdRequest struct {
	AdvertiserID  uint     `json:"advertiserId" validate:"required"`
	Info          string   `json:"info" validate:"required,max=10000"`
	Cost          *float64 `json:"cost" validate:"required,gte=0"`
	DatePublished string   `json:"datePublished" validate:"required,datetime=2006-01-02"`
}

func (r *AdRequest) ToCommand() (addto.AdCommand, error) {
	published, err := utils.ParseDate(r.DatePublished)
	if err != nil {
		return addto.AdCommand{}, errors.NewValidationError("invalid publication date", r.DatePublished)
	}

	return addto.AdCommand{
		AdvertiserID:  r.AdvertiserID,
		Info:          r.Info,
		Cost:          *r.Cost,
		DatePublished: published,
	}, nil
}
