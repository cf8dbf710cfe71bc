package dto

import (
	"time"

	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// InfoRenderer turns ad copy into sanitized HTML.
type InfoRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type AdCommand struct {
	AdvertiserID  uint
	Info          string
	Cost          float64
	DatePublished time.Time
}

type AdResponse struct {
	ID             uint      `json:"id"`
	AdvertiserID   uint      `json:"advertiser_id"`
	AdvertiserName string    `json:"advertiser_name"`
	Info           string    `json:"info"`
	InfoHTML       string    `json:"info_html"`
	Cost           float64   `json:"cost"`
	DatePublished  string    `json:"date_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToAdResponse maps a listing. infoHTML is the rendered ad copy.
func ToAdResponse(l *ad.Listing, infoHTML string) *AdResponse {
	if l == nil || l.Ad == nil {
		return nil
	}

	a := l.Ad
	return &AdResponse{
		ID:             a.ID(),
		AdvertiserID:   a.AdvertiserID(),
		AdvertiserName: l.AdvertiserName,
		Info:           a.Info(),
		InfoHTML:       infoHTML,
		Cost:           a.Cost(),
		DatePublished:  utils.FormatDate(a.DatePublished()),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}
