package ad

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxInfoLength = 10000
	// MaxCost is the largest value a DECIMAL(12,2) column holds.
	MaxCost = 9999999999.99
)

// Ad is a single advertisement placed on behalf of an advertiser.
// Info is free text, optionally Markdown.
type Ad struct {
	id            uint
	advertiserID  uint
	info          string
	cost          float64
	datePublished time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// Listing is an ad together with its advertiser's name.
type Listing struct {
	Ad             *Ad
	AdvertiserName string
}

func NewAd(advertiserID uint, info string, cost float64, datePublished time.Time) (*Ad, error) {
	a := &Ad{}
	if err := a.apply(advertiserID, info, cost, datePublished); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructAd(
	id uint,
	advertiserID uint,
	info string,
	cost float64,
	datePublished time.Time,
	createdAt, updatedAt time.Time,
) (*Ad, error) {
	if id == 0 {
		return nil, fmt.Errorf("ad ID cannot be zero")
	}

	return &Ad{
		id:            id,
		advertiserID:  advertiserID,
		info:          info,
		cost:          cost,
		datePublished: datePublished,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Ad) ID() uint {
	return a.id
}

func (a *Ad) AdvertiserID() uint {
	return a.advertiserID
}

func (a *Ad) Info() string {
	return a.info
}

func (a *Ad) Cost() float64 {
	return a.cost
}

func (a *Ad) DatePublished() time.Time {
	return a.datePublished
}

func (a *Ad) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Ad) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Ad) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("ad ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ad ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces every editable field. On error the ad is unchanged.
func (a *Ad) Update(advertiserID uint, info string, cost float64, datePublished time.Time) error {
	next := *a
	if err := next.apply(advertiserID, info, cost, datePublished); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*a = next
	return nil
}

func (a *Ad) apply(advertiserID uint, info string, cost float64, datePublished time.Time) error {
	info = strings.TrimSpace(info)

	if advertiserID == 0 {
		return ErrAdvertiserRequired
	}
	if info == "" {
		return ErrInfoRequired
	}
	if utf8.RuneCountInString(info) > MaxInfoLength {
		return ErrInfoTooLong
	}
	if math.IsNaN(cost) || cost < 0 || cost > MaxCost {
		return ErrCostInvalid
	}
	if datePublished.IsZero() {
		return ErrDatePublishedRequired
	}

	a.advertiserID = advertiserID
	a.info = info
	a.cost = cost
	a.datePublished = time.Date(datePublished.Year(), datePublished.Month(), datePublished.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
