package analytics

import (
	"fmt"
	"math"
	"time"
)

const (
	MaxEngagement = 1
	MaxRating     = 10
)

// Record holds audience measurements for an ad.
type Record struct {
	id         uint
	adID       uint
	viewers    int64
	engagement float64
	rating     float64
	measuredAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// Listing is a record together with its ad text and advertiser name.
type Listing struct {
	Record         *Record
	AdInfo         string
	AdvertiserName string
}

// Metrics groups the editable fields of a record.
type Metrics struct {
	AdID       uint
	Viewers    int64
	Engagement float64
	Rating     float64
	MeasuredAt *time.Time
}

func NewRecord(m Metrics) (*Record, error) {
	r := &Record{}
	if err := r.apply(m); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.createdAt = now
	r.updatedAt = now
	return r, nil
}

func ReconstructRecord(id uint, m Metrics, createdAt, updatedAt time.Time) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("analytics record ID cannot be zero")
	}

	return &Record{
		id:         id,
		adID:       m.AdID,
		viewers:    m.Viewers,
		engagement: m.Engagement,
		rating:     m.Rating,
		measuredAt: m.MeasuredAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *Record) ID() uint {
	return r.id
}

func (r *Record) AdID() uint {
	return r.adID
}

func (r *Record) Viewers() int64 {
	return r.viewers
}

// Engagement is the share of viewers who interacted, in [0, 1].
func (r *Record) Engagement() float64 {
	return r.engagement
}

// Rating is a score in [0, 10].
func (r *Record) Rating() float64 {
	return r.rating
}

func (r *Record) MeasuredAt() *time.Time {
	return r.measuredAt
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("analytics record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("analytics record ID cannot be zero")
	}
	r.id = id
	return nil
}

// Update replaces every editable field. On error the record is unchanged.
func (r *Record) Update(m Metrics) error {
	next := *r
	if err := next.apply(m); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*r = next
	return nil
}

func (r *Record) apply(m Metrics) error {
	if m.AdID == 0 {
		return ErrAdRequired
	}
	if m.Viewers < 0 {
		return ErrViewersInvalid
	}
	if math.IsNaN(m.Engagement) || m.Engagement < 0 || m.Engagement > MaxEngagement {
		return ErrEngagementInvalid
	}
	if math.IsNaN(m.Rating) || m.Rating < 0 || m.Rating > MaxRating {
		return ErrRatingInvalid
	}

	r.adID = m.AdID
	r.viewers = m.Viewers
	r.engagement = m.Engagement
	r.rating = m.Rating
	r.measuredAt = nil
	if m.MeasuredAt != nil {
		d := time.Date(m.MeasuredAt.Year(), m.MeasuredAt.Month(), m.MeasuredAt.Day(), 0, 0, 0, 0, time.UTC)
		r.measuredAt = &d
	}
	return nil
}
