package analytics

import "errors"

var (
	ErrAdRequired        = errors.New("ad is required")
	ErrViewersInvalid    = errors.New("viewers cannot be negative")
	ErrEngagementInvalid = errors.New("engagement must be between 0 and 1")
	ErrRatingInvalid     = errors.New("rating must be between 0 and 10")
)
