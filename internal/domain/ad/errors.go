package ad

import "errors"

var (
	ErrAdvertiserRequired    = errors.New("advertiser is required")
	ErrInfoRequired          = errors.New("info is required")
	ErrInfoTooLong           = errors.New("info exceeds maximum length of 10000 characters")
	ErrCostInvalid           = errors.New("cost must be a non-negative amount")
	ErrDatePublishedRequired = errors.New("publication date is required")
)
