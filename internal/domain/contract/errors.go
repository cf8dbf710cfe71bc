package contract

import "errors"

var (
	ErrAdvertiserRequired = errors.New("advertiser is required")
	ErrAgentRequired      = errors.New("agent is required")
	ErrDateSignedRequired = errors.New("signing date is required")
	ErrAmountInvalid      = errors.New("amount must be greater than 0")
)
