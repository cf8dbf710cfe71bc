package agent

import "errors"

var (
	ErrFullNameRequired      = errors.New("full name is required")
	ErrFullNameTooLong       = errors.New("full name exceeds maximum length of 255 characters")
	ErrPhoneRequired         = errors.New("phone is required")
	ErrPhoneTooLong          = errors.New("phone exceeds maximum length of 50 characters")
	ErrCommissionRateInvalid = errors.New("commission rate must be between 0 and 100")
	ErrHireDateRequired      = errors.New("hire date is required")
)
