package advertiser

import "errors"

var (
	// ErrNameRequired is returned when the advertiser name is blank.
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooLong is returned when the name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name exceeds maximum length of 255 characters")

	// ErrEmailRequired is returned when the contact email is blank.
	ErrEmailRequired = errors.New("email is required")

	// ErrEmailInvalid is returned when the email is not a single address.
	ErrEmailInvalid = errors.New("email must be a valid email address")

	// ErrPhoneRequired is returned when the phone is blank.
	ErrPhoneRequired = errors.New("phone is required")

	// ErrPhoneTooLong is returned when the phone exceeds MaxPhoneLength.
	ErrPhoneTooLong = errors.New("phone exceeds maximum length of 50 characters")
)
