package advertiser

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength  = 255
	MaxEmailLength = 255
	MaxPhoneLength = 50
)

// Advertiser is a client company that buys advertising.
type Advertiser struct {
	id        uint
	name      string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewAdvertiser(name, email, phone string) (*Advertiser, error) {
	a := &Advertiser{}
	if err := a.apply(name, email, phone); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructAdvertiser(id uint, name, email, phone string, createdAt, updatedAt time.Time) (*Advertiser, error) {
	if id == 0 {
		return nil, fmt.Errorf("advertiser ID cannot be zero")
	}

	return &Advertiser{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Advertiser) ID() uint {
	return a.id
}

func (a *Advertiser) Name() string {
	return a.name
}

func (a *Advertiser) Email() string {
	return a.email
}

func (a *Advertiser) Phone() string {
	return a.phone
}

func (a *Advertiser) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Advertiser) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Advertiser) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("advertiser ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("advertiser ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces every editable field. On error the advertiser is unchanged.
func (a *Advertiser) Update(name, email, phone string) error {
	next := *a
	if err := next.apply(name, email, phone); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*a = next
	return nil
}

func (a *Advertiser) apply(name, email, phone string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if email == "" {
		return ErrEmailRequired
	}
	if len(email) > MaxEmailLength {
		return ErrEmailInvalid
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return ErrEmailInvalid
	}
	if phone == "" {
		return ErrPhoneRequired
	}
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}

	a.name = name
	a.email = email
	a.phone = phone
	return nil
}
