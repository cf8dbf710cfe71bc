package agent

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxFullNameLength = 255
	MaxPhoneLength    = 50
	MaxCommissionRate = 100
)

// Agent is an employee of the agency who signs contracts with advertisers.
type Agent struct {
	id             uint
	fullName       string
	phone          string
	commissionRate float64
	hireDate       time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAgent(fullName, phone string, commissionRate float64, hireDate time.Time) (*Agent, error) {
	a := &Agent{}
	if err := a.apply(fullName, phone, commissionRate, hireDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructAgent(
	id uint,
	fullName string,
	phone string,
	commissionRate float64,
	hireDate time.Time,
	createdAt, updatedAt time.Time,
) (*Agent, error) {
	if id == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}

	return &Agent{
		id:             id,
		fullName:       fullName,
		phone:          phone,
		commissionRate: commissionRate,
		hireDate:       hireDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Agent) ID() uint {
	return a.id
}

func (a *Agent) FullName() string {
	return a.fullName
}

func (a *Agent) Phone() string {
	return a.phone
}

// CommissionRate is a percentage in the range [0, 100].
func (a *Agent) CommissionRate() float64 {
	return a.commissionRate
}

func (a *Agent) HireDate() time.Time {
	return a.hireDate
}

func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agent) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Agent) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agent ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces every editable field. On error the agent is unchanged.
func (a *Agent) Update(fullName, phone string, commissionRate float64, hireDate time.Time) error {
	next := *a
	if err := next.apply(fullName, phone, commissionRate, hireDate); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*a = next
	return nil
}

func (a *Agent) apply(fullName, phone string, commissionRate float64, hireDate time.Time) error {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return ErrFullNameRequired
	}
	if utf8.RuneCountInString(fullName) > MaxFullNameLength {
		return ErrFullNameTooLong
	}
	if phone == "" {
		return ErrPhoneRequired
	}
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	if math.IsNaN(commissionRate) || commissionRate < 0 || commissionRate > MaxCommissionRate {
		return ErrCommissionRateInvalid
	}
	if hireDate.IsZero() {
		return ErrHireDateRequired
	}

	a.fullName = fullName
	a.phone = phone
	a.commissionRate = commissionRate
	a.hireDate = time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
