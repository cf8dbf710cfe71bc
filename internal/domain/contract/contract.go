package contract

import (
	"fmt"
	"math"
	"time"

	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
)

// MaxAmount is the largest value a DECIMAL(14,2) column holds.
const MaxAmount = 999999999999.99

// Contract binds an advertiser and an agent for a period of time.
type Contract struct {
	id           uint
	advertiserID uint
	agentID      uint
	dateSigned   time.Time
	duration     vo.Duration
	amount       float64
	status       vo.Status
	createdAt    time.Time
	updatedAt    time.Time
}

// Listing is a contract together with the names of both parties.
type Listing struct {
	Contract       *Contract
	AdvertiserName string
	AgentName      string
}

// Terms groups the editable fields of a contract.
type Terms struct {
	AdvertiserID uint
	AgentID      uint
	DateSigned   time.Time
	Duration     vo.Duration
	Amount       float64
	Status       vo.Status
}

func NewContract(terms Terms) (*Contract, error) {
	c := &Contract{}
	if err := c.apply(terms); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.createdAt = now
	c.updatedAt = now
	return c, nil
}

func ReconstructContract(id uint, terms Terms, createdAt, updatedAt time.Time) (*Contract, error) {
	if id == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}

	return &Contract{
		id:           id,
		advertiserID: terms.AdvertiserID,
		agentID:      terms.AgentID,
		dateSigned:   terms.DateSigned,
		duration:     terms.Duration,
		amount:       terms.Amount,
		status:       terms.Status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Contract) ID() uint {
	return c.id
}

func (c *Contract) AdvertiserID() uint {
	return c.advertiserID
}

func (c *Contract) AgentID() uint {
	return c.agentID
}

func (c *Contract) DateSigned() time.Time {
	return c.dateSigned
}

func (c *Contract) Duration() vo.Duration {
	return c.duration
}

func (c *Contract) Amount() float64 {
	return c.amount
}

func (c *Contract) Status() vo.Status {
	return c.status
}

func (c *Contract) IsActive() bool {
	return c.status.IsActive()
}

func (c *Contract) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Contract) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Contract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}

// Update replaces every editable field. On error the contract is unchanged.
func (c *Contract) Update(terms Terms) error {
	next := *c
	if err := next.apply(terms); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*c = next
	return nil
}

func (c *Contract) apply(terms Terms) error {
	if terms.AdvertiserID == 0 {
		return ErrAdvertiserRequired
	}
	if terms.AgentID == 0 {
		return ErrAgentRequired
	}
	if terms.DateSigned.IsZero() {
		return ErrDateSignedRequired
	}
	if terms.Duration.IsZero() {
		return vo.ErrDurationEmpty
	}
	if math.IsNaN(terms.Amount) || terms.Amount <= 0 || terms.Amount > MaxAmount {
		return ErrAmountInvalid
	}
	if terms.Status == "" {
		return vo.ErrStatusRequired
	}

	d := terms.DateSigned
	c.advertiserID = terms.AdvertiserID
	c.agentID = terms.AgentID
	c.dateSigned = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	c.duration = terms.Duration
	c.amount = terms.Amount
	c.status = terms.Status
	return nil
}
