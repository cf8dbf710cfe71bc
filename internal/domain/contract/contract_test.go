package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
)

func validTerms(t *testing.T) Terms {
	t.Helper()
	d, err := vo.FromValueUnit(12, vo.UnitMonths)
	require.NoError(t, err)
	s, err := vo.NewStatus("Active")
	require.NoError(t, err)

	return Terms{
		AdvertiserID: 1,
		AgentID:      2,
		DateSigned:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Duration:     d,
		Amount:       250000,
		Status:       s,
	}
}

func TestNewContract(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Terms)
		wantErr error
	}{
		{"valid", func(*Terms) {}, nil},
		{"no advertiser", func(tr *Terms) { tr.AdvertiserID = 0 }, ErrAdvertiserRequired},
		{"no agent", func(tr *Terms) { tr.AgentID = 0 }, ErrAgentRequired},
		{"no date", func(tr *Terms) { tr.DateSigned = time.Time{} }, ErrDateSignedRequired},
		{"no duration", func(tr *Terms) { tr.Duration = vo.Duration{} }, vo.ErrDurationEmpty},
		{"zero amount", func(tr *Terms) { tr.Amount = 0 }, ErrAmountInvalid},
		{"negative amount", func(tr *Terms) { tr.Amount = -10 }, ErrAmountInvalid},
		{"no status", func(tr *Terms) { tr.Status = "" }, vo.ErrStatusRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := validTerms(t)
			tt.mutate(&terms)

			c, err := NewContract(terms)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), c.DateSigned())
			assert.Equal(t, "12 months", c.Duration().String())
			assert.True(t, c.IsActive())
		})
	}
}

func TestContract_Update(t *testing.T) {
	c, err := NewContract(validTerms(t))
	require.NoError(t, err)

	terms := validTerms(t)
	terms.Status = "завершён"
	terms.Amount = 300000
	require.NoError(t, c.Update(terms))
	assert.False(t, c.IsActive())
	assert.Equal(t, 300000.0, c.Amount())

	terms.Amount = 0
	assert.ErrorIs(t, c.Update(terms), ErrAmountInvalid)
	assert.Equal(t, 300000.0, c.Amount())
}
