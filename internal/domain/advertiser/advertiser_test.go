package advertiser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvertiser(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		email   string
		phone   string
		wantErr error
	}{
		{"valid", "ООО Ромашка", "info@romashka.ru", "+7 495 000-00-00", nil},
		{"trimmed", "  Acme  ", " sales@acme.example ", " 123 ", nil},
		{"blank name", "   ", "a@b.co", "1", ErrNameRequired},
		{"long name", strings.Repeat("я", MaxNameLength+1), "a@b.co", "1", ErrNameTooLong},
		{"blank email", "Acme", "", "1", ErrEmailRequired},
		{"bad email", "Acme", "not-an-email", "1", ErrEmailInvalid},
		{"display name email", "Acme", "Acme <a@b.co>", "1", ErrEmailInvalid},
		{"blank phone", "Acme", "a@b.co", "", ErrPhoneRequired},
		{"long phone", "Acme", "a@b.co", strings.Repeat("1", MaxPhoneLength+1), ErrPhoneTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdvertiser(tt.inName, tt.email, tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.inName), a.Name())
			assert.Equal(t, strings.TrimSpace(tt.email), a.Email())
			assert.Equal(t, strings.TrimSpace(tt.phone), a.Phone())
			assert.Zero(t, a.ID())
			assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt(), 2*time.Second)
		})
	}
}

func TestAdvertiser_Update(t *testing.T) {
	a, err := NewAdvertiser("Acme", "a@acme.example", "111")
	require.NoError(t, err)

	require.NoError(t, a.Update("Acme Corp", "b@acme.example", "222"))
	assert.Equal(t, "Acme Corp", a.Name())
	assert.Equal(t, "b@acme.example", a.Email())
	assert.Equal(t, "222", a.Phone())

	err = a.Update("", "c@acme.example", "333")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, "Acme Corp", a.Name(), "failed update must not change the entity")
	assert.Equal(t, "b@acme.example", a.Email())
}

func TestAdvertiser_SetID(t *testing.T) {
	a, err := NewAdvertiser("Acme", "a@acme.example", "111")
	require.NoError(t, err)

	assert.Error(t, a.SetID(0))
	require.NoError(t, a.SetID(5))
	assert.Equal(t, uint(5), a.ID())
	assert.Error(t, a.SetID(6))
}

func TestReferences(t *testing.T) {
	assert.False(t, References{}.InUse())
	assert.True(t, References{Ads: 1}.InUse())
	assert.True(t, References{Contracts: 2}.InUse())
	assert.Equal(t, "1 ads, 2 contracts", References{Ads: 1, Contracts: 2}.String())
}
