package seeds

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adagency-io/adagency/internal/infrastructure/database/testdb"
	"github.com/adagency-io/adagency/internal/infrastructure/persistence/models"
)

const sample = `
advertisers:
  - name: Acme
    email: acme@example.com
    phone: "+1 555 0100"
agents:
  - full_name: Jane Roe
    phone: "+1 555 0101"
    commission_rate: 10
    hire_date: "2022-01-10"
ads:
  - key: a1
    advertiser: Acme
    info: Spring sale
    cost: 100
    date_published: "2024-03-01"
contracts:
  - advertiser: Acme
    agent: Jane Roe
    date_signed: "2024-01-01"
    duration: 18 months
    amount: 5000
    status: Active
analytics:
  - ad: a1
    viewers: 1000
    engagement: 0.25
    rating: 7.5
    measured_at: "2024-03-31"
`

func TestApply_InsertsOnceAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)

	ds, err := Parse([]byte(sample))
	require.NoError(t, err)

	summary, err := Apply(ctx, db, ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{Advertisers: 1, Agents: 1, Ads: 1, Contracts: 1, Analytics: 1}, summary)

	var c models.ContractModel
	require.NoError(t, db.First(&c).Error)
	assert.Equal(t, "18 months", c.Duration)
	assert.Equal(t, "active", c.Status)

	summary, err = Apply(ctx, db, ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)

	var count int64
	require.NoError(t, db.Model(&models.AdvertiserModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApply_UnknownReferenceRollsBack(t *testing.T) {
	db := testdb.New(t)

	ds, err := Parse([]byte(`
advertisers:
  - name: Acme
    email: acme@example.com
    phone: "1"
ads:
  - advertiser: Nobody
    info: x
    cost: 1
    date_published: "2024-01-01"
`))
	require.NoError(t, err)

	_, err = Apply(context.Background(), db, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `ads[0]: unknown advertiser "Nobody"`)

	var count int64
	require.NoError(t, db.Model(&models.AdvertiserModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApply_InvalidEntity(t *testing.T) {
	db := testdb.New(t)

	ds, err := Parse([]byte("advertisers:\n  - name: X\n    email: not-an-email\n    phone: '1'\n"))
	require.NoError(t, err)

	_, err = Apply(context.Background(), db, ds)
	assert.Error(t, err)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("advertisers:\n  - name: X\n    fax: '1'\n"))
	assert.Error(t, err)
}

func TestLoadFile_BundledSeed(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "configs", "seed.yaml")

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Advertisers)

	summary, err := Apply(context.Background(), testdb.New(t), ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds.Contracts), summary.Contracts)
	assert.Equal(t, len(ds.Analytics), summary.Analytics)
}
