package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/domain/contract"
	vo "github.com/adagency-io/adagency/internal/domain/contract/valueobjects"
	"github.com/adagency-io/adagency/internal/infrastructure/database/testdb"
	"github.com/adagency-io/adagency/internal/shared/db"
	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	db          *gorm.DB
	advertisers advertiser.Repository
	agents      agent.Repository
	ads         ad.Repository
	contracts   contract.Repository
	analytics   analytics.Repository
	stats       *StatsRepositoryImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testdb.New(t)
	return &fixture{
		db:          gdb,
		advertisers: NewAdvertiserRepository(gdb),
		agents:      NewAgentRepository(gdb),
		ads:         NewAdRepository(gdb),
		contracts:   NewContractRepository(gdb),
		analytics:   NewAnalyticsRepository(gdb),
		stats:       NewStatsRepository(gdb),
	}
}

func (f *fixture) advertiser(t *testing.T, name string) *advertiser.Advertiser {
	t.Helper()
	a, err := advertiser.NewAdvertiser(name, name+"@example.com", "+7 900 000-00-00")
	require.NoError(t, err)
	require.NoError(t, f.advertisers.Create(context.Background(), a))
	return a
}

func (f *fixture) agent(t *testing.T, name string) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(name, "+7 900 111-11-11", 10, day(2022, 1, 10))
	require.NoError(t, err)
	require.NoError(t, f.agents.Create(context.Background(), a))
	return a
}

func (f *fixture) ad(t *testing.T, advertiserID uint, info string, published time.Time) *ad.Ad {
	t.Helper()
	a, err := ad.NewAd(advertiserID, info, 100, published)
	require.NoError(t, err)
	require.NoError(t, f.ads.Create(context.Background(), a))
	return a
}

func (f *fixture) contract(t *testing.T, advertiserID, agentID uint, signed time.Time, status string) *contract.Contract {
	t.Helper()
	d, err := vo.FromValueUnit(18, vo.UnitMonths)
	require.NoError(t, err)
	s, err := vo.NewStatus(status)
	require.NoError(t, err)
	c, err := contract.NewContract(contract.Terms{
		AdvertiserID: advertiserID,
		AgentID:      agentID,
		DateSigned:   signed,
		Duration:     d,
		Amount:       1000,
		Status:       s,
	})
	require.NoError(t, err)
	require.NoError(t, f.contracts.Create(context.Background(), c))
	return c
}

func (f *fixture) record(t *testing.T, adID uint, viewers int64, rating float64) *analytics.Record {
	t.Helper()
	r, err := analytics.NewRecord(analytics.Metrics{AdID: adID, Viewers: viewers, Engagement: 0.5, Rating: rating})
	require.NoError(t, err)
	require.NoError(t, f.analytics.Create(context.Background(), r))
	return r
}

func TestAdvertiserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := f.advertiser(t, "acme")
	assert.NotZero(t, a.ID())

	got, err := f.advertisers.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme@example.com", got.Email())

	require.NoError(t, got.Update("Acme Ltd", "sales@acme.test", "123"))
	require.NoError(t, f.advertisers.Update(ctx, got))

	got, err = f.advertisers.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", got.Name())

	missing, err := f.advertisers.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	ghost, err := advertiser.ReconstructAdvertiser(999, "x", "x@example.com", "1", time.Now(), time.Now())
	require.NoError(t, err)
	assert.True(t, apperrors.IsNotFoundError(f.advertisers.Update(ctx, ghost)))

	ok, err := f.advertisers.Exists(ctx, a.ID())
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.advertisers.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdvertiserRepository_ListOrderedByID(t *testing.T) {
	f := newFixture(t)
	first := f.advertiser(t, "b")
	second := f.advertiser(t, "a")

	list, err := f.advertisers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID(), list[0].ID())
	assert.Equal(t, second.ID(), list[1].ID())
}

func TestAdvertiserRepository_DeleteIfUnreferenced(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	withAd := f.advertiser(t, "with-ad")
	f.ad(t, withAd.ID(), "banner", day(2024, 1, 1))

	withContract := f.advertiser(t, "with-contract")
	ag := f.agent(t, "Agent")
	f.contract(t, withContract.ID(), ag.ID(), day(2024, 1, 1), "active")

	free := f.advertiser(t, "free")

	tests := []struct {
		name        string
		id          uint
		wantDeleted bool
		wantRefs    advertiser.References
	}{
		{"referenced by ad", withAd.ID(), false, advertiser.References{Ads: 1}},
		{"referenced by contract", withContract.ID(), false, advertiser.References{Contracts: 1}},
		{"unreferenced", free.ID(), true, advertiser.References{}},
		{"missing", 999, false, advertiser.References{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted, err := f.advertisers.DeleteIfUnreferenced(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			refs, err := f.advertisers.CountReferences(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRefs, refs)
		})
	}

	still, err := f.advertisers.GetByID(ctx, withAd.ID())
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestAdvertiserRepository_DeleteRolledBackWithTransaction(t *testing.T) {
	f := newFixture(t)
	a := f.advertiser(t, "acme")
	tm := db.NewTransactionManager(f.db)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		deleted, err := f.advertisers.DeleteIfUnreferenced(ctx, a.ID())
		require.NoError(t, err)
		require.True(t, deleted)
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := f.advertisers.GetByID(context.Background(), a.ID())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestAgentRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ag := f.agent(t, "Иванова Мария")
	got, err := f.agents.GetByID(ctx, ag.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day(2022, 1, 10), got.HireDate())
	assert.Equal(t, 10.0, got.CommissionRate())

	require.NoError(t, got.Update("Иванова М.", "1", 15.5, day(2023, 2, 1)))
	require.NoError(t, f.agents.Update(ctx, got))
	got, err = f.agents.GetByID(ctx, ag.ID())
	require.NoError(t, err)
	assert.Equal(t, 15.5, got.CommissionRate())
	assert.Equal(t, day(2023, 2, 1), got.HireDate())

	adv := f.advertiser(t, "acme")
	f.contract(t, adv.ID(), ag.ID(), day(2024, 1, 1), "active")

	deleted, err := f.agents.DeleteIfUnreferenced(ctx, ag.ID())
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := f.agents.CountContracts(ctx, ag.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	other := f.agent(t, "Free")
	deleted, err = f.agents.DeleteIfUnreferenced(ctx, other.ID())
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestAdRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	adv := f.advertiser(t, "acme")

	older := f.ad(t, adv.ID(), "old", day(2024, 1, 1))
	newer := f.ad(t, adv.ID(), "new", day(2024, 6, 1))
	sameDay := f.ad(t, adv.ID(), "new too", day(2024, 6, 1))

	list, err := f.ads.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uint{sameDay.ID(), newer.ID(), older.ID()},
		[]uint{list[0].Ad.ID(), list[1].Ad.ID(), list[2].Ad.ID()})
	assert.Equal(t, "acme", list[0].AdvertiserName)

	got, err := f.ads.GetByID(ctx, older.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day(2024, 1, 1), got.Ad.DatePublished())

	missing, err := f.ads.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	f.record(t, older.ID(), 10, 5)
	deleted, err := f.ads.DeleteIfUnreferenced(ctx, older.ID())
	require.NoError(t, err)
	assert.False(t, deleted)
	n, err := f.ads.CountAnalytics(ctx, older.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	deleted, err = f.ads.DeleteIfUnreferenced(ctx, newer.ID())
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestAdRepository_ForeignKeyViolation(t *testing.T) {
	f := newFixture(t)

	a, err := ad.NewAd(12345, "orphan", 1, day(2024, 1, 1))
	require.NoError(t, err)

	err = f.ads.Create(context.Background(), a)
	require.Error(t, err)
	assert.True(t, apperrors.IsForeignKeyError(err))
}

func TestContractRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	adv := f.advertiser(t, "acme")
	ag := f.agent(t, "Agent Smith")

	first := f.contract(t, adv.ID(), ag.ID(), day(2023, 1, 1), "Active")
	second := f.contract(t, adv.ID(), ag.ID(), day(2024, 1, 1), "draft")

	list, err := f.contracts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID(), list[0].Contract.ID())
	assert.Equal(t, "acme", list[0].AdvertiserName)
	assert.Equal(t, "Agent Smith", list[0].AgentName)

	got, err := f.contracts.GetByID(ctx, first.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "18 months", got.Contract.Duration().String())
	assert.Equal(t, "active", got.Contract.Status().String())

	require.NoError(t, f.contracts.Delete(ctx, first.ID()))
	err = f.contracts.Delete(ctx, first.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAnalyticsRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	adv := f.advertiser(t, "acme")
	a1 := f.ad(t, adv.ID(), "first ad", day(2024, 1, 1))
	a2 := f.ad(t, adv.ID(), "second ad", day(2024, 1, 2))

	low := f.record(t, a1.ID(), 100, 3)
	high := f.record(t, a2.ID(), 200, 9)
	tie := f.record(t, a1.ID(), 300, 9)

	list, err := f.analytics.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uint{high.ID(), tie.ID(), low.ID()},
		[]uint{list[0].Record.ID(), list[1].Record.ID(), list[2].Record.ID()})
	assert.Equal(t, "second ad", list[0].AdInfo)
	assert.Equal(t, "acme", list[0].AdvertiserName)

	byAd, err := f.analytics.ListByAd(ctx, a1.ID())
	require.NoError(t, err)
	assert.Len(t, byAd, 2)

	measured := day(2024, 3, 31)
	got, err := f.analytics.GetByID(ctx, low.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NoError(t, got.Record.Update(analytics.Metrics{AdID: a1.ID(), Viewers: 150, Engagement: 0.1, Rating: 4, MeasuredAt: &measured}))
	require.NoError(t, f.analytics.Update(ctx, got.Record))

	got, err = f.analytics.GetByID(ctx, low.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 150, got.Record.Viewers())
	require.NotNil(t, got.Record.MeasuredAt())
	assert.Equal(t, measured, *got.Record.MeasuredAt())

	require.NoError(t, f.analytics.Delete(ctx, low.ID()))
	assert.True(t, apperrors.IsNotFoundError(f.analytics.Delete(ctx, low.ID())))
}

func TestStatsRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	total, err := f.stats.TotalViews(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "no analytics rows sums to zero")

	adv := f.advertiser(t, "acme")
	ag := f.agent(t, "Agent")
	a := f.ad(t, adv.ID(), "ad", day(2024, 1, 1))
	f.record(t, a.ID(), 1500, 5)
	f.record(t, a.ID(), 500, 5)

	for _, status := range []string{"Active", "АКТИВЕН", "действует", "completed", "on hold"} {
		f.contract(t, adv.ID(), ag.ID(), day(2024, 1, 1), status)
	}

	advertisers, err := f.stats.CountAdvertisers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, advertisers)

	ads, err := f.stats.CountAds(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ads)

	active, err := f.stats.CountActiveContracts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, active)

	total, err = f.stats.TotalViews(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2000, total)
}
