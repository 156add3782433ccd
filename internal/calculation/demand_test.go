package calculation

import (
	"testing"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMix() domain.DistributionMap {
	return domain.DistributionMap{
		domain.SubscriptionEconomic: 0.4,
		domain.SubscriptionStandard: 0.5,
		domain.SubscriptionPremium:  0.1,
	}
}

func TestDemandCalculator_Apportion(t *testing.T) {
	dc := NewDemandCalculator(domain.DefaultEngineConfig())

	rows, err := dc.Apportion(3788, defaultMix())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byKind := map[domain.SubscriptionKind]domain.SubscriptionDemand{}
	for _, r := range rows {
		byKind[r.Kind] = r
	}

	// 1515.2 slots over a 10-session quota
	assert.Equal(t, 152, byKind[domain.SubscriptionEconomic].Clients)
	// 1894 slots / 4.33 weeks / 3 visits
	assert.Equal(t, 146, byKind[domain.SubscriptionStandard].Clients)
	// 378.8 slots over a 10-session quota
	assert.Equal(t, 38, byKind[domain.SubscriptionPremium].Clients)

	recovery := byKind[domain.SubscriptionRecovery]
	assert.Zero(t, recovery.Clients)
	assert.Zero(t, recovery.Sessions)
	assert.Zero(t, recovery.Slots)

	assert.Equal(t, 336, TotalClients(rows))
}

func TestDemandCalculator_SlotConservation(t *testing.T) {
	dc := NewDemandCalculator(domain.DefaultEngineConfig())

	mixes := []domain.DistributionMap{
		defaultMix(),
		{domain.SubscriptionStandard: 3, domain.SubscriptionRecovery: 1},
		{domain.SubscriptionEconomic: 1, domain.SubscriptionStandard: 1, domain.SubscriptionPremium: 1, domain.SubscriptionRecovery: 1},
		{domain.SubscriptionPremium: 7},
	}

	for _, occupied := range []int{0, 1, 1517, 3788, 6062} {
		for _, mix := range mixes {
			normalized, ok := mix.Normalize()
			require.True(t, ok)

			rows, err := dc.Apportion(occupied, normalized)
			require.NoError(t, err)

			sum := 0.0
			for _, r := range rows {
				sum += r.Slots
			}
			assert.InDelta(t, float64(occupied), sum, 1e-6, "occupied %d mix %v", occupied, mix)
		}
	}
}

func TestDemandCalculator_SessionBased(t *testing.T) {
	dc := NewDemandCalculator(domain.DefaultEngineConfig())

	rows, err := dc.Apportion(3788, domain.DistributionMap{domain.SubscriptionRecovery: 1})
	require.NoError(t, err)

	var recovery domain.SubscriptionDemand
	for _, r := range rows {
		if r.Kind == domain.SubscriptionRecovery {
			recovery = r
		}
	}
	assert.Equal(t, 3788, recovery.Sessions)
	// 3788 sessions / 5 sessions per client
	assert.Equal(t, 758, recovery.Clients)
}

func TestDemandCalculator_UsageOverride(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	cfg.Usage.AvgVisitsPerWeek = 2
	dc := NewDemandCalculator(cfg)

	rows, err := dc.Apportion(3788, domain.DistributionMap{domain.SubscriptionStandard: 1})
	require.NoError(t, err)
	for _, r := range rows {
		if r.Kind == domain.SubscriptionStandard {
			// 3788 / 4.33 / 2 = 437.4
			assert.Equal(t, 438, r.Clients)
		}
	}
}

func TestDemandCalculator_UnknownKind(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	catalog, err := domain.NewSubscriptionCatalog(domain.DefaultSubscriptionTypes()[:3]...)
	require.NoError(t, err)
	cfg.Catalog = catalog

	dc := NewDemandCalculator(cfg)
	_, err = dc.Apportion(100, domain.DistributionMap{domain.SubscriptionRecovery: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownSubscription)
}

func TestRevenueCalculator_Apply(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	dc := NewDemandCalculator(cfg)
	rc := NewRevenueCalculator(cfg.Catalog)

	rows, err := dc.Apportion(3788, defaultMix())
	require.NoError(t, err)

	total := rc.Apply(rows)
	assert.True(t, total.Equal(decimal.NewFromInt(56100)), "got %s", total)

	for _, r := range rows {
		switch r.Kind {
		case domain.SubscriptionEconomic:
			assert.True(t, r.Revenue.Equal(decimal.NewFromInt(15200)))
		case domain.SubscriptionStandard:
			assert.True(t, r.Revenue.Equal(decimal.NewFromInt(21900)))
		case domain.SubscriptionPremium:
			assert.True(t, r.Revenue.Equal(decimal.NewFromInt(19000)))
		case domain.SubscriptionRecovery:
			assert.True(t, r.Revenue.IsZero())
		}
	}
}

func TestRevenueCalculator_SessionBasedUsesSessions(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	rows, err := NewDemandCalculator(cfg).Apportion(3788, domain.DistributionMap{domain.SubscriptionRecovery: 1})
	require.NoError(t, err)

	total := NewRevenueCalculator(cfg.Catalog).Apply(rows)
	// 3788 sessions at 80 per session
	assert.True(t, total.Equal(decimal.NewFromInt(303040)), "got %s", total)
}

func TestRevenueGap(t *testing.T) {
	gap, ok := RevenueGap(decimal.NewFromInt(56100), decimal.NewFromInt(50000))
	assert.True(t, ok)
	assert.True(t, gap.Equal(decimal.NewFromInt(6100)))

	gap, ok = RevenueGap(decimal.NewFromInt(33800), decimal.NewFromInt(50000))
	assert.False(t, ok)
	assert.True(t, gap.Equal(decimal.NewFromInt(-16200)))

	_, ok = RevenueGap(decimal.NewFromInt(50000), decimal.NewFromInt(50000))
	assert.True(t, ok)
}
