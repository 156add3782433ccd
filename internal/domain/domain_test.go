package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionMap_Normalize(t *testing.T) {
	d := DistributionMap{
		SubscriptionEconomic: 40,
		SubscriptionStandard: 50,
		SubscriptionPremium:  10,
	}

	n, ok := d.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.4, n[SubscriptionEconomic], 1e-12)
	assert.InDelta(t, 0.5, n[SubscriptionStandard], 1e-12)
	assert.InDelta(t, 0.1, n[SubscriptionPremium], 1e-12)
	assert.InDelta(t, 1.0, n.Sum(), 1e-12)

	// original is untouched
	assert.Equal(t, 40.0, d[SubscriptionEconomic])
}

func TestDistributionMap_NormalizeIdempotent(t *testing.T) {
	inputs := []DistributionMap{
		{SubscriptionEconomic: 1, SubscriptionStandard: 1, SubscriptionPremium: 1},
		{SubscriptionEconomic: 0.3, SubscriptionRecovery: 7},
		{SubscriptionPremium: 123.456},
	}

	for _, d := range inputs {
		once, ok := d.Normalize()
		require.True(t, ok)
		twice, ok := once.Normalize()
		require.True(t, ok)
		for k, w := range once {
			assert.InDelta(t, w, twice[k], 1e-12, "kind %s", k)
		}
	}
}

func TestDistributionMap_NormalizeZeroSum(t *testing.T) {
	n, ok := DistributionMap{SubscriptionEconomic: 0, SubscriptionStandard: 0}.Normalize()
	assert.False(t, ok)
	assert.Empty(t, n)

	n, ok = DistributionMap{}.Normalize()
	assert.False(t, ok)
	assert.Empty(t, n)
}

func TestDistributionMap_NormalizeOverflowingSum(t *testing.T) {
	d := DistributionMap{SubscriptionEconomic: 1e308, SubscriptionStandard: 1e308, SubscriptionPremium: 5e307}
	require.NoError(t, d.Validate())
	require.True(t, math.IsInf(d.Sum(), 1))

	n, ok := d.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.4, n[SubscriptionEconomic], 1e-12)
	assert.InDelta(t, 0.4, n[SubscriptionStandard], 1e-12)
	assert.InDelta(t, 0.2, n[SubscriptionPremium], 1e-12)
	assert.InDelta(t, 1.0, n.Sum(), 1e-12)
}

func TestDistributionMap_Validate(t *testing.T) {
	assert.NoError(t, DistributionMap{SubscriptionEconomic: 0, SubscriptionStandard: 2}.Validate())

	err := DistributionMap{SubscriptionEconomic: -1}.Validate()
	assert.True(t, errors.Is(err, ErrNegativeWeight))

	err = DistributionMap{SubscriptionKind("gold"): 1}.Validate()
	assert.True(t, errors.Is(err, ErrUnknownSubscription))

	err = DistributionMap{SubscriptionStandard: math.NaN()}.Validate()
	assert.True(t, errors.Is(err, ErrNegativeWeight))
}

func TestDistributionMap_KindsCanonicalOrder(t *testing.T) {
	d := DistributionMap{SubscriptionRecovery: 1, SubscriptionEconomic: 1, SubscriptionPremium: 1}
	assert.Equal(t, []SubscriptionKind{SubscriptionEconomic, SubscriptionPremium, SubscriptionRecovery}, d.Kinds())
}

func TestEqualDistribution(t *testing.T) {
	d := EqualDistribution(SubscriptionKinds)
	assert.Len(t, d, 4)
	for _, w := range d {
		assert.InDelta(t, 0.25, w, 1e-12)
	}
	assert.Empty(t, EqualDistribution(nil))
}

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate("participation_rate", 0))
	assert.NoError(t, ValidateRate("participation_rate", 1))
	assert.NoError(t, ValidateRate("participation_rate", 0.1))

	for _, bad := range []float64{-0.01, 1.01, math.NaN()} {
		err := ValidateRate("coverage_rate", bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRate))

		var rateErr *RateError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, "coverage_rate", rateErr.Field)
	}
}

func TestDemographicParameters_Validate(t *testing.T) {
	assert.NoError(t, DemographicParameters{ParticipationRate: 0.1, PopulationDensity: 1000}.Validate())
	assert.NoError(t, DemographicParameters{ParticipationRate: 0, PopulationDensity: 0}.Validate())

	err := DemographicParameters{ParticipationRate: 0.1, PopulationDensity: -5}.Validate()
	assert.ErrorIs(t, err, ErrInvalidRate)

	err = DemographicParameters{ParticipationRate: 0.1, PopulationDensity: math.Inf(1)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidRate)

	err = DemographicParameters{ParticipationRate: 2, PopulationDensity: 1000}.Validate()
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCampaignParameters_Validate(t *testing.T) {
	assert.NoError(t, CampaignParameters{ConversionRate: 0.05, CoverageRate: 0.8}.Validate())
	assert.ErrorIs(t, CampaignParameters{ConversionRate: 1.5, CoverageRate: 0.8}.Validate(), ErrInvalidRate)
	assert.ErrorIs(t, CampaignParameters{ConversionRate: 0.5, CoverageRate: -0.1}.Validate(), ErrInvalidRate)
}

func TestParseKinds(t *testing.T) {
	k, err := ParseSubscriptionKind("premium")
	require.NoError(t, err)
	assert.Equal(t, SubscriptionPremium, k)

	_, err = ParseSubscriptionKind("platinum")
	assert.ErrorIs(t, err, ErrUnknownSubscription)

	s, err := ParseScenarioKind("medium")
	require.NoError(t, err)
	assert.Equal(t, ScenarioMedium, s)

	_, err = ParseScenarioKind("extreme")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestOccupancyScenario(t *testing.T) {
	s := OccupancyScenario{Kind: ScenarioMedium, DisplayName: "Medium", OccupancyMin: 0.5, OccupancyMax: 0.75}
	assert.InDelta(t, 0.625, s.Midpoint(), 1e-12)
	assert.Equal(t, "50% - 75%", s.RangeLabel())
	assert.NoError(t, s.Validate())

	s.OccupancyMin = 0.9
	assert.Error(t, s.Validate())
}

func TestScenarioCatalog(t *testing.T) {
	c, err := NewScenarioCatalog(DefaultScenarios()...)
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, ScenarioReduced, list[0].Kind)
	assert.Equal(t, ScenarioMedium, list[1].Kind)
	assert.Equal(t, ScenarioHigh, list[2].Kind)

	_, err = NewScenarioCatalog(DefaultScenarios()[:2]...)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	dup := append(DefaultScenarios(), DefaultScenarios()[0])
	_, err = NewScenarioCatalog(dup...)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSubscriptionCatalog(t *testing.T) {
	c, err := NewSubscriptionCatalog(DefaultSubscriptionTypes()...)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, SubscriptionKinds, c.Kinds())

	premium, ok := c.Get(SubscriptionPremium)
	require.True(t, ok)
	assert.True(t, premium.Price.Equal(decimal.NewFromInt(500)))
	assert.True(t, premium.HasQuota())
	assert.Equal(t, 10, *premium.SessionQuota)

	recovery, _ := c.Get(SubscriptionRecovery)
	assert.True(t, recovery.IsSessionBased())
	assert.False(t, recovery.HasQuota())

	// List hands out copies
	list := c.List()
	*list[0].SessionQuota = 99
	economic, _ := c.Get(SubscriptionEconomic)
	assert.Equal(t, 10, *economic.SessionQuota)

	_, err = NewSubscriptionCatalog()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSubscriptionType_Validate(t *testing.T) {
	bad := SubscriptionType{Kind: SubscriptionStandard, Billing: BillingUnlimited, Price: decimal.NewFromInt(-1)}
	assert.Error(t, bad.Validate())

	bad = SubscriptionType{Kind: SubscriptionStandard, Billing: "monthly", Price: decimal.NewFromInt(1)}
	assert.Error(t, bad.Validate())

	zero := 0
	bad = SubscriptionType{Kind: SubscriptionStandard, Billing: BillingUnlimited, SessionQuota: &zero}
	assert.Error(t, bad.Validate())
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.RevenueTarget.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 20, cfg.Capacity.CapacityPerHour)
	assert.Equal(t, 4.33, cfg.Capacity.WeeksPerMonth)
	assert.Equal(t, "Bacau", cfg.Location.Name)

	cfg.CampaignCostPerPerson = decimal.NewFromInt(-1)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestAnalysisResult_Accessors(t *testing.T) {
	r := &AnalysisResult{
		Demand: []SubscriptionDemand{
			{Kind: SubscriptionStandard, Clients: 12, Revenue: decimal.NewFromInt(1800)},
		},
	}
	assert.Equal(t, 12, r.ClientsFor(SubscriptionStandard))
	assert.Equal(t, 0, r.ClientsFor(SubscriptionPremium))
	assert.True(t, r.RevenueFor(SubscriptionStandard).Equal(decimal.NewFromInt(1800)))
	assert.True(t, r.RevenueFor(SubscriptionPremium).IsZero())

	assert.False(t, r.HasWarning(WarningDegenerateInput))
	r.AddWarning(WarningDegenerateInput, "participation_rate is 0")
	assert.True(t, r.HasWarning(WarningDegenerateInput))
}
