package integration

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleConfig = "../testdata/fitsizer_example.yaml"
	minimalConfig = "../testdata/minimal_config.yaml"
)

type loaded struct {
	settings *config.Settings
	engine   *calculation.Engine
	scenario domain.ScenarioKind
	mix      domain.DistributionMap
	demo     domain.DemographicParameters
	camp     domain.CampaignParameters
}

// load layers path over the defaults and builds an engine the way the CLI does
func load(t *testing.T, path string) loaded {
	t.Helper()
	settings, err := config.Load(t.Context(), path)
	require.NoError(t, err, "should load %s", path)

	engineCfg, err := settings.EngineConfig()
	require.NoError(t, err)
	engine, err := calculation.NewEngine(engineCfg)
	require.NoError(t, err)
	engine.Parallel = settings.ParallelCompare

	kind, mix, demo, camp, err := settings.DefaultInputs()
	require.NoError(t, err)
	return loaded{settings: settings, engine: engine, scenario: kind, mix: mix, demo: demo, camp: camp}
}

// TestBasicIntegration tests basic end-to-end functionality
func TestBasicIntegration(t *testing.T) {
	t.Run("configuration_loading", func(t *testing.T) {
		l := load(t, exampleConfig)
		assert.Len(t, l.settings.Subscriptions, 4)
		assert.Len(t, l.settings.Scenarios, 3)
		assert.Len(t, l.settings.Competitors, 2)
		assert.True(t, l.settings.ParallelCompare)
		assert.Equal(t, domain.ScenarioMedium, l.scenario)
	})

	t.Run("calculation_engine", func(t *testing.T) {
		l := load(t, exampleConfig)

		result, err := l.engine.EvaluateScenario(l.scenario, l.mix, l.demo, l.camp)
		require.NoError(t, err)

		assert.Equal(t, 6062, result.MaxCapacity)
		assert.Equal(t, 3788, result.OccupiedSlots)
		assert.Equal(t, 336, result.TotalClients)
		assert.True(t, result.TotalRevenue.Equal(decimal.NewFromInt(56100)))
		assert.True(t, result.MeetsTarget)
		assert.Equal(t, domain.CampaignLocal, result.CampaignTier)
		assert.InDelta(t, 1.034, result.CatchmentRadiusKm, 0.001)
	})

	t.Run("scenario_comparison", func(t *testing.T) {
		l := load(t, exampleConfig)

		compSet, err := compare.NewCompareEngine(l.engine).Compare(t.Context(), compare.CompareOptions{
			Distribution: l.mix,
			Demographics: l.demo,
			Campaign:     l.camp,
			ConfigPath:   exampleConfig,
		})
		require.NoError(t, err)
		assert.Equal(t, "Reduced", compSet.BaseScenarioName)
		require.Len(t, compSet.AlternativeResults, 2)
		assert.Equal(t, domain.ScenarioMedium, compSet.AlternativeResults[0].Scenario)
		assert.Equal(t, domain.ScenarioHigh, compSet.AlternativeResults[1].Scenario)
		assert.NotEmpty(t, compSet.Recommendations)
	})

	t.Run("output_generation", func(t *testing.T) {
		l := load(t, exampleConfig)
		result, err := l.engine.EvaluateScenario(l.scenario, l.mix, l.demo, l.camp)
		require.NoError(t, err)

		report := output.NewReport(result, l.engine.Config)
		for _, name := range output.AvailableFormatterNames() {
			t.Run(name, func(t *testing.T) {
				data, err := output.GetFormatterByName(name).Format(report)
				require.NoError(t, err)
				assert.NotEmpty(t, data)
			})
		}
	})

	t.Run("market_position", func(t *testing.T) {
		l := load(t, exampleConfig)
		result, err := l.engine.EvaluateScenario(l.scenario, l.mix, l.demo, l.camp)
		require.NoError(t, err)

		pos := calculation.CalculateMarketPosition(l.engine.Config.Capacity.CapacityPerHour, result.TotalClients, l.engine.Config.Competitors)
		assert.Equal(t, 75, pos.TotalCompetitorCapacity)
		assert.Equal(t, 1050, pos.TotalCompetitorMembers)
		assert.Equal(t, 21.1, pos.CapacitySharePct)
		assert.Equal(t, 24.2, pos.MemberSharePct)
	})

	t.Run("minimal_configuration", func(t *testing.T) {
		l := load(t, minimalConfig)
		assert.Equal(t, domain.ScenarioReduced, l.scenario)
		assert.Len(t, l.settings.Subscriptions, 4, "omitted lists keep the defaults")

		result, err := l.engine.EvaluateScenario(l.scenario, l.mix, l.demo, l.camp)
		require.NoError(t, err)
		assert.Equal(t, 202, result.TotalClients)
		assert.False(t, result.MeetsTarget)
		assert.True(t, result.RevenueGap.Equal(decimal.NewFromInt(-6200)))
	})
}

// TestErrorHandling tests error conditions across package boundaries
func TestErrorHandling(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := config.NewInputParser().LoadFromFile("../testdata/does_not_exist.yaml")
		assert.True(t, errors.Is(err, config.ErrLoadConfig))

		_, err = config.Load(t.Context(), "../testdata/does_not_exist.yaml")
		assert.True(t, errors.Is(err, config.ErrLoadConfig))
	})

	t.Run("invalid_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("usage:\n  avg_visits_per_week: -1\n"), 0o644))

		_, err := config.Load(t.Context(), path)
		assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	})

	t.Run("invalid_rates", func(t *testing.T) {
		l := load(t, exampleConfig)

		demo := l.demo
		demo.ParticipationRate = 2
		_, err := l.engine.EvaluateScenario(l.scenario, l.mix, demo, l.camp)
		assert.True(t, errors.Is(err, domain.ErrInvalidRate))

		_, err = l.engine.EvaluateOccupancy(-0.1, l.mix, l.demo, l.camp)
		assert.True(t, errors.Is(err, domain.ErrInvalidRate))
	})

	t.Run("degenerate_inputs", func(t *testing.T) {
		l := load(t, exampleConfig)

		demo := l.demo
		demo.ParticipationRate = 0
		result, err := l.engine.EvaluateScenario(l.scenario, l.mix, demo, l.camp)
		require.NoError(t, err)
		assert.True(t, result.Degenerate)
		assert.Zero(t, result.CatchmentRadiusKm)
		assert.False(t, math.IsNaN(result.PeopleToReach))
	})
}

// TestPerformance checks the engine stays interactive
func TestPerformance(t *testing.T) {
	l := load(t, exampleConfig)

	start := time.Now()
	for i := 0; i < 100; i++ {
		_, err := l.engine.CompareAllScenarios(t.Context(), l.mix, l.demo, l.camp)
		require.NoError(t, err)
	}
	duration := time.Since(start)

	assert.Less(t, duration, 5*time.Second, "100 comparisons should complete within 5 seconds")
	t.Logf("100 comparisons completed in %v", duration)
}

// TestDataConsistency tests that independent paths agree
func TestDataConsistency(t *testing.T) {
	l := load(t, exampleConfig)

	results, err := l.engine.CompareAllScenarios(t.Context(), l.mix, l.demo, l.camp)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		single, err := l.engine.EvaluateScenario(r.Scenario, l.mix, l.demo, l.camp)
		require.NoError(t, err)
		assert.Equal(t, single.TotalClients, r.TotalClients, "%s clients", r.Scenario)
		assert.True(t, single.TotalRevenue.Equal(r.TotalRevenue), "%s revenue", r.Scenario)

		slots := 0.0
		for _, d := range r.Demand {
			slots += d.Slots
		}
		assert.InDelta(t, float64(r.OccupiedSlots), slots, 1e-6, "%s slot conservation", r.Scenario)
		assert.InEpsilon(t, float64(r.TotalClients), r.ConvertedClients, 1e-6, "%s funnel round trip", r.Scenario)
	}
}
