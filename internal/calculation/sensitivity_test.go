package calculation

import (
	"testing"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivityAnalyzer_AnalyzeSingleParameter(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	param := SensitivityParameter{Name: SweepDensity, Min: 500, Max: 3000, Steps: 6}
	a, err := sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp, param)
	require.NoError(t, err)

	require.Len(t, a.Points, 6)
	assert.Equal(t, 500.0, a.Points[0].Value)
	assert.Equal(t, 3000.0, a.Points[5].Value)
	assert.Equal(t, 336, a.TotalClients)

	for i := 1; i < len(a.Points); i++ {
		assert.LessOrEqual(t, a.Points[i].RadiusKm, a.Points[i-1].RadiusKm)
	}
	assert.Equal(t, a.Points[0].RadiusKm, a.MaxRadiusKm)
	assert.Equal(t, a.Points[5].RadiusKm, a.MinRadiusKm)
	assert.InDelta(t, (a.MaxRadiusKm-a.MinRadiusKm)/a.BaseRadiusKm, a.Score, 1e-12)
	assert.NotEmpty(t, a.RiskLevel)
}

func TestSensitivityAnalyzer_DegeneratePoint(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	param := SensitivityParameter{Name: SweepParticipation, Min: 0, Max: 0.2, Steps: 3}
	a, err := sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp, param)
	require.NoError(t, err)

	assert.True(t, a.Points[0].Degenerate)
	assert.Zero(t, a.Points[0].RadiusKm)

	// the zero-radius point stays out of the range
	assert.Equal(t, a.Points[2].RadiusKm, a.MinRadiusKm)
	assert.Equal(t, a.Points[1].RadiusKm, a.MaxRadiusKm)
	assert.InDelta(t, (a.MaxRadiusKm-a.MinRadiusKm)/a.BaseRadiusKm, a.Score, 1e-12)
}

func TestSensitivityAnalyzer_DensitySweepFromZero(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	from := SensitivityParameter{Name: SweepDensity, Min: 0, Max: 3000, Steps: 7}
	withZero, err := sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp, from)
	require.NoError(t, err)

	rest := SensitivityParameter{Name: SweepDensity, Min: 500, Max: 3000, Steps: 6}
	without, err := sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp, rest)
	require.NoError(t, err)

	require.True(t, withZero.Points[0].Degenerate)
	assert.InDelta(t, without.MinRadiusKm, withZero.MinRadiusKm, 1e-12)
	assert.InDelta(t, without.MaxRadiusKm, withZero.MaxRadiusKm, 1e-12)
	assert.InDelta(t, without.Score, withZero.Score, 1e-12)
	assert.Equal(t, without.RiskLevel, withZero.RiskLevel)
}

func TestSensitivityAnalyzer_RejectsInvalidSweep(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	_, err := sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp,
		SensitivityParameter{Name: SweepConversion, Min: 0.5, Max: 1.5, Steps: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	_, err = sa.AnalyzeSingleParameter(domain.ScenarioMedium, defaultMix(), baseDemo, baseCamp,
		SensitivityParameter{Name: SweepConversion, Min: 0.9, Max: 0.1, Steps: 3})
	assert.Error(t, err)

	_, err = ParseSweepParameter("rent")
	assert.Error(t, err)
}

func TestSensitivityAnalyzer_AnalyzeAll(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	all, err := sa.AnalyzeAll(domain.ScenarioMedium, defaultMix(), baseDemo,
		domain.CampaignParameters{ConversionRate: 0.5, CoverageRate: 0.5})
	require.NoError(t, err)
	require.Len(t, all, len(SweepParameters))

	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
}

func TestGenerateParameterValues(t *testing.T) {
	sa := NewSensitivityAnalyzer(NewDefaultEngine())

	values := sa.generateParameterValues(SensitivityParameter{Min: 0.05, Max: 0.20, Steps: 4})
	require.Len(t, values, 4)
	assert.InDelta(t, 0.05, values[0], 1e-12)
	assert.InDelta(t, 0.10, values[1], 1e-12)
	assert.InDelta(t, 0.15, values[2], 1e-12)
	assert.Equal(t, 0.20, values[3])

	assert.Equal(t, []float64{0.3}, sa.generateParameterValues(SensitivityParameter{Min: 0.3, Max: 0.9, Steps: 1}))
}
