package calculation

import (
	"testing"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBlocks(t *testing.T) {
	loc := domain.DefaultLocation()
	demo := domain.DemographicParameters{ParticipationRate: 0.10, PopulationDensity: 1000}

	blocks := PlaceBlocks(loc, 1.0, demo, 0)
	require.Len(t, blocks, DefaultBlockCount)

	for _, b := range blocks {
		assert.Equal(t, 100, b.Population)
		assert.LessOrEqual(t, b.Participation, 0.30)
		assert.Greater(t, b.DistanceKm, 0.0)
		assert.Less(t, b.DistanceKm, 1.0)
		assert.NotEmpty(t, b.Intensity)
	}
	assert.Equal(t, 1, blocks[0].Index)

	// the outermost ring sits at 0.9 of the radius
	assert.InDelta(t, 0.9, blocks[3].DistanceKm, 0.01)
	assert.InDelta(t, 0.3, blocks[4].DistanceKm, 0.01)
}

func TestPlaceBlocks_ParticipationCap(t *testing.T) {
	demo := domain.DemographicParameters{ParticipationRate: 0.5, PopulationDensity: 2000}
	blocks := PlaceBlocks(domain.DefaultLocation(), 2.0, demo, 20)

	for _, b := range blocks {
		assert.LessOrEqual(t, b.Participation, 0.30)
		assert.Equal(t, 200, b.Population)
		assert.Equal(t, int(float64(b.Population)*b.Participation), b.Interested)
	}

	pop, interested := BlockTotals(blocks)
	assert.Equal(t, 4000, pop)
	assert.LessOrEqual(t, interested, 1200)
}

func TestParticipationBand(t *testing.T) {
	m, i := participationBand(0.2, 1)
	assert.Equal(t, 1.2, m)
	assert.Equal(t, IntensityHigh, i)

	m, i = participationBand(0.5, 1)
	assert.Equal(t, 1.0, m)
	assert.Equal(t, IntensityMedium, i)

	m, i = participationBand(0.85, 1)
	assert.Equal(t, 0.8, m)
	assert.Equal(t, IntensityModerate, i)

	m, i = participationBand(0.95, 1)
	assert.Equal(t, 0.6, m)
	assert.Equal(t, IntensityLow, i)
}

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(46.5712, 26.9244, 46.5712, 26.9244))
	// one degree of latitude
	assert.InDelta(t, 111.19, Haversine(46, 27, 47, 27), 0.05)
}

func TestCalculateMarketPosition(t *testing.T) {
	competitors := []domain.Competitor{
		{Name: "Gym A", Capacity: 100, Members: 1000},
		{Name: "Gym B", Capacity: 80, Members: 1500},
	}

	pos := CalculateMarketPosition(20, 336, competitors)
	assert.Equal(t, 180, pos.TotalCompetitorCapacity)
	assert.Equal(t, 2500, pos.TotalCompetitorMembers)
	assert.Equal(t, 10.0, pos.CapacitySharePct)
	assert.Equal(t, 11.8, pos.MemberSharePct)
	assert.Equal(t, 2, pos.Competitors)

	empty := CalculateMarketPosition(0, 0, nil)
	assert.Zero(t, empty.CapacitySharePct)
	assert.Zero(t, empty.MemberSharePct)
}
