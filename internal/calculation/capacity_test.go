package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityModel_MaxMonthlySlots(t *testing.T) {
	cm := NewCapacityModel(domain.DefaultCapacity())
	assert.Equal(t, 6062, cm.MaxMonthlySlots())

	cm = NewCapacityModel(domain.CapacityFacts{CapacityPerHour: 10, HoursPerDay: 8, DaysPerWeek: 5, WeeksPerMonth: 4})
	assert.Equal(t, 1600, cm.MaxMonthlySlots())
}

func TestCapacityModel_OccupiedSlots(t *testing.T) {
	cm := NewCapacityModel(domain.DefaultCapacity())

	tests := []struct {
		rate     float64
		expected int
	}{
		{0, 0},
		{0.375, 2273},
		{0.625, 3788},
		{0.875, 5304},
		{1, 6062},
	}

	for _, tt := range tests {
		got, err := cm.OccupiedSlots(tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "rate %v", tt.rate)
	}
}

func TestCapacityModel_OccupiedSlotsRejectsInvalidRate(t *testing.T) {
	cm := NewCapacityModel(domain.DefaultCapacity())

	for _, rate := range []float64{-0.1, 1.0001, math.NaN()} {
		_, err := cm.OccupiedSlots(rate)
		assert.ErrorIs(t, err, domain.ErrInvalidRate, "rate %v", rate)
	}
}
