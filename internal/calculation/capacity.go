package calculation

import (
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// floatSlack absorbs binary representation error before floor/ceil
const floatSlack = 1e-9

// CapacityModel derives usage-slot counts from the operating facts
type CapacityModel struct {
	Facts domain.CapacityFacts
}

// NewCapacityModel creates a capacity model for facts
func NewCapacityModel(facts domain.CapacityFacts) *CapacityModel {
	return &CapacityModel{Facts: facts}
}

// MaxMonthlySlots is floor(capacity/hour x hours/day x days/week x weeks/month)
func (cm *CapacityModel) MaxMonthlySlots() int {
	f := cm.Facts
	weekly := float64(f.CapacityPerHour * f.HoursPerDay * f.DaysPerWeek)
	return floorInt(weekly * f.WeeksPerMonth)
}

// OccupiedSlots returns floor(MaxMonthlySlots x rate). Rates outside [0,1] are rejected.
func (cm *CapacityModel) OccupiedSlots(rate float64) (int, error) {
	if err := domain.ValidateRate("occupancy_rate", rate); err != nil {
		return 0, err
	}
	return floorInt(float64(cm.MaxMonthlySlots()) * rate), nil
}

func floorInt(x float64) int {
	return int(math.Floor(x + floatSlack))
}

func ceilInt(x float64) int {
	if x <= 0 {
		return 0
	}
	return int(math.Ceil(x - floatSlack))
}
