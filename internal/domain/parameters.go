package domain

import (
	"fmt"
	"math"
	"sort"
)

// DistributionMap holds relative subscription weights. Weights need not sum to 1;
// they are normalized at evaluation time.
type DistributionMap map[SubscriptionKind]float64

// Sum returns the raw sum of all weights
func (d DistributionMap) Sum() float64 {
	total := 0.0
	for _, w := range d {
		total += w
	}
	return total
}

// Validate rejects unknown kinds and negative or non-finite weights
func (d DistributionMap) Validate() error {
	for k, w := range d {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownSubscription, k)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s weight is not finite", ErrNegativeWeight, k)
		}
		if w < 0 {
			return fmt.Errorf("%w: %s = %v", ErrNegativeWeight, k, w)
		}
	}
	return nil
}

// Normalize returns a copy scaled so the weights sum to 1.
// A zero-sum map yields an empty map and false.
func (d DistributionMap) Normalize() (DistributionMap, bool) {
	total := d.Sum()
	if total <= 0 {
		return DistributionMap{}, false
	}
	if math.IsInf(total, 1) {
		// finite weights whose sum overflows: bring them under 1 first
		return d.scaled(d.max()).Normalize()
	}
	out := make(DistributionMap, len(d))
	for k, w := range d {
		out[k] = w / total
	}
	return out, true
}

func (d DistributionMap) max() float64 {
	m := 0.0
	for _, w := range d {
		if w > m {
			m = w
		}
	}
	return m
}

func (d DistributionMap) scaled(by float64) DistributionMap {
	out := make(DistributionMap, len(d))
	for k, w := range d {
		out[k] = w / by
	}
	return out
}

// Weight returns the weight for kind, 0 when absent
func (d DistributionMap) Weight(kind SubscriptionKind) float64 {
	return d[kind]
}

// Kinds returns the map's keys sorted in canonical subscription order
func (d DistributionMap) Kinds() []SubscriptionKind {
	kinds := make([]SubscriptionKind, 0, len(d))
	for k := range d {
		kinds = append(kinds, k)
	}
	order := make(map[SubscriptionKind]int, len(SubscriptionKinds))
	for i, k := range SubscriptionKinds {
		order[k] = i
	}
	sort.Slice(kinds, func(i, j int) bool { return order[kinds[i]] < order[kinds[j]] })
	return kinds
}

// EqualDistribution gives every kind the same share
func EqualDistribution(kinds []SubscriptionKind) DistributionMap {
	out := make(DistributionMap, len(kinds))
	if len(kinds) == 0 {
		return out
	}
	share := 1.0 / float64(len(kinds))
	for _, k := range kinds {
		out[k] = share
	}
	return out
}

// DemographicParameters describe the population around the location
type DemographicParameters struct {
	ParticipationRate float64 `yaml:"participation_rate" json:"participationRate"`
	PopulationDensity float64 `yaml:"population_density" json:"populationDensity"`
}

// Validate rejects values outside their domain; exact zeros are degenerate, not invalid
func (p DemographicParameters) Validate() error {
	if err := ValidateRate("participation_rate", p.ParticipationRate); err != nil {
		return err
	}
	if math.IsNaN(p.PopulationDensity) || math.IsInf(p.PopulationDensity, 0) || p.PopulationDensity < 0 {
		return NewRateError("population_density", p.PopulationDensity, "must be a finite non-negative number")
	}
	return nil
}

// CampaignParameters describe the marketing funnel
type CampaignParameters struct {
	ConversionRate float64 `yaml:"conversion_rate" json:"conversionRate"`
	CoverageRate   float64 `yaml:"coverage_rate" json:"coverageRate"`
}

// Validate rejects rates outside [0,1]
func (p CampaignParameters) Validate() error {
	if err := ValidateRate("conversion_rate", p.ConversionRate); err != nil {
		return err
	}
	return ValidateRate("coverage_rate", p.CoverageRate)
}

// ValidateRate checks that value lies in [0,1]
func ValidateRate(field string, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return NewRateError(field, value, "must be between 0 and 1")
	}
	return nil
}

// CapacityFacts are the fixed operating parameters of the space
type CapacityFacts struct {
	CapacityPerHour int     `yaml:"capacity_per_hour" json:"capacityPerHour"`
	HoursPerDay     int     `yaml:"hours_per_day" json:"hoursPerDay"`
	DaysPerWeek     int     `yaml:"days_per_week" json:"daysPerWeek"`
	WeeksPerMonth   float64 `yaml:"weeks_per_month" json:"weeksPerMonth"`
}

// Validate requires every fact to be positive
func (c CapacityFacts) Validate() error {
	if c.CapacityPerHour <= 0 || c.HoursPerDay <= 0 || c.DaysPerWeek <= 0 || c.WeeksPerMonth <= 0 {
		return fmt.Errorf("%w: capacity facts must be positive", ErrInvalidConfig)
	}
	if c.HoursPerDay > 24 || c.DaysPerWeek > 7 {
		return fmt.Errorf("%w: %d hours/day, %d days/week is not a valid schedule",
			ErrInvalidConfig, c.HoursPerDay, c.DaysPerWeek)
	}
	return nil
}

// UsageAssumptions convert slot shares into client counts
type UsageAssumptions struct {
	AvgVisitsPerWeek     float64 `yaml:"avg_visits_per_week" json:"avgVisitsPerWeek"`
	AvgSessionsPerClient float64 `yaml:"avg_sessions_per_client" json:"avgSessionsPerClient"`
}

// Validate requires positive usage figures
func (u UsageAssumptions) Validate() error {
	if u.AvgVisitsPerWeek <= 0 {
		return fmt.Errorf("%w: avg_visits_per_week must be positive", ErrInvalidConfig)
	}
	if u.AvgSessionsPerClient <= 0 {
		return fmt.Errorf("%w: avg_sessions_per_client must be positive", ErrInvalidConfig)
	}
	return nil
}

// Location is the site of the planned space
type Location struct {
	Name      string  `yaml:"name" json:"name"`
	Address   string  `yaml:"address" json:"address"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Competitor is a nearby facility used for market position
type Competitor struct {
	Name     string `yaml:"name" json:"name"`
	Capacity int    `yaml:"capacity" json:"capacity"`
	Members  int    `yaml:"members" json:"members"`
}
