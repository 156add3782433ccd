package calculation

import (
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// SolveCatchment inverse-solves the circular catchment that yields
// clientsNeeded converted clients. A zero rate or density has no finite
// answer, and rates small enough to overflow the funnel have none either;
// both return the all-zero result with Degenerate set.
func SolveCatchment(clientsNeeded float64, demo domain.DemographicParameters, camp domain.CampaignParameters) domain.CatchmentFigures {
	if DegenerateInputs(demo, camp) != nil {
		return domain.CatchmentFigures{Degenerate: true}
	}
	if clientsNeeded <= 0 {
		return domain.CatchmentFigures{}
	}

	peopleToReach := clientsNeeded / camp.ConversionRate
	interested := peopleToReach / camp.CoverageRate
	total := interested / demo.ParticipationRate
	area := total / demo.PopulationDensity
	if !finite(peopleToReach, interested, total, area) {
		return domain.CatchmentFigures{Degenerate: true}
	}

	return domain.CatchmentFigures{
		RadiusKm:             math.Sqrt(area / math.Pi),
		AreaKm2:              area,
		TotalPopulation:      total,
		InterestedPopulation: interested,
		PeopleToReach:        peopleToReach,
	}
}

// DegenerateInputs lists the parameters that are exactly zero
func DegenerateInputs(demo domain.DemographicParameters, camp domain.CampaignParameters) []string {
	var zero []string
	if demo.ParticipationRate == 0 {
		zero = append(zero, "participation_rate")
	}
	if demo.PopulationDensity == 0 {
		zero = append(zero, "population_density")
	}
	if camp.ConversionRate == 0 {
		zero = append(zero, "conversion_rate")
	}
	if camp.CoverageRate == 0 {
		zero = append(zero, "coverage_rate")
	}
	return zero
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
