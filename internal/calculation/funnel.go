package calculation

import (
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// BuildFunnel runs the campaign funnel forward from a catchment area
func BuildFunnel(areaKm2 float64, demo domain.DemographicParameters, camp domain.CampaignParameters) domain.FunnelFigures {
	total := areaKm2 * demo.PopulationDensity
	interested := total * demo.ParticipationRate
	reach := interested * camp.CoverageRate
	return domain.FunnelFigures{
		TotalPopulation:      total,
		InterestedPopulation: interested,
		PeopleToReach:        reach,
		ConvertedClients:     reach * camp.ConversionRate,
	}
}
