package calculation

import (
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

const (
	earthRadiusKm       = 6371.0
	kmPerDegreeLatitude = 111.0

	DefaultBlockCount     = 20
	blockAreaKm2          = 0.1
	maxBlockParticipation = 0.30
)

// Intensity labels the participation band of a block
type Intensity string

const (
	IntensityHigh     Intensity = "high"
	IntensityMedium   Intensity = "medium"
	IntensityModerate Intensity = "moderate"
	IntensityLow      Intensity = "low"
)

// Block is one simulated neighbourhood block inside the catchment
type Block struct {
	Index         int       `yaml:"index" json:"index"`
	Latitude      float64   `yaml:"latitude" json:"latitude"`
	Longitude     float64   `yaml:"longitude" json:"longitude"`
	DistanceKm    float64   `yaml:"distance_km" json:"distanceKm"`
	Participation float64   `yaml:"participation" json:"participation"`
	Population    int       `yaml:"population" json:"population"`
	Interested    int       `yaml:"interested" json:"interested"`
	Intensity     Intensity `yaml:"intensity" json:"intensity"`
}

// PlaceBlocks spreads count blocks on rings around the location and assigns
// each a participation rate that decays with distance from the centre
func PlaceBlocks(loc domain.Location, radiusKm float64, demo domain.DemographicParameters, count int) []Block {
	if count <= 0 {
		count = DefaultBlockCount
	}
	latScale := math.Cos(loc.Latitude * math.Pi / 180)

	blocks := make([]Block, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		factor := 0.3 + float64(i%4)*0.2
		offset := factor * radiusKm / kmPerDegreeLatitude

		lat := loc.Latitude + offset*math.Cos(angle)
		lon := loc.Longitude + offset*math.Sin(angle)/latScale
		dist := Haversine(loc.Latitude, loc.Longitude, lat, lon)

		multiplier, intensity := participationBand(dist, radiusKm)
		participation := math.Min(demo.ParticipationRate*multiplier, maxBlockParticipation)
		population := int(blockAreaKm2 * demo.PopulationDensity)

		blocks = append(blocks, Block{
			Index:         i + 1,
			Latitude:      lat,
			Longitude:     lon,
			DistanceKm:    dist,
			Participation: participation,
			Population:    population,
			Interested:    int(float64(population) * participation),
			Intensity:     intensity,
		})
	}
	return blocks
}

func participationBand(dist, radius float64) (float64, Intensity) {
	switch {
	case dist <= radius*0.3:
		return 1.2, IntensityHigh
	case dist <= radius*0.6:
		return 1.0, IntensityMedium
	case dist <= radius*0.9:
		return 0.8, IntensityModerate
	default:
		return 0.6, IntensityLow
	}
}

// Haversine returns the great-circle distance in km between two points
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := math.Pi / 180
	dLat := (lat2 - lat1) * toRad
	dLon := (lon2 - lon1) * toRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*toRad)*math.Cos(lat2*toRad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// BlockTotals sums population and interested residents over blocks
func BlockTotals(blocks []Block) (population, interested int) {
	for _, b := range blocks {
		population += b.Population
		interested += b.Interested
	}
	return population, interested
}
