package calculation

import (
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	localCampaignMaxKm    = 2.0
	extendedCampaignMaxKm = 5.0
)

// ClassifyCampaign picks the campaign tier for a catchment radius
func ClassifyCampaign(radiusKm float64) domain.CampaignTier {
	switch {
	case radiusKm <= localCampaignMaxKm:
		return domain.CampaignLocal
	case radiusKm <= extendedCampaignMaxKm:
		return domain.CampaignExtended
	default:
		return domain.CampaignBroad
	}
}

// CampaignChannels returns the recommended channel mix for a tier
func CampaignChannels(tier domain.CampaignTier) []string {
	switch tier {
	case domain.CampaignLocal:
		return []string{"flyers in nearby blocks", "neighbourhood social media groups", "opening day open house"}
	case domain.CampaignExtended:
		return []string{"targeted social media ads", "partnerships with local businesses", "referral programme"}
	default:
		return []string{"city-wide digital campaign", "local radio and press", "outdoor billboards"}
	}
}

// CampaignCost is people to reach, rounded up to whole persons, times cost per person
func CampaignCost(peopleToReach float64, costPerPerson decimal.Decimal) decimal.Decimal {
	if peopleToReach <= 0 || math.IsNaN(peopleToReach) || math.IsInf(peopleToReach, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Ceil(peopleToReach)).Mul(costPerPerson)
}
