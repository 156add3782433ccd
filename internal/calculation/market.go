package calculation

import (
	"math"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// MarketPosition compares our capacity and membership with the competitors
type MarketPosition struct {
	OurCapacity             int     `yaml:"our_capacity" json:"ourCapacity"`
	TotalCompetitorCapacity int     `yaml:"total_competitor_capacity" json:"totalCompetitorCapacity"`
	CapacitySharePct        float64 `yaml:"capacity_share_pct" json:"capacitySharePct"`
	OurMembers              int     `yaml:"our_members" json:"ourMembers"`
	TotalCompetitorMembers  int     `yaml:"total_competitor_members" json:"totalCompetitorMembers"`
	MemberSharePct          float64 `yaml:"member_share_pct" json:"memberSharePct"`
	Competitors             int     `yaml:"competitors" json:"competitors"`
}

// CalculateMarketPosition computes our share of capacity and members, rounded to one decimal
func CalculateMarketPosition(ourCapacity, ourMembers int, competitors []domain.Competitor) MarketPosition {
	pos := MarketPosition{
		OurCapacity: ourCapacity,
		OurMembers:  ourMembers,
		Competitors: len(competitors),
	}
	for _, c := range competitors {
		pos.TotalCompetitorCapacity += c.Capacity
		pos.TotalCompetitorMembers += c.Members
	}
	pos.CapacitySharePct = sharePct(ourCapacity, pos.TotalCompetitorCapacity)
	pos.MemberSharePct = sharePct(ourMembers, pos.TotalCompetitorMembers)
	return pos
}

func sharePct(ours, theirs int) float64 {
	total := ours + theirs
	if total == 0 {
		return 0
	}
	pct := float64(ours) / float64(total) * 100
	return math.Round(pct*10) / 10
}
