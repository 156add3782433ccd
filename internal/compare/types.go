package compare

import (
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one scenario row of a side-by-side comparison
type ComparisonResult struct {
	Scenario       domain.ScenarioKind    `json:"scenario" yaml:"scenario"`
	ScenarioName   string                 `json:"scenarioName" yaml:"scenario_name"`
	OccupancyRange string                 `json:"occupancyRange" yaml:"occupancy_range"`
	Result         *domain.AnalysisResult `json:"-" yaml:"-"`

	// Key Metrics
	OccupancyRate     float64             `json:"occupancyRate" yaml:"occupancy_rate"`
	TotalRevenue      decimal.Decimal     `json:"totalRevenue" yaml:"total_revenue"`
	TotalClients      int                 `json:"totalClients" yaml:"total_clients"`
	CatchmentRadiusKm float64             `json:"catchmentRadiusKm" yaml:"catchment_radius_km"`
	TotalPopulation   float64             `json:"totalPopulation" yaml:"total_population"`
	PeopleToReach     float64             `json:"peopleToReach" yaml:"people_to_reach"`
	RevenueGap        decimal.Decimal     `json:"revenueGap" yaml:"revenue_gap"`
	MeetsTarget       bool                `json:"meetsTarget" yaml:"meets_target"`
	CampaignTier      domain.CampaignTier `json:"campaignTier" yaml:"campaign_tier"`
	CampaignCost      decimal.Decimal     `json:"campaignCost" yaml:"campaign_cost"`
	Degenerate        bool                `json:"degenerate" yaml:"degenerate"`

	// Comparison to Base
	RevenueDiffFromBase decimal.Decimal `json:"revenueDiffFromBase" yaml:"revenue_diff_from_base"`
	RevenuePctFromBase  decimal.Decimal `json:"revenuePctFromBase" yaml:"revenue_pct_from_base"`
	ClientsDiffFromBase int             `json:"clientsDiffFromBase" yaml:"clients_diff_from_base"`
	RadiusDiffFromBase  float64         `json:"radiusDiffFromBase" yaml:"radius_diff_from_base"`
}

// ComparisonSet is the comparison of every scenario against the first (reduced) one
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName" yaml:"base_scenario_name"`
	BaseResult         *ComparisonResult  `json:"baseResult" yaml:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternativeResults" yaml:"alternative_results"`
	RevenueTarget      decimal.Decimal    `json:"revenueTarget" yaml:"revenue_target"`
	Recommendations    []string           `json:"recommendations" yaml:"recommendations"`
	ConfigPath         string             `json:"configPath" yaml:"config_path"`
}

// Rows returns every row in canonical scenario order
func (cs *ComparisonSet) Rows() []ComparisonResult {
	rows := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		rows = append(rows, *cs.BaseResult)
	}
	return append(rows, cs.AlternativeResults...)
}

// MetricsCalculator extracts comparison metrics from analysis results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics builds a comparison row from an analysis result
func (mc *MetricsCalculator) CalculateMetrics(result *domain.AnalysisResult) ComparisonResult {
	return ComparisonResult{
		Scenario:          result.Scenario,
		ScenarioName:      result.ScenarioName,
		OccupancyRange:    result.OccupancyRange,
		Result:            result,
		OccupancyRate:     result.OccupancyRate,
		TotalRevenue:      result.TotalRevenue,
		TotalClients:      result.TotalClients,
		CatchmentRadiusKm: result.CatchmentRadiusKm,
		TotalPopulation:   result.TotalPopulation,
		PeopleToReach:     result.PeopleToReach,
		RevenueGap:        result.RevenueGap,
		MeetsTarget:       result.MeetsTarget,
		CampaignTier:      result.CampaignTier,
		CampaignCost:      result.CampaignCost,
		Degenerate:        result.Degenerate,
	}
}

// CalculateComparison computes the deltas of a row against the base row
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.RevenueDiffFromBase = scenario.TotalRevenue.Sub(base.TotalRevenue)
	if !base.TotalRevenue.IsZero() {
		scenario.RevenuePctFromBase = scenario.RevenueDiffFromBase.
			Div(base.TotalRevenue).
			Mul(decimal.NewFromInt(100))
	}
	scenario.ClientsDiffFromBase = scenario.TotalClients - base.TotalClients
	scenario.RadiusDiffFromBase = scenario.CatchmentRadiusKm - base.CatchmentRadiusKm
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	rows := compSet.Rows()
	if len(rows) == 0 {
		return recommendations
	}

	// First scenario (lowest occupancy) that reaches the target
	var firstMeeting *ComparisonResult
	for i := range rows {
		if rows[i].MeetsTarget {
			firstMeeting = &rows[i]
			break
		}
	}

	if firstMeeting == nil {
		last := rows[len(rows)-1]
		recommendations = append(recommendations,
			"Target Missed: no scenario reaches "+compSet.RevenueTarget.StringFixed(0)+
				" RON; even "+last.ScenarioName+" falls short by "+last.RevenueGap.Abs().StringFixed(0)+" RON")
	} else {
		recommendations = append(recommendations,
			"Minimum Viable: "+firstMeeting.ScenarioName+" ("+firstMeeting.OccupancyRange+
				") is the lowest occupancy that reaches the "+compSet.RevenueTarget.StringFixed(0)+" RON target")

		// Smallest catchment among scenarios meeting the target
		smallest := firstMeeting
		for i := range rows {
			if rows[i].MeetsTarget && !rows[i].Degenerate && rows[i].CatchmentRadiusKm < smallest.CatchmentRadiusKm {
				smallest = &rows[i]
			}
		}
		if !smallest.Degenerate {
			recommendations = append(recommendations,
				fmt.Sprintf("Smallest Catchment: %s needs a %.2f km radius (%s campaign)",
					smallest.ScenarioName, smallest.CatchmentRadiusKm, smallest.CampaignTier))
		}
	}

	// Highest revenue headroom
	best := rows[0]
	for _, r := range rows[1:] {
		if r.TotalRevenue.GreaterThan(best.TotalRevenue) {
			best = r
		}
	}
	if best.MeetsTarget && best.RevenueGap.IsPositive() {
		recommendations = append(recommendations,
			"Best Headroom: "+best.ScenarioName+" exceeds the target by "+best.RevenueGap.StringFixed(0)+" RON")
	}

	for _, r := range rows {
		if r.Degenerate {
			recommendations = append(recommendations,
				"Check Inputs: a rate or density is zero, so catchment figures are not meaningful")
			break
		}
	}

	return recommendations
}
