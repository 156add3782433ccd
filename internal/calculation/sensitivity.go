package calculation

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// SweepParameter names an input that can be swept
type SweepParameter string

const (
	SweepParticipation SweepParameter = "participation_rate"
	SweepDensity       SweepParameter = "population_density"
	SweepConversion    SweepParameter = "conversion_rate"
	SweepCoverage      SweepParameter = "coverage_rate"
)

// SweepParameters lists every sweepable input
var SweepParameters = []SweepParameter{SweepParticipation, SweepDensity, SweepConversion, SweepCoverage}

// ParseSweepParameter validates a parameter name
func ParseSweepParameter(s string) (SweepParameter, error) {
	for _, p := range SweepParameters {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown sweep parameter %q (want one of %v)", s, SweepParameters)
}

// SensitivityParameter describes one sweep
type SensitivityParameter struct {
	Name  SweepParameter `yaml:"name" json:"name"`
	Min   float64        `yaml:"min" json:"min"`
	Max   float64        `yaml:"max" json:"max"`
	Steps int            `yaml:"steps" json:"steps"`
}

// SensitivityPoint is the catchment at one swept value
type SensitivityPoint struct {
	Value           float64 `yaml:"value" json:"value"`
	RadiusKm        float64 `yaml:"radius_km" json:"radiusKm"`
	AreaKm2         float64 `yaml:"area_km2" json:"areaKm2"`
	TotalPopulation float64 `yaml:"total_population" json:"totalPopulation"`
	PeopleToReach   float64 `yaml:"people_to_reach" json:"peopleToReach"`
	Degenerate      bool    `yaml:"degenerate" json:"degenerate"`
}

// SensitivityAnalysis is the result of one parameter sweep
type SensitivityAnalysis struct {
	Scenario     domain.ScenarioKind  `yaml:"scenario" json:"scenario"`
	Parameter    SensitivityParameter `yaml:"parameter" json:"parameter"`
	TotalClients int                  `yaml:"total_clients" json:"totalClients"`
	BaseRadiusKm float64              `yaml:"base_radius_km" json:"baseRadiusKm"`
	MinRadiusKm  float64              `yaml:"min_radius_km" json:"minRadiusKm"`
	MaxRadiusKm  float64              `yaml:"max_radius_km" json:"maxRadiusKm"`
	Score        float64              `yaml:"score" json:"score"`
	RiskLevel    string               `yaml:"risk_level" json:"riskLevel"`
	Points       []SensitivityPoint   `yaml:"points" json:"points"`
}

// SensitivityAnalyzer sweeps catchment inputs for a scenario
type SensitivityAnalyzer struct {
	engine *Engine
}

// NewSensitivityAnalyzer creates an analyzer backed by engine
func NewSensitivityAnalyzer(engine *Engine) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{engine: engine}
}

// DefaultSweep returns the sweep range used when none is given
func DefaultSweep(name SweepParameter) SensitivityParameter {
	switch name {
	case SweepDensity:
		return SensitivityParameter{Name: name, Min: 500, Max: 3000, Steps: 6}
	case SweepParticipation:
		return SensitivityParameter{Name: name, Min: 0.05, Max: 0.20, Steps: 4}
	default:
		return SensitivityParameter{Name: name, Min: 0.1, Max: 1.0, Steps: 10}
	}
}

// AnalyzeSingleParameter sweeps one input while the others stay at their base values
func (sa *SensitivityAnalyzer) AnalyzeSingleParameter(kind domain.ScenarioKind, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters, param SensitivityParameter) (*SensitivityAnalysis, error) {
	if param.Min > param.Max {
		return nil, fmt.Errorf("sweep %s: min %v exceeds max %v", param.Name, param.Min, param.Max)
	}

	base, err := sa.engine.EvaluateScenario(kind, dist, demo, camp)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate base scenario: %w", err)
	}

	analysis := &SensitivityAnalysis{
		Scenario:     kind,
		Parameter:    param,
		TotalClients: base.TotalClients,
		BaseRadiusKm: base.CatchmentRadiusKm,
	}

	seen := false
	for _, value := range sa.generateParameterValues(param) {
		d, c, err := applySweep(param.Name, value, demo, camp)
		if err != nil {
			return nil, err
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", param.Name, value, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", param.Name, value, err)
		}

		fig := SolveCatchment(float64(base.TotalClients), d, c)
		analysis.Points = append(analysis.Points, SensitivityPoint{
			Value:           value,
			RadiusKm:        fig.RadiusKm,
			AreaKm2:         fig.AreaKm2,
			TotalPopulation: fig.TotalPopulation,
			PeopleToReach:   fig.PeopleToReach,
			Degenerate:      fig.Degenerate,
		})
		// degenerate points have no radius to compare
		if fig.Degenerate {
			continue
		}
		if !seen || fig.RadiusKm < analysis.MinRadiusKm {
			analysis.MinRadiusKm = fig.RadiusKm
		}
		if fig.RadiusKm > analysis.MaxRadiusKm {
			analysis.MaxRadiusKm = fig.RadiusKm
		}
		seen = true
	}

	if analysis.BaseRadiusKm > 0 {
		analysis.Score = (analysis.MaxRadiusKm - analysis.MinRadiusKm) / analysis.BaseRadiusKm
	}
	analysis.RiskLevel = riskLevel(analysis.Score)
	return analysis, nil
}

// AnalyzeAll sweeps every parameter over its default range and ranks them,
// most sensitive first
func (sa *SensitivityAnalyzer) AnalyzeAll(kind domain.ScenarioKind, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters) ([]SensitivityAnalysis, error) {
	out := make([]SensitivityAnalysis, 0, len(SweepParameters))
	for _, p := range SweepParameters {
		a, err := sa.AnalyzeSingleParameter(kind, dist, demo, camp, DefaultSweep(p))
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func (sa *SensitivityAnalyzer) generateParameterValues(param SensitivityParameter) []float64 {
	if param.Steps <= 1 {
		return []float64{param.Min}
	}
	step := (param.Max - param.Min) / float64(param.Steps-1)
	values := make([]float64, 0, param.Steps)
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.Min+step*float64(i))
	}
	// land exactly on max
	values[len(values)-1] = param.Max
	return values
}

func applySweep(name SweepParameter, value float64, demo domain.DemographicParameters, camp domain.CampaignParameters) (domain.DemographicParameters, domain.CampaignParameters, error) {
	switch name {
	case SweepParticipation:
		demo.ParticipationRate = value
	case SweepDensity:
		demo.PopulationDensity = value
	case SweepConversion:
		camp.ConversionRate = value
	case SweepCoverage:
		camp.CoverageRate = value
	default:
		return demo, camp, fmt.Errorf("unknown sweep parameter %q", name)
	}
	return demo, camp, nil
}

func riskLevel(score float64) string {
	switch {
	case score >= 2:
		return "HIGH"
	case score >= 0.5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
