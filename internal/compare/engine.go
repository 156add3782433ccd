package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions holds the inputs shared by every scenario
type CompareOptions struct {
	Distribution domain.DistributionMap
	Demographics domain.DemographicParameters
	Campaign     domain.CampaignParameters
	ConfigPath   string
}

// Compare evaluates every scenario and compares each against the first
func (ce *CompareEngine) Compare(ctx context.Context, options CompareOptions) (*ComparisonSet, error) {
	results, err := ce.CalcEngine.CompareAllScenarios(ctx, options.Distribution, options.Demographics, options.Campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate scenarios: %w", err)
	}
	return ce.Build(results, options.ConfigPath), nil
}

// Build assembles a comparison set from already evaluated results
func (ce *CompareEngine) Build(results []domain.AnalysisResult, configPath string) *ComparisonSet {
	compSet := &ComparisonSet{
		RevenueTarget: ce.CalcEngine.Config.RevenueTarget,
		ConfigPath:    configPath,
	}
	if len(results) == 0 {
		compSet.Recommendations = GenerateRecommendations(compSet)
		return compSet
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(&results[0])
	compSet.BaseScenarioName = baseResult.ScenarioName
	compSet.BaseResult = &baseResult

	alternatives := make([]ComparisonResult, 0, len(results)-1)
	for i := 1; i < len(results); i++ {
		alt := ce.MetricsCalculator.CalculateMetrics(&results[i])
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}
	compSet.AlternativeResults = alternatives
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet
}
