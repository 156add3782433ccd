// Package tuimsg holds the messages scenes emit, kept apart from the root
// tui package to avoid an import cycle.
package tuimsg

import (
	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
)

// Inputs are the evaluation inputs the user is currently working with
type Inputs struct {
	Scenario     domain.ScenarioKind
	Distribution domain.DistributionMap
	Demographics domain.DemographicParameters
	Campaign     domain.CampaignParameters
}

// Clone returns a copy whose distribution can be mutated independently
func (in Inputs) Clone() Inputs {
	out := in
	out.Distribution = make(domain.DistributionMap, len(in.Distribution))
	for k, v := range in.Distribution {
		out.Distribution[k] = v
	}
	return out
}

// ScenarioSelectedMsg signals an occupancy scenario has been selected
type ScenarioSelectedMsg struct {
	Kind domain.ScenarioKind
}

// InputsChangedMsg carries edited parameters back to the application
type InputsChangedMsg struct {
	Inputs Inputs
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// EvaluationCompleteMsg signals a single-scenario evaluation has finished
type EvaluationCompleteMsg struct {
	Result *domain.AnalysisResult
	Err    error
}

// ComparisonStartedMsg requests that all scenarios be compared
type ComparisonStartedMsg struct{}

// ComparisonCompleteMsg signals a comparison has finished
type ComparisonCompleteMsg struct {
	Results []domain.AnalysisResult
	Set     *compare.ComparisonSet
	Err     error
}

// TargetStartedMsg requests the occupancy needed for a revenue target
type TargetStartedMsg struct {
	Target decimal.Decimal
}

// TargetCompleteMsg signals the target solver has finished
type TargetCompleteMsg struct {
	Result *calculation.TargetResult
	Err    error
}
