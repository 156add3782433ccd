package server

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// Inputs are the evaluation inputs used for fields a request leaves out
type Inputs struct {
	Scenario     domain.ScenarioKind
	Distribution domain.DistributionMap
	Demographics domain.DemographicParameters
	Campaign     domain.CampaignParameters
}

// EvaluateRequest is the body of POST /v1/evaluate. Omitted fields take the server defaults.
type EvaluateRequest struct {
	Scenario          string             `json:"scenario"`
	Occupancy         *float64           `json:"occupancy,omitempty"`
	Mix               map[string]float64 `json:"mix,omitempty"`
	ParticipationRate *float64           `json:"participationRate,omitempty"`
	PopulationDensity *float64           `json:"populationDensity,omitempty"`
	ConversionRate    *float64           `json:"conversionRate,omitempty"`
	CoverageRate      *float64           `json:"coverageRate,omitempty"`
}

// CompareResponse is the body returned by POST /v1/compare
type CompareResponse struct {
	Scenarios  []domain.AnalysisResult `json:"scenarios"`
	Comparison *compare.ComparisonSet  `json:"comparison"`
}

// TargetRequest is the body of POST /v1/target
type TargetRequest struct {
	EvaluateRequest
	Target *float64 `json:"target,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// resolve merges the request with the defaults and validates the result
func (r *EvaluateRequest) resolve(def Inputs) (Inputs, error) {
	in := def
	if r.Scenario != "" {
		kind, err := domain.ParseScenarioKind(r.Scenario)
		if err != nil {
			return Inputs{}, err
		}
		in.Scenario = kind
	}
	if r.Mix != nil {
		dist := make(domain.DistributionMap, len(r.Mix))
		for k, w := range r.Mix {
			kind, err := domain.ParseSubscriptionKind(k)
			if err != nil {
				return Inputs{}, err
			}
			dist[kind] = w
		}
		in.Distribution = dist
	}
	if r.ParticipationRate != nil {
		in.Demographics.ParticipationRate = *r.ParticipationRate
	}
	if r.PopulationDensity != nil {
		in.Demographics.PopulationDensity = *r.PopulationDensity
	}
	if r.ConversionRate != nil {
		in.Campaign.ConversionRate = *r.ConversionRate
	}
	if r.CoverageRate != nil {
		in.Campaign.CoverageRate = *r.CoverageRate
	}

	if err := in.Distribution.Validate(); err != nil {
		return Inputs{}, err
	}
	if err := in.Demographics.Validate(); err != nil {
		return Inputs{}, err
	}
	if err := in.Campaign.Validate(); err != nil {
		return Inputs{}, err
	}
	if r.Occupancy != nil {
		if err := domain.ValidateRate("occupancy", *r.Occupancy); err != nil {
			return Inputs{}, err
		}
	}
	return in, nil
}

// isClientError reports whether err stems from bad request input
func isClientError(err error) bool {
	for _, target := range []error{
		ErrBadRequest,
		domain.ErrInvalidRate,
		domain.ErrUnknownScenario,
		domain.ErrUnknownSubscription,
		domain.ErrNegativeWeight,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
