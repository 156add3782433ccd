package domain

import (
	"github.com/shopspring/decimal"
)

// WarningCode classifies non-fatal conditions attached to a result
type WarningCode string

const (
	WarningDegenerateInput      WarningCode = "degenerate_input"
	WarningDistributionFallback WarningCode = "zero_distribution_fallback"
)

// Warning is a non-fatal condition encountered during evaluation
type Warning struct {
	Code    WarningCode `yaml:"code" json:"code"`
	Message string      `yaml:"message" json:"message"`
}

// CampaignTier is the recommended campaign reach for a catchment radius
type CampaignTier string

const (
	CampaignLocal    CampaignTier = "local"
	CampaignExtended CampaignTier = "extended"
	CampaignBroad    CampaignTier = "broad"
)

// SubscriptionDemand is the per-type slice of an evaluation
type SubscriptionDemand struct {
	Kind        SubscriptionKind `yaml:"kind" json:"kind"`
	DisplayName string           `yaml:"display_name" json:"displayName"`
	Weight      float64          `yaml:"weight" json:"weight"`
	Slots       float64          `yaml:"slots" json:"slots"`
	Sessions    int              `yaml:"sessions" json:"sessions"`
	Clients     int              `yaml:"clients" json:"clients"`
	Revenue     decimal.Decimal  `yaml:"revenue" json:"revenue"`
}

// CatchmentFigures is the solved geographic footprint
type CatchmentFigures struct {
	RadiusKm             float64 `yaml:"radius_km" json:"radiusKm"`
	AreaKm2              float64 `yaml:"area_km2" json:"areaKm2"`
	TotalPopulation      float64 `yaml:"total_population" json:"totalPopulation"`
	InterestedPopulation float64 `yaml:"interested_population" json:"interestedPopulation"`
	PeopleToReach        float64 `yaml:"people_to_reach" json:"peopleToReach"`
	Degenerate           bool    `yaml:"degenerate" json:"degenerate"`
}

// FunnelFigures is the forward campaign funnel derived from a catchment area
type FunnelFigures struct {
	TotalPopulation      float64 `yaml:"total_population" json:"totalPopulation"`
	InterestedPopulation float64 `yaml:"interested_population" json:"interestedPopulation"`
	PeopleToReach        float64 `yaml:"people_to_reach" json:"peopleToReach"`
	ConvertedClients     float64 `yaml:"converted_clients" json:"convertedClients"`
}

// AnalysisResult is the full output of one scenario evaluation
type AnalysisResult struct {
	Scenario       ScenarioKind    `yaml:"scenario" json:"scenario"`
	ScenarioName   string          `yaml:"scenario_name" json:"scenarioName"`
	OccupancyRange string          `yaml:"occupancy_range" json:"occupancyRange"`
	OccupancyRate  float64         `yaml:"occupancy_rate" json:"occupancyRate"`
	MaxCapacity    int             `yaml:"max_capacity" json:"maxCapacity"`
	OccupiedSlots  int             `yaml:"occupied_slots" json:"occupiedSlots"`
	Distribution   DistributionMap `yaml:"distribution" json:"distribution"`

	Demand       []SubscriptionDemand `yaml:"demand" json:"demand"`
	TotalClients int                  `yaml:"total_clients" json:"totalClients"`
	TotalRevenue decimal.Decimal      `yaml:"total_revenue" json:"totalRevenue"`

	CatchmentRadiusKm    float64 `yaml:"catchment_radius_km" json:"catchmentRadiusKm"`
	CatchmentAreaKm2     float64 `yaml:"catchment_area_km2" json:"catchmentAreaKm2"`
	TotalPopulation      float64 `yaml:"total_population" json:"totalPopulation"`
	InterestedPopulation float64 `yaml:"interested_population" json:"interestedPopulation"`
	PeopleToReach        float64 `yaml:"people_to_reach" json:"peopleToReach"`
	ConvertedClients     float64 `yaml:"converted_clients" json:"convertedClients"`

	RevenueTarget decimal.Decimal `yaml:"revenue_target" json:"revenueTarget"`
	RevenueGap    decimal.Decimal `yaml:"revenue_gap" json:"revenueGap"`
	MeetsTarget   bool            `yaml:"meets_target" json:"meetsTarget"`
	CampaignTier  CampaignTier    `yaml:"campaign_tier" json:"campaignTier"`
	CampaignCost  decimal.Decimal `yaml:"campaign_cost" json:"campaignCost"`

	Degenerate           bool      `yaml:"degenerate" json:"degenerate"`
	DistributionFallback bool      `yaml:"distribution_fallback" json:"distributionFallback"`
	Warnings             []Warning `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// ClientsFor returns the client count for kind, 0 when the type had no weight
func (r *AnalysisResult) ClientsFor(kind SubscriptionKind) int {
	for _, d := range r.Demand {
		if d.Kind == kind {
			return d.Clients
		}
	}
	return 0
}

// RevenueFor returns the revenue for kind, zero when the type had no weight
func (r *AnalysisResult) RevenueFor(kind SubscriptionKind) decimal.Decimal {
	for _, d := range r.Demand {
		if d.Kind == kind {
			return d.Revenue
		}
	}
	return decimal.Zero
}

// AddWarning appends a warning to the result
func (r *AnalysisResult) AddWarning(code WarningCode, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

// HasWarning reports whether a warning with code was recorded
func (r *AnalysisResult) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
