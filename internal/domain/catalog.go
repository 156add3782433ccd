package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Default reference data for the Bacau location
const (
	DefaultCapacityPerHour = 20
	DefaultHoursPerDay     = 10
	DefaultDaysPerWeek     = 7
	DefaultWeeksPerMonth   = 4.33

	DefaultAvgVisitsPerWeek     = 3.0
	DefaultAvgSessionsPerClient = 5.0
)

var (
	DefaultRevenueTarget         = decimal.NewFromInt(50000)
	DefaultCampaignCostPerPerson = decimal.NewFromFloat(1.0)
)

func quota(n int) *int { return &n }

// DefaultSubscriptionTypes returns the standard subscription offer
func DefaultSubscriptionTypes() []SubscriptionType {
	return []SubscriptionType{
		{
			Kind:         SubscriptionEconomic,
			DisplayName:  "Economic",
			Price:        decimal.NewFromInt(100),
			Billing:      BillingUnlimited,
			SessionQuota: quota(10),
		},
		{
			Kind:        SubscriptionStandard,
			DisplayName: "Standard",
			Price:       decimal.NewFromInt(150),
			Billing:     BillingUnlimited,
		},
		{
			Kind:         SubscriptionPremium,
			DisplayName:  "Premium",
			Price:        decimal.NewFromInt(500),
			Billing:      BillingUnlimited,
			SessionQuota: quota(10),
		},
		{
			Kind:        SubscriptionRecovery,
			DisplayName: "Recovery session",
			Price:       decimal.NewFromInt(80),
			Billing:     BillingSessionBased,
		},
	}
}

// DefaultScenarios returns the three occupancy bands in canonical order
func DefaultScenarios() []OccupancyScenario {
	return []OccupancyScenario{
		{Kind: ScenarioReduced, DisplayName: "Reduced", OccupancyMin: 0.25, OccupancyMax: 0.50},
		{Kind: ScenarioMedium, DisplayName: "Medium", OccupancyMin: 0.50, OccupancyMax: 0.75},
		{Kind: ScenarioHigh, DisplayName: "High", OccupancyMin: 0.75, OccupancyMax: 1.00},
	}
}

// DefaultCapacity returns the operating facts of the planned space
func DefaultCapacity() CapacityFacts {
	return CapacityFacts{
		CapacityPerHour: DefaultCapacityPerHour,
		HoursPerDay:     DefaultHoursPerDay,
		DaysPerWeek:     DefaultDaysPerWeek,
		WeeksPerMonth:   DefaultWeeksPerMonth,
	}
}

// DefaultUsage returns the usage heuristics
func DefaultUsage() UsageAssumptions {
	return UsageAssumptions{
		AvgVisitsPerWeek:     DefaultAvgVisitsPerWeek,
		AvgSessionsPerClient: DefaultAvgSessionsPerClient,
	}
}

// DefaultLocation is the planned site
func DefaultLocation() Location {
	return Location{
		Name:      "Bacau",
		Address:   "Aleea Prieteniei nr. 14, Bacau",
		Latitude:  46.5712,
		Longitude: 26.9244,
	}
}

// EngineConfig bundles every assumption the engine needs. Build it once and
// treat it as read-only.
type EngineConfig struct {
	Capacity              CapacityFacts
	Usage                 UsageAssumptions
	Catalog               *SubscriptionCatalog
	Scenarios             *ScenarioCatalog
	RevenueTarget         decimal.Decimal
	CampaignCostPerPerson decimal.Decimal
	Location              Location
	Competitors           []Competitor
}

// DefaultEngineConfig returns the built-in configuration
func DefaultEngineConfig() EngineConfig {
	catalog, err := NewSubscriptionCatalog(DefaultSubscriptionTypes()...)
	if err != nil {
		panic(fmt.Sprintf("default subscription catalog: %v", err))
	}
	scenarios, err := NewScenarioCatalog(DefaultScenarios()...)
	if err != nil {
		panic(fmt.Sprintf("default scenarios: %v", err))
	}
	return EngineConfig{
		Capacity:              DefaultCapacity(),
		Usage:                 DefaultUsage(),
		Catalog:               catalog,
		Scenarios:             scenarios,
		RevenueTarget:         DefaultRevenueTarget,
		CampaignCostPerPerson: DefaultCampaignCostPerPerson,
		Location:              DefaultLocation(),
	}
}

// Validate checks the configuration as a whole
func (c EngineConfig) Validate() error {
	if err := c.Capacity.Validate(); err != nil {
		return err
	}
	if err := c.Usage.Validate(); err != nil {
		return err
	}
	if c.Catalog == nil || c.Catalog.Len() == 0 {
		return fmt.Errorf("%w: subscription catalog is empty", ErrInvalidConfig)
	}
	if c.Scenarios == nil {
		return fmt.Errorf("%w: scenarios are not defined", ErrInvalidConfig)
	}
	if c.RevenueTarget.IsNegative() {
		return fmt.Errorf("%w: revenue target cannot be negative", ErrInvalidConfig)
	}
	if c.CampaignCostPerPerson.IsNegative() {
		return fmt.Errorf("%w: campaign cost per person cannot be negative", ErrInvalidConfig)
	}
	for _, comp := range c.Competitors {
		if comp.Capacity < 0 || comp.Members < 0 {
			return fmt.Errorf("%w: competitor %q has negative figures", ErrInvalidConfig, comp.Name)
		}
	}
	return nil
}
