package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser checks settings before they reach the engine
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// ValidateSettings validates the layered settings
func (ip *InputParser) ValidateSettings(s *Settings) error {
	if err := ip.validateSettings(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (ip *InputParser) validateSettings(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings are required")
	}

	if err := ip.validateCapacity(s.Capacity); err != nil {
		return fmt.Errorf("capacity validation failed: %w", err)
	}

	if s.Usage.AvgVisitsPerWeek <= 0 {
		return fmt.Errorf("usage.avg_visits_per_week must be positive")
	}
	if s.Usage.AvgSessionsPerClient <= 0 {
		return fmt.Errorf("usage.avg_sessions_per_client must be positive")
	}

	if len(s.Subscriptions) == 0 {
		return fmt.Errorf("no subscriptions provided")
	}
	for i := range s.Subscriptions {
		if err := ip.validateSubscription(&s.Subscriptions[i]); err != nil {
			return fmt.Errorf("subscription %d validation failed: %w", i, err)
		}
	}

	if len(s.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i := range s.Scenarios {
		if err := ip.validateScenario(&s.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	if s.RevenueTarget < 0 || math.IsNaN(s.RevenueTarget) {
		return fmt.Errorf("revenue_target cannot be negative")
	}
	if s.CampaignCostPerPerson < 0 || math.IsNaN(s.CampaignCostPerPerson) {
		return fmt.Errorf("campaign_cost_per_person cannot be negative")
	}

	if s.Location.Latitude < -90 || s.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude must be between -90 and 90")
	}
	if s.Location.Longitude < -180 || s.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude must be between -180 and 180")
	}

	for i, c := range s.Competitors {
		if c.Name == "" {
			return fmt.Errorf("competitor %d: name is required", i)
		}
		if c.Capacity < 0 || c.Members < 0 {
			return fmt.Errorf("competitor %s: capacity and members cannot be negative", c.Name)
		}
	}

	if err := ip.validateInputs(&s.Inputs); err != nil {
		return fmt.Errorf("inputs validation failed: %w", err)
	}

	if s.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	// Cross-checks that need the assembled catalog.
	cfg, err := s.EngineConfig()
	if err != nil {
		return err
	}
	for kind := range s.Inputs.Mix {
		if _, ok := cfg.Catalog.Get(domain.SubscriptionKind(kind)); !ok {
			return fmt.Errorf("inputs.mix references %s, which is not in the subscription catalog", kind)
		}
	}
	return nil
}

func (ip *InputParser) validateCapacity(c CapacitySettings) error {
	if c.CapacityPerHour <= 0 {
		return fmt.Errorf("capacity_per_hour must be positive")
	}
	if c.HoursPerDay <= 0 || c.HoursPerDay > 24 {
		return fmt.Errorf("hours_per_day must be between 1 and 24")
	}
	if c.DaysPerWeek <= 0 || c.DaysPerWeek > 7 {
		return fmt.Errorf("days_per_week must be between 1 and 7")
	}
	if c.WeeksPerMonth <= 0 || math.IsNaN(c.WeeksPerMonth) {
		return fmt.Errorf("weeks_per_month must be positive")
	}
	return nil
}

func (ip *InputParser) validateSubscription(sc *SubscriptionConfig) error {
	if _, err := domain.ParseSubscriptionKind(sc.Kind); err != nil {
		return err
	}
	if sc.DisplayName == "" {
		return fmt.Errorf("display_name is required for %s", sc.Kind)
	}
	if sc.Price < 0 || math.IsNaN(sc.Price) {
		return fmt.Errorf("price for %s cannot be negative", sc.Kind)
	}
	switch domain.BillingMode(sc.Billing) {
	case domain.BillingUnlimited, domain.BillingSessionBased:
	default:
		return fmt.Errorf("billing for %s must be '%s' or '%s'", sc.Kind, domain.BillingUnlimited, domain.BillingSessionBased)
	}
	if sc.SessionQuota < 0 {
		return fmt.Errorf("session_quota for %s cannot be negative", sc.Kind)
	}
	return nil
}

func (ip *InputParser) validateScenario(sc *ScenarioConfig) error {
	if _, err := domain.ParseScenarioKind(sc.Kind); err != nil {
		return err
	}
	if sc.OccupancyMin < 0 || sc.OccupancyMax > 1 || sc.OccupancyMin > sc.OccupancyMax {
		return fmt.Errorf("occupancy band for %s must satisfy 0 <= min <= max <= 1", sc.Kind)
	}
	return nil
}

func (ip *InputParser) validateInputs(in *InputDefaults) error {
	if _, err := domain.ParseScenarioKind(in.Scenario); err != nil {
		return err
	}
	if _, err := ParseDistribution(in.Mix); err != nil {
		return fmt.Errorf("mix: %w", err)
	}
	demo := domain.DemographicParameters{ParticipationRate: in.ParticipationRate, PopulationDensity: in.PopulationDensity}
	if err := demo.Validate(); err != nil {
		return err
	}
	camp := domain.CampaignParameters{ConversionRate: in.ConversionRate, CoverageRate: in.CoverageRate}
	return camp.Validate()
}

// LoadFromFile loads a standalone YAML settings file without env overrides
func (ip *InputParser) LoadFromFile(filename string) (*Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file: %v", ErrLoadConfig, err)
	}

	s := Defaults()
	s.Subscriptions, s.Scenarios, s.Inputs.Mix = nil, nil, nil
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrLoadConfig, err)
	}
	restoreDefaults(s)

	if err := ip.ValidateSettings(s); err != nil {
		return nil, err
	}
	return s, nil
}

// restoreDefaults refills list settings a file left out
func restoreDefaults(s *Settings) {
	d := Defaults()
	if len(s.Subscriptions) == 0 {
		s.Subscriptions = d.Subscriptions
	}
	if len(s.Scenarios) == 0 {
		s.Scenarios = d.Scenarios
	}
	if len(s.Inputs.Mix) == 0 {
		s.Inputs.Mix = d.Inputs.Mix
	}
}

// WriteYAML writes settings as YAML, the inverse of LoadFromFile
func WriteYAML(s *Settings, filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return os.WriteFile(filename, data, 0o644)
}
