// Package config defines the fitsizer settings and how they are layered:
// built-in defaults, then an optional YAML file, then FITSIZER_* variables.
package config

import (
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/logging"
	"github.com/shopspring/decimal"
)

// Settings is the complete process configuration
type Settings struct {
	Capacity              CapacitySettings     `koanf:"capacity" yaml:"capacity"`
	Usage                 UsageSettings        `koanf:"usage" yaml:"usage"`
	Subscriptions         []SubscriptionConfig `koanf:"subscriptions" yaml:"subscriptions"`
	Scenarios             []ScenarioConfig     `koanf:"scenarios" yaml:"scenarios"`
	RevenueTarget         float64              `koanf:"revenue_target" yaml:"revenue_target"`
	CampaignCostPerPerson float64              `koanf:"campaign_cost_per_person" yaml:"campaign_cost_per_person"`
	Location              LocationConfig       `koanf:"location" yaml:"location"`
	Competitors           []CompetitorConfig   `koanf:"competitors" yaml:"competitors"`
	Inputs                InputDefaults        `koanf:"inputs" yaml:"inputs"`
	ParallelCompare       bool                 `koanf:"parallel_compare" yaml:"parallel_compare"`
	Logging               logging.Config       `koanf:"logging" yaml:"logging"`
	Server                ServerConfig         `koanf:"server" yaml:"server"`
}

// CapacitySettings are the operating facts of the space
type CapacitySettings struct {
	CapacityPerHour int     `koanf:"capacity_per_hour" yaml:"capacity_per_hour"`
	HoursPerDay     int     `koanf:"hours_per_day" yaml:"hours_per_day"`
	DaysPerWeek     int     `koanf:"days_per_week" yaml:"days_per_week"`
	WeeksPerMonth   float64 `koanf:"weeks_per_month" yaml:"weeks_per_month"`
}

// UsageSettings are the client usage heuristics
type UsageSettings struct {
	AvgVisitsPerWeek     float64 `koanf:"avg_visits_per_week" yaml:"avg_visits_per_week"`
	AvgSessionsPerClient float64 `koanf:"avg_sessions_per_client" yaml:"avg_sessions_per_client"`
}

// SubscriptionConfig is one catalog entry as written in YAML
type SubscriptionConfig struct {
	Kind         string  `koanf:"kind" yaml:"kind"`
	DisplayName  string  `koanf:"display_name" yaml:"display_name"`
	Price        float64 `koanf:"price" yaml:"price"`
	Billing      string  `koanf:"billing" yaml:"billing"`
	SessionQuota int     `koanf:"session_quota" yaml:"session_quota,omitempty"`
}

// ScenarioConfig is one occupancy band as written in YAML
type ScenarioConfig struct {
	Kind         string  `koanf:"kind" yaml:"kind"`
	DisplayName  string  `koanf:"display_name" yaml:"display_name"`
	OccupancyMin float64 `koanf:"occupancy_min" yaml:"occupancy_min"`
	OccupancyMax float64 `koanf:"occupancy_max" yaml:"occupancy_max"`
}

// LocationConfig is the planned site
type LocationConfig struct {
	Name      string  `koanf:"name" yaml:"name"`
	Address   string  `koanf:"address" yaml:"address"`
	Latitude  float64 `koanf:"latitude" yaml:"latitude"`
	Longitude float64 `koanf:"longitude" yaml:"longitude"`
}

// CompetitorConfig is a nearby facility
type CompetitorConfig struct {
	Name     string `koanf:"name" yaml:"name"`
	Capacity int    `koanf:"capacity" yaml:"capacity"`
	Members  int    `koanf:"members" yaml:"members"`
}

// InputDefaults are the evaluation inputs used when the caller gives none
type InputDefaults struct {
	Scenario          string             `koanf:"scenario" yaml:"scenario"`
	Mix               map[string]float64 `koanf:"mix" yaml:"mix"`
	ParticipationRate float64            `koanf:"participation_rate" yaml:"participation_rate"`
	PopulationDensity float64            `koanf:"population_density" yaml:"population_density"`
	ConversionRate    float64            `koanf:"conversion_rate" yaml:"conversion_rate"`
	CoverageRate      float64            `koanf:"coverage_rate" yaml:"coverage_rate"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr               string `koanf:"addr" yaml:"addr"`
	ReadTimeoutSec     int    `koanf:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec    int    `koanf:"write_timeout_sec" yaml:"write_timeout_sec"`
	MaxRequestBodySize int    `koanf:"max_request_body_size" yaml:"max_request_body_size"`
}

// Defaults returns the built-in settings
func Defaults() *Settings {
	subs := domain.DefaultSubscriptionTypes()
	subConfigs := make([]SubscriptionConfig, 0, len(subs))
	for _, s := range subs {
		sc := SubscriptionConfig{
			Kind:        string(s.Kind),
			DisplayName: s.DisplayName,
			Price:       s.Price.InexactFloat64(),
			Billing:     string(s.Billing),
		}
		if s.SessionQuota != nil {
			sc.SessionQuota = *s.SessionQuota
		}
		subConfigs = append(subConfigs, sc)
	}

	scenarios := domain.DefaultScenarios()
	scenarioConfigs := make([]ScenarioConfig, 0, len(scenarios))
	for _, s := range scenarios {
		scenarioConfigs = append(scenarioConfigs, ScenarioConfig{
			Kind:         string(s.Kind),
			DisplayName:  s.DisplayName,
			OccupancyMin: s.OccupancyMin,
			OccupancyMax: s.OccupancyMax,
		})
	}

	loc := domain.DefaultLocation()
	return &Settings{
		Capacity: CapacitySettings{
			CapacityPerHour: domain.DefaultCapacityPerHour,
			HoursPerDay:     domain.DefaultHoursPerDay,
			DaysPerWeek:     domain.DefaultDaysPerWeek,
			WeeksPerMonth:   domain.DefaultWeeksPerMonth,
		},
		Usage: UsageSettings{
			AvgVisitsPerWeek:     domain.DefaultAvgVisitsPerWeek,
			AvgSessionsPerClient: domain.DefaultAvgSessionsPerClient,
		},
		Subscriptions:         subConfigs,
		Scenarios:             scenarioConfigs,
		RevenueTarget:         domain.DefaultRevenueTarget.InexactFloat64(),
		CampaignCostPerPerson: domain.DefaultCampaignCostPerPerson.InexactFloat64(),
		Location: LocationConfig{
			Name:      loc.Name,
			Address:   loc.Address,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
		Inputs: InputDefaults{
			Scenario: string(domain.ScenarioMedium),
			Mix: map[string]float64{
				string(domain.SubscriptionEconomic): 40,
				string(domain.SubscriptionStandard): 50,
				string(domain.SubscriptionPremium):  10,
			},
			ParticipationRate: 0.10,
			PopulationDensity: 1000,
			ConversionRate:    0.05,
			CoverageRate:      1.0,
		},
		Logging: logging.DefaultConfig(),
		Server: ServerConfig{
			Addr:               ":9080",
			ReadTimeoutSec:     10,
			WriteTimeoutSec:    10,
			MaxRequestBodySize: 1 << 20,
		},
	}
}

// EngineConfig converts the settings into the engine's immutable configuration
func (s *Settings) EngineConfig() (domain.EngineConfig, error) {
	types := make([]domain.SubscriptionType, 0, len(s.Subscriptions))
	for i, sc := range s.Subscriptions {
		kind, err := domain.ParseSubscriptionKind(sc.Kind)
		if err != nil {
			return domain.EngineConfig{}, fmt.Errorf("subscriptions[%d]: %w", i, err)
		}
		t := domain.SubscriptionType{
			Kind:        kind,
			DisplayName: sc.DisplayName,
			Price:       decimal.NewFromFloat(sc.Price),
			Billing:     domain.BillingMode(sc.Billing),
		}
		if sc.SessionQuota > 0 {
			q := sc.SessionQuota
			t.SessionQuota = &q
		}
		types = append(types, t)
	}
	catalog, err := domain.NewSubscriptionCatalog(types...)
	if err != nil {
		return domain.EngineConfig{}, fmt.Errorf("subscriptions: %w", err)
	}

	scenarios := make([]domain.OccupancyScenario, 0, len(s.Scenarios))
	for i, sc := range s.Scenarios {
		kind, err := domain.ParseScenarioKind(sc.Kind)
		if err != nil {
			return domain.EngineConfig{}, fmt.Errorf("scenarios[%d]: %w", i, err)
		}
		scenarios = append(scenarios, domain.OccupancyScenario{
			Kind:         kind,
			DisplayName:  sc.DisplayName,
			OccupancyMin: sc.OccupancyMin,
			OccupancyMax: sc.OccupancyMax,
		})
	}
	scenarioCatalog, err := domain.NewScenarioCatalog(scenarios...)
	if err != nil {
		return domain.EngineConfig{}, fmt.Errorf("scenarios: %w", err)
	}

	competitors := make([]domain.Competitor, 0, len(s.Competitors))
	for _, c := range s.Competitors {
		competitors = append(competitors, domain.Competitor{Name: c.Name, Capacity: c.Capacity, Members: c.Members})
	}

	cfg := domain.EngineConfig{
		Capacity: domain.CapacityFacts{
			CapacityPerHour: s.Capacity.CapacityPerHour,
			HoursPerDay:     s.Capacity.HoursPerDay,
			DaysPerWeek:     s.Capacity.DaysPerWeek,
			WeeksPerMonth:   s.Capacity.WeeksPerMonth,
		},
		Usage: domain.UsageAssumptions{
			AvgVisitsPerWeek:     s.Usage.AvgVisitsPerWeek,
			AvgSessionsPerClient: s.Usage.AvgSessionsPerClient,
		},
		Catalog:               catalog,
		Scenarios:             scenarioCatalog,
		RevenueTarget:         decimal.NewFromFloat(s.RevenueTarget),
		CampaignCostPerPerson: decimal.NewFromFloat(s.CampaignCostPerPerson),
		Location: domain.Location{
			Name:      s.Location.Name,
			Address:   s.Location.Address,
			Latitude:  s.Location.Latitude,
			Longitude: s.Location.Longitude,
		},
		Competitors: competitors,
	}
	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, err
	}
	return cfg, nil
}

// DefaultInputs converts the input defaults into engine parameters
func (s *Settings) DefaultInputs() (domain.ScenarioKind, domain.DistributionMap, domain.DemographicParameters, domain.CampaignParameters, error) {
	kind, err := domain.ParseScenarioKind(s.Inputs.Scenario)
	if err != nil {
		return "", nil, domain.DemographicParameters{}, domain.CampaignParameters{}, fmt.Errorf("inputs.scenario: %w", err)
	}
	mix, err := ParseDistribution(s.Inputs.Mix)
	if err != nil {
		return "", nil, domain.DemographicParameters{}, domain.CampaignParameters{}, fmt.Errorf("inputs.mix: %w", err)
	}
	demo := domain.DemographicParameters{
		ParticipationRate: s.Inputs.ParticipationRate,
		PopulationDensity: s.Inputs.PopulationDensity,
	}
	camp := domain.CampaignParameters{
		ConversionRate: s.Inputs.ConversionRate,
		CoverageRate:   s.Inputs.CoverageRate,
	}
	return kind, mix, demo, camp, nil
}

// ParseDistribution converts string-keyed weights into a validated DistributionMap
func ParseDistribution(raw map[string]float64) (domain.DistributionMap, error) {
	dist := make(domain.DistributionMap, len(raw))
	for k, w := range raw {
		kind, err := domain.ParseSubscriptionKind(k)
		if err != nil {
			return nil, err
		}
		dist[kind] = w
	}
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	return dist, nil
}
