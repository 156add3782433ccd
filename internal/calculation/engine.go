package calculation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Engine orchestrates the sizing pipeline: capacity, demand, revenue,
// catchment and funnel. It holds only read-only configuration and may be
// shared between goroutines.
type Engine struct {
	Config   domain.EngineConfig
	Capacity *CapacityModel
	Demand   *DemandCalculator
	Revenue  *RevenueCalculator
	Logger   Logger
	Parallel bool // evaluate scenarios concurrently in CompareAllScenarios
}

// NewEngine creates an engine for cfg
func NewEngine(cfg domain.EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine configuration: %w", err)
	}
	return &Engine{
		Config:   cfg,
		Capacity: NewCapacityModel(cfg.Capacity),
		Demand:   NewDemandCalculator(cfg),
		Revenue:  NewRevenueCalculator(cfg.Catalog),
		Logger:   NopLogger{},
	}, nil
}

// NewDefaultEngine creates an engine with the built-in reference data
func NewDefaultEngine() *Engine {
	e, err := NewEngine(domain.DefaultEngineConfig())
	if err != nil {
		panic(err)
	}
	return e
}

// SetLogger sets the logger; nil installs a no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ListSubscriptionTypes returns the catalog in canonical order
func (e *Engine) ListSubscriptionTypes() []domain.SubscriptionType {
	return e.Config.Catalog.List()
}

// ListScenarios returns the scenarios in canonical order
func (e *Engine) ListScenarios() []domain.OccupancyScenario {
	return e.Config.Scenarios.List()
}

// EvaluateScenario runs the full pipeline at the midpoint of the named scenario's band
func (e *Engine) EvaluateScenario(kind domain.ScenarioKind, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters) (*domain.AnalysisResult, error) {
	scenario, ok := e.Config.Scenarios.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownScenario, kind)
	}
	result, err := e.EvaluateOccupancy(scenario.Midpoint(), dist, demo, camp)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", kind, err)
	}
	result.Scenario = scenario.Kind
	result.ScenarioName = scenario.DisplayName
	result.OccupancyRange = scenario.RangeLabel()
	return result, nil
}

// EvaluateOccupancy runs the pipeline at an explicit occupancy rate
func (e *Engine) EvaluateOccupancy(rate float64, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters) (*domain.AnalysisResult, error) {
	if err := e.validateInputs(dist, demo, camp); err != nil {
		return nil, err
	}

	occupied, err := e.Capacity.OccupiedSlots(rate)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		OccupancyRate: rate,
		MaxCapacity:   e.Capacity.MaxMonthlySlots(),
		OccupiedSlots: occupied,
		RevenueTarget: e.Config.RevenueTarget,
	}

	normalized, ok := dist.Normalize()
	if !ok {
		normalized = domain.EqualDistribution(e.Config.Catalog.Kinds())
		result.DistributionFallback = true
		result.AddWarning(domain.WarningDistributionFallback,
			"subscription weights sum to zero; using an equal share across all subscription types")
		e.Logger.Warnf("zero-sum distribution, falling back to equal shares across %d types", len(normalized))
	}
	result.Distribution = normalized

	rows, err := e.Demand.Apportion(occupied, normalized)
	if err != nil {
		return nil, err
	}
	result.TotalRevenue = e.Revenue.Apply(rows)
	result.Demand = rows
	result.TotalClients = TotalClients(rows)

	catchment := SolveCatchment(float64(result.TotalClients), demo, camp)
	result.CatchmentRadiusKm = catchment.RadiusKm
	result.CatchmentAreaKm2 = catchment.AreaKm2
	result.TotalPopulation = catchment.TotalPopulation
	result.InterestedPopulation = catchment.InterestedPopulation
	result.PeopleToReach = catchment.PeopleToReach
	if catchment.Degenerate {
		result.Degenerate = true
		if zero := DegenerateInputs(demo, camp); len(zero) > 0 {
			result.AddWarning(domain.WarningDegenerateInput,
				fmt.Sprintf("%s is zero; catchment figures are undefined and reported as 0", strings.Join(zero, ", ")))
			e.Logger.Debugf("degenerate catchment inputs: %v", zero)
		} else {
			result.AddWarning(domain.WarningDegenerateInput,
				"rates are too small for a finite catchment; catchment figures are reported as 0")
			e.Logger.Debugf("catchment overflow: participation=%g density=%g conversion=%g coverage=%g",
				demo.ParticipationRate, demo.PopulationDensity, camp.ConversionRate, camp.CoverageRate)
		}
	}

	funnel := BuildFunnel(catchment.AreaKm2, demo, camp)
	result.ConvertedClients = funnel.ConvertedClients

	result.RevenueGap, result.MeetsTarget = RevenueGap(result.TotalRevenue, e.Config.RevenueTarget)
	result.CampaignTier = ClassifyCampaign(result.CatchmentRadiusKm)
	result.CampaignCost = CampaignCost(result.PeopleToReach, e.Config.CampaignCostPerPerson)

	e.Logger.Debugf("occupancy %.4f: %d slots, %d clients, revenue %s, radius %.3f km",
		rate, occupied, result.TotalClients, result.TotalRevenue.StringFixed(2), result.CatchmentRadiusKm)
	return result, nil
}

// CompareAllScenarios evaluates every scenario with the same inputs. Results
// are always in canonical order: reduced, medium, high.
func (e *Engine) CompareAllScenarios(ctx context.Context, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters) ([]domain.AnalysisResult, error) {
	scenarios := e.Config.Scenarios.List()
	results := make([]domain.AnalysisResult, len(scenarios))

	if !e.Parallel {
		for i, s := range scenarios {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			r, err := e.EvaluateScenario(s.Kind, dist, demo, camp)
			if err != nil {
				return nil, err
			}
			results[i] = *r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range scenarios {
		i, kind := i, s.Kind
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := e.EvaluateScenario(kind, dist, demo, camp)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) validateInputs(dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters) error {
	if err := dist.Validate(); err != nil {
		return err
	}
	if err := demo.Validate(); err != nil {
		return err
	}
	return camp.Validate()
}
