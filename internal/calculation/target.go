package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
)

// SolverOptions configures the target occupancy search
type SolverOptions struct {
	Tolerance     float64 // occupancy interval width at which the search stops
	MaxIterations int
}

// DefaultSolverOptions returns the default search configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     1e-6,
		MaxIterations: 50,
	}
}

// TargetResult is the outcome of a target occupancy search
type TargetResult struct {
	Target          decimal.Decimal        `yaml:"target" json:"target"`
	Reachable       bool                   `yaml:"reachable" json:"reachable"`
	Converged       bool                   `yaml:"converged" json:"converged"`
	Occupancy       float64                `yaml:"occupancy" json:"occupancy"`
	LowerBound      float64                `yaml:"lower_bound" json:"lowerBound"`
	Iterations      int                    `yaml:"iterations" json:"iterations"`
	ConvergenceInfo string                 `yaml:"convergence_info" json:"convergenceInfo"`
	Result          *domain.AnalysisResult `yaml:"result" json:"result"`
}

// SolverError reports a failed target search
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}

// TargetSolver finds the minimum occupancy that reaches a revenue target
type TargetSolver struct {
	Engine  *Engine
	Options SolverOptions
}

// NewTargetSolver creates a solver with default options
func NewTargetSolver(engine *Engine) *TargetSolver {
	return &TargetSolver{Engine: engine, Options: DefaultSolverOptions()}
}

// SolveTargetOccupancy binary-searches occupancy in [0,1]. Revenue is
// non-decreasing in occupancy, so the smallest rate that reaches target is
// bracketed between a failing lower bound and a passing upper bound.
func (s *TargetSolver) SolveTargetOccupancy(ctx context.Context, dist domain.DistributionMap, demo domain.DemographicParameters, camp domain.CampaignParameters, target decimal.Decimal) (*TargetResult, error) {
	if target.IsNegative() {
		return nil, &SolverError{Operation: "solve_target", Message: "target revenue cannot be negative"}
	}

	eval := func(rate float64) (*domain.AnalysisResult, error) {
		r, err := s.Engine.EvaluateOccupancy(rate, dist, demo, camp)
		if err != nil {
			return nil, &SolverError{
				Operation: "solve_target",
				Message:   fmt.Sprintf("evaluation at occupancy %.6f failed", rate),
				Cause:     err,
			}
		}
		return r, nil
	}

	out := &TargetResult{Target: target}

	full, err := eval(1)
	if err != nil {
		return nil, err
	}
	if full.TotalRevenue.LessThan(target) {
		out.Occupancy = 1
		out.LowerBound = 1
		out.Result = full
		out.ConvergenceInfo = fmt.Sprintf("Target unreachable: full occupancy yields %s", full.TotalRevenue.StringFixed(0))
		return out, nil
	}
	out.Reachable = true

	empty, err := eval(0)
	if err != nil {
		return nil, err
	}
	if !empty.TotalRevenue.LessThan(target) {
		out.Converged = true
		out.Result = empty
		out.ConvergenceInfo = "Target met at zero occupancy"
		return out, nil
	}

	lo, hi := 0.0, 1.0
	best := full
	for out.Iterations < s.Options.MaxIterations {
		out.Iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := (lo + hi) / 2
		r, err := eval(mid)
		if err != nil {
			return nil, err
		}
		if r.TotalRevenue.LessThan(target) {
			lo = mid
		} else {
			hi = mid
			best = r
		}

		if hi-lo < s.Options.Tolerance {
			out.Converged = true
			break
		}
	}

	out.Occupancy = hi
	out.LowerBound = lo
	out.Result = best
	if out.Converged {
		out.ConvergenceInfo = fmt.Sprintf("Binary search converged in %d iterations", out.Iterations)
	} else {
		out.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", s.Options.MaxIterations)
	}
	s.Engine.Logger.Debugf("target %s reached at occupancy %.6f (%s)", target.StringFixed(0), hi, out.ConvergenceInfo)
	return out, nil
}
