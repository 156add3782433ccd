package main

import (
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a catchment input and report how the radius responds",
	Long: `Sweep one catchment input over a range while the others stay fixed, and report
the catchment radius at each point plus a sensitivity score.

Without --parameter every input is swept over its default range and ranked.

Examples:
  fitsizer sweep --parameter population_density --min 500 --max 3000 --steps 6
  fitsizer sweep --parameter participation_rate --scenario high
  fitsizer sweep --format csv`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var (
	sweepParameter string
	sweepMin       float64
	sweepMax       float64
	sweepSteps     int
)

func runSweep(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	analyzer := calculation.NewSensitivityAnalyzer(s.engine)
	formatter := output.NewSensitivityFormatter(s.format)

	var analysis interface{}
	if sweepParameter == "" {
		all, err := analyzer.AnalyzeAll(s.scenario, s.mix, s.demo, s.camp)
		if err != nil {
			return err
		}
		analysis = all
	} else {
		name, err := calculation.ParseSweepParameter(sweepParameter)
		if err != nil {
			return err
		}
		param := calculation.DefaultSweep(name)
		if cmd.Flags().Changed("min") {
			param.Min = sweepMin
		}
		if cmd.Flags().Changed("max") {
			param.Max = sweepMax
		}
		if cmd.Flags().Changed("steps") {
			param.Steps = sweepSteps
		}
		single, err := analyzer.AnalyzeSingleParameter(s.scenario, s.mix, s.demo, s.camp, param)
		if err != nil {
			return err
		}
		analysis = single
	}

	out, err := formatter.FormatSensitivityAnalysis(analysis)
	if err != nil {
		return fmt.Errorf("failed to format sweep: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	sweepCmd.Flags().StringVar(&sweepParameter, "parameter", "", "Input to sweep (participation_rate, population_density, conversion_rate, coverage_rate)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "Lowest swept value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "Highest swept value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "Number of points in the sweep")

	rootCmd.AddCommand(sweepCmd)
}
