package main

import (
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Find the lowest occupancy that reaches a revenue target",
	Long: `Search occupancy in [0,1] for the lowest rate whose monthly revenue reaches the
target, using the configured revenue target unless --target is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		target := s.engine.Config.RevenueTarget
		if cmd.Flags().Changed("target") {
			raw, _ := cmd.Flags().GetString("target")
			if target, err = decimal.NewFromString(raw); err != nil {
				return fmt.Errorf("invalid target %q: %w", raw, err)
			}
		}

		solver := calculation.NewTargetSolver(s.engine)
		if cmd.Flags().Changed("tolerance") {
			solver.Options.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
		}
		if cmd.Flags().Changed("max-iterations") {
			solver.Options.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
		}

		res, err := solver.SolveTargetOccupancy(cmd.Context(), s.mix, s.demo, s.camp, target)
		if err != nil {
			return err
		}

		out, err := output.FormatTarget(res, s.format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	defaults := calculation.DefaultSolverOptions()
	targetCmd.Flags().String("target", "", "Monthly revenue target in RON (default: configured revenue_target)")
	targetCmd.Flags().Float64("tolerance", defaults.Tolerance, "Occupancy interval width at which the search stops")
	targetCmd.Flags().Int("max-iterations", defaults.MaxIterations, "Maximum search iterations")

	rootCmd.AddCommand(targetCmd)
}
