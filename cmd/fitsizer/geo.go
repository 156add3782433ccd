package main

import (
	"fmt"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Simulate neighbourhood blocks inside the catchment",
	Long: `Evaluate the scenario, then place neighbourhood blocks on rings around the
configured location and estimate the interested residents in each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		result, err := s.engine.EvaluateScenario(s.scenario, s.mix, s.demo, s.camp)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		blocks := calculation.PlaceBlocks(s.engine.Config.Location, result.CatchmentRadiusKm, s.demo, count)

		out, err := output.FormatBlocks(blocks, s.format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Compare capacity and membership with nearby competitors",
	Long: `Evaluate the scenario and compare our simultaneous capacity and client count
with the competitors listed in the settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		result, err := s.engine.EvaluateScenario(s.scenario, s.mix, s.demo, s.camp)
		if err != nil {
			return err
		}

		pos := calculation.CalculateMarketPosition(
			s.engine.Config.Capacity.CapacityPerHour,
			result.TotalClients,
			s.engine.Config.Competitors,
		)

		out, err := output.FormatMarket(pos, s.format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	blocksCmd.Flags().Int("count", calculation.DefaultBlockCount, "Number of blocks to place")

	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(marketCmd)
}
