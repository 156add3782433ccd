package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one occupancy scenario",
	Long: `Evaluate one occupancy scenario: occupied slots, clients per subscription,
revenue against target, catchment radius and the campaign needed to fill it.

Use --occupancy to evaluate an explicit rate instead of a scenario midpoint.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(s.format)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %s; aliases: %s)", s.format,
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
		}

		var result *domain.AnalysisResult
		if cmd.Flags().Changed("occupancy") {
			rate, _ := cmd.Flags().GetFloat64("occupancy")
			result, err = s.engine.EvaluateOccupancy(rate, s.mix, s.demo, s.camp)
		} else {
			result, err = s.engine.EvaluateScenario(s.scenario, s.mix, s.demo, s.camp)
		}
		if err != nil {
			return err
		}

		report := output.NewReport(result, s.engine.Config)
		if save, _ := cmd.Flags().GetBool("save"); save {
			filename, err := output.WriteFormatted(formatter, report, reportExtension(formatter.Name()))
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			return nil
		}

		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func reportExtension(formatterName string) string {
	switch formatterName {
	case "console", "console-lite":
		return "txt"
	default:
		return formatterName
	}
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every occupancy scenario side by side",
	Long: `Evaluate reduced, medium and high occupancy with the same mix and catchment
inputs, and compare each against the reduced baseline.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		compareEngine := compare.NewCompareEngine(s.engine)
		compSet, err := compareEngine.Compare(cmd.Context(), compare.CompareOptions{
			Distribution: s.mix,
			Demographics: s.demo,
			Campaign:     s.camp,
			ConfigPath:   s.configPath,
		})
		if err != nil {
			return err
		}

		out, err := formatComparison(compSet, s.format, cmd)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func formatComparison(compSet *compare.ComparisonSet, format string, cmd *cobra.Command) (string, error) {
	switch output.NormalizeFormatName(format) {
	case "csv":
		return (&compare.CSVFormatter{}).Format(compSet)
	case "json":
		return (&compare.JSONFormatter{Pretty: true}).Format(compSet)
	case "yaml":
		return (&compare.YAMLFormatter{}).Format(compSet)
	case "console", "console-lite":
		formatter := &compare.TableFormatter{}
		if compact, _ := cmd.Flags().GetBool("compact"); compact {
			return formatter.FormatCompact(compSet), nil
		}
		return formatter.Format(compSet), nil
	default:
		return "", fmt.Errorf("unsupported comparison format %q (table, csv, json, yaml)", format)
	}
}

func init() {
	evaluateCmd.Flags().Float64("occupancy", 0, "Evaluate an explicit occupancy rate (0-1) instead of the scenario midpoint")
	evaluateCmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")

	compareCmd.Flags().Bool("compact", false, "One line per scenario")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(compareCmd)
}
