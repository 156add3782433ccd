package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// catalogView is the serialized form of the reference data
type catalogView struct {
	Subscriptions []domain.SubscriptionType  `json:"subscriptions" yaml:"subscriptions"`
	Scenarios     []domain.OccupancyScenario `json:"scenarios" yaml:"scenarios"`
	MaxSlots      int                        `json:"maxMonthlySlots" yaml:"max_monthly_slots"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List subscription types and occupancy scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		view := catalogView{
			Subscriptions: s.engine.ListSubscriptionTypes(),
			Scenarios:     s.engine.ListScenarios(),
			MaxSlots:      s.engine.Capacity.MaxMonthlySlots(),
		}

		var out string
		switch output.NormalizeFormatName(s.format) {
		case "json":
			data, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return err
			}
			out = string(data) + "\n"
		case "yaml":
			data, err := yaml.Marshal(view)
			if err != nil {
				return err
			}
			out = string(data)
		case "csv":
			out = catalogCSV(view)
		default:
			out = renderCatalog(view)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func renderCatalog(view catalogView) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	styleFunc := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	}

	subs := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleFunc).
		Headers("Kind", "Name", "Price", "Billing", "Quota")
	for _, st := range view.Subscriptions {
		quota := "-"
		if st.HasQuota() {
			quota = strconv.Itoa(*st.SessionQuota)
		}
		subs.Row(string(st.Kind), st.DisplayName, output.FormatCurrency(st.Price), string(st.Billing), quota)
	}

	scenarios := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleFunc).
		Headers("Scenario", "Name", "Occupancy", "Midpoint")
	for _, sc := range view.Scenarios {
		scenarios.Row(string(sc.Kind), sc.DisplayName, sc.RangeLabel(), output.FormatPercentage(sc.Midpoint()))
	}

	var b strings.Builder
	b.WriteString("SUBSCRIPTION TYPES\n")
	b.WriteString(subs.String())
	b.WriteString("\n\nOCCUPANCY SCENARIOS\n")
	b.WriteString(scenarios.String())
	fmt.Fprintf(&b, "\n\nMax monthly slots: %d\n", view.MaxSlots)
	return b.String()
}

func catalogCSV(view catalogView) string {
	var b strings.Builder
	b.WriteString("kind,display_name,price,billing,session_quota\n")
	for _, st := range view.Subscriptions {
		quota := ""
		if st.HasQuota() {
			quota = strconv.Itoa(*st.SessionQuota)
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n", st.Kind, st.DisplayName, st.Price.StringFixed(2), st.Billing, quota)
	}
	return b.String()
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a settings file",
	Long: `Validate a settings file on its own, or the layered settings (defaults, --config
file, FITSIZER_* environment) when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			settings *config.Settings
			source   string
			err      error
		)
		if len(args) == 1 {
			source = args[0]
			settings, err = config.NewInputParser().LoadFromFile(source)
			if err != nil {
				return err
			}
		} else {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			settings, source = s.settings, s.configPath
			if source == "" {
				source = "built-in defaults"
			}
		}

		if _, err := settings.EngineConfig(); err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		if _, _, _, _, err := settings.DefaultInputs(); err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}

		if writePath, _ := cmd.Flags().GetString("write"); writePath != "" {
			if err := config.WriteYAML(settings, writePath); err != nil {
				return err
			}
		}
		if printSettings, _ := cmd.Flags().GetBool("print"); printSettings {
			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", source)
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("print", false, "Print the effective settings as YAML")
	validateCmd.Flags().String("write", "", "Write the effective settings to a YAML file")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(validateCmd)
}
