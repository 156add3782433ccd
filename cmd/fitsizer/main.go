package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fitsizer %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

var rootCmd = &cobra.Command{
	Use:   "fitsizer",
	Short: "Scenario & catchment sizing for a fitness space",
	Long: `Sizes a fitness/recovery space: monthly capacity, client demand per subscription,
revenue against target, and the catchment radius a local campaign has to cover.

Examples:
  fitsizer evaluate --scenario medium --mix economic=40,standard=50,premium=10
  fitsizer compare --format csv
  fitsizer target --target 60000
  fitsizer serve --addr :9080`,
	SilenceUsage: true,
}

// session is everything a command needs after settings are loaded and flags applied
type session struct {
	settings   *config.Settings
	configPath string
	engine     *calculation.Engine
	scenario   domain.ScenarioKind
	mix        domain.DistributionMap
	demo       domain.DemographicParameters
	camp       domain.CampaignParameters
	format     string
}

// loadSession layers settings, initializes logging, builds the engine and
// applies the input flags on top of the configured defaults
func loadSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	if configPath != "" && !fileExists(configPath) {
		return nil, fmt.Errorf("%w: config file not found: %s", config.ErrLoadConfig, configPath)
	}

	settings, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}

	if debugMode, _ := flags.GetBool("debug"); debugMode {
		settings.Logging.Level = "debug"
	}
	if err := logging.Initialize(settings.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	engineCfg, err := settings.EngineConfig()
	if err != nil {
		return nil, err
	}
	engine, err := calculation.NewEngine(engineCfg)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logging.Sugar)
	engine.Parallel = settings.ParallelCompare

	kind, mix, demo, camp, err := settings.DefaultInputs()
	if err != nil {
		return nil, err
	}

	s := &session{
		settings:   settings,
		configPath: configPath,
		engine:     engine,
		scenario:   kind,
		mix:        mix,
		demo:       demo,
		camp:       camp,
	}
	s.format, _ = flags.GetString("format")

	if flags.Changed("scenario") {
		raw, _ := flags.GetString("scenario")
		if s.scenario, err = domain.ParseScenarioKind(raw); err != nil {
			return nil, err
		}
	}
	if flags.Changed("mix") {
		raw, _ := flags.GetString("mix")
		if s.mix, err = parseMix(raw); err != nil {
			return nil, err
		}
	}
	if flags.Changed("participation") {
		s.demo.ParticipationRate, _ = flags.GetFloat64("participation")
	}
	if flags.Changed("density") {
		s.demo.PopulationDensity, _ = flags.GetFloat64("density")
	}
	if flags.Changed("conversion") {
		s.camp.ConversionRate, _ = flags.GetFloat64("conversion")
	}
	if flags.Changed("coverage") {
		s.camp.CoverageRate, _ = flags.GetFloat64("coverage")
	}

	logging.Sugar.Debugw("session loaded",
		"config", configPath,
		"scenario", s.scenario,
		"participation", s.demo.ParticipationRate,
		"density", s.demo.PopulationDensity)
	return s, nil
}

// parseMix parses "economic=40,standard=50,premium=10"
func parseMix(raw string) (domain.DistributionMap, error) {
	weights := make(map[string]float64)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mix entry %q (want kind=weight)", part)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", name, err)
		}
		weights[strings.TrimSpace(name)] = w
	}
	return config.ParseDistribution(weights)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML settings file (default: $"+config.EnvConfigPath+")")
	pf.String("scenario", "", "Occupancy scenario (reduced, medium, high)")
	pf.String("mix", "", "Subscription mix, e.g. economic=40,standard=50,premium=10")
	pf.Float64("participation", 0, "Share of residents interested in the offer (0-1)")
	pf.Float64("density", 0, "Population density in residents per km²")
	pf.Float64("conversion", 0, "Share of reached people who subscribe (0-1)")
	pf.Float64("coverage", 0, "Share of interested people the campaign reaches (0-1)")
	pf.StringP("format", "f", "table", "Output format (table, json, csv, yaml)")
	pf.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd())
}

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
