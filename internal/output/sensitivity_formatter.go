package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
)

// SensitivityFormatter defines a formatter for sensitivity sweeps
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis interface{}) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity sweeps for the console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis interface{}) (string, error) {
	var buf bytes.Buffer

	switch a := analysis.(type) {
	case *calculation.SensitivityAnalysis:
		return scf.formatSingleAnalysis(&buf, a)
	case []calculation.SensitivityAnalysis:
		return scf.formatRanking(&buf, a)
	default:
		return "", fmt.Errorf("unsupported analysis type: %T", analysis)
	}
}

func (scf SensitivityConsoleFormatter) formatSingleAnalysis(buf *bytes.Buffer, analysis *calculation.SensitivityAnalysis) (string, error) {
	if len(analysis.Points) == 0 {
		return "", fmt.Errorf("no points in analysis")
	}
	param := analysis.Parameter

	fmt.Fprintf(buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(string(param.Name), "_", " ")))
	fmt.Fprintf(buf, "=================================================================\n")
	fmt.Fprintf(buf, "Scenario: %s (%d clients needed)\n", analysis.Scenario, analysis.TotalClients)
	fmt.Fprintf(buf, "Range: %s to %s (%d steps)\n", formatSweepValue(param.Name, param.Min), formatSweepValue(param.Name, param.Max), param.Steps)
	fmt.Fprintf(buf, "Base Radius: %.3f km\n", analysis.BaseRadiusKm)
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%-14s %-12s %-14s %-16s %-14s\n", param.Name, "Radius km", "Area km²", "Population", "To Reach")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	for _, p := range analysis.Points {
		if p.Degenerate {
			fmt.Fprintf(buf, "%-14s %-12s %-14s %-16s %-14s\n", formatSweepValue(param.Name, p.Value), "n/a", "n/a", "0", "0")
			continue
		}
		fmt.Fprintf(buf, "%-14s %-12.3f %-14.3f %-16.0f %-14.0f\n",
			formatSweepValue(param.Name, p.Value), p.RadiusKm, p.AreaKm2, p.TotalPopulation, p.PeopleToReach)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Radius spread: %.3f km to %.3f km\n", analysis.MinRadiusKm, analysis.MaxRadiusKm)
	fmt.Fprintf(buf, "SENSITIVITY SCORE: %.2f\n", analysis.Score)
	fmt.Fprintf(buf, "RISK LEVEL: %s %s\n", riskMarker(analysis.RiskLevel), analysis.RiskLevel)

	return buf.String(), nil
}

func (scf SensitivityConsoleFormatter) formatRanking(buf *bytes.Buffer, analyses []calculation.SensitivityAnalysis) (string, error) {
	if len(analyses) == 0 {
		return "", fmt.Errorf("no analyses to rank")
	}

	fmt.Fprintf(buf, "PARAMETER SENSITIVITY RANKING\n")
	fmt.Fprintf(buf, "=================================================================\n")
	fmt.Fprintf(buf, "Scenario: %s (%d clients needed)\n", analyses[0].Scenario, analyses[0].TotalClients)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-4s %-20s %-12s %-12s %-8s %-8s\n", "#", "Parameter", "Min km", "Max km", "Score", "Risk")
	fmt.Fprintln(buf, strings.Repeat("-", 68))
	for i, a := range analyses {
		fmt.Fprintf(buf, "%-4d %-20s %-12.3f %-12.3f %-8.2f %s %s\n",
			i+1, a.Parameter.Name, a.MinRadiusKm, a.MaxRadiusKm, a.Score, riskMarker(a.RiskLevel), a.RiskLevel)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Most sensitive: %s\n", analyses[0].Parameter.Name)

	return buf.String(), nil
}

func riskMarker(level string) string {
	switch level {
	case "LOW":
		return "✅"
	case "MEDIUM":
		return "⚠️"
	case "HIGH":
		return "🔴"
	}
	return ""
}

func formatSweepValue(name calculation.SweepParameter, v float64) string {
	if name == calculation.SweepDensity {
		return fmt.Sprintf("%.0f/km²", v)
	}
	return FormatPercentage(v)
}

// SensitivityCSVFormatter formats sensitivity sweeps as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis interface{}) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "scenario,parameter_name,parameter_value,radius_km,area_km2,total_population,people_to_reach,degenerate\n")

	switch a := analysis.(type) {
	case *calculation.SensitivityAnalysis:
		scf.writeRows(&buf, a)
	case []calculation.SensitivityAnalysis:
		for i := range a {
			scf.writeRows(&buf, &a[i])
		}
	default:
		return "", fmt.Errorf("unsupported analysis type: %T", analysis)
	}
	return buf.String(), nil
}

func (scf SensitivityCSVFormatter) writeRows(buf *bytes.Buffer, a *calculation.SensitivityAnalysis) {
	for _, p := range a.Points {
		fmt.Fprintf(buf, "%s,%s,%.4f,%.4f,%.4f,%.2f,%.2f,%t\n",
			a.Scenario, a.Parameter.Name, p.Value, p.RadiusKm, p.AreaKm2, p.TotalPopulation, p.PeopleToReach, p.Degenerate)
	}
}

// SensitivityJSONFormatter formats sensitivity sweeps as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis interface{}) (string, error) {
	switch analysis.(type) {
	case *calculation.SensitivityAnalysis, []calculation.SensitivityAnalysis:
	default:
		return "", fmt.Errorf("unsupported analysis type: %T", analysis)
	}
	data, err := marshalJSON(analysis, true)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch NormalizeFormatName(format) {
	case "console", "console-lite":
		return SensitivityConsoleFormatter{}
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}
