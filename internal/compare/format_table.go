package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("OCCUPANCY SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString(fmt.Sprintf("Revenue Target: %s RON/month\n", compSet.RevenueTarget.StringFixed(0)))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 18
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Occupancy",
		numWidth, "Revenue",
		numWidth, "Clients",
		numWidth, "Radius km",
		numWidth, "Population",
		numWidth, "To Reach"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, row := range compSet.Rows() {
		sb.WriteString(tf.formatRow(&row, nameWidth, numWidth))
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Revenue:          %s%s RON (%s%%)\n",
				tf.deltaSymbol(alt.RevenueDiffFromBase),
				tf.formatDecimal(alt.RevenueDiffFromBase.Abs()),
				alt.RevenuePctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Clients:          %+d\n", alt.ClientsDiffFromBase))
			sb.WriteString(fmt.Sprintf("  Catchment Radius: %+.2f km\n", alt.RadiusDiffFromBase))
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int) string {
	name := result.ScenarioName
	if result.MeetsTarget {
		name += " ✓"
	}

	radius := fmt.Sprintf("%.2f", result.CatchmentRadiusKm)
	if result.Degenerate {
		radius = "n/a"
	}

	return fmt.Sprintf("%-*s %*s %*s %*d %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.OccupancyRange,
		numWidth, tf.formatDecimal(result.TotalRevenue),
		numWidth, result.TotalClients,
		numWidth, radius,
		numWidth, tf.formatDecimal(decimal.NewFromFloat(result.TotalPopulation)),
		numWidth, tf.formatDecimal(decimal.NewFromFloat(result.PeopleToReach)))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	for i, row := range compSet.Rows() {
		if i > 0 {
			sb.WriteString(" | ")
		}
		status := "below target"
		if row.MeetsTarget {
			status = "meets target"
		}
		sb.WriteString(fmt.Sprintf("%s: %s RON, %.2f km, %s",
			row.ScenarioName, tf.formatDecimal(row.TotalRevenue), row.CatchmentRadiusKm, status))
	}

	return sb.String()
}
