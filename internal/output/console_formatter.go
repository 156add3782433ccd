package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter prints a short summary of one scenario
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	r := report.Result
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintf(&buf, "%s (%s) at %s occupancy\n", r.ScenarioName, r.OccupancyRange, FormatPercentage(r.OccupancyRate))
	fmt.Fprintf(&buf, "Clients: %d  Revenue: %s\n", r.TotalClients, FormatCurrency(r.TotalRevenue))
	if r.Degenerate {
		fmt.Fprintln(&buf, "Catchment: n/a (degenerate inputs)")
	} else {
		fmt.Fprintf(&buf, "Catchment: %.2f km radius, %.0f people to reach\n", r.CatchmentRadiusKm, r.PeopleToReach)
	}
	if r.MeetsTarget {
		fmt.Fprintf(&buf, "Target: met (Δ +%s)\n", FormatCurrency(r.RevenueGap))
	} else {
		fmt.Fprintf(&buf, "Target: missed (Δ %s)\n", FormatCurrency(r.RevenueGap))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&buf, "Warning: %s\n", w.Message)
	}
	return buf.Bytes(), nil
}
