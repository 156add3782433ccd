package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed scenario report
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	r := report.Result
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "SCENARIO ANALYSIS: %s (%s)\n", strings.ToUpper(r.ScenarioName), r.OccupancyRange)
	fmt.Fprintln(&buf, "=================================================================================")
	if report.Location.Name != "" {
		fmt.Fprintf(&buf, "Location: %s\n", report.Location.Name)
	}
	fmt.Fprintln(&buf)

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "CAPACITY")
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintf(&buf, "  Max Monthly Slots:      %d\n", r.MaxCapacity)
	fmt.Fprintf(&buf, "  Occupancy Rate:         %s\n", FormatPercentage(r.OccupancyRate))
	fmt.Fprintf(&buf, "  Occupied Slots:         %d\n", r.OccupiedSlots)
	fmt.Fprintln(&buf)

	writeDemandTable(&buf, r.Demand)

	fmt.Fprintln(&buf, "REVENUE")
	fmt.Fprintln(&buf, "-------")
	fmt.Fprintf(&buf, "  Total Clients:          %d\n", r.TotalClients)
	fmt.Fprintf(&buf, "  Monthly Revenue:        %s\n", FormatCurrency(r.TotalRevenue))
	fmt.Fprintf(&buf, "  Revenue Target:         %s\n", FormatCurrency(r.RevenueTarget))
	if r.MeetsTarget {
		fmt.Fprintf(&buf, "  Gap:                    +%s (target met)\n", FormatCurrency(r.RevenueGap))
	} else {
		fmt.Fprintf(&buf, "  Gap:                    %s (below target)\n", FormatCurrency(r.RevenueGap))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CATCHMENT")
	fmt.Fprintln(&buf, "---------")
	if r.Degenerate {
		fmt.Fprintln(&buf, "  Radius:                 n/a (a rate or density is zero)")
	} else {
		fmt.Fprintf(&buf, "  Radius:                 %.3f km\n", r.CatchmentRadiusKm)
		fmt.Fprintf(&buf, "  Area:                   %.3f km²\n", r.CatchmentAreaKm2)
	}
	fmt.Fprintf(&buf, "  Total Population:       %.0f\n", r.TotalPopulation)
	fmt.Fprintf(&buf, "  Interested Population:  %.0f\n", r.InterestedPopulation)
	fmt.Fprintf(&buf, "  People To Reach:        %.0f\n", r.PeopleToReach)
	fmt.Fprintf(&buf, "  Converted Clients:      %.0f\n", r.ConvertedClients)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CAMPAIGN")
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintf(&buf, "  Tier:                   %s\n", r.CampaignTier)
	fmt.Fprintf(&buf, "  Estimated Cost:         %s\n", FormatCurrency(r.CampaignCost))
	if len(report.Channels) > 0 {
		fmt.Fprintf(&buf, "  Channels:               %s\n", strings.Join(report.Channels, ", "))
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "WARNINGS:")
		for _, w := range r.Warnings {
			fmt.Fprintf(&buf, "• [%s] %s\n", w.Code, w.Message)
		}
	}

	return buf.Bytes(), nil
}

func writeDemandTable(buf *bytes.Buffer, rows []domain.SubscriptionDemand) {
	fmt.Fprintln(buf, "CLIENT DEMAND")
	fmt.Fprintln(buf, "-------------")
	fmt.Fprintf(buf, "  %-18s %8s %10s %10s %8s %16s\n", "Subscription", "Share", "Slots", "Sessions", "Clients", "Revenue")
	fmt.Fprintln(buf, "  "+strings.Repeat("-", 75))
	for _, d := range rows {
		fmt.Fprintf(buf, "  %-18s %8s %10.1f %10d %8d %16s\n",
			d.DisplayName, FormatPercentage(d.Weight), d.Slots, d.Sessions, d.Clients, FormatCurrency(d.Revenue))
	}
	fmt.Fprintln(buf)
}
