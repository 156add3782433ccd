package compare

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Occupancy",
		"Occupancy Rate",
		"Total Revenue",
		"Total Clients",
		"Catchment Radius (km)",
		"Total Population",
		"People To Reach",
		"Revenue Gap",
		"Meets Target",
		"Campaign Tier",
		"Campaign Cost",
		"Revenue Diff from Base",
		"Revenue % Change",
		"Clients Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.OccupancyRange,
		strconv.FormatFloat(result.OccupancyRate, 'f', 4, 64),
		result.TotalRevenue.StringFixed(2),
		formatInt(result.TotalClients),
		strconv.FormatFloat(result.CatchmentRadiusKm, 'f', 3, 64),
		strconv.FormatFloat(result.TotalPopulation, 'f', 0, 64),
		strconv.FormatFloat(result.PeopleToReach, 'f', 0, 64),
		result.RevenueGap.StringFixed(2),
		strconv.FormatBool(result.MeetsTarget),
		string(result.CampaignTier),
		result.CampaignCost.StringFixed(2),
		result.RevenueDiffFromBase.StringFixed(2),
		result.RevenuePctFromBase.StringFixed(2),
		formatInt(result.ClientsDiffFromBase),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
