package compare

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func sampleComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Reduced",
		ConfigPath:       "/path/to/fitsizer.yaml",
		RevenueTarget:    decimal.NewFromInt(50000),
		BaseResult: &ComparisonResult{
			Scenario:          domain.ScenarioReduced,
			ScenarioName:      "Reduced",
			OccupancyRange:    "25% - 50%",
			OccupancyRate:     0.375,
			TotalRevenue:      decimal.NewFromInt(33800),
			TotalClients:      202,
			CatchmentRadiusKm: 0.802,
			TotalPopulation:   2020,
			PeopleToReach:     202,
			RevenueGap:        decimal.NewFromInt(-16200),
			CampaignTier:      domain.CampaignLocal,
		},
		AlternativeResults: []ComparisonResult{
			{
				Scenario:            domain.ScenarioMedium,
				ScenarioName:        "Medium",
				OccupancyRange:      "50% - 75%",
				OccupancyRate:       0.625,
				TotalRevenue:        decimal.NewFromInt(56100),
				TotalClients:        336,
				CatchmentRadiusKm:   1.034,
				TotalPopulation:     3360,
				PeopleToReach:       336,
				RevenueGap:          decimal.NewFromInt(6100),
				MeetsTarget:         true,
				CampaignTier:        domain.CampaignLocal,
				RevenueDiffFromBase: decimal.NewFromInt(22300),
				RevenuePctFromBase:  decimal.NewFromFloat(65.98),
				ClientsDiffFromBase: 134,
				RadiusDiffFromBase:  0.232,
			},
		},
		Recommendations: []string{
			"Minimum Viable: Medium (50% - 75%) is the lowest occupancy that reaches the 50000 RON target",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(sampleComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	for _, want := range []string{
		"OCCUPANCY SCENARIO COMPARISON",
		"Base Scenario: Reduced",
		"Revenue Target: 50000 RON/month",
		"Configuration: /path/to/fitsizer.yaml",
		"25% - 50%",
		"Medium ✓",
		"33.8K",
		"COMPARISON TO BASE",
		"+22.3K RON (66.0%)",
		"Clients:          +134",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := sampleComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := formatter.Format(compSet)

	if !strings.Contains(result, "Reduced") {
		t.Error("Expected base scenario in table")
	}
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Did not expect recommendations section")
	}
}

func TestTableFormatter_DegenerateRow(t *testing.T) {
	formatter := &TableFormatter{}
	row := &ComparisonResult{ScenarioName: "High", Degenerate: true}

	out := formatter.formatRow(row, 18, 12)
	if !strings.Contains(out, "n/a") {
		t.Errorf("Expected n/a radius for degenerate row, got %q", out)
	}
}

func TestTableFormatter_formatDecimal(t *testing.T) {
	formatter := &TableFormatter{}

	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(950), "950"},
		{decimal.NewFromInt(56100), "56.1K"},
		{decimal.NewFromInt(2500000), "2.50M"},
	}
	for _, tt := range tests {
		if got := formatter.formatDecimal(tt.in); got != tt.want {
			t.Errorf("formatDecimal(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	out := formatter.FormatCompact(sampleComparisonSet())

	if !strings.Contains(out, "Reduced: 33.8K RON, 0.80 km, below target") {
		t.Errorf("Unexpected compact output: %s", out)
	}
	if !strings.Contains(out, "Medium: 56.1K RON, 1.03 km, meets target") {
		t.Errorf("Unexpected compact output: %s", out)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,Occupancy") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Reduced,base,25% - 50%,0.3750,33800.00,202") {
		t.Errorf("Unexpected base row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "Medium,alternative") || !strings.Contains(lines[2], "true,local") {
		t.Errorf("Unexpected alternative row: %s", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		formatter := &JSONFormatter{Pretty: pretty}

		result, err := formatter.Format(sampleComparisonSet())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if decoded["baseScenarioName"] != "Reduced" {
			t.Errorf("Expected baseScenarioName Reduced, got %v", decoded["baseScenarioName"])
		}
		if _, ok := decoded["alternativeResults"]; !ok {
			t.Error("Expected alternativeResults key")
		}
		if strings.Contains(result, "\"Result\"") {
			t.Error("Analysis result reference must not be serialized")
		}
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	formatter := &YAMLFormatter{}

	result, err := formatter.Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded["base_scenario_name"] != "Reduced" {
		t.Errorf("Expected base_scenario_name Reduced, got %v", decoded["base_scenario_name"])
	}
	if !strings.Contains(result, "total_revenue: \"33800\"") && !strings.Contains(result, "total_revenue: 33800") {
		t.Errorf("Expected total revenue in YAML:\n%s", result)
	}
}
