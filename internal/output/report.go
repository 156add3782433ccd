package output

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// Report is one scenario evaluation with the context needed to render it
type Report struct {
	Result      *domain.AnalysisResult `yaml:"result" json:"result"`
	Channels    []string               `yaml:"channels" json:"channels"`
	Location    domain.Location        `yaml:"location" json:"location"`
	Assumptions []string               `yaml:"assumptions" json:"assumptions"`
	GeneratedAt time.Time              `yaml:"generated_at" json:"generatedAt"`
}

// NewReport wraps result with the campaign channels and modeling assumptions of cfg
func NewReport(result *domain.AnalysisResult, cfg domain.EngineConfig) *Report {
	return &Report{
		Result:      result,
		Channels:    calculation.CampaignChannels(result.CampaignTier),
		Location:    cfg.Location,
		Assumptions: Assumptions(cfg),
		GeneratedAt: time.Now(),
	}
}

// Assumptions lists the modeling assumptions behind every figure
func Assumptions(cfg domain.EngineConfig) []string {
	c := cfg.Capacity
	return []string{
		fmt.Sprintf("Capacity: %d clients/hour, %d hours/day, %d days/week, %.2f weeks/month",
			c.CapacityPerHour, c.HoursPerDay, c.DaysPerWeek, c.WeeksPerMonth),
		fmt.Sprintf("Unlimited subscribers visit %.1f times per week", cfg.Usage.AvgVisitsPerWeek),
		fmt.Sprintf("Session-based clients book %.1f sessions per month", cfg.Usage.AvgSessionsPerClient),
		fmt.Sprintf("Monthly revenue target: %s", FormatCurrency(cfg.RevenueTarget)),
		fmt.Sprintf("Campaign cost: %s per person reached", FormatCurrency(cfg.CampaignCostPerPerson)),
	}
}
