package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// MetricCard displays a single figure with label and optional trend
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
}

// Trend is a signed change shown under the value
type Trend struct {
	IsPositive bool
	Change     string
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithTrend adds a trend indicator
func (m *MetricCard) WithTrend(isPositive bool, change string) *MetricCard {
	m.Trend = &Trend{IsPositive: isPositive, Change: change}
	return m
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value)

	if m.Trend != nil {
		style := tuistyles.MetricTrendStyle(m.Trend.IsPositive)
		content += "\n" + style.Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Trend.IsPositive), m.Trend.Change))
	}
	if m.Description != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns an inline "label: value" version without border
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Trend != nil {
		style := tuistyles.MetricTrendStyle(m.Trend.IsPositive)
		out += " " + style.Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Trend.IsPositive), m.Trend.Change))
	}
	return out
}

// ResultCards builds the headline cards for an evaluation
func ResultCards(r *domain.AnalysisResult) []*MetricCard {
	if r == nil {
		return nil
	}

	revenue := NewMetricCard("Monthly revenue", tuistyles.FormatCurrency(r.TotalRevenue))
	gap := tuistyles.FormatCurrency(r.RevenueGap)
	if r.RevenueGap.IsPositive() {
		gap = "+" + gap
	}
	revenue.WithTrend(r.MeetsTarget, gap+" vs target")

	clients := NewMetricCard("Clients", fmt.Sprintf("%d", r.TotalClients)).
		WithDescription(fmt.Sprintf("%d of %d slots", r.OccupiedSlots, r.MaxCapacity))

	radius := NewMetricCard("Catchment radius", "n/a")
	if !r.Degenerate {
		radius.Value = fmt.Sprintf("%.2f km", r.CatchmentRadiusKm)
		radius.WithDescription(fmt.Sprintf("%s campaign", r.CampaignTier))
	} else {
		radius.WithDescription("degenerate inputs")
	}

	reach := NewMetricCard("People to reach", fmt.Sprintf("%.0f", r.PeopleToReach)).
		WithDescription("cost " + tuistyles.FormatCurrency(r.CampaignCost))

	return []*MetricCard{revenue, clients, radius, reach}
}

// MetricGrid lays cards out in rows of the given column count
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
