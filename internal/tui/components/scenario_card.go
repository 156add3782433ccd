package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// ScenarioCard summarizes one occupancy band and, once evaluated, its headline figures
type ScenarioCard struct {
	Scenario   domain.OccupancyScenario
	Result     *domain.AnalysisResult
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a card for an occupancy band
func NewScenarioCard(s domain.OccupancyScenario) *ScenarioCard {
	return &ScenarioCard{Scenario: s, Width: 44}
}

// WithResult attaches an evaluation of the band
func (s *ScenarioCard) WithResult(r *domain.AnalysisResult) *ScenarioCard {
	s.Result = r
	return s
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Highlights lists the key facts shown on the card
func (s *ScenarioCard) Highlights() []string {
	h := []string{
		fmt.Sprintf("Occupancy %s (midpoint %s)", s.Scenario.RangeLabel(), tuistyles.FormatPercent(s.Scenario.Midpoint())),
	}
	if s.Result == nil {
		return append(h, "Not evaluated yet")
	}
	h = append(h,
		fmt.Sprintf("Revenue %s", tuistyles.FormatCurrency(s.Result.TotalRevenue)),
		fmt.Sprintf("%d clients", s.Result.TotalClients))
	if s.Result.Degenerate {
		h = append(h, "Catchment n/a")
	} else {
		h = append(h, fmt.Sprintf("Catchment %.2f km (%s)", s.Result.CatchmentRadiusKm, s.Result.CampaignTier))
	}
	return h
}

// Render returns the bordered card
func (s *ScenarioCard) Render() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	b.WriteString(title.Render(s.Scenario.DisplayName))
	if s.Result != nil {
		status := tuistyles.MetricTrendStyle(s.Result.MeetsTarget)
		label := "below target"
		if s.Result.MeetsTarget {
			label = "meets target"
		}
		b.WriteString("  ")
		b.WriteString(status.Render(label))
	}
	b.WriteString("\n")

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for _, h := range s.Highlights() {
		b.WriteString(muted.Render("• " + h))
		b.WriteString("\n")
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(strings.TrimRight(b.String(), "\n"))
}

// RenderCompact returns a single-line version for selection menus
func (s *ScenarioCard) RenderCompact() string {
	name := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(s.Scenario.DisplayName)
	detail := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("• " + s.Highlights()[0])
	return name + " " + detail
}

// ScenarioListCompact renders a selection list with a cursor
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}
	rows := make([]string, len(cards))
	for i, card := range cards {
		prefix, style := "  ", tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix, style = "▸ ", tuistyles.SelectedItemStyle
		}
		rows[i] = style.Render(prefix + card.RenderCompact())
	}
	return strings.Join(rows, "\n")
}
