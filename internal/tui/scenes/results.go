package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/components"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// ResultsModel shows the full breakdown of one evaluation
type ResultsModel struct {
	result *domain.AnalysisResult
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult updates the evaluation to display
func (m *ResultsModel) SetResult(r *domain.AnalysisResult) {
	m.result = r
}

// Result returns the evaluation being displayed
func (m *ResultsModel) Result() *domain.AnalysisResult {
	return m.result
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update is a no-op; results are read-only
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	r := m.result
	if r == nil {
		return tuistyles.BorderStyle.Render(
			tuistyles.InfoStyle.Render("No results yet. Pick a scenario (s) or apply parameters (p)."))
	}

	header := tuistyles.TitleStyle.Render(resultTitle(r))
	gauges := lipgloss.JoinVertical(lipgloss.Left,
		components.NewGauge("Occupancy", float64(r.OccupiedSlots), float64(r.MaxCapacity)).
			WithDetail(fmt.Sprintf("%d / %d slots", r.OccupiedSlots, r.MaxCapacity)).Render(),
		components.NewGauge("Revenue vs target", r.TotalRevenue.InexactFloat64(), r.RevenueTarget.InexactFloat64()).
			WithDetail(tuistyles.FormatCurrency(r.TotalRevenue)+" of "+tuistyles.FormatCurrency(r.RevenueTarget)).Render(),
	)

	sections := []string{
		header,
		components.MetricGrid(components.ResultCards(r), 4),
		gauges,
		lipgloss.JoinHorizontal(lipgloss.Top,
			tuistyles.BorderStyle.Render(renderDemandTable(r)),
			tuistyles.BorderStyle.Render(components.RevenueBySubscription(r).WithWidth(24).Render()),
		),
	}
	if len(r.Warnings) > 0 {
		sections = append(sections, renderWarnings(r.Warnings))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func resultTitle(r *domain.AnalysisResult) string {
	if r.ScenarioName != "" {
		return fmt.Sprintf("%s occupancy (%s, evaluated at %s)", r.ScenarioName, r.OccupancyRange, tuistyles.FormatPercent(r.OccupancyRate))
	}
	return fmt.Sprintf("Occupancy %s", tuistyles.FormatPercent(r.OccupancyRate))
}

func renderDemandTable(r *domain.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-22s %6s %8s %8s %14s", "Subscription", "Share", "Sessions", "Clients", "Revenue")))
	for _, d := range r.Demand {
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-22s %6s %8d %8d %14s",
			truncate(d.DisplayName, 22), tuistyles.FormatPercent(d.Weight), d.Sessions, d.Clients, tuistyles.FormatCurrency(d.Revenue))))
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.TableHighlightStyle.Render(fmt.Sprintf("%-22s %6s %8s %8d %14s",
		"Total", "", "", r.TotalClients, tuistyles.FormatCurrency(r.TotalRevenue))))
	return b.String()
}

func renderWarnings(warnings []domain.Warning) string {
	var b strings.Builder
	b.WriteString(tuistyles.ErrorStyle.Render("Warnings"))
	for _, w := range warnings {
		b.WriteString("\n• ")
		b.WriteString(w.Message)
	}
	return b.String()
}
