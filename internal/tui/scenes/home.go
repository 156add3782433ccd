package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// HomeModel is the dashboard shown at startup
type HomeModel struct {
	settings   *config.Settings
	configPath string
	width      int
	height     int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetSettings records the loaded configuration
func (m *HomeModel) SetSettings(settings *config.Settings, configPath string) {
	m.settings = settings
	m.configPath = configPath
}

// SetSize updates the scene dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update is a no-op; the dashboard is read-only
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home scene
func (m *HomeModel) View() string {
	if m.settings == nil {
		return tuistyles.BorderStyle.Render("Loading configuration...")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderFacility(),
		"",
		m.renderCatalog(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderInputs(),
		"",
		renderQuickActions(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Render(left),
		tuistyles.BorderStyle.Render(right),
	)
}

func (m *HomeModel) renderFacility() string {
	s := m.settings
	maxSlots := calculation.NewCapacityModel(capacityFacts(s)).MaxMonthlySlots()

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Facility"))
	b.WriteString("\n")
	if s.Location.Name != "" {
		b.WriteString(fmt.Sprintf("%s\n", s.Location.Name))
	}
	if s.Location.Address != "" {
		b.WriteString(tuistyles.SubtitleStyle.Render(s.Location.Address))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d clients/hour, %d h/day, %d days/week\n",
		s.Capacity.CapacityPerHour, s.Capacity.HoursPerDay, s.Capacity.DaysPerWeek))
	b.WriteString(fmt.Sprintf("Max monthly slots: %d\n", maxSlots))
	b.WriteString(fmt.Sprintf("Revenue target: %s", tuistyles.FormatCurrency(decimal.NewFromFloat(s.RevenueTarget))))
	if n := len(s.Competitors); n > 0 {
		b.WriteString(fmt.Sprintf("\nCompetitors tracked: %d", n))
	}
	if m.configPath != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render("Config: " + m.configPath))
	}
	return b.String()
}

func (m *HomeModel) renderCatalog() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Subscriptions"))
	for _, sub := range m.settings.Subscriptions {
		line := fmt.Sprintf("%-22s %s", sub.DisplayName, tuistyles.FormatCurrency(decimal.NewFromFloat(sub.Price)))
		switch {
		case sub.Billing == string(domain.BillingSessionBased):
			line += " / session"
		case sub.SessionQuota > 0:
			line += fmt.Sprintf(" / month, %d sessions", sub.SessionQuota)
		default:
			line += " / month"
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func (m *HomeModel) renderInputs() string {
	in := m.settings.Inputs
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Default inputs"))
	b.WriteString(fmt.Sprintf("\nScenario: %s", in.Scenario))
	b.WriteString(fmt.Sprintf("\nParticipation: %s", tuistyles.FormatPercent(in.ParticipationRate)))
	b.WriteString(fmt.Sprintf("\nDensity: %.0f people/km²", in.PopulationDensity))
	b.WriteString(fmt.Sprintf("\nConversion: %s", tuistyles.FormatPercent(in.ConversionRate)))
	b.WriteString(fmt.Sprintf("\nCoverage: %s", tuistyles.FormatPercent(in.CoverageRate)))
	return b.String()
}

func renderQuickActions() string {
	actions := []struct{ key, desc string }{
		{"s", "pick an occupancy scenario"},
		{"p", "adjust mix and demographics"},
		{"r", "view the current result"},
		{"c", "compare all scenarios"},
		{"t", "solve for the revenue target"},
	}
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Quick actions"))
	for _, a := range actions {
		b.WriteString("\n")
		b.WriteString(tuistyles.HelpKeyStyle.Render(a.key))
		b.WriteString(" ")
		b.WriteString(tuistyles.HelpDescStyle.Render(a.desc))
	}
	return b.String()
}
