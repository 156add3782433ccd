package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fitsizer/internal/compare"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/components"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuimsg"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// CompareModel evaluates every occupancy band side by side
type CompareModel struct {
	results   []domain.AnalysisResult
	set       *compare.ComparisonSet
	comparing bool
	spinner   *components.Spinner
	width     int
	height    int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{spinner: components.NewSpinner().WithMessage("Comparing scenarios...")}
}

// SetResults stores a finished comparison
func (m *CompareModel) SetResults(results []domain.AnalysisResult, set *compare.ComparisonSet) {
	m.results = results
	m.set = set
	m.comparing = false
}

// Reset drops a comparison made with outdated inputs
func (m *CompareModel) Reset() {
	m.results = nil
	m.set = nil
	m.comparing = false
}

// Comparing reports whether a comparison is in flight
func (m *CompareModel) Comparing() bool {
	return m.comparing
}

// SetSize updates the scene dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.comparing {
		return m, nil
	}
	if key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "R"))) {
		m.comparing = true
		m.spinner.Next()
		return m, func() tea.Msg { return tuimsg.ComparisonStartedMsg{} }
	}
	return m, nil
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if m.comparing {
		return tuistyles.BorderStyle.Render(m.spinner.Render())
	}
	if m.set == nil {
		return tuistyles.BorderStyle.Render(
			tuistyles.TitleStyle.Render("Scenario Comparison") + "\n\n" +
				tuistyles.SubtitleStyle.Render("Evaluates reduced, medium and high occupancy with the current inputs.") + "\n\n" +
				tuistyles.HelpDescStyle.Render("enter compare"))
	}

	table := (&compare.TableFormatter{}).Format(m.set)
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.BorderStyle.Render(table),
		tuistyles.BorderStyle.Render(components.RevenueByScenario(m.results).Render()),
		tuistyles.HelpDescStyle.Render("R re-run comparison"),
	)
}
