package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/components"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuimsg"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// ScenariosModel lists the occupancy bands and lets the user pick one
type ScenariosModel struct {
	scenarios     []domain.OccupancyScenario
	results       map[domain.ScenarioKind]*domain.AnalysisResult
	selectedIndex int
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{results: map[domain.ScenarioKind]*domain.AnalysisResult{}}
}

// SetScenarios replaces the band list, keeping the cursor on current when present
func (m *ScenariosModel) SetScenarios(scenarios []domain.OccupancyScenario, current domain.ScenarioKind) {
	m.scenarios = scenarios
	m.results = map[domain.ScenarioKind]*domain.AnalysisResult{}
	m.selectedIndex = 0
	for i, s := range scenarios {
		if s.Kind == current {
			m.selectedIndex = i
		}
	}
}

// SetResult attaches an evaluation to its band. Results at an explicit
// occupancy carry no band and are ignored.
func (m *ScenariosModel) SetResult(r *domain.AnalysisResult) {
	if r == nil || r.Scenario == "" {
		return
	}
	m.results[r.Scenario] = r
}

// ClearResults drops stale evaluations after the inputs change
func (m *ScenariosModel) ClearResults() {
	m.results = map[domain.ScenarioKind]*domain.AnalysisResult{}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the band under the cursor
func (m *ScenariosModel) SelectedScenario() (domain.OccupancyScenario, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex], true
	}
	return domain.OccupancyScenario{}, false
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if s, ok := m.SelectedScenario(); ok {
			return m, func() tea.Msg { return tuimsg.ScenarioSelectedMsg{Kind: s.Kind} }
		}
	}
	return m, nil
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("No occupancy scenarios configured"))
	}

	cards := make([]*components.ScenarioCard, len(m.scenarios))
	for i, s := range m.scenarios {
		cards[i] = components.NewScenarioCard(s).
			WithResult(m.results[s.Kind]).
			SetSelected(i == m.selectedIndex)
	}

	var list strings.Builder
	list.WriteString(tuistyles.TitleStyle.Render("Occupancy Scenarios"))
	list.WriteString("\n\n")
	list.WriteString(components.ScenarioListCompact(cards, m.selectedIndex))
	list.WriteString("\n\n")
	list.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ select • enter evaluate"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Render(list.String()),
		cards[m.selectedIndex].Render(),
	)
}
