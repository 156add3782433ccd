package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ " + m.loadingMessage))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneTarget:
		content = m.targetModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	crumb := m.currentScene.String()
	if m.inputs.Scenario != "" {
		crumb = fmt.Sprintf("%s / %s occupancy", crumb, m.inputs.Scenario)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("fitsizer - scenario & catchment sizing"),
		SubtitleStyle.Render(crumb),
	)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("s", "scenarios"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("c", "compare"),
		formatShortcut("t", "target"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	status := strings.Join(shortcuts, " • ")

	if r := m.resultsModel.Result(); r != nil {
		summary := SubtitleStyle.Render(fmt.Sprintf("%s • %d clients", FormatCurrency(r.TotalRevenue), r.TotalClients))
		gap := m.width - lipgloss.Width(status) - lipgloss.Width(summary) - 4
		if gap > 0 {
			status += strings.Repeat(" ", gap) + summary
		}
	}
	return StatusBarStyle.Width(m.width).Render(status)
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	keys := []struct{ key, desc string }{
		{"h", "Home dashboard"},
		{"s", "Occupancy scenarios"},
		{"p", "Parameters (mix, participation, density, conversion, coverage)"},
		{"r", "Results of the last evaluation"},
		{"c", "Compare all scenarios"},
		{"t", "Revenue target solver"},
		{"?", "This help"},
		{"esc", "Back"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(HelpKeyStyle.Width(6).Render(k.key))
		b.WriteString(HelpDescStyle.Render(k.desc))
	}
	b.WriteString("\n\n")
	b.WriteString(SubtitleStyle.Render("In lists use ↑/↓ and enter. Sliders move with ←/→."))
	return BorderStyle.Render(b.String())
}
