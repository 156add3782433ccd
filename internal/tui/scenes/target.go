package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fitsizer/internal/calculation"
	"github.com/rgehrsitz/fitsizer/internal/tui/components"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuimsg"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// TargetModel finds the occupancy needed for a monthly revenue target
type TargetModel struct {
	input   textinput.Model
	editing bool
	solving bool
	invalid string
	result  *calculation.TargetResult
	width   int
	height  int
}

// NewTargetModel creates a new target scene model
func NewTargetModel() *TargetModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 50000"
	ti.CharLimit = 12
	ti.Width = 16
	return &TargetModel{input: ti}
}

// SetDefaultTarget pre-fills the input with the configured target
func (m *TargetModel) SetDefaultTarget(target decimal.Decimal) {
	m.input.SetValue(target.String())
}

// SetResult stores the solver outcome
func (m *TargetModel) SetResult(r *calculation.TargetResult) {
	m.result = r
	m.solving = false
}

// Fail ends an in-flight solve without a result
func (m *TargetModel) Fail() {
	m.solving = false
}

// Editing reports whether the text input has focus
func (m *TargetModel) Editing() bool {
	return m.editing
}

// SetSize updates the scene dimensions
func (m *TargetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the target scene
func (m *TargetModel) Update(msg tea.Msg) (*TargetModel, tea.Cmd) {
	if m.solving {
		return m, nil
	}
	keyMsg, isKey := msg.(tea.KeyMsg)

	if !m.editing {
		if isKey && key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "e"))) {
			m.editing = true
			m.invalid = ""
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	if isKey {
		switch keyMsg.Type {
		case tea.KeyEnter:
			target, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
			if err != nil || target < 0 {
				m.invalid = "enter a non-negative amount"
				return m, nil
			}
			m.editing = false
			m.solving = true
			m.invalid = ""
			m.input.Blur()
			return m, func() tea.Msg { return tuimsg.TargetStartedMsg{Target: decimal.NewFromFloat(target)} }
		case tea.KeyEsc:
			m.editing = false
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the target scene
func (m *TargetModel) View() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Revenue Target Solver"))
	b.WriteString("\n\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Finds the lowest occupancy whose monthly revenue reaches the target."))
	b.WriteString("\n\n")

	border := tuistyles.ColorBorder
	if m.editing {
		border = tuistyles.ColorPrimary
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	b.WriteString(box.Render(m.input.View() + " RON/month"))
	if m.invalid != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.ErrorStyle.Render(m.invalid))
	}
	b.WriteString("\n\n")

	switch {
	case m.solving:
		b.WriteString(components.NewSpinner().WithMessage("Solving...").Render())
	case m.result != nil:
		b.WriteString(renderTargetResult(m.result))
	}

	b.WriteString("\n\n")
	if m.editing {
		b.WriteString(tuistyles.HelpDescStyle.Render("enter solve • esc cancel"))
	} else {
		b.WriteString(tuistyles.HelpDescStyle.Render("enter edit target"))
	}
	return tuistyles.BorderStyle.Render(b.String())
}

func renderTargetResult(r *calculation.TargetResult) string {
	var b strings.Builder
	if !r.Reachable {
		b.WriteString(tuistyles.ErrorStyle.Render(fmt.Sprintf("%s is not reachable even at full occupancy", tuistyles.FormatCurrency(r.Target))))
		if r.Result != nil {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("Revenue at 100%%: %s", tuistyles.FormatCurrency(r.Result.TotalRevenue)))
		}
		return b.String()
	}

	b.WriteString(tuistyles.MetricPositiveStyle.Render(fmt.Sprintf("Occupancy needed: %s", tuistyles.FormatPercent(r.Occupancy))))
	b.WriteString("\n")
	b.WriteString(components.NewGauge("", r.Occupancy, 1).Render())
	if r.Result != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d clients, %s, catchment %.2f km",
			r.Result.TotalClients, tuistyles.FormatCurrency(r.Result.TotalRevenue), r.Result.CatchmentRadiusKm))
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d iterations, %s", r.Iterations, r.ConvergenceInfo)))
	return b.String()
}
