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

// Slider keys for the non-mix parameters
const (
	SliderParticipation = "participation"
	SliderDensity       = "density"
	SliderConversion    = "conversion"
	SliderCoverage      = "coverage"
)

// ParametersModel edits the subscription mix and the demographic and campaign rates
type ParametersModel struct {
	inputs        tuimsg.Inputs
	kinds         []domain.SubscriptionKind
	sliders       []*components.ParameterSlider
	focusedSlider int
	width         int
	height        int
	modified      bool
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	return &ParametersModel{}
}

// SetInputs loads the inputs to edit; kinds are the catalog's subscription types
func (m *ParametersModel) SetInputs(in tuimsg.Inputs, kinds []domain.SubscriptionKind) {
	m.inputs = in.Clone()
	m.kinds = kinds
	m.modified = false
	m.buildSliders()
}

func (m *ParametersModel) buildSliders() {
	m.sliders = nil

	total := m.inputs.Distribution.Sum()
	for _, kind := range m.kinds {
		share := 0.0
		if total > 0 {
			share = m.inputs.Distribution.Weight(kind) / total * 100
		}
		m.sliders = append(m.sliders,
			components.NewParameterSlider(string(kind), "Mix: "+string(kind), share, 0, 100, 5).
				WithFormat("%.0f").
				WithDescription("Relative weight; weights are normalized before use"))
	}

	m.sliders = append(m.sliders,
		components.NewParameterSlider(SliderParticipation, "Participation rate", m.inputs.Demographics.ParticipationRate, 0, 1, 0.01).
			AsPercent().
			WithDescription("Share of residents interested in the service"),
		components.NewParameterSlider(SliderDensity, "Population density", m.inputs.Demographics.PopulationDensity, 0, 20000, 250).
			WithFormat("%.0f").
			WithUnit(" /km²"),
		components.NewParameterSlider(SliderConversion, "Conversion rate", m.inputs.Campaign.ConversionRate, 0, 1, 0.01).
			AsPercent().
			WithDescription("Share of reached people who subscribe"),
		components.NewParameterSlider(SliderCoverage, "Coverage rate", m.inputs.Campaign.CoverageRate, 0, 1, 0.05).
			AsPercent().
			WithDescription("Share of the interested population the campaign reaches"),
	)

	if m.focusedSlider >= len(m.sliders) {
		m.focusedSlider = 0
	}
	for i, s := range m.sliders {
		s.SetFocused(i == m.focusedSlider)
	}
}

// Inputs returns the inputs as currently set by the sliders
func (m *ParametersModel) Inputs() tuimsg.Inputs {
	in := m.inputs.Clone()
	in.Distribution = domain.DistributionMap{}
	for _, s := range m.sliders {
		switch s.Key {
		case SliderParticipation:
			in.Demographics.ParticipationRate = s.Value
		case SliderDensity:
			in.Demographics.PopulationDensity = s.Value
		case SliderConversion:
			in.Campaign.ConversionRate = s.Value
		case SliderCoverage:
			in.Campaign.CoverageRate = s.Value
		default:
			if s.Value > 0 {
				in.Distribution[domain.SubscriptionKind(s.Key)] = s.Value
			}
		}
	}
	return in
}

// Modified reports whether any slider moved since the last apply
func (m *ParametersModel) Modified() bool {
	return m.modified
}

// Slider returns the slider with key, or nil
func (m *ParametersModel) Slider(key string) *components.ParameterSlider {
	for _, s := range m.sliders {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.moveFocus(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "+"))):
		m.sliders[m.focusedSlider].Increment()
		m.modified = true
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "-"))):
		m.sliders[m.focusedSlider].Decrement()
		m.modified = true
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("u"))):
		m.buildSliders()
		m.modified = false
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		in := m.Inputs()
		m.inputs = in.Clone()
		m.modified = false
		return m, func() tea.Msg { return tuimsg.InputsChangedMsg{Inputs: in} }
	}
	return m, nil
}

func (m *ParametersModel) moveFocus(delta int) {
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = (m.focusedSlider + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focusedSlider].SetFocused(true)
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	if len(m.sliders) == 0 {
		return tuistyles.BorderStyle.Render(tuistyles.InfoStyle.Render("Load a configuration to edit parameters"))
	}

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Parameters"))
	b.WriteString("  ")
	b.WriteString(tuistyles.SubtitleStyle.Render("scenario: " + string(m.inputs.Scenario)))
	b.WriteString("\n\n")
	for i, s := range m.sliders {
		b.WriteString(s.RenderCompact())
		b.WriteString("\n")
		if i == len(m.kinds)-1 {
			b.WriteString("\n")
		}
	}

	focused := m.sliders[m.focusedSlider]
	if focused.Description != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.InfoStyle.Render(focused.Description))
	}

	status := tuistyles.MetricPositiveStyle.Render("✓ applied")
	if m.modified {
		status = lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("● unsaved changes")
	}
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ select • ←/→ adjust • enter apply and evaluate • u undo"))

	return tuistyles.BorderStyle.Render(b.String())
}
