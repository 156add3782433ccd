package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// ParameterSlider is an adjustable numeric input with a visual bar
type ParameterSlider struct {
	Key         string
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Unit        string
	Format      string
	Scale       float64 // display multiplier, e.g. 100 for rates shown as percentages
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider identified by key
func NewParameterSlider(key, label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Key:    key,
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Scale:  1,
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// AsPercent displays the value multiplied by 100 with a % suffix
func (p *ParameterSlider) AsPercent() *ParameterSlider {
	p.Scale = 100
	p.Unit = "%"
	p.Format = "%.1f"
	return p
}

// WithWidth sets the bar width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment raises the value by one step
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement lowers the value by one step
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue snaps value to the step grid and clamps it to [Min, Max]
func (p *ParameterSlider) SetValue(value float64) {
	if p.Step > 0 {
		value = p.Min + math.Round((value-p.Min)/p.Step)*p.Step
	}
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the position of the value within the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// DisplayValue formats the value with scale and unit
func (p *ParameterSlider) DisplayValue() string {
	return p.display(p.Value)
}

func (p *ParameterSlider) display(v float64) string {
	return fmt.Sprintf(p.Format, v*p.Scale) + p.Unit
}

// Render returns the full multi-line slider
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(p.Label))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(p.DisplayValue()))
	b.WriteString("\n")
	b.WriteString(p.renderBar(p.Width))

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	b.WriteString(" ")
	b.WriteString(muted.Render(fmt.Sprintf("%s - %s", p.display(p.Min), p.display(p.Max))))

	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(muted.Italic(true).Render(p.Description))
	}
	return b.String()
}

// RenderCompact returns a single-line version with a short bar
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	prefix := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		prefix = "▸ "
	}
	return fmt.Sprintf("%s%s %s %s", prefix,
		labelStyle.Width(22).Render(p.Label),
		p.renderBar(12),
		valueStyle.Render(p.DisplayValue()))
}

func (p *ParameterSlider) renderBar(width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(math.Round(float64(width-1) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > width-1 {
		filled = width - 1
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled)))
	bar.WriteString(thumbStyle.Render("●"))
	bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", width-1-filled)))
	bar.WriteString("]")
	return bar.String()
}
