package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// Gauge shows a value against a maximum, e.g. revenue against target or
// occupied against available slots
type Gauge struct {
	Label   string
	Current float64
	Total   float64
	Width   int
	Detail  string
}

// NewGauge creates a gauge
func NewGauge(label string, current, total float64) *Gauge {
	return &Gauge{Label: label, Current: current, Total: total, Width: 40}
}

// WithWidth sets the bar width
func (g *Gauge) WithWidth(width int) *Gauge {
	g.Width = width
	return g
}

// WithDetail sets the text shown after the percentage
func (g *Gauge) WithDetail(detail string) *Gauge {
	g.Detail = detail
	return g
}

// Ratio returns Current/Total, 0 when Total is not positive
func (g *Gauge) Ratio() float64 {
	if g.Total <= 0 {
		return 0
	}
	return g.Current / g.Total
}

// IsComplete reports whether the gauge has reached its total
func (g *Gauge) IsComplete() bool {
	return g.Total > 0 && g.Current >= g.Total
}

// Render returns the labelled bar
func (g *Gauge) Render() string {
	var b strings.Builder
	if g.Label != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(g.Label))
		b.WriteString("\n")
	}

	filled := int(math.Round(float64(g.Width) * math.Min(1, g.Ratio())))
	if filled < 0 {
		filled = 0
	}
	barColor := tuistyles.ColorPrimary
	if g.IsComplete() {
		barColor = tuistyles.ColorSuccess
	}
	b.WriteString(lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", g.Width-filled)))

	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render(fmt.Sprintf("%5.1f%%", g.Ratio()*100)))
	if g.Detail != "" {
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(g.Detail))
	}
	return b.String()
}

// Spinner is a frame-based activity indicator
type Spinner struct {
	frames  []string
	current int
	Message string
}

// NewSpinner creates a spinner
func NewSpinner() *Spinner {
	return &Spinner{frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}}
}

// WithMessage sets the text shown next to the spinner
func (s *Spinner) WithMessage(message string) *Spinner {
	s.Message = message
	return s
}

// Next advances to the next frame
func (s *Spinner) Next() {
	s.current = (s.current + 1) % len(s.frames)
}

// Render returns the current frame and message
func (s *Spinner) Render() string {
	frame := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Render(s.frames[s.current])
	if s.Message == "" {
		return frame
	}
	return frame + " " + lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(s.Message)
}
