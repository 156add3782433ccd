package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fitsizer/internal/domain"
	"github.com/rgehrsitz/fitsizer/internal/tui/tuistyles"
)

// Bar is one labelled value in a BarChart
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders horizontal bars scaled to the largest value, with an
// optional marker line such as the revenue target
type BarChart struct {
	Title       string
	Bars        []Bar
	Width       int
	Marker      float64
	MarkerLabel string
	FormatValue func(float64) string
}

// NewBarChart creates an empty chart
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, Width: 40, FormatValue: formatChartValue}
}

// AddBar appends a bar, colored by position when color is empty
func (c *BarChart) AddBar(label string, value float64, color lipgloss.Color) *BarChart {
	if color == "" {
		color = tuistyles.ChartColors[len(c.Bars)%len(tuistyles.ChartColors)]
	}
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Color: color})
	return c
}

// WithMarker draws a vertical reference at value
func (c *BarChart) WithMarker(value float64, label string) *BarChart {
	c.Marker = value
	c.MarkerLabel = label
	return c
}

// WithWidth sets the bar area width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the chart
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	scale := c.Marker
	labelWidth := 0
	for _, bar := range c.Bars {
		scale = math.Max(scale, bar.Value)
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		b.WriteString("\n\n")
	}

	markerCol := -1
	if c.Marker > 0 && scale > 0 {
		markerCol = c.column(c.Marker, scale)
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Width(labelWidth)
	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for _, bar := range c.Bars {
		n := 0
		if scale > 0 && bar.Value > 0 {
			n = c.column(bar.Value, scale)
		}
		cells := make([]string, c.Width)
		for i := range cells {
			switch {
			case i < n:
				cells[i] = lipgloss.NewStyle().Foreground(bar.Color).Render("█")
			case i == markerCol:
				cells[i] = muted.Render("│")
			default:
				cells[i] = " "
			}
		}
		b.WriteString(labelStyle.Render(bar.Label))
		b.WriteString(" ")
		b.WriteString(strings.Join(cells, ""))
		b.WriteString(" ")
		b.WriteString(c.FormatValue(bar.Value))
		b.WriteString("\n")
	}

	if markerCol >= 0 && c.MarkerLabel != "" {
		b.WriteString(strings.Repeat(" ", labelWidth+1+markerCol))
		b.WriteString(muted.Render("└ " + c.MarkerLabel))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *BarChart) column(value, scale float64) int {
	col := int(math.Round(value / scale * float64(c.Width)))
	if col > c.Width {
		col = c.Width
	}
	return col
}

// RevenueBySubscription charts the revenue contribution of each subscription type
func RevenueBySubscription(r *domain.AnalysisResult) *BarChart {
	chart := NewBarChart("Revenue by subscription")
	for _, d := range r.Demand {
		chart.AddBar(d.DisplayName, d.Revenue.InexactFloat64(), "")
	}
	return chart
}

// RevenueByScenario charts each scenario's revenue against the target
func RevenueByScenario(results []domain.AnalysisResult) *BarChart {
	chart := NewBarChart("Revenue by scenario")
	for _, r := range results {
		color := tuistyles.ColorDanger
		if r.MeetsTarget {
			color = tuistyles.ColorSuccess
		}
		chart.AddBar(r.ScenarioName, r.TotalRevenue.InexactFloat64(), color)
	}
	if len(results) > 0 {
		target := results[0].RevenueTarget.InexactFloat64()
		chart.WithMarker(target, "target "+formatChartValue(target))
	}
	return chart
}

func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("%.1fK", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}
