package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// GrowthChart plots a yearly balance series against a horizontal target line
type GrowthChart struct {
	Title  string
	Points []float64
	Target float64
	Width  int
	Height int
}

// NewGrowthChart creates a chart for the given series
func NewGrowthChart(title string, points []float64, target float64) *GrowthChart {
	return &GrowthChart{
		Title:  title,
		Points: points,
		Target: target,
		Width:  48,
		Height: 8,
	}
}

// WithSize sets the plot area dimensions
func (c *GrowthChart) WithSize(width, height int) *GrowthChart {
	c.Width = max(2, width)
	c.Height = max(2, height)
	return c
}

// Render returns the chart with a value axis and a year axis
func (c *GrowthChart) Render() string {
	if len(c.Points) == 0 {
		return tuistyles.InfoStyle.Render("No projection to display")
	}

	top := c.Target
	for _, p := range c.Points {
		top = max(top, p)
	}
	if top <= 0 {
		top = 1
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", c.Width))
	}

	row := func(v float64) int {
		r := c.Height - 1 - int(v/top*float64(c.Height-1)+0.5)
		return max(0, min(c.Height-1, r))
	}

	targetRow := row(c.Target)
	for x := range grid[targetRow] {
		grid[targetRow][x] = '┄'
	}

	for i, p := range c.Points {
		x := 0
		if len(c.Points) > 1 {
			x = i * (c.Width - 1) / (len(c.Points) - 1)
		}
		grid[row(p)][x] = '●'
	}

	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(9).Align(lipgloss.Right)
	plotStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary)

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		out.WriteString("\n")
	}
	for i, line := range grid {
		label := ""
		switch i {
		case targetRow:
			label = compactDollars(c.Target)
		case 0:
			label = compactDollars(top)
		case c.Height - 1:
			label = "$0"
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │")
		out.WriteString(plotStyle.Render(string(line)))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", 10))
	out.WriteString("└")
	out.WriteString(strings.Repeat("─", c.Width))
	out.WriteString("\n")
	out.WriteString(strings.Repeat(" ", 11))
	last := fmt.Sprintf("year %d", len(c.Points)-1)
	out.WriteString(tuistyles.SubtitleStyle.Render("now" + strings.Repeat(" ", max(1, c.Width-3-len(last))) + last))

	return out.String()
}

func compactDollars(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
