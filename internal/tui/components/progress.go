package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// ProgressBar displays a percentage as a filled bar
type ProgressBar struct {
	Percent float64
	Width   int
	Label   string
}

// NewProgressBar creates a bar for a percentage in [0, 100]
func NewProgressBar(percent float64) *ProgressBar {
	return &ProgressBar{
		Percent: percent,
		Width:   40,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Filled returns the number of filled cells
func (p *ProgressBar) Filled() int {
	filled := int(float64(p.Width) * p.Percent / 100)
	return max(0, min(p.Width, filled))
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true).
			Render(p.Label))
		content.WriteString("\n")
	}

	filled := p.Filled()
	content.WriteString("[")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("█", filled)))
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", p.Width-filled)))
	content.WriteString("] ")
	content.WriteString(lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true).
		Render(fmt.Sprintf("%.0f%%", p.Percent)))

	return content.String()
}

// StepIndicator renders the wizard position as dots, e.g. "● ● ◉ ○ ○ ○ ○  Step 3 of 7"
func StepIndicator(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		switch {
		case i+1 < current:
			dots[i] = lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render("●")
		case i+1 == current:
			dots[i] = lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render("◉")
		default:
			dots[i] = lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("○")
		}
	}
	return strings.Join(dots, " ") + "  " +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("Step %d of %d", current, total))
}
