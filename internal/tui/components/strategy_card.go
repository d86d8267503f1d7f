package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// StrategyCard summarizes one withdrawal strategy in a comparison
type StrategyCard struct {
	Name       string
	Highlights []string
	IsSelected bool
	Width      int
}

// NewStrategyCard creates a new strategy card
func NewStrategyCard(name string) *StrategyCard {
	return &StrategyCard{
		Name:  name,
		Width: 34,
	}
}

// AddHighlight adds a key figure
func (s *StrategyCard) AddHighlight(highlight string) *StrategyCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as the plan's current strategy
func (s *StrategyCard) SetSelected(selected bool) *StrategyCard {
	s.IsSelected = selected
	return s
}

// Render returns the styled strategy card
func (s *StrategyCard) Render() string {
	var content strings.Builder

	name := s.Name
	if s.IsSelected {
		name += " (current)"
	}
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(name))

	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for _, h := range s.Highlights {
		content.WriteString("\n")
		content.WriteString(highlightStyle.Render("• " + h))
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.Width).
		Render(content.String())
}

// StrategyGrid renders cards two per row
func StrategyGrid(cards []*StrategyCard) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No strategies available")
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		row := []string{cards[i].Render()}
		if i+1 < len(cards) {
			row = append(row, cards[i+1].Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
