package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// Tone colors a metric value
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
)

// MetricCard displays a single headline figure with a label and optional note
type MetricCard struct {
	Label string
	Value string
	Note  string
	Tone  Tone
	Width int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithNote adds a muted line under the value
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// WithTone colors the value
func (m *MetricCard) WithTone(tone Tone) *MetricCard {
	m.Tone = tone
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	valueStyle := tuistyles.MetricValueStyle
	switch m.Tone {
	case ToneGood:
		valueStyle = valueStyle.Foreground(tuistyles.ColorSuccess)
	case ToneBad:
		valueStyle = valueStyle.Foreground(tuistyles.ColorDanger)
	}

	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Note != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// MetricGrid lays cards out left to right, wrapping after columns cards
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 || columns < 1 {
		return ""
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			rendered = append(rendered, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
