package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// Slider renders a bounded percentage field as a one-line gauge
type Slider struct {
	Label     string
	Value     decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Unit      string
	Width     int
	IsFocused bool
}

// NewSlider creates a slider over [low, high]
func NewSlider(label string, value, low, high decimal.Decimal) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   low,
		Max:   high,
		Unit:  "%",
		Width: 20,
	}
}

// SetFocused sets the focus state
func (s *Slider) SetFocused(focused bool) *Slider {
	s.IsFocused = focused
	return s
}

// Fraction returns the position of the value within the range, in [0, 1]
func (s *Slider) Fraction() float64 {
	span := s.Max.Sub(s.Min)
	if !span.IsPositive() {
		return 0
	}
	f := s.Value.Sub(s.Min).Div(span).InexactFloat64()
	return math.Max(0, math.Min(1, f))
}

// Render returns "label  value  [━━━●────]"
func (s *Slider) Render(labelWidth int) string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if s.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	thumb := int(math.Round(float64(s.Width-1) * s.Fraction()))
	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb) + "●"))
	bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", s.Width-1-thumb)))
	bar.WriteString("]")

	return fmt.Sprintf("%s %s %s",
		labelStyle.Width(labelWidth).Render(s.Label),
		valueStyle.Width(8).Render(s.Value.String()+s.Unit),
		bar.String(),
	)
}
