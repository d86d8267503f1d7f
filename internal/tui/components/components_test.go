package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 20},
		{100, 40},
		{150, 40},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewProgressBar(tt.percent).Filled())
	}
}

func TestProgressBar_Render(t *testing.T) {
	out := NewProgressBar(22).WithLabel("Progress").WithWidth(10).Render()
	assert.Contains(t, out, "Progress")
	assert.Contains(t, out, "22%")
	assert.Equal(t, 2, strings.Count(out, "█"))
}

func TestStepIndicator(t *testing.T) {
	out := StepIndicator(3, 7)
	assert.Contains(t, out, "Step 3 of 7")
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Equal(t, 4, strings.Count(out, "○"))
}

func TestSlider_Fraction(t *testing.T) {
	s := NewSlider("Withdrawal rate", decimal.RequireFromString("4.25"),
		decimal.RequireFromString("2.5"), decimal.NewFromInt(6))
	assert.InDelta(t, 0.5, s.Fraction(), 0.0001)

	s.Value = decimal.NewFromInt(9)
	assert.Equal(t, 1.0, s.Fraction())

	flat := NewSlider("flat", decimal.Zero, decimal.Zero, decimal.Zero)
	assert.Equal(t, 0.0, flat.Fraction())
}

func TestSlider_Render(t *testing.T) {
	out := NewSlider("Stocks", decimal.NewFromInt(50), decimal.Zero, decimal.NewFromInt(100)).Render(12)
	assert.Contains(t, out, "Stocks")
	assert.Contains(t, out, "50%")
	assert.Equal(t, 1, strings.Count(out, "●"))
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{
		NewMetricCard("FI Number", "$462,500"),
		NewMetricCard("Progress", "22%").WithTone(ToneGood),
		NewMetricCard("FI Age", "48").WithNote("in 23 years"),
	}
	out := MetricGrid(cards, 2)
	for _, want := range []string{"FI Number", "$462,500", "22%", "in 23 years"} {
		assert.Contains(t, out, want)
	}
}

func TestGrowthChart_Render(t *testing.T) {
	out := NewGrowthChart("Growth", []float64{100000, 107000, 114490}, 110000).WithSize(20, 6).Render()
	assert.Contains(t, out, "Growth")
	assert.Contains(t, out, "$110K")
	assert.Contains(t, out, "year 2")
	assert.Equal(t, 3, strings.Count(out, "●"))

	assert.Contains(t, NewGrowthChart("", nil, 0).Render(), "No projection")
}

func TestStrategyGrid(t *testing.T) {
	cards := []*StrategyCard{
		NewStrategyCard("4% Rule").AddHighlight("FI number $462,500").SetSelected(true),
		NewStrategyCard("Guardrails"),
		NewStrategyCard("Bond Tent"),
	}
	out := StrategyGrid(cards)
	assert.Contains(t, out, "4% Rule (current)")
	assert.Contains(t, out, "Bond Tent")
	assert.Contains(t, out, "FI number $462,500")
}
