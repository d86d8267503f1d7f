package tuistyles

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$462,500", FormatCurrency(decimal.NewFromInt(462500)))
	assert.Equal(t, "$10,000,000,000,000,000,000", FormatCurrency(decimal.New(1, 19)))
	assert.Equal(t, "-$10,000,000,000,000,000,000,000,000", FormatCurrency(decimal.New(-1, 25)))
}

func TestTrendIndicator(t *testing.T) {
	assert.Equal(t, "↑", TrendIndicator(true))
	assert.Equal(t, "↓", TrendIndicator(false))
}
