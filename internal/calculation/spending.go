package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

var (
	hundred     = decimal.NewFromInt(100)
	decadeCount = decimal.NewFromInt(int64(len(domain.Decades)))
)

// AverageAnnualSpending is the unweighted mean of the four decade-scaled spending levels
func AverageAnnualSpending(s domain.Spending) decimal.Decimal {
	return s.CurrentAnnual.Mul(s.Projections.Sum()).Div(hundred).Div(decadeCount)
}

// DecadeSpending scales current spending by a decade's projection percentage
func DecadeSpending(currentAnnual, pct decimal.Decimal) decimal.Decimal {
	return currentAnnual.Mul(pct).Div(hundred)
}
