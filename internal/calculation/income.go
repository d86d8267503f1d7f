package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyIncome sums the guaranteed monthly income streams
func MonthlyIncome(inc domain.Income) decimal.Decimal {
	return inc.SocialSecurity.Add(inc.Pension).Add(inc.OtherIncome)
}

// AnnualIncome annualizes the guaranteed income streams. StartAge is not used:
// income is not discounted for the years before benefits begin.
func AnnualIncome(inc domain.Income) decimal.Decimal {
	return MonthlyIncome(inc).Mul(monthsPerYear)
}
