package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// MaxGrowthPathYears caps the projected balance series
const MaxGrowthPathYears = 60

// GrowthPath projects the portfolio balance year by year at DefaultExpectedReturn.
// The series starts with today's balance and runs through the FI year, or for
// MaxGrowthPathYears when the timeline is unbounded or longer than the cap.
func GrowthPath(r domain.DerivedResult) []decimal.Decimal {
	years := MaxGrowthPathYears
	if !r.YearsToFI.Unbounded && r.YearsToFI.Years < years {
		years = r.YearsToFI.Years
	}

	growth := decimal.NewFromFloat(1 + DefaultExpectedReturn)
	path := make([]decimal.Decimal, 0, years+1)
	balance := r.CurrentPortfolio
	path = append(path, balance)
	for i := 0; i < years; i++ {
		balance = balance.Mul(growth).Round(2)
		path = append(path, balance)
	}
	return path
}
