package calculation

import (
	"github.com/samber/lo"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// TotalHealthAdjustment sums the catalog adjustments of the selected factors.
// Unknown ids contribute nothing and duplicates are counted once.
func TotalHealthAdjustment(factors []domain.HealthFactorID) int {
	return lo.SumBy(lo.Uniq(factors), func(id domain.HealthFactorID) int {
		if f, ok := domain.LookupHealthFactor(id); ok {
			return f.Adjustment
		}
		return 0
	})
}

// AdjustedLifeExpectancy applies health adjustments to the base life expectancy,
// never planning for fewer than MinPlanningHorizon years past the current age.
func AdjustedLifeExpectancy(age int, factors []domain.HealthFactorID) int {
	return max(domain.BaseLifeExpectancy+TotalHealthAdjustment(factors), age+domain.MinPlanningHorizon)
}
