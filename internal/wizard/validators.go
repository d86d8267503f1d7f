package wizard

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

// Rejection reasons. They are logged by the wizard and never returned to callers.
var (
	ErrAllocationExceeded = errors.New("asset allocation would exceed 100%")
	ErrStageMismatch      = errors.New("record does not belong to stage")
)

var (
	hundred = decimal.NewFromInt(100)

	minProjection = decimal.NewFromInt(30)
	maxProjection = decimal.NewFromInt(150)
)

// ValidateLifeExpectancy clamps the age into [18,100], reduces the factors to a set of
// known ids and recomputes the adjusted age.
func ValidateLifeExpectancy(_, next domain.LifeExpectancy) (domain.LifeExpectancy, error) {
	out := domain.LifeExpectancy{
		Age: clampInt(next.Age, domain.MinAge, domain.MaxAge),
		HealthFactors: lo.Filter(lo.Uniq(next.HealthFactors), func(id domain.HealthFactorID, _ int) bool {
			return id.Valid()
		}),
	}
	out.AdjustedAge = calculation.AdjustedLifeExpectancy(out.Age, out.HealthFactors)
	return out, nil
}

// Amounts and percentages outside domain.CheckAmount read as 0 in every validator.

// ValidateLegacy floors amounts at zero and zeroes both under die-with-zero
func ValidateLegacy(_, next domain.Legacy) (domain.Legacy, error) {
	out := domain.Legacy{
		DieWithZero:      next.DieWithZero,
		LegacyAmount:     nonNegative(next.LegacyAmount),
		CharitableGiving: nonNegative(next.CharitableGiving),
	}
	if out.DieWithZero {
		out.LegacyAmount = decimal.Zero
		out.CharitableGiving = decimal.Zero
	}
	return out, nil
}

// ValidatePortfolio clamps each allocation into [0,100] and rejects the record
// when the allocation would sum past 100. It never rescales the other classes.
func ValidatePortfolio(prev, next domain.Portfolio) (domain.Portfolio, error) {
	out := domain.Portfolio{TotalValue: nonNegative(next.TotalValue)}
	for _, class := range domain.AssetClasses {
		out.Assets = out.Assets.With(class, clampPercent(next.Assets.Get(class)))
	}
	if total := out.Assets.Total(); total.GreaterThan(hundred) {
		return prev, fmt.Errorf("%w: total %s%%", ErrAllocationExceeded, total.String())
	}
	return out, nil
}

// ValidateIncome floors monthly amounts at zero. An unsupported start age keeps the
// previous one.
func ValidateIncome(prev, next domain.Income) (domain.Income, error) {
	out := domain.Income{
		SocialSecurity: nonNegative(next.SocialSecurity),
		Pension:        nonNegative(next.Pension),
		OtherIncome:    nonNegative(next.OtherIncome),
		StartAge:       next.StartAge,
	}
	if !lo.Contains(domain.BenefitStartAges, out.StartAge) {
		out.StartAge = prev.StartAge
	}
	return out, nil
}

// ValidateRisk keeps the rate and strategy consistent. A catalog strategy imposes its
// rate; anything else is treated as a custom rate clamped to [2.5,6.0].
func ValidateRisk(prev, next domain.Risk) (domain.Risk, error) {
	out := next
	if !out.Tolerance.Valid() {
		out.Tolerance = prev.Tolerance
	}
	if s, ok := domain.LookupStrategy(out.Strategy); ok {
		out.WithdrawalRate = s.Rate
		return out, nil
	}
	out.Strategy = domain.StrategyCustom
	out.WithdrawalRate = calculation.ClampWithdrawalRate(bounded(out.WithdrawalRate))
	return out, nil
}

// ValidateSpending floors spending at zero and clamps each projection into [30,150]
func ValidateSpending(_, next domain.Spending) (domain.Spending, error) {
	out := domain.Spending{CurrentAnnual: nonNegative(next.CurrentAnnual)}
	for _, d := range domain.Decades {
		pct := decimal.Min(maxProjection, decimal.Max(minProjection, bounded(next.Projections.Get(d))))
		out.Projections = out.Projections.With(d, pct)
	}
	return out, nil
}

// bounded replaces a value outside domain.CheckAmount with 0 before any arithmetic touches it
func bounded(d decimal.Decimal) decimal.Decimal {
	if domain.CheckAmount(d) != nil {
		return decimal.Zero
	}
	return d
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return bounded(d)
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, nonNegative(d))
}

func clampInt(v, low, high int) int {
	return min(high, max(low, v))
}
