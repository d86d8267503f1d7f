package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// Withdrawal rate bounds accepted by the risk stage, in percent
var (
	MinWithdrawalRate     = decimal.RequireFromString("2.5")
	MaxWithdrawalRate     = decimal.NewFromInt(6)
	DefaultWithdrawalRate = decimal.NewFromInt(4)

	conservativeRateCap  = decimal.RequireFromString("3.5")
	aggressiveRateFloor  = decimal.NewFromInt(4)
	aggressiveSuggestion = decimal.RequireFromString("4.5")
	lowRiskBelow         = decimal.RequireFromString("3.5")
	highRiskAbove        = decimal.RequireFromString("4.5")
)

// Withdrawal is the resolved withdrawal approach
type Withdrawal struct {
	Strategy     domain.StrategyID
	StrategyName string
	Rate         decimal.Decimal
	Multiplier   decimal.Decimal
}

// ResolveWithdrawal picks the effective rate for a risk profile. A catalog strategy
// always contributes its catalog rate; a custom strategy uses the manual rate, or
// the default rate when the manual rate is not positive.
func ResolveWithdrawal(risk domain.Risk) Withdrawal {
	w := Withdrawal{
		Strategy:     risk.Strategy,
		StrategyName: risk.Strategy.Name(),
		Rate:         risk.WithdrawalRate,
	}
	if s, ok := domain.LookupStrategy(risk.Strategy); ok {
		w.Rate = s.Rate
		w.StrategyName = s.Name
	} else {
		w.Strategy = domain.StrategyCustom
	}
	if !w.Rate.IsPositive() {
		w.Rate = DefaultWithdrawalRate
	}
	w.Multiplier = PortfolioMultiplier(w.Rate)
	return w
}

// PortfolioMultiplier converts a withdrawal rate in percent into the number of
// years of spending the portfolio must hold. Non-positive rates use the default rate.
func PortfolioMultiplier(rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		rate = DefaultWithdrawalRate
	}
	return hundred.Div(rate)
}

// SuggestedRate nudges the current rate toward what a tolerance usually supports
func SuggestedRate(tolerance domain.RiskTolerance, current decimal.Decimal) decimal.Decimal {
	switch tolerance {
	case domain.ToleranceConservative:
		if current.GreaterThan(conservativeRateCap) {
			return conservativeRateCap
		}
	case domain.ToleranceAggressive:
		if current.LessThan(aggressiveRateFloor) {
			return aggressiveSuggestion
		}
	}
	return current
}

// ClassifyRiskLevel buckets a withdrawal rate into Low, Medium or High
func ClassifyRiskLevel(rate decimal.Decimal) domain.RiskLevel {
	switch {
	case rate.GreaterThan(highRiskAbove):
		return domain.RiskLevelHigh
	case rate.LessThan(lowRiskBelow):
		return domain.RiskLevelLow
	default:
		return domain.RiskLevelMedium
	}
}

// SuccessRateEstimate is a rough historical success heuristic: 100 - 2 x rate
func SuccessRateEstimate(rate decimal.Decimal) decimal.Decimal {
	return hundred.Sub(rate.Mul(decimal.NewFromInt(2)))
}

// ClampWithdrawalRate bounds a manual rate to the accepted range
func ClampWithdrawalRate(rate decimal.Decimal) decimal.Decimal {
	return decimal.Min(MaxWithdrawalRate, decimal.Max(MinWithdrawalRate, rate))
}
