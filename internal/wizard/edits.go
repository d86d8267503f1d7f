package wizard

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

// ParseWholeNumber reads the leading integer of a text field ("1500abc" is 1500).
// Text without a leading integer, or out of range, reads as 0.
func ParseWholeNumber(text string) int64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount reads a decimal value from a text field. Malformed text, exponent
// notation and values outside domain.CheckAmount read as 0.
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	d, err := decimal.NewFromString(s)
	switch {
	case err != nil:
		d = decimal.NewFromInt(ParseWholeNumber(text))
	case strings.ContainsAny(s, "eE"):
		return decimal.Zero
	}
	if domain.CheckAmount(d) != nil {
		return decimal.Zero
	}
	return d
}

// Field edits. Each builds a whole replacement record from the current one and
// sends it through UpdateStage, so the stage validators always apply.

// SetAge updates the current age from text input
func (w *Wizard) SetAge(text string) domain.CalculatorInput {
	le := w.Input().LifeExpectancy
	le.Age = int(clampInt64(ParseWholeNumber(text)))
	return w.UpdateStage(StageLifeExpectancy, le)
}

// ToggleHealthFactor selects or clears a health factor
func (w *Wizard) ToggleHealthFactor(id domain.HealthFactorID, selected bool) domain.CalculatorInput {
	le := w.Input().LifeExpectancy
	if selected {
		le.HealthFactors = append(le.HealthFactors, id)
	} else {
		le.HealthFactors = lo.Without(le.HealthFactors, id)
	}
	return w.UpdateStage(StageLifeExpectancy, le)
}

// SetDieWithZero switches between spending down and leaving a legacy
func (w *Wizard) SetDieWithZero(dieWithZero bool) domain.CalculatorInput {
	legacy := w.Input().Legacy
	legacy.DieWithZero = dieWithZero
	return w.UpdateStage(StageLegacy, legacy)
}

// SetLegacyAmount updates the amount left to heirs
func (w *Wizard) SetLegacyAmount(text string) domain.CalculatorInput {
	legacy := w.Input().Legacy
	legacy.LegacyAmount = ParseAmount(text)
	return w.UpdateStage(StageLegacy, legacy)
}

// SetCharitableGiving updates the amount left to charity
func (w *Wizard) SetCharitableGiving(text string) domain.CalculatorInput {
	legacy := w.Input().Legacy
	legacy.CharitableGiving = ParseAmount(text)
	return w.UpdateStage(StageLegacy, legacy)
}

// SetPortfolioValue updates the current portfolio value
func (w *Wizard) SetPortfolioValue(text string) domain.CalculatorInput {
	p := w.Input().Portfolio
	p.TotalValue = ParseAmount(text)
	return w.UpdateStage(StagePortfolio, p)
}

// SetAllocation changes one asset class. The edit is dropped if the allocation
// would sum past 100%.
func (w *Wizard) SetAllocation(class domain.AssetClass, pct decimal.Decimal) domain.CalculatorInput {
	p := w.Input().Portfolio
	p.Assets = p.Assets.With(class, pct)
	return w.UpdateStage(StagePortfolio, p)
}

// SetSocialSecurity updates the monthly social security benefit
func (w *Wizard) SetSocialSecurity(text string) domain.CalculatorInput {
	inc := w.Input().Income
	inc.SocialSecurity = ParseAmount(text)
	return w.UpdateStage(StageIncome, inc)
}

// SetPension updates the monthly pension
func (w *Wizard) SetPension(text string) domain.CalculatorInput {
	inc := w.Input().Income
	inc.Pension = ParseAmount(text)
	return w.UpdateStage(StageIncome, inc)
}

// SetOtherIncome updates other monthly income
func (w *Wizard) SetOtherIncome(text string) domain.CalculatorInput {
	inc := w.Input().Income
	inc.OtherIncome = ParseAmount(text)
	return w.UpdateStage(StageIncome, inc)
}

// SetBenefitStartAge picks when guaranteed income begins (62, 67 or 70)
func (w *Wizard) SetBenefitStartAge(age int) domain.CalculatorInput {
	inc := w.Input().Income
	inc.StartAge = age
	return w.UpdateStage(StageIncome, inc)
}

// SetTolerance changes the risk tolerance and applies the suggested rate for it
func (w *Wizard) SetTolerance(tolerance domain.RiskTolerance) domain.CalculatorInput {
	risk := w.Input().Risk
	risk.Tolerance = tolerance
	risk = withManualRate(risk, calculation.SuggestedRate(tolerance, risk.WithdrawalRate))
	return w.UpdateStage(StageRisk, risk)
}

// SelectStrategy switches to a catalog strategy and takes over its rate.
// Ids outside the catalog are ignored.
func (w *Wizard) SelectStrategy(id domain.StrategyID) domain.CalculatorInput {
	s, ok := domain.LookupStrategy(id)
	if !ok {
		w.logger.Warnf("unknown withdrawal strategy %q ignored", id)
		return w.Input()
	}
	risk := w.Input().Risk
	risk.Strategy = s.ID
	risk.WithdrawalRate = s.Rate
	return w.UpdateStage(StageRisk, risk)
}

// SetWithdrawalRate sets the rate by hand. A rate that differs from the selected
// strategy's rate relabels the strategy as custom.
func (w *Wizard) SetWithdrawalRate(rate decimal.Decimal) domain.CalculatorInput {
	risk := withManualRate(w.Input().Risk, rate)
	return w.UpdateStage(StageRisk, risk)
}

// SetCurrentSpending updates current annual spending
func (w *Wizard) SetCurrentSpending(text string) domain.CalculatorInput {
	s := w.Input().Spending
	s.CurrentAnnual = ParseAmount(text)
	return w.UpdateStage(StageSpending, s)
}

// SetProjection updates one decade's spending percentage
func (w *Wizard) SetProjection(decade domain.Decade, pct decimal.Decimal) domain.CalculatorInput {
	s := w.Input().Spending
	s.Projections = s.Projections.With(decade, pct)
	return w.UpdateStage(StageSpending, s)
}

func withManualRate(risk domain.Risk, rate decimal.Decimal) domain.Risk {
	rate = calculation.ClampWithdrawalRate(rate)
	if s, ok := domain.LookupStrategy(risk.Strategy); !ok || !s.Rate.Equal(rate) {
		risk.Strategy = domain.StrategyCustom
	}
	risk.WithdrawalRate = rate
	return risk
}

func clampInt64(n int64) int64 {
	const limit = 1 << 20
	return min(limit, max(-limit, n))
}
