package wizard

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

func TestParseWholeNumber(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"45", 45},
		{"  45", 45},
		{"-7", -7},
		{"+12", 12},
		{"1500abc", 1500},
		{"12.9", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWholeNumber(tt.text))
		})
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "250000", ParseAmount("250000").String())
	assert.Equal(t, "1234.5", ParseAmount(" 1234.50 ").String())
	assert.Equal(t, "1500", ParseAmount("1500abc").String())
	assert.True(t, ParseAmount("lots").IsZero())
}

func TestParseAmount_OutOfRange(t *testing.T) {
	for _, text := range []string{
		"1e999999999",
		"1E6",
		"2.5e-3",
		"1000000000000000",
		"99999999999999999999",
		"0.00000000001",
	} {
		assert.True(t, ParseAmount(text).IsZero(), text)
	}
	assert.Equal(t, "999999999999999", ParseAmount("999999999999999").String())
	assert.Equal(t, "0.0000000001", ParseAmount("0.0000000001").String())
}

func TestWizard_HugeAmountsStayFast(t *testing.T) {
	w := New()

	got := w.SetPortfolioValue("1e999999999")
	assert.True(t, got.Portfolio.TotalValue.IsZero())

	got = w.SetCurrentSpending("9e99999999")
	assert.True(t, got.Spending.CurrentAnnual.IsZero())

	// records handed to UpdateStage directly go through the same bound
	p := w.Input().Portfolio
	p.TotalValue = decimal.New(1, 999999999)
	got = w.UpdateStage(StagePortfolio, p)
	assert.True(t, got.Portfolio.TotalValue.IsZero())

	r := w.Input().Risk
	r.Strategy = domain.StrategyCustom
	r.WithdrawalRate = decimal.New(4, -999999999)
	got = w.UpdateStage(StageRisk, r)
	assert.Equal(t, "2.5", got.Risk.WithdrawalRate.String(), "an unreadable rate clamps to the minimum")

	result := w.Result()
	assert.True(t, result.FINumber.IsZero(), "no spending left to cover")
	assert.True(t, result.Achieved)
}

func TestWizard_MalformedTextReadsAsZero(t *testing.T) {
	w := New()

	got := w.SetAge("abc")
	assert.Equal(t, domain.MinAge, got.LifeExpectancy.Age, "0 clamps to the minimum age")

	got = w.SetPortfolioValue("abc")
	assert.True(t, got.Portfolio.TotalValue.IsZero())

	got = w.SetSocialSecurity("")
	assert.True(t, got.Income.SocialSecurity.IsZero())

	got = w.SetCurrentSpending("-500")
	assert.True(t, got.Spending.CurrentAnnual.IsZero(), "negative amounts floor at zero")
}

func TestWizard_DieWithZeroZeroesLegacy(t *testing.T) {
	w := New()
	w.SetLegacyAmount("200000")
	w.SetCharitableGiving("50000")
	assert.Equal(t, "250000", w.Input().Legacy.Total().String())

	got := w.SetDieWithZero(true)
	assert.True(t, got.Legacy.LegacyAmount.IsZero())
	assert.True(t, got.Legacy.CharitableGiving.IsZero())

	got = w.SetLegacyAmount("1000")
	assert.True(t, got.Legacy.LegacyAmount.IsZero(), "amounts stay zero while die-with-zero is set")

	w.SetDieWithZero(false)
	got = w.SetLegacyAmount("1000")
	assert.Equal(t, "1000", got.Legacy.LegacyAmount.String())
}

func TestWizard_AllocationNeverExceedsHundred(t *testing.T) {
	w := New()

	got := w.SetAllocation(domain.AssetCash, decimal.NewFromInt(10))
	assert.Equal(t, "3", got.Portfolio.Assets.Cash.String(), "edit pushing the total past 100 is dropped")

	w.SetAllocation(domain.AssetStocks, decimal.NewFromInt(60))
	got = w.SetAllocation(domain.AssetCash, decimal.NewFromInt(10))
	assert.Equal(t, "10", got.Portfolio.Assets.Cash.String())
	assert.Equal(t, "97", got.Portfolio.Assets.Total().String(), "other classes are never rescaled")

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		class := domain.AssetClasses[rng.Intn(len(domain.AssetClasses))]
		got = w.SetAllocation(class, decimal.NewFromInt(int64(rng.Intn(121)-10)))
		assert.True(t, got.Portfolio.Assets.Total().LessThanOrEqual(decimal.NewFromInt(100)))
		for _, c := range domain.AssetClasses {
			assert.False(t, got.Portfolio.Assets.Get(c).IsNegative())
		}
	}
}

func TestWizard_BenefitStartAge(t *testing.T) {
	w := New()
	assert.Equal(t, 70, w.SetBenefitStartAge(70).Income.StartAge)
	assert.Equal(t, 70, w.SetBenefitStartAge(64).Income.StartAge)
}

func TestWizard_StrategyAndRate(t *testing.T) {
	w := New()

	got := w.SelectStrategy(domain.StrategyGuardrails)
	assert.Equal(t, domain.StrategyGuardrails, got.Risk.Strategy)
	assert.Equal(t, "4.25", got.Risk.WithdrawalRate.String())

	got = w.SetWithdrawalRate(decimal.RequireFromString("4.25"))
	assert.Equal(t, domain.StrategyGuardrails, got.Risk.Strategy, "same rate keeps the strategy")

	got = w.SetWithdrawalRate(decimal.RequireFromString("5.1"))
	assert.Equal(t, domain.StrategyCustom, got.Risk.Strategy)
	assert.Equal(t, "5.1", got.Risk.WithdrawalRate.String())
	assert.Equal(t, domain.CustomStrategyName, w.Result().StrategyName)

	got = w.SetWithdrawalRate(decimal.NewFromInt(8))
	assert.Equal(t, "6", got.Risk.WithdrawalRate.String())

	got = w.SelectStrategy("unknown")
	assert.Equal(t, domain.StrategyCustom, got.Risk.Strategy, "unknown ids are ignored")
}

func TestWizard_SetTolerance(t *testing.T) {
	w := New()

	got := w.SetTolerance(domain.ToleranceConservative)
	assert.Equal(t, domain.ToleranceConservative, got.Risk.Tolerance)
	assert.Equal(t, "3.5", got.Risk.WithdrawalRate.String())
	assert.Equal(t, domain.StrategyCustom, got.Risk.Strategy)

	got = w.SetTolerance(domain.ToleranceAggressive)
	assert.Equal(t, "4.5", got.Risk.WithdrawalRate.String())

	w.SelectStrategy(domain.StrategyFourPercent)
	got = w.SetTolerance(domain.ToleranceModerate)
	assert.Equal(t, domain.StrategyFourPercent, got.Risk.Strategy, "moderate leaves the rate alone")
	assert.Equal(t, "4", got.Risk.WithdrawalRate.String())
}

func TestWizard_SetProjection(t *testing.T) {
	w := New()
	w.SetProjection(domain.DecadeEighties, decimal.NewFromInt(150))
	assert.Equal(t, "52500", w.Result().AverageAnnualSpending.String())

	got := w.SetProjection(domain.DecadeFifties, decimal.NewFromInt(5))
	assert.Equal(t, "30", got.Spending.Projections.Fifties.String())
}
