package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultInput(t *testing.T) {
	input := DefaultInput()

	assert.Equal(t, 25, input.LifeExpectancy.Age)
	assert.Equal(t, BaseLifeExpectancy, input.LifeExpectancy.AdjustedAge)
	assert.Empty(t, input.LifeExpectancy.HealthFactors)
	assert.False(t, input.Legacy.DieWithZero)
	assert.True(t, input.Portfolio.Assets.Total().Equal(decimal.NewFromInt(100)), "default allocation should be fully assigned")
	assert.Equal(t, 67, input.Income.StartAge)
	assert.Equal(t, ToleranceModerate, input.Risk.Tolerance)
	assert.Equal(t, StrategyFourPercent, input.Risk.Strategy)
	assert.True(t, input.Spending.Projections.Sum().Equal(decimal.NewFromInt(340)))
}

func TestCalculatorInput_CloneIsDeep(t *testing.T) {
	original := DefaultInput()
	original.LifeExpectancy.HealthFactors = []HealthFactorID{FactorExercise}

	clone := original.Clone()
	clone.LifeExpectancy.HealthFactors[0] = FactorNonSmoker

	assert.Equal(t, FactorExercise, original.LifeExpectancy.HealthFactors[0], "clone must not share the factor slice")
}

func TestAssetAllocation_WithAndGet(t *testing.T) {
	alloc := DefaultInput().Portfolio.Assets

	updated := alloc.With(AssetCash, decimal.NewFromInt(10))

	assert.True(t, updated.Get(AssetCash).Equal(decimal.NewFromInt(10)))
	assert.True(t, alloc.Get(AssetCash).Equal(decimal.NewFromInt(3)), "With must not modify the receiver")
	assert.True(t, updated.Total().Equal(decimal.NewFromInt(107)))
}

func TestLegacy_Total(t *testing.T) {
	legacy := Legacy{LegacyAmount: decimal.NewFromInt(100000), CharitableGiving: decimal.NewFromInt(25000)}
	assert.True(t, legacy.Total().Equal(decimal.NewFromInt(125000)))

	legacy.DieWithZero = true
	assert.True(t, legacy.Total().IsZero())
}

func TestCatalogs(t *testing.T) {
	factor, ok := LookupHealthFactor(FactorNonSmoker)
	require.True(t, ok)
	assert.Equal(t, 5, factor.Adjustment)

	_, ok = LookupHealthFactor("juggling")
	assert.False(t, ok)

	strategy, ok := LookupStrategy(StrategyGuardrails)
	require.True(t, ok)
	assert.Equal(t, "4.25", strategy.Rate.String())
	assert.Equal(t, "Guardrails (3.5-5%)", StrategyGuardrails.Name())

	_, ok = LookupStrategy(StrategyCustom)
	assert.False(t, ok, "custom is a label, not a catalog entry")
	assert.True(t, StrategyCustom.Valid())
	assert.Equal(t, CustomStrategyName, StrategyCustom.Name())
	assert.False(t, StrategyID("yolo").Valid())

	// Accessors hand out copies
	factors := HealthFactors()
	factors[0].Adjustment = 99
	again, _ := LookupHealthFactor(factors[0].ID)
	assert.Equal(t, 3, again.Adjustment)

	assert.Len(t, WithdrawalStrategies(), 5)
}

func TestRiskTolerance_Text(t *testing.T) {
	tests := []struct {
		in      string
		want    RiskTolerance
		wantErr bool
	}{
		{"conservative", ToleranceConservative, false},
		{" Moderate ", ToleranceModerate, false},
		{"AGGRESSIVE", ToleranceAggressive, false},
		{"reckless", ToleranceModerate, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRiskTolerance(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := RiskTolerance(7).MarshalText()
	assert.Error(t, err)
}

func TestCalculatorInput_YAML(t *testing.T) {
	doc := `
risk:
  tolerance: aggressive
  withdrawal_rate: 4.5
  strategy: dynamic-45
spending:
  current_annual: 60000
`
	input := DefaultInput()
	require.NoError(t, yaml.Unmarshal([]byte(doc), &input))

	assert.Equal(t, ToleranceAggressive, input.Risk.Tolerance)
	assert.Equal(t, "4.5", input.Risk.WithdrawalRate.String())
	assert.Equal(t, StrategyDynamic45, input.Risk.Strategy)
	assert.Equal(t, "60000", input.Spending.CurrentAnnual.String())
	// untouched sections keep their defaults
	assert.Equal(t, 25, input.LifeExpectancy.Age)
	assert.Equal(t, "100", input.Spending.Projections.Fifties.String())
}

func TestTimeline(t *testing.T) {
	assert.Equal(t, "unbounded", UnboundedTimeline().String())
	assert.Equal(t, "23 years", BoundedTimeline(23).String())
	assert.Equal(t, "1 year", BoundedTimeline(1).String())
	assert.Equal(t, 0, BoundedTimeline(-4).Years)

	data, err := UnboundedTimeline().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"unbounded"`, string(data))

	data, err = BoundedTimeline(12).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `12`, string(data))
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		name  string
		value decimal.Decimal
		ok    bool
	}{
		{"zero", decimal.Zero, true},
		{"largest whole amount", decimal.RequireFromString("999999999999999"), true},
		{"ten decimal places", decimal.RequireFromString("0.0000000001"), true},
		{"negative in range", decimal.NewFromInt(-500), true},
		{"a quadrillion", decimal.New(1, 15), false},
		{"huge exponent", decimal.New(1, 999999999), false},
		{"tiny exponent", decimal.New(1, -999999999), false},
		{"zero with huge exponent", decimal.New(0, 999999999), false},
		{"eleven decimal places", decimal.RequireFromString("0.00000000001"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAmount(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
