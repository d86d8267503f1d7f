package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

func TestCompareEngine_DefaultInput(t *testing.T) {
	ce := NewCompareEngine(nil)
	require.NotNil(t, ce.CalcEngine)

	compSet := ce.Compare(domain.DefaultInput())

	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, "4% Rule (Fixed)", compSet.BaseStrategyName)
	assert.Equal(t, "462500", compSet.BaseResult.FINumber.String())
	assert.Len(t, compSet.AlternativeResults, len(domain.WithdrawalStrategies())-1, "base strategy is not repeated")

	for _, alt := range compSet.AlternativeResults {
		assert.NotEqual(t, domain.StrategyFourPercent, alt.Strategy)
		assert.NotEmpty(t, alt.Description)
		require.NotNil(t, alt.YearsDiffFromBase)
	}

	byID := map[domain.StrategyID]ComparisonResult{}
	for _, alt := range compSet.AlternativeResults {
		byID[alt.Strategy] = alt
	}
	assert.Equal(t, "411111", byID[domain.StrategyDynamic45].FINumber.StringFixed(0))
	assert.True(t, byID[domain.StrategyBondTent].FINumberDiffFromBase.IsZero())
	assert.True(t, byID[domain.StrategyDynamic35].FINumberDiffFromBase.IsPositive())
	assert.Less(t, *byID[domain.StrategyDynamic45].YearsDiffFromBase, 0)

	assert.Len(t, compSet.Recommendations, 3)
	assert.Contains(t, compSet.Recommendations[0], "Fastest Path: Dynamic 4.5%")
	assert.Contains(t, compSet.Recommendations[1], "needs $51389 less")
	assert.Contains(t, compSet.Recommendations[2], "Dynamic 3.5% has an estimated 93% success rate")
}

func TestCompareEngine_CustomBase(t *testing.T) {
	input := domain.DefaultInput()
	input.Risk.Strategy = domain.StrategyCustom
	input.Risk.WithdrawalRate = decimal.NewFromInt(3)

	compSet := NewCompareEngine(nil).Compare(input)

	assert.Equal(t, domain.CustomStrategyName, compSet.BaseStrategyName)
	assert.Equal(t, domain.StrategyCustom, compSet.BaseResult.Strategy)
	assert.Len(t, compSet.AlternativeResults, len(domain.WithdrawalStrategies()))
	assert.Equal(t, "3", input.Risk.WithdrawalRate.String(), "input is not modified")
}

func TestCompareEngine_EmptyPortfolio(t *testing.T) {
	input := domain.DefaultInput()
	input.Portfolio.TotalValue = decimal.Zero

	compSet := NewCompareEngine(nil).Compare(input)

	assert.True(t, compSet.BaseResult.YearsToFI.Unbounded)
	for _, alt := range compSet.AlternativeResults {
		assert.Nil(t, alt.YearsDiffFromBase, "no year delta against an unbounded timeline")
	}
	for _, rec := range compSet.Recommendations {
		assert.NotContains(t, rec, "Fastest Path")
	}
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &ComparisonResult{}}))
}

func TestEarlier(t *testing.T) {
	assert.True(t, earlier(domain.BoundedTimeline(3), domain.BoundedTimeline(5)))
	assert.True(t, earlier(domain.BoundedTimeline(30), domain.UnboundedTimeline()))
	assert.False(t, earlier(domain.UnboundedTimeline(), domain.BoundedTimeline(5)))
	assert.False(t, earlier(domain.UnboundedTimeline(), domain.UnboundedTimeline()))
}
