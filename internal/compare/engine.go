package compare

import (
	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

// CompareEngine runs the same input through every withdrawal strategy
type CompareEngine struct {
	CalcEngine        *calculation.ProjectionEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.ProjectionEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewProjectionEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Compare uses the input as given for the base result and swaps in each catalog
// strategy other than the base one for the alternatives.
func (ce *CompareEngine) Compare(input domain.CalculatorInput) *ComparisonSet {
	base := input.Clone()
	baseWithdrawal := calculation.ResolveWithdrawal(base.Risk)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseWithdrawal.Strategy, ce.CalcEngine.Compute(base))
	baseResult.Description = describe(baseWithdrawal.Strategy)

	alternatives := []ComparisonResult{}
	for _, s := range domain.WithdrawalStrategies() {
		if s.ID == baseWithdrawal.Strategy {
			continue
		}

		alt := input.Clone()
		alt.Risk.Strategy = s.ID
		alt.Risk.WithdrawalRate = s.Rate

		altResult := ce.MetricsCalculator.CalculateMetrics(s.ID, ce.CalcEngine.Compute(alt))
		altResult.Description = s.Description
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseStrategyName:   baseResult.StrategyName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet
}

func describe(id domain.StrategyID) string {
	if s, ok := domain.LookupStrategy(id); ok {
		return s.Description
	}
	return "Manually chosen withdrawal rate"
}
