package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// ComparisonResult is one strategy's projection with its deltas from the base
type ComparisonResult struct {
	Strategy     domain.StrategyID    `json:"strategy"`
	StrategyName string               `json:"strategyName"`
	Description  string               `json:"description"`
	Result       domain.DerivedResult `json:"-"`

	// Key Metrics
	WithdrawalRate      decimal.Decimal  `json:"withdrawalRate"`
	FINumber            decimal.Decimal  `json:"fiNumber"`
	ProgressPercentage  decimal.Decimal  `json:"progressPercentage"`
	YearsToFI           domain.Timeline  `json:"yearsToFI"`
	FIAge               *int             `json:"fiAge"`
	RiskLevel           domain.RiskLevel `json:"riskLevel"`
	SuccessRateEstimate decimal.Decimal  `json:"successRateEstimate"`

	// Comparison to Base
	FINumberDiffFromBase decimal.Decimal `json:"fiNumberDiffFromBase"`
	FINumberPctFromBase  decimal.Decimal `json:"fiNumberPctFromBase"`
	YearsDiffFromBase    *int            `json:"yearsDiffFromBase"` // nil when either timeline is unbounded
}

// ComparisonSet is the base input's result plus one result per other catalog strategy
type ComparisonSet struct {
	BaseStrategyName   string             `json:"baseStrategyName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts comparison metrics from derived results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics copies the headline figures out of a derived result
func (mc *MetricsCalculator) CalculateMetrics(strategy domain.StrategyID, result domain.DerivedResult) ComparisonResult {
	return ComparisonResult{
		Strategy:            strategy,
		StrategyName:        result.StrategyName,
		Result:              result,
		WithdrawalRate:      result.WithdrawalRate,
		FINumber:            result.FINumber,
		ProgressPercentage:  result.ProgressPercentage,
		YearsToFI:           result.YearsToFI,
		FIAge:               result.FIAge,
		RiskLevel:           result.Assessment.RiskLevel,
		SuccessRateEstimate: result.Assessment.SuccessRateEstimate,
	}
}

// CalculateComparison computes deltas between a strategy and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.FINumberDiffFromBase = alt.FINumber.Sub(base.FINumber)

	if !base.FINumber.IsZero() {
		alt.FINumberPctFromBase = alt.FINumberDiffFromBase.
			Div(base.FINumber).
			Mul(decimal.NewFromInt(100))
	}

	if !alt.YearsToFI.Unbounded && !base.YearsToFI.Unbounded {
		diff := alt.YearsToFI.Years - base.YearsToFI.Years
		alt.YearsDiffFromBase = &diff
	}

	return alt
}

// GenerateRecommendations points out strategies that beat the base on speed or safety
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Fastest path to FI
	fastest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if earlier(alt.YearsToFI, fastest.YearsToFI) {
			fastest = alt
		}
	}

	if fastest != base {
		if base.YearsToFI.Unbounded {
			recommendations = append(recommendations,
				"Fastest Path: "+fastest.StrategyName+" reaches FI in "+fastest.YearsToFI.String())
		} else {
			recommendations = append(recommendations,
				"Fastest Path: "+fastest.StrategyName+" reaches FI "+
					fmt.Sprintf("%d years sooner", base.YearsToFI.Years-fastest.YearsToFI.Years))
		}
	}

	// Smallest target
	smallest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FINumber.LessThan(smallest.FINumber) {
			smallest = alt
		}
	}

	if smallest != base {
		savings := base.FINumber.Sub(smallest.FINumber)
		recommendations = append(recommendations,
			"Smallest Target: "+smallest.StrategyName+" needs $"+savings.StringFixed(0)+
				" less than "+base.StrategyName)
	}

	// Most durable withdrawal rate
	safest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SuccessRateEstimate.GreaterThan(safest.SuccessRateEstimate) {
			safest = alt
		}
	}

	if safest != base {
		recommendations = append(recommendations,
			"Most Durable: "+safest.StrategyName+" has an estimated "+
				safest.SuccessRateEstimate.StringFixed(0)+"% success rate")
	}

	return recommendations
}

// earlier reports whether timeline a finishes before b
func earlier(a, b domain.Timeline) bool {
	if a.Unbounded {
		return false
	}
	return b.Unbounded || a.Years < b.Years
}
