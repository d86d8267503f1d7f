package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// DefaultExpectedReturn is the fixed annual growth assumed for the timeline estimate
const DefaultExpectedReturn = 0.07

var (
	behindTargetSteps = []string{
		"Increase savings rate",
		"Reduce current spending",
		"Consider working longer",
		"Optimize investment allocation",
		"Plan for part-time income in early retirement",
	}
	onTrackSteps = []string{
		"Stay the course with your plan",
		"Review annually and adjust",
		"Consider tax optimization strategies",
		"Plan your retirement transition",
		"Think about your legacy goals",
	}
)

// ProjectionEngine turns a CalculatorInput into the FI number and timeline
type ProjectionEngine struct {
	Logger Logger
	Debug  bool // Log each intermediate figure
}

// NewProjectionEngine creates an engine that logs nothing
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// ComputeResult runs the projection with a silent engine
func ComputeResult(input domain.CalculatorInput) domain.DerivedResult {
	return NewProjectionEngine().Compute(input)
}

// Compute derives the FI number, progress and timeline. It is a pure function of
// the input and handles every input without panicking.
func (pe *ProjectionEngine) Compute(input domain.CalculatorInput) domain.DerivedResult {
	avgSpending := AverageAnnualSpending(input.Spending)
	annualIncome := AnnualIncome(input.Income)
	netSpending := decimal.Max(decimal.Zero, avgSpending.Sub(annualIncome))

	withdrawal := ResolveWithdrawal(input.Risk)
	baseFI := netSpending.Mul(withdrawal.Multiplier)
	legacyTotal := input.Legacy.Total()
	fiNumber := baseFI.Add(legacyTotal)

	current := input.Portfolio.TotalValue
	remaining := decimal.Max(decimal.Zero, fiNumber.Sub(current))
	progress := progressPercentage(current, fiNumber)
	timeline := yearsToTarget(current, fiNumber, remaining)

	age := input.LifeExpectancy.Age
	adjusted := AdjustedLifeExpectancy(age, input.LifeExpectancy.HealthFactors)

	result := domain.DerivedResult{
		FINumber:               fiNumber,
		ProgressPercentage:     progress,
		RemainingNeeded:        remaining,
		YearsToFI:              timeline,
		Achieved:               remaining.IsZero(),
		AverageAnnualSpending:  avgSpending,
		AnnualIncome:           annualIncome,
		NetSpending:            netSpending,
		WithdrawalRate:         withdrawal.Rate,
		StrategyName:           withdrawal.StrategyName,
		PortfolioMultiplier:    withdrawal.Multiplier,
		BaseFINumber:           baseFI,
		LegacyTotal:            legacyTotal,
		CurrentPortfolio:       current,
		CurrentAge:             age,
		AdjustedLifeExpectancy: adjusted,
		PlanningHorizonYears:   adjusted - age,
		BenefitStartAge:        input.Income.StartAge,
	}
	if !timeline.Unbounded {
		fiAge := age + timeline.Years
		result.FIAge = &fiAge
	}
	result.Assessment = assess(input.Risk.Tolerance, result)

	if pe.Debug {
		pe.Logger.Debugf("average spending %s, annual income %s, net spending %s",
			avgSpending.StringFixed(2), annualIncome.StringFixed(2), netSpending.StringFixed(2))
		pe.Logger.Debugf("withdrawal %s at %s%% (x%s), legacy %s",
			withdrawal.StrategyName, withdrawal.Rate.String(), withdrawal.Multiplier.StringFixed(2), legacyTotal.StringFixed(2))
		pe.Logger.Debugf("FI number %s, progress %s%%, remaining %s, timeline %s",
			fiNumber.StringFixed(2), progress.StringFixed(1), remaining.StringFixed(2), timeline)
	}
	if timeline.Unbounded {
		pe.Logger.Warnf("portfolio is empty; FI number %s cannot be reached through growth alone", fiNumber.StringFixed(0))
	}

	return result
}

// progressPercentage is current/target as a percentage, capped at 100.
// A zero target means there is nothing left to save for.
func progressPercentage(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return hundred
	}
	pct := current.Div(target).Mul(hundred)
	return decimal.Max(decimal.Zero, decimal.Min(hundred, pct))
}

// yearsToTarget estimates the years of compound growth needed for current to reach target
func yearsToTarget(current, target, remaining decimal.Decimal) domain.Timeline {
	if !remaining.IsPositive() {
		return domain.BoundedTimeline(0)
	}
	if !current.IsPositive() {
		return domain.UnboundedTimeline()
	}

	ratio := target.Div(current).InexactFloat64()
	years := math.Ceil(math.Log(ratio) / math.Log(1+DefaultExpectedReturn))
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return domain.UnboundedTimeline()
	}
	return domain.BoundedTimeline(int(years))
}

// assess builds the risk summary and next-step advice shown with the results.
// A plan is on track when FI is reached no later than the benefit start age.
func assess(tolerance domain.RiskTolerance, r domain.DerivedResult) domain.Assessment {
	onTrack := r.Achieved || (r.FIAge != nil && *r.FIAge <= r.BenefitStartAge)
	steps := behindTargetSteps
	if onTrack {
		steps = onTrackSteps
	}
	return domain.Assessment{
		Tolerance:           tolerance,
		RiskLevel:           ClassifyRiskLevel(r.WithdrawalRate),
		SuccessRateEstimate: SuccessRateEstimate(r.WithdrawalRate),
		OnTrack:             onTrack,
		NextSteps:           append([]string(nil), steps...),
	}
}
