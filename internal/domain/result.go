package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Timeline is the estimated number of years until the FI number is reached.
// Unbounded is set when growth alone can never close the gap (no portfolio to grow).
type Timeline struct {
	Years     int
	Unbounded bool
}

// BoundedTimeline returns a finite timeline
func BoundedTimeline(years int) Timeline {
	if years < 0 {
		years = 0
	}
	return Timeline{Years: years}
}

// UnboundedTimeline returns the sentinel for an unreachable target
func UnboundedTimeline() Timeline {
	return Timeline{Unbounded: true}
}

func (t Timeline) String() string {
	if t.Unbounded {
		return "unbounded"
	}
	if t.Years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", t.Years)
}

// MarshalJSON renders bounded timelines as a number and unbounded ones as "unbounded"
func (t Timeline) MarshalJSON() ([]byte, error) {
	if t.Unbounded {
		return []byte(`"unbounded"`), nil
	}
	return []byte(strconv.Itoa(t.Years)), nil
}

// DerivedResult is the output of the projection engine. It is recomputed from a
// CalculatorInput on demand and never stored.
type DerivedResult struct {
	FINumber           decimal.Decimal `json:"fi_number"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	RemainingNeeded    decimal.Decimal `json:"remaining_needed"`
	YearsToFI          Timeline        `json:"years_to_fi"`
	FIAge              *int            `json:"fi_age"` // nil when the timeline is unbounded
	Achieved           bool            `json:"achieved"`

	// Calculation breakdown
	AverageAnnualSpending  decimal.Decimal `json:"average_annual_spending"`
	AnnualIncome           decimal.Decimal `json:"annual_income"`
	NetSpending            decimal.Decimal `json:"net_spending"`
	WithdrawalRate         decimal.Decimal `json:"withdrawal_rate"`
	StrategyName           string          `json:"strategy_name"`
	PortfolioMultiplier    decimal.Decimal `json:"portfolio_multiplier"`
	BaseFINumber           decimal.Decimal `json:"base_fi_number"`
	LegacyTotal            decimal.Decimal `json:"legacy_total"`
	CurrentPortfolio       decimal.Decimal `json:"current_portfolio"`
	CurrentAge             int             `json:"current_age"`
	AdjustedLifeExpectancy int             `json:"adjusted_life_expectancy"`
	PlanningHorizonYears   int             `json:"planning_horizon_years"`
	BenefitStartAge        int             `json:"benefit_start_age"`

	Assessment Assessment `json:"assessment"`
}

// Assessment summarizes the risk profile and suggested next steps
type Assessment struct {
	Tolerance           RiskTolerance   `json:"tolerance"`
	RiskLevel           RiskLevel       `json:"risk_level"`
	SuccessRateEstimate decimal.Decimal `json:"success_rate_estimate"`
	OnTrack             bool            `json:"on_track"`
	NextSteps           []string        `json:"next_steps"`
}
