package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// HealthFactorID identifies a lifestyle attribute that adjusts life expectancy
type HealthFactorID string

const (
	FactorExercise          HealthFactorID = "exercise"
	FactorNonSmoker         HealthFactorID = "nonsmoker"
	FactorHealthyDiet       HealthFactorID = "healthy-diet"
	FactorFamilyLongevity   HealthFactorID = "family-longevity"
	FactorStressManagement  HealthFactorID = "stress-management"
	FactorSocialConnections HealthFactorID = "social-connections"
	FactorPreventiveCare    HealthFactorID = "preventive-care"
)

// HealthFactor is a catalog entry with its year adjustment
type HealthFactor struct {
	ID         HealthFactorID `json:"id"`
	Label      string         `json:"label"`
	Adjustment int            `json:"adjustment"`
}

var healthFactorCatalog = []HealthFactor{
	{ID: FactorExercise, Label: "Regular Exercise (3+ times/week)", Adjustment: 3},
	{ID: FactorNonSmoker, Label: "Non-smoker", Adjustment: 5},
	{ID: FactorHealthyDiet, Label: "Healthy Diet", Adjustment: 2},
	{ID: FactorFamilyLongevity, Label: "Family History of Longevity", Adjustment: 4},
	{ID: FactorStressManagement, Label: "Good Stress Management", Adjustment: 2},
	{ID: FactorSocialConnections, Label: "Strong Social Connections", Adjustment: 3},
	{ID: FactorPreventiveCare, Label: "Regular Preventive Healthcare", Adjustment: 2},
}

// HealthFactors returns a copy of the health factor catalog in display order
func HealthFactors() []HealthFactor {
	return append([]HealthFactor(nil), healthFactorCatalog...)
}

// LookupHealthFactor finds a factor by id
func LookupHealthFactor(id HealthFactorID) (HealthFactor, bool) {
	return lo.Find(healthFactorCatalog, func(f HealthFactor) bool { return f.ID == id })
}

// Valid reports whether the id exists in the catalog
func (id HealthFactorID) Valid() bool {
	_, ok := LookupHealthFactor(id)
	return ok
}

// StrategyID identifies a withdrawal strategy
type StrategyID string

const (
	StrategyFourPercent StrategyID = "4-percent"
	StrategyDynamic35   StrategyID = "dynamic-35"
	StrategyDynamic45   StrategyID = "dynamic-45"
	StrategyBondTent    StrategyID = "bond-tent"
	StrategyGuardrails  StrategyID = "guardrails"

	// StrategyCustom marks a manually chosen rate that no catalog entry matches
	StrategyCustom StrategyID = "custom"
)

// CustomStrategyName is the label shown for StrategyCustom
const CustomStrategyName = "Custom"

// WithdrawalStrategy is a catalog entry describing a withdrawal approach
type WithdrawalStrategy struct {
	ID          StrategyID      `json:"id"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
}

var withdrawalStrategyCatalog = []WithdrawalStrategy{
	{
		ID:          StrategyFourPercent,
		Name:        "4% Rule (Fixed)",
		Rate:        decimal.NewFromInt(4),
		Description: "Withdraw 4% of initial portfolio, adjusted for inflation yearly",
	},
	{
		ID:          StrategyDynamic35,
		Name:        "Dynamic 3.5%",
		Rate:        decimal.RequireFromString("3.5"),
		Description: "Start at 3.5%, adjust based on market performance",
	},
	{
		ID:          StrategyDynamic45,
		Name:        "Dynamic 4.5%",
		Rate:        decimal.RequireFromString("4.5"),
		Description: "Higher initial rate with market-based adjustments",
	},
	{
		ID:          StrategyBondTent,
		Name:        "Bond Tent Strategy",
		Rate:        decimal.NewFromInt(4),
		Description: "Increase bond allocation as you age, 4% withdrawal",
	},
	{
		ID:          StrategyGuardrails,
		Name:        "Guardrails (3.5-5%)",
		Rate:        decimal.RequireFromString("4.25"),
		Description: "Adjust spending based on portfolio performance guardrails",
	},
}

// WithdrawalStrategies returns a copy of the strategy catalog in display order
func WithdrawalStrategies() []WithdrawalStrategy {
	return append([]WithdrawalStrategy(nil), withdrawalStrategyCatalog...)
}

// LookupStrategy finds a catalog strategy by id. StrategyCustom is not in the catalog.
func LookupStrategy(id StrategyID) (WithdrawalStrategy, bool) {
	return lo.Find(withdrawalStrategyCatalog, func(s WithdrawalStrategy) bool { return s.ID == id })
}

// Valid reports whether id is a catalog strategy or StrategyCustom
func (id StrategyID) Valid() bool {
	if id == StrategyCustom {
		return true
	}
	_, ok := LookupStrategy(id)
	return ok
}

// Name returns the display name for the strategy id
func (id StrategyID) Name() string {
	if s, ok := LookupStrategy(id); ok {
		return s.Name
	}
	return CustomStrategyName
}
