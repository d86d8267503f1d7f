package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

// EditRegistry provides a central registry of input edits keyed by field name.
// It enables creation of edits from "key=value" strings, useful for CLI flags.
type EditRegistry struct {
	factories map[string]EditFactory
}

// EditFactory creates an edit from its raw value.
type EditFactory func(value string) (InputEdit, error)

// NewEditRegistry creates a new registry with every input field registered.
func NewEditRegistry() *EditRegistry {
	registry := &EditRegistry{
		factories: make(map[string]EditFactory),
	}

	// Life expectancy
	registry.Register("age", createSetAge)
	registry.Register("health_factors", createSetHealthFactors)

	// Legacy
	registry.Register("die_with_zero", createSetDieWithZero)
	registry.Register("legacy_amount", amountEdit("legacy_amount", "legacy amount", (*wizard.Wizard).SetLegacyAmount,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Legacy.LegacyAmount }))
	registry.Register("charitable_giving", amountEdit("charitable_giving", "charitable giving", (*wizard.Wizard).SetCharitableGiving,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Legacy.CharitableGiving }))

	// Portfolio
	registry.Register("portfolio_value", amountEdit("portfolio_value", "portfolio value", (*wizard.Wizard).SetPortfolioValue,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Portfolio.TotalValue }))
	for _, class := range domain.AssetClasses {
		registry.Register("assets."+string(class), allocationEdit(class))
	}

	// Income
	registry.Register("social_security", amountEdit("social_security", "monthly social security", (*wizard.Wizard).SetSocialSecurity,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Income.SocialSecurity }))
	registry.Register("pension", amountEdit("pension", "monthly pension", (*wizard.Wizard).SetPension,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Income.Pension }))
	registry.Register("other_income", amountEdit("other_income", "other monthly income", (*wizard.Wizard).SetOtherIncome,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Income.OtherIncome }))
	registry.Register("start_age", createSetStartAge)

	// Risk
	registry.Register("tolerance", createSetTolerance)
	registry.Register("strategy", createSelectStrategy)
	registry.Register("withdrawal_rate", createSetWithdrawalRate)

	// Spending
	registry.Register("current_spending", amountEdit("current_spending", "current annual spending", (*wizard.Wizard).SetCurrentSpending,
		func(in domain.CalculatorInput) decimal.Decimal { return in.Spending.CurrentAnnual }))
	for _, d := range domain.Decades {
		registry.Register("projections."+string(d), projectionEdit(d))
	}

	return registry
}

// Register adds an edit factory to the registry.
func (r *EditRegistry) Register(key string, factory EditFactory) {
	r.factories[key] = factory
}

// Create creates an edit by key with the given raw value.
func (r *EditRegistry) Create(key, value string) (InputEdit, error) {
	factory, exists := r.factories[key]
	if !exists {
		return nil, fmt.Errorf("unknown field: %s", key)
	}

	return factory(value)
}

// List returns the registered keys in sorted order.
func (r *EditRegistry) List() []string {
	names := lo.Keys(r.factories)
	sort.Strings(names)
	return names
}

// ParseEditSpec parses an edit specification string.
// Format: "key=value"
// Example: "assets.stocks=60"
func (r *EditRegistry) ParseEditSpec(spec string) (InputEdit, error) {
	key, value, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, fmt.Errorf("invalid edit format, expected 'key=value', got: %s", spec)
	}

	return r.Create(strings.TrimSpace(key), strings.TrimSpace(value))
}

// ParseEditSpecs parses every spec, failing on the first invalid one.
func (r *EditRegistry) ParseEditSpecs(specs []string) ([]InputEdit, error) {
	edits := make([]InputEdit, 0, len(specs))
	for _, spec := range specs {
		edit, err := r.ParseEditSpec(spec)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

// Factory functions for each field

func createSetAge(value string) (InputEdit, error) {
	age, err := strconv.Atoi(value)
	if err != nil {
		return nil, NewEditError("age", "parse", "invalid age value", err)
	}
	if age < domain.MinAge || age > domain.MaxAge {
		return nil, NewEditError("age", "parse", fmt.Sprintf("age must be between %d and %d", domain.MinAge, domain.MaxAge), nil)
	}

	return &FieldEdit{
		Key:   "age",
		Value: value,
		desc:  fmt.Sprintf("Set current age to %d", age),
		apply: func(w *wizard.Wizard) error {
			w.SetAge(value)
			return nil
		},
	}, nil
}

func createSetHealthFactors(value string) (InputEdit, error) {
	var ids []domain.HealthFactorID
	if value != "" && value != "none" {
		for _, raw := range strings.Split(value, ",") {
			id := domain.HealthFactorID(strings.TrimSpace(raw))
			if !id.Valid() {
				return nil, NewEditError("health_factors", "parse", fmt.Sprintf("unknown health factor %q", id), nil)
			}
			ids = append(ids, id)
		}
	}

	return &FieldEdit{
		Key:   "health_factors",
		Value: value,
		desc:  fmt.Sprintf("Select health factors: %s", value),
		apply: func(w *wizard.Wizard) error {
			le := w.Input().LifeExpectancy
			le.HealthFactors = ids
			w.UpdateStage(wizard.StageLifeExpectancy, le)
			return nil
		},
	}, nil
}

func createSetDieWithZero(value string) (InputEdit, error) {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return nil, NewEditError("die_with_zero", "parse", "invalid boolean value", err)
	}

	return &FieldEdit{
		Key:   "die_with_zero",
		Value: value,
		desc:  fmt.Sprintf("Set die-with-zero to %t", on),
		apply: func(w *wizard.Wizard) error {
			w.SetDieWithZero(on)
			return nil
		},
	}, nil
}

// amountEdit builds a factory for a non-negative money field
func amountEdit(key, label string, set func(*wizard.Wizard, string) domain.CalculatorInput, get func(domain.CalculatorInput) decimal.Decimal) EditFactory {
	return func(value string) (InputEdit, error) {
		amount, err := parseNumber(value)
		if err != nil {
			return nil, NewEditError(key, "parse", "invalid amount", err)
		}
		if amount.IsNegative() {
			return nil, NewEditError(key, "parse", "amount cannot be negative", nil)
		}

		return &FieldEdit{
			Key:   key,
			Value: value,
			desc:  fmt.Sprintf("Set %s to %s", label, amount.String()),
			apply: func(w *wizard.Wizard) error {
				got := get(set(w, value))
				if !got.Equal(amount) {
					return NewEditError(key, "apply", fmt.Sprintf("value kept at %s", got.String()), nil)
				}
				return nil
			},
		}, nil
	}
}

func allocationEdit(class domain.AssetClass) EditFactory {
	key := "assets." + string(class)
	return func(value string) (InputEdit, error) {
		pct, err := parsePercent(key, value, decimal.Zero, decimal.NewFromInt(100))
		if err != nil {
			return nil, err
		}

		return &FieldEdit{
			Key:   key,
			Value: value,
			desc:  fmt.Sprintf("Allocate %s%% to %s", pct.String(), class.Label()),
			apply: func(w *wizard.Wizard) error {
				got := w.SetAllocation(class, pct)
				if !got.Portfolio.Assets.Get(class).Equal(pct) {
					return NewEditError(key, "apply", "rejected", wizard.ErrAllocationExceeded)
				}
				return nil
			},
		}, nil
	}
}

func createSetStartAge(value string) (InputEdit, error) {
	age, err := strconv.Atoi(value)
	if err != nil {
		return nil, NewEditError("start_age", "parse", "invalid age value", err)
	}
	if !lo.Contains(domain.BenefitStartAges, age) {
		return nil, NewEditError("start_age", "parse", fmt.Sprintf("start age must be one of %v", domain.BenefitStartAges), nil)
	}

	return &FieldEdit{
		Key:   "start_age",
		Value: value,
		desc:  fmt.Sprintf("Start guaranteed income at %d", age),
		apply: func(w *wizard.Wizard) error {
			w.SetBenefitStartAge(age)
			return nil
		},
	}, nil
}

func createSetTolerance(value string) (InputEdit, error) {
	tolerance, err := domain.ParseRiskTolerance(value)
	if err != nil {
		return nil, NewEditError("tolerance", "parse", "invalid tolerance", err)
	}

	return &FieldEdit{
		Key:   "tolerance",
		Value: value,
		desc:  fmt.Sprintf("Set risk tolerance to %s", tolerance.Label()),
		apply: func(w *wizard.Wizard) error {
			w.SetTolerance(tolerance)
			return nil
		},
	}, nil
}

func createSelectStrategy(value string) (InputEdit, error) {
	s, ok := domain.LookupStrategy(domain.StrategyID(value))
	if !ok {
		return nil, NewEditError("strategy", "parse", fmt.Sprintf("unknown strategy %q", value), nil)
	}

	return &FieldEdit{
		Key:   "strategy",
		Value: value,
		desc:  fmt.Sprintf("Use the %s strategy", s.Name),
		apply: func(w *wizard.Wizard) error {
			w.SelectStrategy(s.ID)
			return nil
		},
	}, nil
}

func createSetWithdrawalRate(value string) (InputEdit, error) {
	rate, err := parsePercent("withdrawal_rate", value, calculation.MinWithdrawalRate, calculation.MaxWithdrawalRate)
	if err != nil {
		return nil, err
	}

	return &FieldEdit{
		Key:   "withdrawal_rate",
		Value: value,
		desc:  fmt.Sprintf("Withdraw %s%% per year", rate.String()),
		apply: func(w *wizard.Wizard) error {
			w.SetWithdrawalRate(rate)
			return nil
		},
	}, nil
}

func projectionEdit(d domain.Decade) EditFactory {
	key := "projections." + string(d)
	return func(value string) (InputEdit, error) {
		pct, err := parsePercent(key, value, decimal.NewFromInt(30), decimal.NewFromInt(150))
		if err != nil {
			return nil, err
		}

		return &FieldEdit{
			Key:   key,
			Value: value,
			desc:  fmt.Sprintf("Spend %s%% of today's budget in your %s", pct.String(), d.Label()),
			apply: func(w *wizard.Wizard) error {
				w.SetProjection(d, pct)
				return nil
			},
		}, nil
	}
}

func parsePercent(key, value string, low, high decimal.Decimal) (decimal.Decimal, error) {
	pct, err := parseNumber(strings.TrimSuffix(value, "%"))
	if err != nil {
		return decimal.Zero, NewEditError(key, "parse", "invalid percentage", err)
	}
	if pct.LessThan(low) || pct.GreaterThan(high) {
		return decimal.Zero, NewEditError(key, "parse", fmt.Sprintf("must be between %s and %s", low.String(), high.String()), nil)
	}
	return pct, nil
}

// parseNumber reads a plain decimal. Exponent notation and values outside
// domain.CheckAmount are errors, so later comparisons stay cheap.
func parseNumber(value string) (decimal.Decimal, error) {
	if strings.ContainsAny(value, "eE") {
		return decimal.Zero, fmt.Errorf("exponent notation not supported: %q", value)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if err := domain.CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
