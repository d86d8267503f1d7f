package config

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

var (
	hundred       = decimal.NewFromInt(100)
	minProjection = decimal.NewFromInt(30)
	maxProjection = decimal.NewFromInt(150)
)

// InputParser handles parsing of calculator input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads calculator input from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (domain.CalculatorInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes input over the defaults, validates it and normalizes derived fields.
// Sections missing from the document keep their default values.
func (ip *InputParser) Parse(data []byte) (domain.CalculatorInput, error) {
	input := domain.DefaultInput()
	if err := yaml.Unmarshal(data, &input); err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return domain.CalculatorInput{}, fmt.Errorf("input validation failed: %w", err)
	}

	Normalize(&input)
	return input, nil
}

// Normalize recomputes the adjusted life expectancy and lets a catalog strategy
// impose its rate. It assumes the input already passed ValidateInput.
func Normalize(input *domain.CalculatorInput) {
	le := &input.LifeExpectancy
	le.HealthFactors = lo.Uniq(le.HealthFactors)
	le.AdjustedAge = calculation.AdjustedLifeExpectancy(le.Age, le.HealthFactors)

	if s, ok := domain.LookupStrategy(input.Risk.Strategy); ok {
		input.Risk.WithdrawalRate = s.Rate
	}

	if input.Legacy.DieWithZero {
		input.Legacy.LegacyAmount = decimal.Zero
		input.Legacy.CharitableGiving = decimal.Zero
	}
}

// ValidateInput validates every section and reports the first failure
func (ip *InputParser) ValidateInput(input *domain.CalculatorInput) error {
	// Range checks compare and add decimals, so extreme exponents are rejected first
	if err := ip.validateMagnitudes(input); err != nil {
		return err
	}
	if err := ip.validateLifeExpectancy(&input.LifeExpectancy); err != nil {
		return fmt.Errorf("life_expectancy: %w", err)
	}
	if err := ip.validateLegacy(&input.Legacy); err != nil {
		return fmt.Errorf("legacy: %w", err)
	}
	if err := ip.validatePortfolio(&input.Portfolio); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	if err := ip.validateIncome(&input.Income); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	if err := ip.validateRisk(&input.Risk); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	if err := ip.validateSpending(&input.Spending); err != nil {
		return fmt.Errorf("spending: %w", err)
	}
	return nil
}

type namedAmount struct {
	field string
	value decimal.Decimal
}

func (ip *InputParser) validateMagnitudes(input *domain.CalculatorInput) error {
	amounts := []namedAmount{
		{"legacy.legacy_amount", input.Legacy.LegacyAmount},
		{"legacy.charitable_giving", input.Legacy.CharitableGiving},
		{"portfolio.total_value", input.Portfolio.TotalValue},
		{"income.social_security", input.Income.SocialSecurity},
		{"income.pension", input.Income.Pension},
		{"income.other_income", input.Income.OtherIncome},
		{"risk.withdrawal_rate", input.Risk.WithdrawalRate},
		{"spending.current_annual", input.Spending.CurrentAnnual},
	}
	for _, class := range domain.AssetClasses {
		amounts = append(amounts, namedAmount{"portfolio.assets." + string(class), input.Portfolio.Assets.Get(class)})
	}
	for _, d := range domain.Decades {
		amounts = append(amounts, namedAmount{"spending.projections." + string(d), input.Spending.Projections.Get(d)})
	}

	for _, a := range amounts {
		if err := domain.CheckAmount(a.value); err != nil {
			return fmt.Errorf("%s is out of range: %w", a.field, err)
		}
	}
	return nil
}

func (ip *InputParser) validateLifeExpectancy(le *domain.LifeExpectancy) error {
	if le.Age < domain.MinAge || le.Age > domain.MaxAge {
		return fmt.Errorf("age must be between %d and %d, got %d", domain.MinAge, domain.MaxAge, le.Age)
	}
	for _, id := range le.HealthFactors {
		if !id.Valid() {
			return fmt.Errorf("unknown health factor %q", id)
		}
	}
	return nil
}

func (ip *InputParser) validateLegacy(l *domain.Legacy) error {
	if err := requireNonNegative("legacy_amount", l.LegacyAmount); err != nil {
		return err
	}
	return requireNonNegative("charitable_giving", l.CharitableGiving)
}

func (ip *InputParser) validatePortfolio(p *domain.Portfolio) error {
	if err := requireNonNegative("total_value", p.TotalValue); err != nil {
		return err
	}
	for _, class := range domain.AssetClasses {
		pct := p.Assets.Get(class)
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return fmt.Errorf("assets.%s must be between 0 and 100, got %s", class, pct.String())
		}
	}
	if total := p.Assets.Total(); total.GreaterThan(hundred) {
		return fmt.Errorf("asset allocation sums to %s%%, must not exceed 100%%", total.String())
	}
	return nil
}

func (ip *InputParser) validateIncome(inc *domain.Income) error {
	if err := requireNonNegative("social_security", inc.SocialSecurity); err != nil {
		return err
	}
	if err := requireNonNegative("pension", inc.Pension); err != nil {
		return err
	}
	if err := requireNonNegative("other_income", inc.OtherIncome); err != nil {
		return err
	}
	if !lo.Contains(domain.BenefitStartAges, inc.StartAge) {
		return fmt.Errorf("start_age must be one of %v, got %d", domain.BenefitStartAges, inc.StartAge)
	}
	return nil
}

func (ip *InputParser) validateRisk(r *domain.Risk) error {
	if !r.Tolerance.Valid() {
		return fmt.Errorf("invalid tolerance %d", r.Tolerance)
	}
	if !r.Strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", r.Strategy)
	}
	if r.Strategy == domain.StrategyCustom {
		rate := r.WithdrawalRate
		if rate.LessThan(calculation.MinWithdrawalRate) || rate.GreaterThan(calculation.MaxWithdrawalRate) {
			return fmt.Errorf("withdrawal_rate must be between %s and %s, got %s",
				calculation.MinWithdrawalRate, calculation.MaxWithdrawalRate, rate)
		}
	}
	return nil
}

func (ip *InputParser) validateSpending(s *domain.Spending) error {
	if err := requireNonNegative("current_annual", s.CurrentAnnual); err != nil {
		return err
	}
	for _, d := range domain.Decades {
		pct := s.Projections.Get(d)
		if pct.LessThan(minProjection) || pct.GreaterThan(maxProjection) {
			return fmt.Errorf("projections.%s must be between 30 and 150, got %s", d, pct.String())
		}
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%s cannot be negative, got %s", field, v.String())
	}
	return nil
}
