package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Planning constants shared by the projection models
const (
	// BaseLifeExpectancy is the average life expectancy used before health adjustments
	BaseLifeExpectancy = 82
	// MinPlanningHorizon is the minimum number of years planned past the current age
	MinPlanningHorizon = 10

	MinAge = 18
	MaxAge = 100
)

// Bounds on numbers read from text or files. Arithmetic on a decimal rescales to
// the smaller exponent, so both ends of the exponent range are capped.
const (
	// MaxAmountDigits is the most whole-number digits accepted (under a quadrillion)
	MaxAmountDigits = 15
	// MaxAmountScale is the most fractional digits accepted
	MaxAmountScale = 10
)

// CheckAmount reports whether d fits the bounds above. It never rescales d,
// so it is safe to call on values with extreme exponents.
func CheckAmount(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxAmountScale {
		return fmt.Errorf("more than %d decimal places", MaxAmountScale)
	}
	if exp > MaxAmountDigits {
		return fmt.Errorf("more than %d digits", MaxAmountDigits)
	}
	if d.IsZero() {
		return nil
	}
	coef := d.Coefficient()
	if len(coef.Abs(coef).String())+int(exp) > MaxAmountDigits {
		return fmt.Errorf("more than %d digits", MaxAmountDigits)
	}
	return nil
}

// Valid benefit start ages offered by the income stage
var BenefitStartAges = []int{62, 67, 70}

// CalculatorInput is the aggregate of everything collected by the wizard.
// It is only ever changed by replacing one of its sub-records as a whole.
type CalculatorInput struct {
	LifeExpectancy LifeExpectancy `yaml:"life_expectancy" json:"life_expectancy"`
	Legacy         Legacy         `yaml:"legacy" json:"legacy"`
	Portfolio      Portfolio      `yaml:"portfolio" json:"portfolio"`
	Income         Income         `yaml:"income" json:"income"`
	Risk           Risk           `yaml:"risk" json:"risk"`
	Spending       Spending       `yaml:"spending" json:"spending"`
}

// LifeExpectancy holds the current age and selected longevity factors
type LifeExpectancy struct {
	Age           int              `yaml:"age" json:"age"`
	AdjustedAge   int              `yaml:"adjusted_age" json:"adjusted_age"`
	HealthFactors []HealthFactorID `yaml:"health_factors" json:"health_factors"`
}

// HasFactor reports whether the factor is selected
func (le LifeExpectancy) HasFactor(id HealthFactorID) bool {
	for _, f := range le.HealthFactors {
		if f == id {
			return true
		}
	}
	return false
}

// Legacy captures end-of-life financial goals
type Legacy struct {
	DieWithZero      bool            `yaml:"die_with_zero" json:"die_with_zero"`
	LegacyAmount     decimal.Decimal `yaml:"legacy_amount" json:"legacy_amount"`
	CharitableGiving decimal.Decimal `yaml:"charitable_giving" json:"charitable_giving"`
}

// Total returns the amount that must remain at end of life
func (l Legacy) Total() decimal.Decimal {
	if l.DieWithZero {
		return decimal.Zero
	}
	return l.LegacyAmount.Add(l.CharitableGiving)
}

// Portfolio is the current invested portfolio
type Portfolio struct {
	TotalValue decimal.Decimal `yaml:"total_value" json:"total_value"`
	Assets     AssetAllocation `yaml:"assets" json:"assets"`
}

// AssetClass names one slice of the allocation
type AssetClass string

const (
	AssetStocks     AssetClass = "stocks"
	AssetBonds      AssetClass = "bonds"
	AssetRealEstate AssetClass = "real_estate"
	AssetCash       AssetClass = "cash"
	AssetOther      AssetClass = "other"
)

// AssetClasses lists the allocation slices in display order
var AssetClasses = []AssetClass{AssetStocks, AssetBonds, AssetRealEstate, AssetCash, AssetOther}

// Label returns the display label for the asset class
func (ac AssetClass) Label() string {
	switch ac {
	case AssetStocks:
		return "Stocks/Equity"
	case AssetBonds:
		return "Bonds/Fixed Income"
	case AssetRealEstate:
		return "Real Estate"
	case AssetCash:
		return "Cash/Savings"
	case AssetOther:
		return "Other Assets"
	default:
		return string(ac)
	}
}

// AssetAllocation is the percentage split of the portfolio
type AssetAllocation struct {
	Stocks     decimal.Decimal `yaml:"stocks" json:"stocks"`
	Bonds      decimal.Decimal `yaml:"bonds" json:"bonds"`
	RealEstate decimal.Decimal `yaml:"real_estate" json:"real_estate"`
	Cash       decimal.Decimal `yaml:"cash" json:"cash"`
	Other      decimal.Decimal `yaml:"other" json:"other"`
}

// Get returns the percentage held in the given class
func (a AssetAllocation) Get(class AssetClass) decimal.Decimal {
	switch class {
	case AssetStocks:
		return a.Stocks
	case AssetBonds:
		return a.Bonds
	case AssetRealEstate:
		return a.RealEstate
	case AssetCash:
		return a.Cash
	case AssetOther:
		return a.Other
	default:
		return decimal.Zero
	}
}

// With returns a copy of the allocation with one class replaced
func (a AssetAllocation) With(class AssetClass, pct decimal.Decimal) AssetAllocation {
	switch class {
	case AssetStocks:
		a.Stocks = pct
	case AssetBonds:
		a.Bonds = pct
	case AssetRealEstate:
		a.RealEstate = pct
	case AssetCash:
		a.Cash = pct
	case AssetOther:
		a.Other = pct
	}
	return a
}

// Total returns the sum of all allocation percentages
func (a AssetAllocation) Total() decimal.Decimal {
	return a.Stocks.Add(a.Bonds).Add(a.RealEstate).Add(a.Cash).Add(a.Other)
}

// Income holds guaranteed monthly income streams
type Income struct {
	SocialSecurity decimal.Decimal `yaml:"social_security" json:"social_security"`
	Pension        decimal.Decimal `yaml:"pension" json:"pension"`
	OtherIncome    decimal.Decimal `yaml:"other_income" json:"other_income"`
	StartAge       int             `yaml:"start_age" json:"start_age"`
}

// Risk captures the investor's tolerance and withdrawal approach
type Risk struct {
	Tolerance      RiskTolerance   `yaml:"tolerance" json:"tolerance"`
	WithdrawalRate decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`
	Strategy       StrategyID      `yaml:"strategy" json:"strategy"`
}

// Spending describes current spending and how it changes per decade
type Spending struct {
	CurrentAnnual decimal.Decimal     `yaml:"current_annual" json:"current_annual"`
	Projections   SpendingProjections `yaml:"projections" json:"projections"`
}

// Decade identifies one of the spending projection decades
type Decade string

const (
	DecadeFifties   Decade = "fifties"
	DecadeSixties   Decade = "sixties"
	DecadeSeventies Decade = "seventies"
	DecadeEighties  Decade = "eighties"
)

// Decades lists projection decades in order
var Decades = []Decade{DecadeFifties, DecadeSixties, DecadeSeventies, DecadeEighties}

// Label returns the short display label
func (d Decade) Label() string {
	switch d {
	case DecadeFifties:
		return "50s"
	case DecadeSixties:
		return "60s"
	case DecadeSeventies:
		return "70s"
	case DecadeEighties:
		return "80s+"
	default:
		return string(d)
	}
}

// SpendingProjections are percentages of current spending for each decade
type SpendingProjections struct {
	Fifties   decimal.Decimal `yaml:"fifties" json:"fifties"`
	Sixties   decimal.Decimal `yaml:"sixties" json:"sixties"`
	Seventies decimal.Decimal `yaml:"seventies" json:"seventies"`
	Eighties  decimal.Decimal `yaml:"eighties" json:"eighties"`
}

// Get returns the projection percentage for a decade
func (p SpendingProjections) Get(d Decade) decimal.Decimal {
	switch d {
	case DecadeFifties:
		return p.Fifties
	case DecadeSixties:
		return p.Sixties
	case DecadeSeventies:
		return p.Seventies
	case DecadeEighties:
		return p.Eighties
	default:
		return decimal.Zero
	}
}

// With returns a copy with one decade replaced
func (p SpendingProjections) With(d Decade, pct decimal.Decimal) SpendingProjections {
	switch d {
	case DecadeFifties:
		p.Fifties = pct
	case DecadeSixties:
		p.Sixties = pct
	case DecadeSeventies:
		p.Seventies = pct
	case DecadeEighties:
		p.Eighties = pct
	}
	return p
}

// Sum returns the sum of the four percentages
func (p SpendingProjections) Sum() decimal.Decimal {
	return p.Fifties.Add(p.Sixties).Add(p.Seventies).Add(p.Eighties)
}

// DefaultInput returns the inputs a new wizard session starts with
func DefaultInput() CalculatorInput {
	return CalculatorInput{
		LifeExpectancy: LifeExpectancy{
			Age:           25,
			AdjustedAge:   BaseLifeExpectancy,
			HealthFactors: []HealthFactorID{},
		},
		Legacy: Legacy{
			LegacyAmount:     decimal.Zero,
			CharitableGiving: decimal.Zero,
		},
		Portfolio: Portfolio{
			TotalValue: decimal.NewFromInt(100000),
			Assets: AssetAllocation{
				Stocks:     decimal.NewFromInt(70),
				Bonds:      decimal.NewFromInt(20),
				RealEstate: decimal.NewFromInt(5),
				Cash:       decimal.NewFromInt(3),
				Other:      decimal.NewFromInt(2),
			},
		},
		Income: Income{
			SocialSecurity: decimal.NewFromInt(2000),
			Pension:        decimal.Zero,
			OtherIncome:    decimal.Zero,
			StartAge:       67,
		},
		Risk: Risk{
			Tolerance:      ToleranceModerate,
			WithdrawalRate: decimal.NewFromInt(4),
			Strategy:       StrategyFourPercent,
		},
		Spending: Spending{
			CurrentAnnual: decimal.NewFromInt(50000),
			Projections: SpendingProjections{
				Fifties:   decimal.NewFromInt(100),
				Sixties:   decimal.NewFromInt(90),
				Seventies: decimal.NewFromInt(80),
				Eighties:  decimal.NewFromInt(70),
			},
		},
	}
}

// Clone returns a deep copy of the input
func (ci CalculatorInput) Clone() CalculatorInput {
	out := ci
	out.LifeExpectancy.HealthFactors = append([]HealthFactorID{}, ci.LifeExpectancy.HealthFactors...)
	return out
}
