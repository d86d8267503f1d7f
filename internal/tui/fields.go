package tui

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/tui/scenes"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

// field is one focusable control on an input stage
type field struct {
	label string
	kind  scenes.FieldKind

	// value renders the current value for display
	value func(in domain.CalculatorInput) string
	// text seeds the edit box; nil means the field takes no typed input
	text func(in domain.CalculatorInput) string
	// set applies typed text
	set func(w *wizard.Wizard, text string)
	// adjust steps the value by dir (-1 or +1); toggles and choices treat any dir as "next"
	adjust func(w *wizard.Wizard, dir int)

	// slider bounds, only for scenes.KindSlider
	low, high func() decimal.Decimal
	current   func(in domain.CalculatorInput) decimal.Decimal
}

func (f field) editable() bool {
	return f.text != nil && f.set != nil
}

var (
	hundred       = decimal.NewFromInt(100)
	minProjection = decimal.NewFromInt(30)
	maxProjection = decimal.NewFromInt(150)
	rateStep      = decimal.RequireFromString("0.25")
)

// stageFields lists the controls shown on stage, in focus order
func stageFields(stage wizard.Stage) []field {
	switch stage {
	case wizard.StageLifeExpectancy:
		return lifeExpectancyFields()
	case wizard.StageLegacy:
		return legacyFields()
	case wizard.StagePortfolio:
		return portfolioFields()
	case wizard.StageIncome:
		return incomeFields()
	case wizard.StageRisk:
		return riskFields()
	case wizard.StageSpending:
		return spendingFields()
	default:
		return nil
	}
}

func lifeExpectancyFields() []field {
	fields := []field{{
		label: "Current age",
		kind:  scenes.KindNumber,
		value: func(in domain.CalculatorInput) string { return strconv.Itoa(in.LifeExpectancy.Age) },
		text:  func(in domain.CalculatorInput) string { return strconv.Itoa(in.LifeExpectancy.Age) },
		set:   func(w *wizard.Wizard, text string) { w.SetAge(text) },
		adjust: func(w *wizard.Wizard, dir int) {
			w.SetAge(strconv.Itoa(w.Input().LifeExpectancy.Age + dir))
		},
	}}

	for _, hf := range domain.HealthFactors() {
		id := hf.ID
		fields = append(fields, field{
			label: fmt.Sprintf("%s (+%d)", hf.Label, hf.Adjustment),
			kind:  scenes.KindToggle,
			value: func(in domain.CalculatorInput) string { return checkbox(in.LifeExpectancy.HasFactor(id)) },
			adjust: func(w *wizard.Wizard, _ int) {
				w.ToggleHealthFactor(id, !w.Input().LifeExpectancy.HasFactor(id))
			},
		})
	}
	return fields
}

func legacyFields() []field {
	return []field{
		{
			label: "Die with zero",
			kind:  scenes.KindToggle,
			value: func(in domain.CalculatorInput) string { return checkbox(in.Legacy.DieWithZero) },
			adjust: func(w *wizard.Wizard, _ int) {
				w.SetDieWithZero(!w.Input().Legacy.DieWithZero)
			},
		},
		amountField("Legacy for heirs", 10000,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Legacy.LegacyAmount },
			(*wizard.Wizard).SetLegacyAmount),
		amountField("Charitable giving", 5000,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Legacy.CharitableGiving },
			(*wizard.Wizard).SetCharitableGiving),
	}
}

func portfolioFields() []field {
	fields := []field{
		amountField("Total portfolio value", 10000,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Portfolio.TotalValue },
			(*wizard.Wizard).SetPortfolioValue),
	}

	for _, class := range domain.AssetClasses {
		fields = append(fields, sliderField(class.Label(), 5,
			func() decimal.Decimal { return decimal.Zero },
			func() decimal.Decimal { return hundred },
			func(in domain.CalculatorInput) decimal.Decimal { return in.Portfolio.Assets.Get(class) },
			func(w *wizard.Wizard, pct decimal.Decimal) domain.CalculatorInput { return w.SetAllocation(class, pct) },
		))
	}
	return fields
}

func incomeFields() []field {
	return []field{
		amountField("Social Security (monthly)", 100,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Income.SocialSecurity },
			(*wizard.Wizard).SetSocialSecurity),
		amountField("Pension (monthly)", 100,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Income.Pension },
			(*wizard.Wizard).SetPension),
		amountField("Other income (monthly)", 100,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Income.OtherIncome },
			(*wizard.Wizard).SetOtherIncome),
		{
			label: "Benefits start at age",
			kind:  scenes.KindChoice,
			value: func(in domain.CalculatorInput) string { return strconv.Itoa(in.Income.StartAge) },
			adjust: func(w *wizard.Wizard, dir int) {
				w.SetBenefitStartAge(cycle(domain.BenefitStartAges, w.Input().Income.StartAge, dir))
			},
		},
	}
}

func riskFields() []field {
	strategyIDs := lo.Map(domain.WithdrawalStrategies(), func(s domain.WithdrawalStrategy, _ int) domain.StrategyID {
		return s.ID
	})

	return []field{
		{
			label: "Risk tolerance",
			kind:  scenes.KindChoice,
			value: func(in domain.CalculatorInput) string { return in.Risk.Tolerance.Label() },
			adjust: func(w *wizard.Wizard, dir int) {
				w.SetTolerance(cycle(domain.RiskTolerances, w.Input().Risk.Tolerance, dir))
			},
		},
		{
			label: "Withdrawal strategy",
			kind:  scenes.KindChoice,
			value: func(in domain.CalculatorInput) string { return in.Risk.Strategy.Name() },
			adjust: func(w *wizard.Wizard, dir int) {
				w.SelectStrategy(cycle(strategyIDs, w.Input().Risk.Strategy, dir))
			},
		},
		sliderField("Withdrawal rate", 0,
			func() decimal.Decimal { return calculation.MinWithdrawalRate },
			func() decimal.Decimal { return calculation.MaxWithdrawalRate },
			func(in domain.CalculatorInput) decimal.Decimal { return in.Risk.WithdrawalRate },
			(*wizard.Wizard).SetWithdrawalRate,
		),
	}
}

func spendingFields() []field {
	fields := []field{
		amountField("Current annual spending", 1000,
			func(in domain.CalculatorInput) decimal.Decimal { return in.Spending.CurrentAnnual },
			(*wizard.Wizard).SetCurrentSpending),
	}

	for _, d := range domain.Decades {
		fields = append(fields, sliderField("Spending in your "+d.Label(), 5,
			func() decimal.Decimal { return minProjection },
			func() decimal.Decimal { return maxProjection },
			func(in domain.CalculatorInput) decimal.Decimal { return in.Spending.Projections.Get(d) },
			func(w *wizard.Wizard, pct decimal.Decimal) domain.CalculatorInput { return w.SetProjection(d, pct) },
		))
	}
	return fields
}

// amountField is a dollar amount typed as text and stepped with the arrow keys
func amountField(label string, step int64, get func(domain.CalculatorInput) decimal.Decimal, set func(*wizard.Wizard, string) domain.CalculatorInput) field {
	return field{
		label: label,
		kind:  scenes.KindNumber,
		value: func(in domain.CalculatorInput) string { return FormatCurrency(get(in)) },
		text:  func(in domain.CalculatorInput) string { return get(in).String() },
		set:   func(w *wizard.Wizard, text string) { set(w, text) },
		adjust: func(w *wizard.Wizard, dir int) {
			next := get(w.Input()).Add(decimal.NewFromInt(step * int64(dir)))
			set(w, decimal.Max(decimal.Zero, next).String())
		},
	}
}

// sliderField is a bounded percentage. A zero step uses rateStep.
func sliderField(label string, step int64, low, high func() decimal.Decimal, get func(domain.CalculatorInput) decimal.Decimal, set func(*wizard.Wizard, decimal.Decimal) domain.CalculatorInput) field {
	delta := rateStep
	if step > 0 {
		delta = decimal.NewFromInt(step)
	}
	return field{
		label:   label,
		kind:    scenes.KindSlider,
		value:   func(in domain.CalculatorInput) string { return get(in).String() + "%" },
		text:    func(in domain.CalculatorInput) string { return get(in).String() },
		set:     func(w *wizard.Wizard, text string) { set(w, wizard.ParseAmount(text)) },
		low:     low,
		high:    high,
		current: get,
		adjust: func(w *wizard.Wizard, dir int) {
			next := get(w.Input()).Add(delta.Mul(decimal.NewFromInt(int64(dir))))
			set(w, decimal.Min(high(), decimal.Max(low(), next)))
		},
	}
}

// cycle returns the option after (dir > 0) or before current, wrapping around.
// An unknown current value starts from the first option.
func cycle[T comparable](options []T, current T, dir int) T {
	i := lo.IndexOf(options, current)
	if i < 0 {
		return options[0]
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	return options[(i+step+len(options))%len(options)]
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
