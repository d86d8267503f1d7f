package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// ConsoleFormatter renders the full results report with inputs and breakdown.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	in, r := report.Input, report.Result

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeInputs(&buf, in)

	fmt.Fprintln(&buf, "CALCULATION BREAKDOWN")
	fmt.Fprintln(&buf, "=====================")
	fmt.Fprintf(&buf, "  Average Annual Spending: %s\n", FormatCurrency(r.AverageAnnualSpending))
	fmt.Fprintf(&buf, "  Annual Guaranteed Income: -%s\n", FormatCurrency(r.AnnualIncome))
	fmt.Fprintf(&buf, "  Net From Portfolio:      %s\n", FormatCurrency(r.NetSpending))
	fmt.Fprintf(&buf, "  Portfolio Multiplier:    %sx (%s at %s)\n", r.PortfolioMultiplier.StringFixed(1), r.StrategyName, FormatRate(r.WithdrawalRate))
	fmt.Fprintf(&buf, "  Base FI Number:          %s\n", FormatCurrency(r.BaseFINumber))
	fmt.Fprintf(&buf, "  Legacy Goals:            +%s\n", FormatCurrency(r.LegacyTotal))
	fmt.Fprintf(&buf, "  FI NUMBER:               %s\n", FormatCurrency(r.FINumber))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROGRESS")
	fmt.Fprintln(&buf, "========")
	fmt.Fprintf(&buf, "  Current Portfolio:       %s\n", FormatCurrency(r.CurrentPortfolio))
	fmt.Fprintf(&buf, "  Progress:                %s %s\n", progressBar(r.ProgressPercentage.InexactFloat64(), 30), FormatPercentage(r.ProgressPercentage))
	fmt.Fprintf(&buf, "  Remaining Needed:        %s\n", FormatCurrency(r.RemainingNeeded))
	fmt.Fprintf(&buf, "  Years to FI:             %s\n", r.YearsToFI)
	fmt.Fprintf(&buf, "  FI Age:                  %s\n", FormatAge(r.FIAge))
	fmt.Fprintf(&buf, "  Planning Horizon:        %d years (to age %d)\n", r.PlanningHorizonYears, r.AdjustedLifeExpectancy)
	if r.Achieved {
		fmt.Fprintln(&buf, "  STATUS: Financial independence reached")
	}
	fmt.Fprintln(&buf)

	a := r.Assessment
	fmt.Fprintln(&buf, "RISK ASSESSMENT")
	fmt.Fprintln(&buf, "===============")
	fmt.Fprintf(&buf, "  Risk Tolerance:          %s\n", a.Tolerance.Label())
	fmt.Fprintf(&buf, "  Withdrawal Risk:         %s\n", a.RiskLevel)
	fmt.Fprintf(&buf, "  Success Rate Estimate:   ~%s%%\n", a.SuccessRateEstimate.StringFixed(0))
	fmt.Fprintf(&buf, "  On Track:                %s\n", yesNo(a.OnTrack))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "NEXT STEPS")
	fmt.Fprintln(&buf, "==========")
	for i, step := range a.NextSteps {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, step)
	}

	return buf.Bytes(), nil
}

func writeInputs(buf *bytes.Buffer, in domain.CalculatorInput) {
	fmt.Fprintln(buf, "YOUR INPUTS")
	fmt.Fprintln(buf, "===========")

	factors := lo.FilterMap(in.LifeExpectancy.HealthFactors, func(id domain.HealthFactorID, _ int) (string, bool) {
		f, ok := domain.LookupHealthFactor(id)
		return fmt.Sprintf("%s (+%d)", f.Label, f.Adjustment), ok
	})
	fmt.Fprintf(buf, "  Current Age:             %d\n", in.LifeExpectancy.Age)
	fmt.Fprintf(buf, "  Adjusted Life Expectancy: %d\n", in.LifeExpectancy.AdjustedAge)
	if len(factors) > 0 {
		fmt.Fprintf(buf, "  Health Factors:          %s\n", strings.Join(factors, ", "))
	}

	if in.Legacy.DieWithZero {
		fmt.Fprintln(buf, "  Legacy:                  Die with zero")
	} else {
		fmt.Fprintf(buf, "  Legacy for Heirs:        %s\n", FormatCurrency(in.Legacy.LegacyAmount))
		fmt.Fprintf(buf, "  Charitable Giving:       %s\n", FormatCurrency(in.Legacy.CharitableGiving))
	}

	fmt.Fprintf(buf, "  Portfolio Value:         %s\n", FormatCurrency(in.Portfolio.TotalValue))
	for _, class := range domain.AssetClasses {
		fmt.Fprintf(buf, "    %-21s %s\n", class.Label()+":", FormatPercentage(in.Portfolio.Assets.Get(class)))
	}

	fmt.Fprintf(buf, "  Monthly Social Security: %s\n", FormatCurrency(in.Income.SocialSecurity))
	fmt.Fprintf(buf, "  Monthly Pension:         %s\n", FormatCurrency(in.Income.Pension))
	fmt.Fprintf(buf, "  Other Monthly Income:    %s\n", FormatCurrency(in.Income.OtherIncome))
	fmt.Fprintf(buf, "  Benefits Start Age:      %d\n", in.Income.StartAge)

	fmt.Fprintf(buf, "  Current Annual Spending: %s\n", FormatCurrency(in.Spending.CurrentAnnual))
	for _, d := range domain.Decades {
		fmt.Fprintf(buf, "    Spending in %-9s %s\n", d.Label()+":", FormatPercentage(in.Spending.Projections.Get(d)))
	}
	fmt.Fprintln(buf)
}

func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = min(width, max(0, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ConsoleLiteFormatter renders the headline numbers only.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result

	fmt.Fprintf(&buf, "FI Number:        %s\n", FormatCurrency(r.FINumber))
	fmt.Fprintf(&buf, "Progress:         %s\n", FormatPercentage(r.ProgressPercentage))
	fmt.Fprintf(&buf, "Remaining Needed: %s\n", FormatCurrency(r.RemainingNeeded))
	fmt.Fprintf(&buf, "Years to FI:      %s\n", r.YearsToFI)
	fmt.Fprintf(&buf, "FI Age:           %s\n", FormatAge(r.FIAge))
	return buf.Bytes(), nil
}
