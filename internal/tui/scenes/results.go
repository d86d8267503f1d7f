package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ficalc/internal/compare"
	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/tui/components"
	"github.com/rgehrsitz/ficalc/internal/tui/tuistyles"
)

// ResultsView is everything the results stage renders
type ResultsView struct {
	Result     domain.DerivedResult
	Growth     []decimal.Decimal
	Comparison *compare.ComparisonSet // nil unless the comparison is toggled on
	Width      int
}

// RenderResults draws the headline metrics, progress, breakdown and next steps,
// or the strategy comparison when one is attached.
func RenderResults(v ResultsView) string {
	if v.Comparison != nil {
		return renderComparison(v.Comparison)
	}

	r := v.Result
	sections := []string{
		components.StepIndicator(7, 7),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("Your FI Number"),
		"",
		renderHeadline(r),
		"",
		components.NewProgressBar(r.ProgressPercentage.InexactFloat64()).
			WithLabel("Progress to FI").
			WithWidth(40).
			Render(),
		"",
		renderBreakdown(r),
	}

	if len(v.Growth) > 1 {
		points := make([]float64, len(v.Growth))
		for i, p := range v.Growth {
			points[i] = p.InexactFloat64()
		}
		chartWidth := 48
		if v.Width > 0 {
			chartWidth = max(20, min(60, v.Width-16))
		}
		sections = append(sections, "", components.NewGrowthChart("Projected growth at 7%", points, r.FINumber.InexactFloat64()).
			WithSize(chartWidth, 8).
			Render())
	}

	sections = append(sections, "", renderAssessment(r.Assessment))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeadline(r domain.DerivedResult) string {
	progressTone := components.ToneNeutral
	if r.Achieved {
		progressTone = components.ToneGood
	}

	ageCard := components.NewMetricCard("FI Age", "never").WithTone(components.ToneBad)
	if r.FIAge != nil {
		ageCard = components.NewMetricCard("FI Age", strconv.Itoa(*r.FIAge)).WithNote("in " + r.YearsToFI.String())
		if r.Assessment.OnTrack {
			ageCard.WithTone(components.ToneGood)
		}
	}

	return components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("FI Number", tuistyles.FormatCurrency(r.FINumber)),
		components.NewMetricCard("Progress", r.ProgressPercentage.StringFixed(0)+"%").WithTone(progressTone),
		ageCard,
		components.NewMetricCard("Still Needed", tuistyles.FormatCurrency(r.RemainingNeeded)),
	}, 4)
}

func renderBreakdown(r domain.DerivedResult) string {
	rows := [][2]string{
		{"Average annual spending", tuistyles.FormatCurrency(r.AverageAnnualSpending)},
		{"Guaranteed income", tuistyles.FormatCurrency(r.AnnualIncome)},
		{"Net spending from portfolio", tuistyles.FormatCurrency(r.NetSpending)},
		{"Withdrawal rate", fmt.Sprintf("%s%% (%s)", r.WithdrawalRate.String(), r.StrategyName)},
		{"Portfolio multiplier", r.PortfolioMultiplier.StringFixed(1) + "x"},
		{"Base FI number", tuistyles.FormatCurrency(r.BaseFINumber)},
		{"Legacy goals", tuistyles.FormatCurrency(r.LegacyTotal)},
		{"Life expectancy", fmt.Sprintf("%d (%d-year horizon)", r.AdjustedLifeExpectancy, r.PlanningHorizonYears)},
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Calculation breakdown"))
	for _, row := range rows {
		b.WriteString("\n  ")
		b.WriteString(tuistyles.MetricLabelStyle.Width(30).Render(row[0]))
		b.WriteString(tuistyles.MetricValueStyle.Render(row[1]))
	}
	return b.String()
}

func renderAssessment(a domain.Assessment) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Risk assessment"))
	b.WriteString(fmt.Sprintf("\n  %s tolerance, %s risk, ~%s%% estimated success",
		a.Tolerance.Label(), a.RiskLevel, a.SuccessRateEstimate.String()))

	status := tuistyles.MetricNegativeStyle.Render("Behind target for your benefit start age")
	if a.OnTrack {
		status = tuistyles.MetricPositiveStyle.Render("On track")
	}
	b.WriteString("\n  " + status)

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Next steps"))
	for _, step := range a.NextSteps {
		b.WriteString("\n  • " + step)
	}
	return b.String()
}

func renderComparison(set *compare.ComparisonSet) string {
	cards := make([]*components.StrategyCard, 0, len(set.AlternativeResults)+1)
	if set.BaseResult != nil {
		cards = append(cards, strategyCard(*set.BaseResult).SetSelected(true))
	}
	for _, alt := range set.AlternativeResults {
		card := strategyCard(alt)
		if !alt.FINumberDiffFromBase.IsZero() {
			card.AddHighlight(fmt.Sprintf("%s vs current", signedCurrency(alt.FINumberDiffFromBase)))
		}
		cards = append(cards, card)
	}

	sections := []string{
		lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render("Withdrawal strategy comparison"),
		"",
		components.StrategyGrid(cards),
	}
	if len(set.Recommendations) > 0 {
		lines := make([]string, len(set.Recommendations))
		for i, rec := range set.Recommendations {
			lines[i] = "  • " + rec
		}
		sections = append(sections, "", lipgloss.NewStyle().Bold(true).Render("Highlights"), strings.Join(lines, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func strategyCard(cr compare.ComparisonResult) *components.StrategyCard {
	fiAge := "never"
	if cr.FIAge != nil {
		fiAge = strconv.Itoa(*cr.FIAge)
	}
	return components.NewStrategyCard(cr.StrategyName).
		AddHighlight(fmt.Sprintf("%s%% withdrawal, %s risk", cr.WithdrawalRate.String(), cr.RiskLevel)).
		AddHighlight("FI number " + tuistyles.FormatCurrency(cr.FINumber)).
		AddHighlight("FI age " + fiAge)
}

func signedCurrency(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + tuistyles.FormatCurrency(d)
	}
	return tuistyles.FormatCurrency(d)
}
