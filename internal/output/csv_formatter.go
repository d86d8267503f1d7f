package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter renders the result as metric,value rows.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	r := report.Result

	years := r.YearsToFI.String()
	if !r.YearsToFI.Unbounded {
		years = strconv.Itoa(r.YearsToFI.Years)
	}
	fiAge := ""
	if r.FIAge != nil {
		fiAge = strconv.Itoa(*r.FIAge)
	}

	rows := [][]string{
		{"Metric", "Value"},
		{"FINumber", r.FINumber.StringFixed(2)},
		{"CurrentPortfolio", r.CurrentPortfolio.StringFixed(2)},
		{"ProgressPercentage", r.ProgressPercentage.StringFixed(2)},
		{"RemainingNeeded", r.RemainingNeeded.StringFixed(2)},
		{"YearsToFI", years},
		{"FIAge", fiAge},
		{"AverageAnnualSpending", r.AverageAnnualSpending.StringFixed(2)},
		{"AnnualIncome", r.AnnualIncome.StringFixed(2)},
		{"NetSpending", r.NetSpending.StringFixed(2)},
		{"WithdrawalRate", r.WithdrawalRate.StringFixed(2)},
		{"Strategy", r.StrategyName},
		{"PortfolioMultiplier", r.PortfolioMultiplier.StringFixed(4)},
		{"BaseFINumber", r.BaseFINumber.StringFixed(2)},
		{"LegacyTotal", r.LegacyTotal.StringFixed(2)},
		{"AdjustedLifeExpectancy", strconv.Itoa(r.AdjustedLifeExpectancy)},
		{"PlanningHorizonYears", strconv.Itoa(r.PlanningHorizonYears)},
		{"RiskLevel", string(r.Assessment.RiskLevel)},
		{"SuccessRateEstimate", r.Assessment.SuccessRateEstimate.StringFixed(0)},
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
