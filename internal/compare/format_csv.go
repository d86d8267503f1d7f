package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Strategy",
		"Type",
		"Withdrawal Rate",
		"FI Number",
		"Progress %",
		"Years to FI",
		"FI Age",
		"Risk Level",
		"Success Rate %",
		"FI Number Diff from Base",
		"FI Number % Change",
		"Years Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	years := result.YearsToFI.String()
	if !result.YearsToFI.Unbounded {
		years = strconv.Itoa(result.YearsToFI.Years)
	}

	return []string{
		result.StrategyName,
		rowType,
		result.WithdrawalRate.StringFixed(2),
		result.FINumber.StringFixed(2),
		result.ProgressPercentage.StringFixed(2),
		years,
		optionalInt(result.FIAge),
		string(result.RiskLevel),
		result.SuccessRateEstimate.StringFixed(0),
		result.FINumberDiffFromBase.StringFixed(2),
		result.FINumberPctFromBase.StringFixed(2),
		optionalInt(result.YearsDiffFromBase),
	}
}

func optionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
