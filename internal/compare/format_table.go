package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing strategies
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("WITHDRAWAL STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Strategy: %s\n", compSet.BaseStrategyName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	rows := [][]string{tf.formatRow(compSet.BaseResult, true)}
	for i := range compSet.AlternativeResults {
		rows = append(rows, tf.formatRow(&compSet.AlternativeResults[i], false))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers("Strategy", "Rate", "FI Number", "Progress", "Years to FI", "FI Age", "Risk").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	sb.WriteString(t.Render())
	sb.WriteString("\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.StrategyName))

			// Lower targets are better
			symbol := tf.deltaSymbol(alt.FINumberDiffFromBase)
			sb.WriteString(fmt.Sprintf("  FI Number:    %s$%s (%s%%)\n",
				symbol,
				tf.formatDecimal(alt.FINumberDiffFromBase.Abs()),
				alt.FINumberPctFromBase.StringFixed(1)))

			if alt.YearsDiffFromBase != nil && *alt.YearsDiffFromBase != 0 {
				yearsSymbol := "+"
				if *alt.YearsDiffFromBase < 0 {
					yearsSymbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Years to FI:  %s%d years\n", yearsSymbol, *alt.YearsDiffFromBase))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single strategy row
func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) []string {
	name := result.StrategyName
	if isBase {
		name += " (base)"
	}

	fiAge := "-"
	if result.FIAge != nil {
		fiAge = strconv.Itoa(*result.FIAge)
	}

	return []string{
		tf.truncate(name, 28),
		result.WithdrawalRate.String() + "%",
		"$" + tf.formatDecimal(result.FINumber),
		result.ProgressPercentage.StringFixed(1) + "%",
		result.YearsToFI.String(),
		fiAge,
		string(result.RiskLevel),
	}
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each strategy
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s %s | ", compSet.BaseStrategyName, compSet.BaseResult.YearsToFI))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.FINumberDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.FINumberDiffFromBase))
		} else if alt.FINumberDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.FINumberDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.StrategyName, change))
	}

	return sb.String()
}
