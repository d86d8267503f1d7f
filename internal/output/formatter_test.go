package output

import (
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

func defaultReport() *Report {
	input := domain.DefaultInput()
	input.LifeExpectancy.HealthFactors = []domain.HealthFactorID{domain.FactorExercise}
	input.LifeExpectancy.AdjustedAge = 85
	return NewReport(nil, input)
}

func emptyPortfolioReport() *Report {
	input := domain.DefaultInput()
	input.Portfolio.TotalValue = decimal.Zero
	return NewReport(nil, input)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"462500", "$462,500"},
		{"0", "$0"},
		{"999.49", "$999"},
		{"1234567.5", "$1,234,568"},
		{"-2500", "-$2,500"},
		{"9223372036854775807", "$9,223,372,036,854,775,807"},
		{"9223372036854775808", "$9,223,372,036,854,775,808"},
		{"10000000000000000000", "$10,000,000,000,000,000,000"},
		{"10000000000000000000000000", "$10,000,000,000,000,000,000,000,000"},
		{"-10000000000000000000", "-$10,000,000,000,000,000,000"},
		{"123456789012345678901.6", "$123,456,789,012,345,678,902"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "21.6%", FormatPercentage(decimal.RequireFromString("21.6216")))
	assert.Equal(t, "4.25%", FormatRate(decimal.RequireFromString("4.25")))
	assert.Equal(t, "never", FormatAge(nil))
	age := 48
	assert.Equal(t, "48", FormatAge(&age))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()

	assert.Equal(t, []string{"console", "console-lite", "csv", "html", "json", "share"}, names)
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()

	assert.Contains(t, aliases, "verbose")
	assert.Contains(t, aliases, "console-verbose")
	assert.IsIncreasing(t, aliases)
}

func TestGetFormatterByName(t *testing.T) {
	formatter := GetFormatterByName("console-lite")
	require.NotNil(t, formatter, "Should return formatter")
	assert.Equal(t, "console-lite", formatter.Name())

	formatter = GetFormatterByName("verbose")
	require.NotNil(t, formatter, "Should resolve aliases")
	assert.Equal(t, "console", formatter.Name())

	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := GenerateReport(defaultReport(), "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format: pdf")
}

func TestConsoleFormatter_Format(t *testing.T) {
	out, err := GenerateReport(defaultReport(), "console")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "FINANCIAL INDEPENDENCE PROJECTION")
	assert.Contains(t, content, "KEY ASSUMPTIONS:")
	assert.Contains(t, content, "Regular Exercise (3+ times/week) (+3)")
	assert.Contains(t, content, "FI NUMBER:               $462,500")
	assert.Contains(t, content, "Remaining Needed:        $362,500")
	assert.Contains(t, content, "Years to FI:             23 years")
	assert.Contains(t, content, "FI Age:                  48")
	assert.Contains(t, content, "Stocks/Equity:")
	assert.Contains(t, content, "NEXT STEPS")
}

func TestConsoleFormatter_DieWithZero(t *testing.T) {
	input := domain.DefaultInput()
	input.Legacy.DieWithZero = true

	out, err := ConsoleFormatter{}.Format(NewReport(nil, input))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Die with zero")
}

func TestConsoleLiteFormatter_Unbounded(t *testing.T) {
	out, err := ConsoleLiteFormatter{}.Format(emptyPortfolioReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "Years to FI:      unbounded")
	assert.Contains(t, content, "FI Age:           never")
	assert.NotContains(t, content, "NaN")
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := GenerateReport(emptyPortfolioReport(), "json")
	require.NoError(t, err)

	var decoded struct {
		Input  map[string]interface{} `json:"input"`
		Result map[string]interface{} `json:"result"`
	}
	require.NoError(t, gojson.Unmarshal(out, &decoded))
	assert.Equal(t, "unbounded", decoded.Result["years_to_fi"])
	assert.Nil(t, decoded.Result["fi_age"])
	assert.Equal(t, "moderate", decoded.Input["risk"].(map[string]interface{})["tolerance"])

	compact, err := JSONFormatter{}.Format(defaultReport())
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := GenerateReport(defaultReport(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Contains(t, lines, "FINumber,462500.00")
	assert.Contains(t, lines, "YearsToFI,23")
	assert.Contains(t, lines, "FIAge,48")

	out, err = CSVFormatter{}.Format(emptyPortfolioReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), "YearsToFI,unbounded")
	assert.Contains(t, string(out), "FIAge,\n")
}

func TestShareText(t *testing.T) {
	r := defaultReport().Result
	assert.Equal(t, "My FI Number: $462,500 - 22% there, on pace for FI at age 48", ShareText(r))

	assert.Equal(t, "My FI Number: $462,500", ShareText(emptyPortfolioReport().Result))

	input := domain.DefaultInput()
	input.Portfolio.TotalValue = decimal.NewFromInt(1000000)
	assert.Contains(t, ShareText(NewReport(nil, input).Result), "already financially independent")

	out, err := ShareFormatter{}.Format(defaultReport())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))
}

func TestHTMLFormatter_Format(t *testing.T) {
	out, err := GenerateReport(defaultReport(), "html")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>", "Should have HTML structure")
	assert.Contains(t, content, "<title>Financial Independence Projection</title>")
	assert.Contains(t, content, "$462,500")
	assert.Contains(t, content, "Real Estate")
	assert.Contains(t, content, "Spending in 80s+")
}

func TestNewReport_CopiesInput(t *testing.T) {
	input := domain.DefaultInput()
	input.LifeExpectancy.HealthFactors = []domain.HealthFactorID{domain.FactorNonSmoker}

	report := NewReport(nil, input)
	input.LifeExpectancy.HealthFactors[0] = domain.FactorExercise

	assert.Equal(t, domain.FactorNonSmoker, report.Input.LifeExpectancy.HealthFactors[0])
	assert.Equal(t, DefaultAssumptions, report.Assumptions)
}
