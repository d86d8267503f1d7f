package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/domain"
)

// Report is everything a formatter renders: the inputs and the result derived from them
type Report struct {
	Input       domain.CalculatorInput `json:"input"`
	Result      domain.DerivedResult   `json:"result"`
	Assumptions []string               `json:"assumptions"`
}

// NewReport computes the result for input with the given engine (the default engine when nil)
func NewReport(engine *calculation.ProjectionEngine, input domain.CalculatorInput) *Report {
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	return &Report{
		Input:       input.Clone(),
		Result:      engine.Compute(input),
		Assumptions: DefaultAssumptions,
	}
}

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

var formatters = map[string]Formatter{}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"lite":            "console-lite",
	"summary":         "console-lite",
	"text":            "share",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(ConsoleLiteFormatter{})
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
	register(ShareFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name or alias, or nil
func GetFormatterByName(name string) Formatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GenerateReport renders report in the named format
func GenerateReport(report *Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return f.Format(report)
}

var printer = message.NewPrinter(language.AmericanEnglish)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// FormatCurrency formats an amount as whole US dollars with thousands separators.
// Amounts past the int64 range are grouped from their digit string.
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	if whole.LessThanOrEqual(maxInt64) {
		return printer.Sprintf("%s$%d", sign, whole.IntPart())
	}
	return sign + "$" + groupThousands(whole.StringFixed(0))
}

// groupThousands inserts a comma every three digits from the right
func groupThousands(digits string) string {
	var sb strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

// FormatRate formats a withdrawal rate without trailing zeros
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// FormatAge renders an optional age, "never" when absent
func FormatAge(age *int) string {
	if age == nil {
		return "never"
	}
	return fmt.Sprintf("%d", *age)
}
