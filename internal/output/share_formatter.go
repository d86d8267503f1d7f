package output

import (
	"fmt"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// ShareFormatter renders the short text copied by the share action.
type ShareFormatter struct{}

func (s ShareFormatter) Name() string { return "share" }

func (s ShareFormatter) Format(report *Report) ([]byte, error) {
	return []byte(ShareText(report.Result) + "\n"), nil
}

// ShareText is the one-line summary of a result suitable for the clipboard
func ShareText(r domain.DerivedResult) string {
	text := fmt.Sprintf("My FI Number: %s", FormatCurrency(r.FINumber))
	switch {
	case r.Achieved:
		text += " - already financially independent"
	case r.FIAge != nil:
		text += fmt.Sprintf(" - %s%% there, on pace for FI at age %d", r.ProgressPercentage.StringFixed(0), *r.FIAge)
	}
	return text
}
