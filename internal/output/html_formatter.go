package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/ficalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML results page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"age":   FormatAge,
	"share": ShareText,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Decades      []domain.Decade
		AssetClasses []domain.AssetClass
	}{report, domain.Decades, domain.AssetClasses}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
