package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"whole": FormatWholeCurrency,
	"pct":   func(rate decimal.Decimal) string { return FormatPercentage(money.RateToPercent(rate)) },
	"yesno": yesNo,
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	var car *domain.CarAffordabilityResult
	if report.CarAffordability != nil {
		rounded := report.CarAffordability.Rounded()
		car = &rounded
	}

	data := struct {
		*domain.Report
		Car         *domain.CarAffordabilityResult
		Highlights  []Highlight
		Assumptions []string
	}{report, car, AnalyzeReport(report), GenerateAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
