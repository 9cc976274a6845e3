package output

import (
	"fmt"

	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
)

// Highlight is the one-line takeaway of a calculator's result.
type Highlight struct {
	Calculator string
	Headline   string
	Positive   bool
}

// AnalyzeReport extracts a headline per calculator, in calculator order.
// Extracted from the console formatters for testability.
func AnalyzeReport(report *domain.Report) []Highlight {
	var out []Highlight

	if car := report.CarAffordability; car != nil {
		r := car.Rounded()
		h := Highlight{Calculator: domain.CarAffordabilityCalculator, Positive: r.IsAffordable}
		if r.IsAffordable {
			h.Headline = fmt.Sprintf("Affordable: annual cost %s is within the %s limit", FormatWholeCurrency(r.AnnualCost), FormatWholeCurrency(r.AffordabilityLimit))
		} else {
			h.Headline = fmt.Sprintf("Not affordable: annual cost %s exceeds the %s limit", FormatWholeCurrency(r.AnnualCost), FormatWholeCurrency(r.AffordabilityLimit))
		}
		out = append(out, h)
	}

	if fire := report.Fire; fire != nil {
		h := Highlight{Calculator: domain.FireCalculator, Positive: fire.DepletionAge == nil}
		if fire.DepletionAge != nil {
			h.Headline = fmt.Sprintf("Corpus runs out at age %d", *fire.DepletionAge)
		} else {
			h.Headline = fmt.Sprintf("Corpus lasts %d years, ending at %s after withdrawals", len(fire.Rows), FormatCurrency(fire.FinalCorpus))
		}
		out = append(out, h)
	}

	if tax := report.IncomeTax; tax != nil {
		out = append(out, Highlight{
			Calculator: domain.IncomeTaxCalculator,
			Headline:   fmt.Sprintf("Total tax payable %s under the %s regime", FormatCurrency(tax.TotalTax), tax.Regime),
			Positive:   tax.TotalTax.IsZero(),
		})
	}

	if plan := report.SavingsPlan; plan != nil {
		out = append(out, Highlight{
			Calculator: domain.SavingsGoalCalculator,
			Headline: fmt.Sprintf("Save %s a month for %d months at an assumed %s a year",
				FormatCurrency(plan.MonthlySavings), plan.Months, FormatPercentage(money.RateToPercent(plan.AnnualRate))),
			Positive: true,
		})
	}

	return out
}
