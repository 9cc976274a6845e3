package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
)

// CSVSummarizer writes one section per calculator as Section,Field,Value rows.
// The FIRE section is followed by its year table.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Field", "Value"}); err != nil {
		return nil, err
	}

	var rows [][]string
	field := func(section, name, value string) {
		rows = append(rows, []string{section, name, value})
	}

	if report.CarAffordability != nil {
		r := report.CarAffordability.Rounded()
		s := domain.CarAffordabilityCalculator
		field(s, "tax", r.Tax.StringFixed(0))
		field(s, "disposable_income", r.DisposableIncome.StringFixed(0))
		field(s, "down_payment", r.DownPayment.StringFixed(0))
		field(s, "emi", r.EMI.StringFixed(0))
		field(s, "total_interest", r.TotalInterest.StringFixed(0))
		field(s, "total_loan", r.TotalLoan.StringFixed(0))
		field(s, "total_buying_cost", r.TotalBuyingCost.StringFixed(0))
		field(s, "total_operational_cost", r.TotalOperationalCost.StringFixed(0))
		field(s, "total_maintenance_cost", r.TotalMaintenanceCost.StringFixed(0))
		field(s, "total_cost", r.TotalCost.StringFixed(0))
		field(s, "annual_cost", r.AnnualCost.StringFixed(0))
		field(s, "affordability_limit", r.AffordabilityLimit.StringFixed(0))
		field(s, "is_affordable", boolToString(r.IsAffordable))
	}
	if t := report.IncomeTax; t != nil {
		s := domain.IncomeTaxCalculator
		field(s, "regime", t.Regime)
		field(s, "income_tax", t.IncomeTax.StringFixed(2))
		field(s, "relief", t.Relief.StringFixed(2))
		field(s, "surcharge", t.Surcharge.StringFixed(2))
		field(s, "cess", t.Cess.StringFixed(2))
		field(s, "total_tax", t.TotalTax.StringFixed(2))
	}
	if p := report.SavingsPlan; p != nil {
		s := domain.SavingsGoalCalculator
		field(s, "target_price", p.TargetPrice.StringFixed(2))
		field(s, "target_date", p.TargetDate.Format("2006-01-02"))
		field(s, "months", intToString(p.Months))
		field(s, "years", p.Years.StringFixed(2))
		field(s, "tier", string(p.Tier))
		field(s, "annual_rate_percent", money.RateToPercent(p.AnnualRate).StringFixed(2))
		field(s, "monthly_savings", p.MonthlySavings.StringFixed(2))
		field(s, "total_savings", p.TotalSavings.StringFixed(2))
		field(s, "total_interest", p.TotalInterest.StringFixed(2))
	}
	if p := report.Fire; p != nil {
		s := domain.FireCalculator
		field(s, "final_corpus", p.FinalCorpus.StringFixed(2))
		field(s, "total_withdrawn", p.TotalWithdrawn.StringFixed(2))
		field(s, "implied_fire_number", p.ImpliedFireNumber.StringFixed(2))
		depletion := ""
		if p.DepletionAge != nil {
			depletion = intToString(*p.DepletionAge)
		}
		field(s, "depletion_age", depletion)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	if report.Fire != nil {
		// blank record separates the year table
		if err := w.Write(nil); err != nil {
			return nil, err
		}
		if err := writeFireTable(w, report.Fire); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
