package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
)

// ConsoleVerboseFormatter renders every calculator section in detail.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "PERSONAL FINANCE CALCULATION REPORT")
	fmt.Fprintln(&buf, "=================================================================================")
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("02 Jan 2006 15:04"))
	}
	fmt.Fprintln(&buf)

	if report.CarAffordability != nil {
		writeCarSection(&buf, report.CarAffordability.Rounded())
	}
	if report.Fire != nil {
		writeFireSection(&buf, report.Fire)
	}
	if report.IncomeTax != nil {
		writeTaxSection(&buf, report.IncomeTax)
	}
	if report.SavingsPlan != nil {
		writeSavingsSection(&buf, report.SavingsPlan)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func sectionHeader(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
}

func writeCarSection(buf *bytes.Buffer, r domain.CarAffordabilityResult) {
	sectionHeader(buf, "CAR AFFORDABILITY")
	fmt.Fprintf(buf, "  Income Tax:               %s\n", FormatWholeCurrency(r.Tax))
	fmt.Fprintf(buf, "  Disposable Income:        %s\n", FormatWholeCurrency(r.DisposableIncome))
	fmt.Fprintf(buf, "  Down Payment:             %s\n", FormatWholeCurrency(r.DownPayment))
	fmt.Fprintf(buf, "  Monthly EMI:              %s\n", FormatWholeCurrency(r.EMI))
	fmt.Fprintf(buf, "  Total Interest:           %s\n", FormatWholeCurrency(r.TotalInterest))
	fmt.Fprintf(buf, "  Total Loan Repayment:     %s\n", FormatWholeCurrency(r.TotalLoan))
	fmt.Fprintf(buf, "  Total Buying Cost:        %s\n", FormatWholeCurrency(r.TotalBuyingCost))
	fmt.Fprintf(buf, "  Total Operational Cost:   %s\n", FormatWholeCurrency(r.TotalOperationalCost))
	fmt.Fprintf(buf, "  Total Maintenance Cost:   %s\n", FormatWholeCurrency(r.TotalMaintenanceCost))
	fmt.Fprintf(buf, "  Total Cost of Ownership:  %s\n", FormatWholeCurrency(r.TotalCost))
	fmt.Fprintf(buf, "  Annual Cost:              %s\n", FormatWholeCurrency(r.AnnualCost))
	fmt.Fprintf(buf, "  Affordability Limit:      %s\n", FormatWholeCurrency(r.AffordabilityLimit))
	fmt.Fprintf(buf, "  Affordable:               %s\n", yesNo(r.IsAffordable))
	fmt.Fprintln(buf)
}

func writeFireSection(buf *bytes.Buffer, p *domain.FireProjection) {
	sectionHeader(buf, "FIRE DRAWDOWN PROJECTION")
	fmt.Fprintf(buf, "%-5s %-4s %20s %18s %20s %18s\n", "Year", "Age", "Corpus (start)", "Return", "Corpus (end)", "Withdrawn")
	fmt.Fprintln(buf, strings.Repeat("-", 90))
	for _, row := range p.Rows {
		fmt.Fprintf(buf, "%-5d %-4d %20s %18s %20s %18s\n",
			row.Year, row.Age,
			FormatCurrency(row.CorpusAtBeginning),
			FormatCurrency(row.ReturnOnInvestment),
			FormatCurrency(row.CorpusAtEnd),
			FormatCurrency(row.AmountWithdrawn))
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Final Corpus:             %s\n", FormatCurrency(p.FinalCorpus))
	fmt.Fprintf(buf, "  Total Withdrawn:          %s\n", FormatCurrency(p.TotalWithdrawn))
	fmt.Fprintf(buf, "  Implied FIRE Number:      %s\n", FormatCurrency(p.ImpliedFireNumber))
	if p.DepletionAge != nil {
		fmt.Fprintf(buf, "  Corpus Depleted At Age:   %d\n", *p.DepletionAge)
	} else {
		fmt.Fprintln(buf, "  Corpus Depleted At Age:   never within the projection")
	}
	fmt.Fprintln(buf)
}

func writeTaxSection(buf *bytes.Buffer, t *domain.TaxBreakdown) {
	sectionHeader(buf, "INCOME TAX")
	fmt.Fprintf(buf, "  Regime:                   %s\n", t.Regime)
	fmt.Fprintf(buf, "  Income Tax:               %s\n", FormatCurrency(t.IncomeTax))
	fmt.Fprintf(buf, "  Relief (87A):             %s\n", FormatCurrency(t.Relief))
	fmt.Fprintf(buf, "  Surcharge:                %s\n", FormatCurrency(t.Surcharge))
	fmt.Fprintf(buf, "  Health & Education Cess:  %s\n", FormatCurrency(t.Cess))
	fmt.Fprintf(buf, "  Total Tax Payable:        %s\n", FormatCurrency(t.TotalTax))
	fmt.Fprintln(buf)
}

func writeSavingsSection(buf *bytes.Buffer, p *domain.SavingsPlan) {
	sectionHeader(buf, "SAVINGS GOAL PLAN")
	fmt.Fprintf(buf, "  Target:                   %s by %s\n", FormatCurrency(p.TargetPrice), p.TargetDate.Format("02 Jan 2006"))
	fmt.Fprintf(buf, "  Horizon:                  %d months (%s years)\n", p.Months, p.Years.StringFixed(2))
	fmt.Fprintf(buf, "  Tier:                     %s at %s\n", p.Tier, FormatPercentage(money.RateToPercent(p.AnnualRate)))
	fmt.Fprintf(buf, "  Monthly Savings:          %s\n", FormatCurrency(p.MonthlySavings))
	fmt.Fprintf(buf, "  Total Savings:            %s\n", FormatCurrency(p.TotalSavings))
	fmt.Fprintf(buf, "  Total Interest Earned:    %s\n", FormatCurrency(p.TotalInterest))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, p.Rationale)
	fmt.Fprintln(buf)
}
