package calculation

import (
	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ComputeFireProjection projects a retirement corpus for FireProjectionYears
// years. Each year the corpus earns ROI, then the withdrawal rate is applied
// to the grown corpus. The corpus is never floored: a withdrawal rate above
// the return drains it and it may go negative.
func ComputeFireProjection(in domain.FireInput) domain.FireProjection {
	roi := money.PercentToRate(in.ROI)
	withdrawalRate := money.PercentToRate(in.WithdrawalRate)

	rows := make([]domain.YearRow, 0, domain.FireProjectionYears)
	corpus := in.FireNumber
	totalWithdrawn := decimal.Zero
	var depletionAge *int

	for year := 0; year < domain.FireProjectionYears; year++ {
		growth := corpus.Mul(roi)
		atEnd := corpus.Add(growth)
		withdrawn := atEnd.Mul(withdrawalRate)

		row := domain.YearRow{
			Year:               year,
			Age:                in.StartingAge + year,
			CorpusAtBeginning:  corpus,
			ReturnOnInvestment: growth,
			CorpusAtEnd:        atEnd,
			AmountWithdrawn:    withdrawn,
		}
		rows = append(rows, row)

		totalWithdrawn = totalWithdrawn.Add(withdrawn)
		corpus = row.RemainingCorpus()
		if depletionAge == nil && !corpus.IsPositive() {
			age := row.Age
			depletionAge = &age
		}
	}

	implied := decimal.Zero
	if !withdrawalRate.IsZero() {
		implied = in.AnnualExpenses.Div(withdrawalRate)
	}

	return domain.FireProjection{
		Rows:              rows,
		FinalCorpus:       corpus,
		TotalWithdrawn:    totalWithdrawn,
		DepletionAge:      depletionAge,
		ImpliedFireNumber: implied,
	}
}
