package domain

import "github.com/shopspring/decimal"

// FireProjectionYears is the fixed length of a drawdown projection
const FireProjectionYears = 20

// FireForm holds the FIRE calculator fields as typed by the user
type FireForm struct {
	AnnualExpenses string `yaml:"annual_expenses" json:"annual_expenses"`
	WithdrawalRate string `yaml:"withdrawal_rate" json:"withdrawal_rate"` // percent
	FireNumber     string `yaml:"fire_number" json:"fire_number"`
	ROI            string `yaml:"roi" json:"roi"` // percent
	StartingAge    string `yaml:"starting_age" json:"starting_age"`
}

// FireInput is the validated input of the drawdown projector
type FireInput struct {
	AnnualExpenses decimal.Decimal `json:"annual_expenses"`
	WithdrawalRate decimal.Decimal `json:"withdrawal_rate"` // percent, 4 means 4%
	FireNumber     decimal.Decimal `json:"fire_number"`
	ROI            decimal.Decimal `json:"roi"` // percent
	StartingAge    int             `json:"starting_age"`
}

// YearRow is one year of the drawdown table.
// CorpusAtEnd = CorpusAtBeginning + ReturnOnInvestment, and the next row starts
// at CorpusAtEnd - AmountWithdrawn.
type YearRow struct {
	Year               int             `json:"year" yaml:"year"` // years since start, 0-based
	Age                int             `json:"age" yaml:"age"`
	CorpusAtBeginning  decimal.Decimal `json:"corpus_at_beginning" yaml:"corpus_at_beginning"`
	ReturnOnInvestment decimal.Decimal `json:"return_on_investment" yaml:"return_on_investment"`
	CorpusAtEnd        decimal.Decimal `json:"corpus_at_end" yaml:"corpus_at_end"`
	AmountWithdrawn    decimal.Decimal `json:"amount_withdrawn" yaml:"amount_withdrawn"`
}

// RemainingCorpus is what carries into the following year
func (y YearRow) RemainingCorpus() decimal.Decimal {
	return y.CorpusAtEnd.Sub(y.AmountWithdrawn)
}

// FireProjection is the 20-row drawdown table with a short summary.
type FireProjection struct {
	Rows              []YearRow       `json:"rows" yaml:"rows"`
	FinalCorpus       decimal.Decimal `json:"final_corpus" yaml:"final_corpus"` // remaining after the last withdrawal
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn" yaml:"total_withdrawn"`
	DepletionAge      *int            `json:"depletion_age,omitempty" yaml:"depletion_age,omitempty"`
	ImpliedFireNumber decimal.Decimal `json:"implied_fire_number" yaml:"implied_fire_number"` // expenses / withdrawal rate
}
