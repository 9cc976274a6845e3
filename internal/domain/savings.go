package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsTier is the horizon band that picks the assumed return
type SavingsTier string

const (
	ShortTermTier  SavingsTier = "short_term"  // up to 1 year
	MediumTermTier SavingsTier = "medium_term" // up to 3 years
	LongTermTier   SavingsTier = "long_term"   // over 3 years
)

// SavingsGoalForm holds the savings goal fields as typed by the user
type SavingsGoalForm struct {
	TargetPrice string `yaml:"target_price" json:"target_price"`
	TargetDate  string `yaml:"target_date" json:"target_date"` // YYYY-MM-DD or YYYY-MM
}

// SavingsGoalInput is the validated input of the savings planner
type SavingsGoalInput struct {
	TargetPrice decimal.Decimal `json:"target_price"`
	TargetDate  time.Time       `json:"target_date"`
}

// SavingsPlan is the monthly savings schedule needed to hit a target
type SavingsPlan struct {
	TargetPrice    decimal.Decimal `json:"target_price" yaml:"target_price"`
	TargetDate     time.Time       `json:"target_date" yaml:"target_date"`
	Months         int             `json:"months" yaml:"months"`
	Years          decimal.Decimal `json:"years" yaml:"years"`
	Tier           SavingsTier     `json:"tier" yaml:"tier"`
	AnnualRate     decimal.Decimal `json:"annual_rate" yaml:"annual_rate"` // 0.08 means 8%
	MonthlySavings decimal.Decimal `json:"monthly_savings" yaml:"monthly_savings"`
	TotalSavings   decimal.Decimal `json:"total_savings" yaml:"total_savings"`
	TotalInterest  decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	Rationale      string          `json:"rationale" yaml:"rationale"`
}
