package domain

import (
	"github.com/shopspring/decimal"

	money "github.com/fincalc/calculator/pkg/decimal"
)

// CarAffordabilityForm holds the car calculator fields exactly as a user typed them
type CarAffordabilityForm struct {
	AnnualIncome     string `yaml:"annual_income" json:"annual_income"`
	OnRoadPrice      string `yaml:"on_road_price" json:"on_road_price"`
	LoanAmount       string `yaml:"loan_amount" json:"loan_amount"`
	LoanTenure       string `yaml:"loan_tenure" json:"loan_tenure"`     // years
	InterestRate     string `yaml:"interest_rate" json:"interest_rate"` // percent per annum
	RegistrationFees string `yaml:"registration_fees" json:"registration_fees"`
	FuelCost         string `yaml:"fuel_cost" json:"fuel_cost"`                 // per year
	InsurancePremium string `yaml:"insurance_premium" json:"insurance_premium"` // per year
	LifeSpan         string `yaml:"life_span" json:"life_span"`                 // whole years
	MaintenanceCost  string `yaml:"maintenance_cost" json:"maintenance_cost"`   // per year
}

// CarAffordabilityInput is the validated input of the car affordability calculator
type CarAffordabilityInput struct {
	AnnualIncome     decimal.Decimal `json:"annual_income"`
	OnRoadPrice      decimal.Decimal `json:"on_road_price"`
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	LoanTenureYears  decimal.Decimal `json:"loan_tenure_years"`
	InterestRate     decimal.Decimal `json:"interest_rate"` // percent, 8 means 8%
	RegistrationFees decimal.Decimal `json:"registration_fees"`
	FuelCost         decimal.Decimal `json:"fuel_cost"`
	InsurancePremium decimal.Decimal `json:"insurance_premium"`
	LifeSpanYears    int             `json:"life_span_years"`
	MaintenanceCost  decimal.Decimal `json:"maintenance_cost"`
}

// CarAffordabilityResult is the full cost-of-ownership breakdown.
// TotalCost = TotalBuyingCost + TotalOperationalCost + TotalMaintenanceCost and
// AnnualCost = TotalCost / lifespan.
type CarAffordabilityResult struct {
	Tax                  decimal.Decimal `json:"tax" yaml:"tax"`
	DisposableIncome     decimal.Decimal `json:"disposable_income" yaml:"disposable_income"`
	DownPayment          decimal.Decimal `json:"down_payment" yaml:"down_payment"`
	EMI                  decimal.Decimal `json:"emi" yaml:"emi"`
	TotalInterest        decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	TotalLoan            decimal.Decimal `json:"total_loan" yaml:"total_loan"`
	TotalBuyingCost      decimal.Decimal `json:"total_buying_cost" yaml:"total_buying_cost"`
	TotalOperationalCost decimal.Decimal `json:"total_operational_cost" yaml:"total_operational_cost"`
	TotalMaintenanceCost decimal.Decimal `json:"total_maintenance_cost" yaml:"total_maintenance_cost"`
	TotalCost            decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	AnnualCost           decimal.Decimal `json:"annual_cost" yaml:"annual_cost"`
	AffordabilityLimit   decimal.Decimal `json:"affordability_limit" yaml:"affordability_limit"` // 20% of disposable income
	IsAffordable         bool            `json:"is_affordable" yaml:"is_affordable"`
}

// Rounded returns a copy with every monetary field rounded to whole rupees
// for display. The affordability flag is carried over from the unrounded values.
func (r CarAffordabilityResult) Rounded() CarAffordabilityResult {
	whole := func(d decimal.Decimal) decimal.Decimal { return money.NewMoneyFromDecimal(d).Whole().Decimal }
	return CarAffordabilityResult{
		Tax:                  whole(r.Tax),
		DisposableIncome:     whole(r.DisposableIncome),
		DownPayment:          whole(r.DownPayment),
		EMI:                  whole(r.EMI),
		TotalInterest:        whole(r.TotalInterest),
		TotalLoan:            whole(r.TotalLoan),
		TotalBuyingCost:      whole(r.TotalBuyingCost),
		TotalOperationalCost: whole(r.TotalOperationalCost),
		TotalMaintenanceCost: whole(r.TotalMaintenanceCost),
		TotalCost:            whole(r.TotalCost),
		AnnualCost:           whole(r.AnnualCost),
		AffordabilityLimit:   whole(r.AffordabilityLimit),
		IsAffordable:         r.IsAffordable,
	}
}
