package calculation

import (
	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CAR AFFORDABILITY ASSUMPTIONS:
//
// 1. Income tax uses a fixed new-regime style schedule expressed as
//    base + marginal rate above the bracket's lower bound. The 37,500 base
//    at 7.5 lakh is kept as published, so tax jumps at that boundary.
// 2. Down payment is always 20% of the on-road price, whatever the loan amount.
// 3. A car is affordable when its annual cost of ownership is below 20% of
//    disposable income (strict).

var (
	downPaymentRatio       = decimal.NewFromFloat(0.20)
	affordabilityThreshold = decimal.NewFromFloat(0.20)
	monthsPerYear          = decimal.NewFromInt(12)
)

// MarginalBracket charges Base plus Rate on the income above Lower
type MarginalBracket struct {
	Lower decimal.Decimal
	Base  decimal.Decimal
	Rate  decimal.Decimal
}

// CarTaxBrackets is the personal income tax schedule used by the car calculator
var CarTaxBrackets = []MarginalBracket{
	{decimal.Zero, decimal.Zero, decimal.Zero},
	{decimal.NewFromInt(750000), decimal.NewFromInt(37500), decimal.NewFromFloat(0.15)},
	{decimal.NewFromInt(1000000), decimal.NewFromInt(75000), decimal.NewFromFloat(0.20)},
	{decimal.NewFromInt(1250000), decimal.NewFromInt(125000), decimal.NewFromFloat(0.25)},
	{decimal.NewFromInt(1500000), decimal.NewFromInt(187500), decimal.NewFromFloat(0.30)},
}

// CarIncomeTax applies CarTaxBrackets. Upper bounds are inclusive, so an
// income of exactly 7.5 lakh pays nothing.
func CarIncomeTax(income decimal.Decimal) decimal.Decimal {
	bracket := CarTaxBrackets[0]
	for _, b := range CarTaxBrackets[1:] {
		if income.GreaterThan(b.Lower) {
			bracket = b
		}
	}
	if bracket.Rate.IsZero() {
		return decimal.Zero
	}
	return income.Sub(bracket.Lower).Mul(bracket.Rate).Add(bracket.Base)
}

// EMI returns the equated monthly instalment for a loan:
// P·r·(1+r)^n / ((1+r)^n − 1) with r the monthly rate and n the tenure in months.
// A zero rate or a zero tenure makes the formula undefined.
func EMI(principal, annualRatePercent, tenureYears decimal.Decimal) (decimal.Decimal, error) {
	r := money.MonthlyRate(money.PercentToRate(annualRatePercent))
	n := tenureYears.Mul(monthsPerYear)
	if r.IsZero() {
		return decimal.Zero, &domain.DegenerateInputError{Calculator: domain.CarAffordabilityCalculator, Reason: "EMI is undefined for a zero interest rate"}
	}
	growth := money.Growth(r, n)
	denominator := growth.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return decimal.Zero, &domain.DegenerateInputError{Calculator: domain.CarAffordabilityCalculator, Reason: "EMI is undefined for a zero loan tenure"}
	}
	return principal.Mul(r).Mul(growth).Div(denominator), nil
}

// ComputeCarAffordability works out the full cost of owning a car over its
// lifespan and whether that cost fits the buyer's disposable income.
// Nothing is rounded here; see CarAffordabilityResult.Rounded.
func ComputeCarAffordability(in domain.CarAffordabilityInput) (domain.CarAffordabilityResult, error) {
	if in.LifeSpanYears <= 0 {
		return domain.CarAffordabilityResult{}, &domain.DegenerateInputError{Calculator: domain.CarAffordabilityCalculator, Reason: "life span must be at least one year"}
	}

	tax := CarIncomeTax(in.AnnualIncome)
	disposable := in.AnnualIncome.Sub(tax)
	downPayment := in.OnRoadPrice.Mul(downPaymentRatio)

	emi, err := EMI(in.LoanAmount, in.InterestRate, in.LoanTenureYears)
	if err != nil {
		return domain.CarAffordabilityResult{}, err
	}
	totalInterest := emi.Mul(monthsPerYear).Mul(in.LoanTenureYears).Sub(in.LoanAmount)
	totalLoan := in.LoanAmount.Add(totalInterest)

	lifespan := decimal.NewFromInt(int64(in.LifeSpanYears))
	buying := downPayment.Add(totalLoan).Add(in.RegistrationFees)
	operational := in.FuelCost.Add(in.InsurancePremium).Mul(lifespan)
	maintenance := in.MaintenanceCost.Mul(lifespan)
	total := buying.Add(operational).Add(maintenance)
	annual := total.Div(lifespan)
	limit := disposable.Mul(affordabilityThreshold)

	return domain.CarAffordabilityResult{
		Tax:                  tax,
		DisposableIncome:     disposable,
		DownPayment:          downPayment,
		EMI:                  emi,
		TotalInterest:        totalInterest,
		TotalLoan:            totalLoan,
		TotalBuyingCost:      buying,
		TotalOperationalCost: operational,
		TotalMaintenanceCost: maintenance,
		TotalCost:            total,
		AnnualCost:           annual,
		AffordabilityLimit:   limit,
		IsAffordable:         annual.LessThan(limit),
	}, nil
}
