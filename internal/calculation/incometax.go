package calculation

import (
	"github.com/fincalc/calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// INCOME TAX ASSUMPTIONS (FY 2025-26 slabs):
//
// 1. Schedules are ordered (lower bound, rate) pairs; a slab runs up to the
//    next slab's lower bound, the last one is open ended.
// 2. New regime (section 115BAC): 87A relief up to 60,000 when net income is
//    at most 12 lakh. Old regime: relief up to 12,500 at most 5 lakh.
// 3. Surcharge is a percentage of income tax before relief, banded on net
//    income with strict lower bounds.
// 4. Health and education cess is 4% of tax plus surcharge and is skipped
//    when relief exactly equals the computed tax.

// TaxSlab taxes income above LowerBound at Rate
type TaxSlab struct {
	LowerBound decimal.Decimal
	Rate       decimal.Decimal
}

// TaxSchedule is a list of slabs in ascending LowerBound order
type TaxSchedule []TaxSlab

// Tax sums each slab's share of income
func (s TaxSchedule) Tax(income decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, slab := range s {
		if !income.GreaterThan(slab.LowerBound) {
			break
		}
		upper := income
		if i+1 < len(s) {
			upper = decimal.Min(income, s[i+1].LowerBound)
		}
		total = total.Add(upper.Sub(slab.LowerBound).Mul(slab.Rate))
	}
	return total
}

// RebateRule grants relief of min(tax, Cap) when income <= IncomeLimit
type RebateRule struct {
	IncomeLimit decimal.Decimal
	Cap         decimal.Decimal
}

// Relief returns the rebate due on tax for the given income
func (r RebateRule) Relief(income, tax decimal.Decimal) decimal.Decimal {
	if income.GreaterThan(r.IncomeLimit) {
		return decimal.Zero
	}
	return decimal.Min(tax, r.Cap)
}

// SurchargeBand applies Rate when income is strictly above Above
type SurchargeBand struct {
	Above decimal.Decimal
	Rate  decimal.Decimal
}

func slab(lower int64, rate float64) TaxSlab {
	return TaxSlab{LowerBound: decimal.NewFromInt(lower), Rate: decimal.NewFromFloat(rate)}
}

var (
	// NewRegimeSchedule is the section 115BAC schedule
	NewRegimeSchedule = TaxSchedule{
		slab(400000, 0.05),
		slab(800000, 0.10),
		slab(1200000, 0.15),
		slab(1600000, 0.20),
		slab(2000000, 0.25),
		slab(2400000, 0.30),
	}

	// OldRegimeSchedules holds the old regime schedule per age category.
	// Over-80s have a 5 lakh exemption and no 5% slab.
	OldRegimeSchedules = map[domain.AgeCategory]TaxSchedule{
		domain.AgeBelow60: {slab(250000, 0.05), slab(500000, 0.20), slab(1000000, 0.30)},
		domain.Age60To80:  {slab(300000, 0.05), slab(500000, 0.20), slab(1000000, 0.30)},
		domain.AgeAbove80: {slab(500000, 0.20), slab(1000000, 0.30)},
	}

	NewRegimeRebate = RebateRule{IncomeLimit: decimal.NewFromInt(1200000), Cap: decimal.NewFromInt(60000)}
	OldRegimeRebate = RebateRule{IncomeLimit: decimal.NewFromInt(500000), Cap: decimal.NewFromInt(12500)}

	// SurchargeBands is ordered highest first
	SurchargeBands = []SurchargeBand{
		{decimal.NewFromInt(50000000), decimal.NewFromFloat(0.37)},
		{decimal.NewFromInt(20000000), decimal.NewFromFloat(0.25)},
		{decimal.NewFromInt(10000000), decimal.NewFromFloat(0.15)},
		{decimal.NewFromInt(5000000), decimal.NewFromFloat(0.10)},
	}

	cessRate = decimal.NewFromFloat(0.04)
)

const (
	newRegimeLabel = "new"
	oldRegimeLabel = "old"
)

// SurchargeRate returns the surcharge rate for a net income
func SurchargeRate(income decimal.Decimal) decimal.Decimal {
	for _, band := range SurchargeBands {
		if income.GreaterThan(band.Above) {
			return band.Rate
		}
	}
	return decimal.Zero
}

// ComputeIncomeTax computes the tax liability for one assessee. A net income
// of zero or less short-circuits to an all-zero breakdown.
func ComputeIncomeTax(in domain.IncomeTaxInput) domain.TaxBreakdown {
	schedule, rebate, label := OldRegimeSchedules[in.AgeCategory], OldRegimeRebate, oldRegimeLabel
	if in.NewRegime {
		schedule, rebate, label = NewRegimeSchedule, NewRegimeRebate, newRegimeLabel
	}

	if !in.NetIncome.IsPositive() {
		return domain.TaxBreakdown{
			IncomeTax: decimal.Zero,
			Relief:    decimal.Zero,
			Surcharge: decimal.Zero,
			Cess:      decimal.Zero,
			TotalTax:  decimal.Zero,
			Regime:    label,
		}
	}

	incomeTax := schedule.Tax(in.NetIncome)
	relief := rebate.Relief(in.NetIncome, incomeTax)
	surcharge := incomeTax.Mul(SurchargeRate(in.NetIncome))

	cess := decimal.Zero
	if !incomeTax.Equal(relief) {
		cess = incomeTax.Add(surcharge).Mul(cessRate)
	}

	return domain.TaxBreakdown{
		IncomeTax: incomeTax,
		Relief:    relief,
		Surcharge: surcharge,
		Cess:      cess,
		TotalTax:  incomeTax.Sub(relief).Add(surcharge).Add(cess),
		Regime:    label,
	}
}
