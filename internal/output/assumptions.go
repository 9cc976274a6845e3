package output

import "github.com/fincalc/calculator/internal/domain"

// Modeling assumptions rendered in detailed outputs, keyed by calculator.
var calculatorAssumptions = map[string][]string{
	domain.CarAffordabilityCalculator: {
		"Car: 20% down payment on the on-road price",
		"Car: income tax from a base plus marginal schedule starting above ₹7,50,000",
		"Car: affordable when the annual cost of ownership is at most 20% of disposable income",
		"Car: amounts displayed in whole rupees",
	},
	domain.FireCalculator: {
		"FIRE: return and withdrawal applied once a year over 20 years",
		"FIRE: the corpus is not floored at zero, negative values show depletion",
	},
	domain.IncomeTaxCalculator: {
		"Income tax: FY 2025-26 slabs, section 87A relief and 4% health and education cess",
		"Income tax: surcharge of 10% to 37% above ₹50 lakh of net income",
	},
	domain.SavingsGoalCalculator: {
		"Savings: 5% a year up to 12 months, 8% up to 36 months, 10% beyond",
		"Savings: monthly compounding at the annual rate divided by 12",
	},
}

var calculatorOrder = []string{
	domain.CarAffordabilityCalculator,
	domain.FireCalculator,
	domain.IncomeTaxCalculator,
	domain.SavingsGoalCalculator,
}

// DefaultAssumptions lists every modeling assumption.
var DefaultAssumptions = GenerateAssumptions(nil)

// GenerateAssumptions returns the assumptions behind the calculators present
// in the report. A nil report yields all of them.
func GenerateAssumptions(report *domain.Report) []string {
	var out []string
	for _, name := range calculatorOrder {
		if report != nil && !reportHas(report, name) {
			continue
		}
		out = append(out, calculatorAssumptions[name]...)
	}
	return out
}

func reportHas(report *domain.Report, calculator string) bool {
	switch calculator {
	case domain.CarAffordabilityCalculator:
		return report.CarAffordability != nil
	case domain.FireCalculator:
		return report.Fire != nil
	case domain.IncomeTaxCalculator:
		return report.IncomeTax != nil
	case domain.SavingsGoalCalculator:
		return report.SavingsPlan != nil
	}
	return false
}
