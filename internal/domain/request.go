package domain

import "time"

// Calculator names used in logs, errors and reports
const (
	CarAffordabilityCalculator = "car_affordability"
	FireCalculator             = "fire"
	IncomeTaxCalculator        = "income_tax"
	SavingsGoalCalculator      = "savings_goal"
)

// CalculationRequest is the on-disk request format. Every block is optional
// but at least one must be present.
type CalculationRequest struct {
	CarAffordability *CarAffordabilityForm `yaml:"car_affordability,omitempty" json:"car_affordability,omitempty"`
	Fire             *FireForm             `yaml:"fire,omitempty" json:"fire,omitempty"`
	IncomeTax        *IncomeTaxForm        `yaml:"income_tax,omitempty" json:"income_tax,omitempty"`
	SavingsGoal      *SavingsGoalForm      `yaml:"savings_goal,omitempty" json:"savings_goal,omitempty"`
}

// Calculators returns the names of the blocks present in the request
func (r *CalculationRequest) Calculators() []string {
	var names []string
	if r.CarAffordability != nil {
		names = append(names, CarAffordabilityCalculator)
	}
	if r.Fire != nil {
		names = append(names, FireCalculator)
	}
	if r.IncomeTax != nil {
		names = append(names, IncomeTaxCalculator)
	}
	if r.SavingsGoal != nil {
		names = append(names, SavingsGoalCalculator)
	}
	return names
}

// Report collects the results of one request. Only the calculators that were
// requested are populated.
type Report struct {
	GeneratedAt      time.Time               `json:"generated_at" yaml:"generated_at"`
	CarAffordability *CarAffordabilityResult `json:"car_affordability,omitempty" yaml:"car_affordability,omitempty"`
	Fire             *FireProjection         `json:"fire,omitempty" yaml:"fire,omitempty"`
	IncomeTax        *TaxBreakdown           `json:"income_tax,omitempty" yaml:"income_tax,omitempty"`
	SavingsPlan      *SavingsPlan            `json:"savings_plan,omitempty" yaml:"savings_plan,omitempty"`
}

// IsEmpty reports whether no calculator produced a result
func (r *Report) IsEmpty() bool {
	return r.CarAffordability == nil && r.Fire == nil && r.IncomeTax == nil && r.SavingsPlan == nil
}

// CalculationInputs is a request after parsing and validation
type CalculationInputs struct {
	CarAffordability *CarAffordabilityInput
	Fire             *FireInput
	IncomeTax        *IncomeTaxInput
	SavingsGoal      *SavingsGoalInput
}
