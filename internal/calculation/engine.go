package calculation

import (
	"context"
	"fmt"

	"github.com/fincalc/calculator/internal/domain"
	money "github.com/fincalc/calculator/pkg/decimal"
)

// Engine runs the calculators and logs what they did. It holds no state
// between calls and is safe for concurrent use once its logger is set.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new calculation engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// CarAffordability runs the car affordability calculator
func (e *Engine) CarAffordability(in domain.CarAffordabilityInput) (*domain.CarAffordabilityResult, error) {
	result, err := ComputeCarAffordability(in)
	if err != nil {
		e.Logger.Warnf("car affordability rejected: %v", err)
		return nil, err
	}
	e.Logger.Debugf("car affordability: tax=%s disposable=%s emi=%s total_interest=%s",
		result.Tax.StringFixed(2), result.DisposableIncome.StringFixed(2), result.EMI.StringFixed(2), result.TotalInterest.StringFixed(2))
	e.Logger.Infof("car affordability: annual cost %s against limit %s, affordable=%t",
		result.AnnualCost.StringFixed(2), result.AffordabilityLimit.StringFixed(2), result.IsAffordable)
	return &result, nil
}

// FireProjection runs the FIRE drawdown projector
func (e *Engine) FireProjection(in domain.FireInput) (*domain.FireProjection, error) {
	projection := ComputeFireProjection(in)
	if projection.DepletionAge != nil {
		e.Logger.Debugf("fire: corpus depleted at age %d", *projection.DepletionAge)
	}
	e.Logger.Infof("fire: %d years projected from age %d, final corpus %s",
		len(projection.Rows), in.StartingAge, projection.FinalCorpus.StringFixed(2))
	return &projection, nil
}

// IncomeTax runs the income tax calculator
func (e *Engine) IncomeTax(in domain.IncomeTaxInput) (*domain.TaxBreakdown, error) {
	breakdown := ComputeIncomeTax(in)
	e.Logger.Debugf("income tax (%s regime, %s): tax=%s relief=%s surcharge=%s cess=%s",
		breakdown.Regime, in.AgeCategory, breakdown.IncomeTax.StringFixed(2), breakdown.Relief.StringFixed(2),
		breakdown.Surcharge.StringFixed(2), breakdown.Cess.StringFixed(2))
	e.Logger.Infof("income tax: total %s on net income %s", breakdown.TotalTax.StringFixed(2), in.NetIncome.StringFixed(2))
	return &breakdown, nil
}

// SavingsPlan runs the savings goal planner against the current time
func (e *Engine) SavingsPlan(in domain.SavingsGoalInput) (*domain.SavingsPlan, error) {
	plan, err := ComputeSavingsPlan(in, nowFunc())
	if err != nil {
		e.Logger.Warnf("savings plan rejected: %v", err)
		return nil, err
	}
	e.Logger.Debugf("savings plan: %d months, tier %s at %s%%", plan.Months, plan.Tier, money.RateToPercent(plan.AnnualRate).String())
	e.Logger.Infof("savings plan: save %s per month to reach %s", plan.MonthlySavings.StringFixed(2), plan.TargetPrice.StringFixed(2))
	return &plan, nil
}

// Run evaluates every calculator present in inputs. The first failure aborts
// the run and no report is returned.
func (e *Engine) Run(ctx context.Context, inputs *domain.CalculationInputs) (*domain.Report, error) {
	if inputs == nil {
		return nil, fmt.Errorf("no inputs provided")
	}

	report := &domain.Report{GeneratedAt: nowFunc()}
	steps := []struct {
		name    string
		present bool
		run     func() error
	}{
		{domain.CarAffordabilityCalculator, inputs.CarAffordability != nil, func() (err error) {
			report.CarAffordability, err = e.CarAffordability(*inputs.CarAffordability)
			return err
		}},
		{domain.FireCalculator, inputs.Fire != nil, func() (err error) {
			report.Fire, err = e.FireProjection(*inputs.Fire)
			return err
		}},
		{domain.IncomeTaxCalculator, inputs.IncomeTax != nil, func() (err error) {
			report.IncomeTax, err = e.IncomeTax(*inputs.IncomeTax)
			return err
		}},
		{domain.SavingsGoalCalculator, inputs.SavingsGoal != nil, func() (err error) {
			report.SavingsPlan, err = e.SavingsPlan(*inputs.SavingsGoal)
			return err
		}},
	}

	for _, step := range steps {
		if !step.present {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("%s calculation failed: %w", step.name, err)
		}
	}

	if report.IsEmpty() {
		return nil, fmt.Errorf("no calculators requested")
	}
	return report, nil
}
