package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fincalc/calculator/internal/domain"
	"github.com/fincalc/calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of request files and raw form fields
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// LoadFromFile loads a calculation request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request domain.CalculationRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateRequest checks that the request asks for at least one calculation
func (ip *InputParser) ValidateRequest(request *domain.CalculationRequest) error {
	if request == nil || len(request.Calculators()) == 0 {
		return fmt.Errorf("no calculators requested: expected one of %s, %s, %s or %s",
			domain.CarAffordabilityCalculator, domain.FireCalculator, domain.IncomeTaxCalculator, domain.SavingsGoalCalculator)
	}
	return nil
}

// ParseRequest turns every block of the request into validated inputs.
// Problems in several blocks are reported together.
func (ip *InputParser) ParseRequest(request *domain.CalculationRequest) (*domain.CalculationInputs, error) {
	if err := ip.ValidateRequest(request); err != nil {
		return nil, err
	}

	inputs := &domain.CalculationInputs{}
	var errs []error

	if request.CarAffordability != nil {
		in, err := ip.ParseCarAffordability(*request.CarAffordability)
		if err != nil {
			errs = append(errs, err)
		} else {
			inputs.CarAffordability = &in
		}
	}
	if request.Fire != nil {
		in, err := ip.ParseFire(*request.Fire)
		if err != nil {
			errs = append(errs, err)
		} else {
			inputs.Fire = &in
		}
	}
	if request.IncomeTax != nil {
		in, err := ip.ParseIncomeTax(*request.IncomeTax)
		if err != nil {
			errs = append(errs, err)
		} else {
			inputs.IncomeTax = &in
		}
	}
	if request.SavingsGoal != nil {
		in, err := ip.ParseSavingsGoal(*request.SavingsGoal)
		if err != nil {
			errs = append(errs, err)
		} else {
			inputs.SavingsGoal = &in
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return inputs, nil
}

// ParseCarAffordability validates the car affordability form
func (ip *InputParser) ParseCarAffordability(form domain.CarAffordabilityForm) (domain.CarAffordabilityInput, error) {
	r := newFieldReader(domain.CarAffordabilityCalculator)
	in := domain.CarAffordabilityInput{
		AnnualIncome:     r.amount("annual_income", form.AnnualIncome),
		OnRoadPrice:      r.amount("on_road_price", form.OnRoadPrice),
		LoanAmount:       r.amount("loan_amount", form.LoanAmount),
		LoanTenureYears:  r.amount("loan_tenure", form.LoanTenure),
		InterestRate:     r.amount("interest_rate", form.InterestRate),
		RegistrationFees: r.amount("registration_fees", form.RegistrationFees),
		FuelCost:         r.amount("fuel_cost", form.FuelCost),
		InsurancePremium: r.amount("insurance_premium", form.InsurancePremium),
		LifeSpanYears:    r.count("life_span", form.LifeSpan, 1),
		MaintenanceCost:  r.amount("maintenance_cost", form.MaintenanceCost),
	}
	if err := r.err.ErrOrNil(); err != nil {
		return domain.CarAffordabilityInput{}, err
	}
	return in, nil
}

// ParseFire validates the FIRE drawdown form
func (ip *InputParser) ParseFire(form domain.FireForm) (domain.FireInput, error) {
	r := newFieldReader(domain.FireCalculator)
	in := domain.FireInput{
		AnnualExpenses: r.amount("annual_expenses", form.AnnualExpenses),
		WithdrawalRate: r.amount("withdrawal_rate", form.WithdrawalRate),
		FireNumber:     r.amount("fire_number", form.FireNumber),
		ROI:            r.amount("roi", form.ROI),
		StartingAge:    r.count("starting_age", form.StartingAge, 0),
	}
	if err := r.err.ErrOrNil(); err != nil {
		return domain.FireInput{}, err
	}
	return in, nil
}

// ParseIncomeTax validates the income tax form
func (ip *InputParser) ParseIncomeTax(form domain.IncomeTaxForm) (domain.IncomeTaxInput, error) {
	r := newFieldReader(domain.IncomeTaxCalculator)
	in := domain.IncomeTaxInput{
		NewRegime: r.flag("new_regime", form.NewRegime),
		NetIncome: r.amount("net_income", form.NetIncome),
	}
	if strings.TrimSpace(form.AgeCategory) == "" {
		r.err.Add("age_category", "missing")
	} else if category, err := domain.ParseAgeCategory(form.AgeCategory); err != nil {
		r.err.Add("age_category", fmt.Sprintf("must be one of %s, %s or %s", domain.AgeBelow60, domain.Age60To80, domain.AgeAbove80))
	} else {
		in.AgeCategory = category
	}
	if err := r.err.ErrOrNil(); err != nil {
		return domain.IncomeTaxInput{}, err
	}
	return in, nil
}

// ParseSavingsGoal validates the savings goal form. Whether the target date
// lies in a future month is checked by the planner, not here.
func (ip *InputParser) ParseSavingsGoal(form domain.SavingsGoalForm) (domain.SavingsGoalInput, error) {
	r := newFieldReader(domain.SavingsGoalCalculator)
	in := domain.SavingsGoalInput{
		TargetPrice: r.amount("target_price", form.TargetPrice),
	}
	if strings.TrimSpace(form.TargetDate) == "" {
		r.err.Add("target_date", "missing")
	} else if date, err := dateutil.ParseTargetDate(form.TargetDate); err != nil {
		r.err.Add("target_date", "invalid date, use YYYY-MM-DD or YYYY-MM")
	} else {
		in.TargetDate = date
	}
	if err := r.err.ErrOrNil(); err != nil {
		return domain.SavingsGoalInput{}, err
	}
	return in, nil
}

// fieldReader accumulates every field problem of one form
type fieldReader struct {
	err *domain.ValidationError
}

func newFieldReader(calculator string) *fieldReader {
	return &fieldReader{err: &domain.ValidationError{Calculator: calculator}}
}

// normalize strips whitespace, the rupee symbol and digit grouping commas
func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func (r *fieldReader) amount(field, raw string) decimal.Decimal {
	s := normalize(raw)
	if s == "" {
		r.err.Add(field, "missing")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		r.err.Add(field, "invalid number")
		return decimal.Zero
	}
	if d.IsNegative() {
		r.err.Add(field, "must not be negative")
		return decimal.Zero
	}
	return d
}

func (r *fieldReader) count(field, raw string, least int) int {
	s := normalize(raw)
	if s == "" {
		r.err.Add(field, "missing")
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err.Add(field, "must be a whole number")
		return 0
	}
	if n < least {
		if least == 0 {
			r.err.Add(field, "must not be negative")
		} else {
			r.err.Add(field, fmt.Sprintf("must be at least %d", least))
		}
		return 0
	}
	return n
}

func (r *fieldReader) flag(field, raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true":
		return true
	case "no", "n", "false":
		return false
	case "":
		r.err.Add(field, "missing")
	default:
		r.err.Add(field, "must be yes or no")
	}
	return false
}

// CreateExampleRequest creates a request exercising every calculator
func (ip *InputParser) CreateExampleRequest() *domain.CalculationRequest {
	target := dateutil.AddMonths(dateutil.BeginningOfMonth(ip.now()), 24)

	return &domain.CalculationRequest{
		CarAffordability: &domain.CarAffordabilityForm{
			AnnualIncome:     "1200000",
			OnRoadPrice:      "1000000",
			LoanAmount:       "800000",
			LoanTenure:       "5",
			InterestRate:     "8",
			RegistrationFees: "50000",
			FuelCost:         "40000",
			InsurancePremium: "15000",
			LifeSpan:         "10",
			MaintenanceCost:  "20000",
		},
		Fire: &domain.FireForm{
			AnnualExpenses: "600000",
			WithdrawalRate: "4",
			FireNumber:     "15000000",
			ROI:            "7",
			StartingAge:    "45",
		},
		IncomeTax: &domain.IncomeTaxForm{
			AgeCategory: string(domain.AgeBelow60),
			NewRegime:   "yes",
			NetIncome:   "1500000",
		},
		SavingsGoal: &domain.SavingsGoalForm{
			TargetPrice: "100000",
			TargetDate:  target.Format("2006-01"),
		},
	}
}
