package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fincalc/calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validCarForm() domain.CarAffordabilityForm {
	return domain.CarAffordabilityForm{
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
	}
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	// numbers may be quoted or bare
	testRequest := "car_affordability:\n" +
		"  annual_income: 1200000\n" +
		"  on_road_price: \"10,00,000\"\n" +
		"  loan_amount: 800000\n" +
		"  loan_tenure: 5\n" +
		"  interest_rate: 8\n" +
		"  registration_fees: 50000\n" +
		"  fuel_cost: 40000\n" +
		"  insurance_premium: 15000\n" +
		"  life_span: 10\n" +
		"  maintenance_cost: 20000\n" +
		"income_tax:\n" +
		"  age_category: 60to80\n" +
		"  new_regime: no\n" +
		"  net_income: 800000\n"

	parser := NewInputParser()
	request, err := parser.LoadFromFile(writeTemp(t, testRequest))

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, []string{domain.CarAffordabilityCalculator, domain.IncomeTaxCalculator}, request.Calculators())
	assert.Equal(t, "1200000", request.CarAffordability.AnnualIncome)
	assert.Equal(t, "10,00,000", request.CarAffordability.OnRoadPrice)
	assert.Equal(t, "no", request.IncomeTax.NewRegime)
	assert.Nil(t, request.Fire)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	request, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testRequest := `
fire:
	annual_expenses: 600000
`
	parser := NewInputParser()
	request, err := parser.LoadFromFile(writeTemp(t, testRequest))

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_NoCalculators(t *testing.T) {
	parser := NewInputParser()
	request, err := parser.LoadFromFile(writeTemp(t, "unrelated: true\n"))

	assert.Error(t, err)
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "no calculators requested")
}

func TestParseCarAffordability(t *testing.T) {
	parser := NewInputParser()

	in, err := parser.ParseCarAffordability(validCarForm())
	require.NoError(t, err)
	assert.True(t, in.AnnualIncome.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, in.LoanTenureYears.Equal(decimal.NewFromInt(5)))
	assert.True(t, in.InterestRate.Equal(decimal.NewFromInt(8)), "percent kept as typed")
	assert.Equal(t, 10, in.LifeSpanYears)
}

func TestParseCarAffordability_FieldErrors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.CarAffordabilityForm)
		fields      []string
		problem     string
		description string
	}{
		{
			name:        "Missing field",
			mutate:      func(f *domain.CarAffordabilityForm) { f.FuelCost = "  " },
			fields:      []string{"fuel_cost"},
			problem:     "missing",
			description: "Blank strings count as missing",
		},
		{
			name:        "Non-numeric",
			mutate:      func(f *domain.CarAffordabilityForm) { f.InterestRate = "eight" },
			fields:      []string{"interest_rate"},
			problem:     "invalid number",
			description: "Unparseable text is rejected instead of propagating NaN",
		},
		{
			name:        "Negative amount",
			mutate:      func(f *domain.CarAffordabilityForm) { f.LoanAmount = "-1" },
			fields:      []string{"loan_amount"},
			problem:     "must not be negative",
			description: "All monetary fields are non-negative",
		},
		{
			name:        "Fractional lifespan",
			mutate:      func(f *domain.CarAffordabilityForm) { f.LifeSpan = "7.5" },
			fields:      []string{"life_span"},
			problem:     "whole number",
			description: "Lifespan is a whole number of years",
		},
		{
			name:        "Zero lifespan",
			mutate:      func(f *domain.CarAffordabilityForm) { f.LifeSpan = "0" },
			fields:      []string{"life_span"},
			problem:     "at least 1",
			description: "Lifespan divides the cost of ownership",
		},
		{
			name: "Several fields",
			mutate: func(f *domain.CarAffordabilityForm) {
				f.AnnualIncome = ""
				f.RegistrationFees = "abc"
				f.MaintenanceCost = ""
			},
			fields:      []string{"annual_income", "registration_fees", "maintenance_cost"},
			description: "Every offending field is reported in form order",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validCarForm()
			tt.mutate(&form)

			_, err := parser.ParseCarAffordability(form)
			require.Error(t, err, tt.description)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, domain.CarAffordabilityCalculator, verr.Calculator)
			assert.Equal(t, tt.fields, verr.FieldNames(), tt.description)
			if tt.problem != "" {
				assert.Contains(t, verr.Fields[0].Problem, tt.problem)
			}
		})
	}
}

func TestParseCarAffordability_GroupedDigits(t *testing.T) {
	form := validCarForm()
	form.OnRoadPrice = "₹10,00,000"
	in, err := NewInputParser().ParseCarAffordability(form)
	require.NoError(t, err)
	assert.True(t, in.OnRoadPrice.Equal(decimal.NewFromInt(1000000)))
}

func TestParseFire(t *testing.T) {
	parser := NewInputParser()

	in, err := parser.ParseFire(domain.FireForm{
		AnnualExpenses: "600000",
		WithdrawalRate: "4",
		FireNumber:     "15000000",
		ROI:            "7.5",
		StartingAge:    "45",
	})
	require.NoError(t, err)
	assert.True(t, in.ROI.Equal(decimal.RequireFromString("7.5")))
	assert.Equal(t, 45, in.StartingAge)

	_, err = parser.ParseFire(domain.FireForm{StartingAge: "-3"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"annual_expenses", "withdrawal_rate", "fire_number", "roi", "starting_age"}, verr.FieldNames())
	assert.Equal(t, "must not be negative", verr.Fields[4].Problem)
}

func TestParseIncomeTax(t *testing.T) {
	tests := []struct {
		name      string
		form      domain.IncomeTaxForm
		category  domain.AgeCategory
		newRegime bool
		fields    []string
	}{
		{
			name:      "New regime yes",
			form:      domain.IncomeTaxForm{AgeCategory: "below60", NewRegime: "yes", NetIncome: "1500000"},
			category:  domain.AgeBelow60,
			newRegime: true,
		},
		{
			name:     "Old regime false",
			form:     domain.IncomeTaxForm{AgeCategory: "Above80", NewRegime: "false", NetIncome: "0"},
			category: domain.AgeAbove80,
		},
		{
			name:   "Unknown category and flag",
			form:   domain.IncomeTaxForm{AgeCategory: "senior", NewRegime: "maybe", NetIncome: "100"},
			fields: []string{"new_regime", "age_category"},
		},
		{
			name:   "Everything missing",
			form:   domain.IncomeTaxForm{},
			fields: []string{"new_regime", "net_income", "age_category"},
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := parser.ParseIncomeTax(tt.form)
			if tt.fields != nil {
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.fields, verr.FieldNames())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, in.AgeCategory)
			assert.Equal(t, tt.newRegime, in.NewRegime)
		})
	}
}

func TestParseSavingsGoal(t *testing.T) {
	parser := NewInputParser()

	in, err := parser.ParseSavingsGoal(domain.SavingsGoalForm{TargetPrice: "100000", TargetDate: "2028-10"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, 10, 1, 0, 0, 0, 0, time.UTC), in.TargetDate)

	// past dates parse; the planner rejects them
	_, err = parser.ParseSavingsGoal(domain.SavingsGoalForm{TargetPrice: "100000", TargetDate: "2001-01-01"})
	assert.NoError(t, err)

	_, err = parser.ParseSavingsGoal(domain.SavingsGoalForm{TargetPrice: "lots", TargetDate: "someday"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"target_price", "target_date"}, verr.FieldNames())
}

func TestParseRequest(t *testing.T) {
	parser := NewInputParser()
	parser.now = func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }

	inputs, err := parser.ParseRequest(parser.CreateExampleRequest())
	require.NoError(t, err)
	assert.NotNil(t, inputs.CarAffordability)
	assert.NotNil(t, inputs.Fire)
	assert.NotNil(t, inputs.IncomeTax)
	require.NotNil(t, inputs.SavingsGoal)
	assert.Equal(t, time.Date(2028, 10, 1, 0, 0, 0, 0, time.UTC), inputs.SavingsGoal.TargetDate)

	_, err = parser.ParseRequest(&domain.CalculationRequest{})
	assert.Error(t, err)
}

func TestParseRequest_JoinsErrors(t *testing.T) {
	parser := NewInputParser()
	request := &domain.CalculationRequest{
		Fire:        &domain.FireForm{},
		SavingsGoal: &domain.SavingsGoalForm{TargetPrice: "1000"},
	}

	inputs, err := parser.ParseRequest(request)
	require.Error(t, err)
	assert.Nil(t, inputs)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "fire: invalid input")
	assert.Contains(t, err.Error(), "savings_goal: invalid input (target_date: missing)")
}

func TestCreateExampleRequest(t *testing.T) {
	parser := NewInputParser()
	request := parser.CreateExampleRequest()

	require.NotNil(t, request)
	assert.Len(t, request.Calculators(), 4)
	assert.NoError(t, parser.ValidateRequest(request))
}
