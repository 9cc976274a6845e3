package decimal

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RupeeSymbol prefixes every formatted amount.
const RupeeSymbol = "₹"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)

	displayPrinter = message.NewPrinter(language.Make("en-IN"))
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to paise (two places)
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Whole rounds to the nearest whole rupee, halves away from zero.
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in rupees with Indian digit grouping and two decimals.
func (m Money) Format() string {
	return FormatRupees(m.Decimal, 2)
}

// FormatRupees renders d with the rupee symbol, en-IN grouping and the given
// number of decimal places. Only used for display; never feed it back into math.
func FormatRupees(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + RupeeSymbol + displayPrinter.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(int(places))))
}

// PercentToRate converts a percentage such as 8 into the rate 0.08.
func PercentToRate(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// RateToPercent converts a rate such as 0.08 into the percentage 8.
func RateToPercent(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}

// MonthlyRate converts an annual rate into the equivalent simple monthly rate (annual/12).
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Growth returns (1+rate)^periods. Whole periods use exact decimal
// exponentiation; fractional periods fall back to float64.
func Growth(rate, periods decimal.Decimal) decimal.Decimal {
	base := one.Add(rate)
	if periods.Equal(periods.Truncate(0)) {
		return base.Pow(periods)
	}
	return decimal.NewFromFloat(math.Pow(base.InexactFloat64(), periods.InexactFloat64()))
}
