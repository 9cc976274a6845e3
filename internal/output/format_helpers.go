package output

import (
	"strconv"

	money "github.com/fincalc/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal in rupees with Indian digit grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatRupees(amount, 2) }

// FormatWholeCurrency formats a decimal in whole rupees.
func FormatWholeCurrency(amount decimal.Decimal) string { return money.FormatRupees(amount, 0) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
