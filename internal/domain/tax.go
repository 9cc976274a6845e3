package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AgeCategory selects the old-regime exemption schedule
type AgeCategory string

const (
	AgeBelow60 AgeCategory = "below60"
	Age60To80  AgeCategory = "60to80"
	AgeAbove80 AgeCategory = "above80"
)

// AgeCategories lists every accepted category in display order
var AgeCategories = []AgeCategory{AgeBelow60, Age60To80, AgeAbove80}

// ParseAgeCategory accepts the canonical names, case-insensitively.
func ParseAgeCategory(s string) (AgeCategory, error) {
	c := AgeCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AgeCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown age category %q", s)
}

// IncomeTaxForm holds the income tax fields as typed by the user
type IncomeTaxForm struct {
	AgeCategory string `yaml:"age_category" json:"age_category"`
	NewRegime   string `yaml:"new_regime" json:"new_regime"` // opting for section 115BAC: yes/no
	NetIncome   string `yaml:"net_income" json:"net_income"`
}

// IncomeTaxInput is the validated input of the income tax calculator
type IncomeTaxInput struct {
	AgeCategory AgeCategory     `json:"age_category"`
	NewRegime   bool            `json:"new_regime"`
	NetIncome   decimal.Decimal `json:"net_income"`
}

// TaxBreakdown is the computed liability.
// TotalTax = IncomeTax - Relief + Surcharge + Cess.
type TaxBreakdown struct {
	IncomeTax decimal.Decimal `json:"income_tax" yaml:"income_tax"`
	Relief    decimal.Decimal `json:"relief" yaml:"relief"` // section 87A rebate
	Surcharge decimal.Decimal `json:"surcharge" yaml:"surcharge"`
	Cess      decimal.Decimal `json:"cess" yaml:"cess"`
	TotalTax  decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	Regime    string          `json:"regime" yaml:"regime"`
}
