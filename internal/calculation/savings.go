package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/fincalc/calculator/internal/domain"
	"github.com/fincalc/calculator/pkg/dateutil"
	money "github.com/fincalc/calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SavingsRateTier maps a horizon to an assumed annual return
type SavingsRateTier struct {
	Tier        domain.SavingsTier
	MaxMonths   int // inclusive; zero means unbounded
	AnnualRate  decimal.Decimal
	Explanation string
}

// SavingsRateTiers are checked in order; the first tier whose MaxMonths
// covers the horizon wins.
var SavingsRateTiers = []SavingsRateTier{
	{
		Tier:        domain.ShortTermTier,
		MaxMonths:   12,
		AnnualRate:  decimal.NewFromFloat(0.05),
		Explanation: "For short-term goals (up to 1 year), we assume a conservative 5% annual return, suitable for low-risk investments like high-yield savings accounts or short-term bonds.",
	},
	{
		Tier:        domain.MediumTermTier,
		MaxMonths:   36,
		AnnualRate:  decimal.NewFromFloat(0.08),
		Explanation: "For medium-term goals (1-3 years), we assume an 8% annual return, which might be achieved through a balanced portfolio of stocks and bonds.",
	},
	{
		Tier:        domain.LongTermTier,
		AnnualRate:  decimal.NewFromFloat(0.10),
		Explanation: "For long-term goals (over 3 years), we assume a 10% annual return, which is closer to the historical average return of the stock market over long periods.",
	},
}

// TierForMonths picks the rate tier for a horizon in months
func TierForMonths(months int) SavingsRateTier {
	for _, t := range SavingsRateTiers {
		if t.MaxMonths == 0 || months <= t.MaxMonths {
			return t
		}
	}
	return SavingsRateTiers[len(SavingsRateTiers)-1]
}

// ComputeSavingsPlan works out the monthly saving needed to reach a target
// price by a target date, using M = target·r(1+r)^n / ((1+r)^n − 1) with the
// tier's annual rate over 12 as r and the calendar month difference between
// now and the target date as n. Goals in the current or an earlier month
// are rejected.
func ComputeSavingsPlan(in domain.SavingsGoalInput, now time.Time) (domain.SavingsPlan, error) {
	months := dateutil.MonthsBetween(now, in.TargetDate)
	if months <= 0 {
		return domain.SavingsPlan{}, &domain.DegenerateInputError{
			Calculator: domain.SavingsGoalCalculator,
			Reason:     fmt.Sprintf("target date %s must be in a future month (horizon is %d months)", in.TargetDate.Format("2006-01-02"), months),
		}
	}

	tier := TierForMonths(months)
	n := decimal.NewFromInt(int64(months))
	r := money.MonthlyRate(tier.AnnualRate)
	growth := money.Growth(r, n)

	monthly := in.TargetPrice.Mul(r.Mul(growth)).Div(growth.Sub(decimal.NewFromInt(1)))
	total := monthly.Mul(n)
	interest := total.Sub(in.TargetPrice)

	plan := domain.SavingsPlan{
		TargetPrice:    in.TargetPrice,
		TargetDate:     in.TargetDate,
		Months:         months,
		Years:          n.Div(monthsPerYear),
		Tier:           tier.Tier,
		AnnualRate:     tier.AnnualRate,
		MonthlySavings: monthly,
		TotalSavings:   total,
		TotalInterest:  interest,
	}
	plan.Rationale = savingsRationale(plan, tier)
	return plan, nil
}

func savingsRationale(p domain.SavingsPlan, tier SavingsRateTier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your goal of saving ₹%s by %s, which is %d months or %s years from now:\n\n",
		p.TargetPrice.StringFixed(2), p.TargetDate.Format("02 Jan 2006"), p.Months, p.Years.StringFixed(2))
	fmt.Fprintf(&b, "%s\n\n", tier.Explanation)
	fmt.Fprintf(&b, "Monthly Savings: ₹%s\nThis is the amount you need to save each month to reach your goal.\n\n", p.MonthlySavings.StringFixed(2))
	fmt.Fprintf(&b, "Total Savings: ₹%s\nThis is the total amount you'll have saved over %d months.\n\n", p.TotalSavings.StringFixed(2), p.Months)
	fmt.Fprintf(&b, "Total Interest Earned: ₹%s\nThis is the amount you'll earn in interest or investment returns.", p.TotalInterest.StringFixed(2))
	return b.String()
}
