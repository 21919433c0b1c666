// Package recommend selects a loan term under a monthly payment budget.
package recommend

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/sweep"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// Summary captures the recommended term and the figures behind it.
type Summary struct {
	TermYears         int     `json:"termYears"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	TotalInterest     float64 `json:"totalInterest"`
	SavingsVsBaseline float64 `json:"savingsVsBaseline"`
	Headroom          float64 `json:"headroom"`
	Reason            string  `json:"reason,omitempty"`
}

// Pick returns the shortest term whose monthly payment fits the budget. With
// a fixed rate that term also carries the least total interest, so scanning
// the sweep in ascending term order replaces any search.
func Pick(results []sweep.TermResult, maxMonthlyPayment float64) (*Summary, error) {
	if maxMonthlyPayment <= 0 {
		return nil, fmt.Errorf("maximum monthly payment must be positive, got %.2f", maxMonthlyPayment)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no term results to evaluate")
	}

	for _, result := range results {
		affordable := result.MonthlyPayment <= maxMonthlyPayment ||
			mathutil.WithinTolerance(result.MonthlyPayment, maxMonthlyPayment, constants.CurrencyTolerance)
		if !affordable {
			continue
		}

		return &Summary{
			TermYears:         result.TermYears,
			MonthlyPayment:    result.MonthlyPayment,
			TotalInterest:     result.TotalInterest,
			SavingsVsBaseline: result.SavingsVsBaseline,
			Headroom:          mathutil.Round(maxMonthlyPayment - result.MonthlyPayment),
			Reason: fmt.Sprintf("shortest term with the monthly payment %s within the %s budget",
				format.Currency(result.MonthlyPayment), format.Currency(maxMonthlyPayment)),
		}, nil
	}

	return nil, fmt.Errorf("no term between %s and %s fits the monthly budget %s",
		format.Years(results[0].TermYears), format.Years(results[len(results)-1].TermYears),
		format.Currency(maxMonthlyPayment))
}
