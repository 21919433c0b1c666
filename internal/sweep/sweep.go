// Package sweep defines the data structures related to a term comparison and
// includes functions for computing the comparison across a range of loan terms.
package sweep

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/pkg/finance"
	"github.com/iwvelando/mortgage-compare/pkg/loans"
	"go.uber.org/zap"
)

// TermResult holds the nominal metrics for a single loan term.
type TermResult struct {
	TermYears                 int
	MonthlyPayment            float64
	TotalInterest             float64
	TotalCost                 float64
	SavingsVsBaseline         float64
	InvestmentValueDuringTerm float64
	InvestmentValueTotal      float64
}

// AdjustedTermResult holds the same metrics restated in present value. The
// monthly payment is carried over unadjusted.
type AdjustedTermResult struct {
	TermYears                 int
	MonthlyPayment            float64
	TotalInterest             float64
	TotalCost                 float64
	SavingsVsBaseline         float64
	InvestmentValueDuringTerm float64
	InvestmentValueTotal      float64
}

// Comparison holds the assumptions and the per-term results of one sweep. It
// is read-only once RunSweep returns.
type Comparison struct {
	Principal           float64
	AnnualInterestRate  float64
	AnnualReturnRate    float64
	AnnualInflationRate float64
	ReferenceSalary     float64
	BaselineTermYears   int
	Terms               []TermResult
	Adjusted            []AdjustedTermResult
}

// RunSweep computes payment, interest, cost, savings, and opportunity metrics
// for every term in the configured range, comparing each against the
// longest-term baseline, then restates every record in present value.
func RunSweep(logger *zap.Logger, conf config.Configuration) (*Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	baselineTerm := conf.Loan.MaxTermYears
	baselinePayment, err := loans.CalculateMonthlyPayment(conf.Loan.Principal, conf.Loan.AnnualInterestRate, baselineTerm)
	if err != nil {
		return nil, fmt.Errorf("baseline payment for %d-year term: %w", baselineTerm, err)
	}
	baselineInterest, err := loans.CalculateTotalInterest(conf.Loan.Principal, baselinePayment, baselineTerm)
	if err != nil {
		return nil, fmt.Errorf("baseline interest for %d-year term: %w", baselineTerm, err)
	}
	baselineCost := conf.Loan.Principal + baselineInterest

	comparison := &Comparison{
		Principal:           conf.Loan.Principal,
		AnnualInterestRate:  conf.Loan.AnnualInterestRate,
		AnnualReturnRate:    conf.Investment.AnnualReturnRate,
		AnnualInflationRate: conf.Inflation.AnnualRate,
		ReferenceSalary:     conf.ReferenceSalary,
		BaselineTermYears:   baselineTerm,
	}

	for term := conf.Loan.MinTermYears; term <= baselineTerm; term++ {
		result := TermResult{TermYears: term}

		if term == baselineTerm {
			result.MonthlyPayment = baselinePayment
			result.TotalInterest = baselineInterest
		} else {
			result.MonthlyPayment, err = loans.CalculateMonthlyPayment(conf.Loan.Principal, conf.Loan.AnnualInterestRate, term)
			if err != nil {
				return nil, fmt.Errorf("payment for %d-year term: %w", term, err)
			}
			result.TotalInterest, err = loans.CalculateTotalInterest(conf.Loan.Principal, result.MonthlyPayment, term)
			if err != nil {
				return nil, fmt.Errorf("interest for %d-year term: %w", term, err)
			}
		}
		result.TotalCost = conf.Loan.Principal + result.TotalInterest
		result.SavingsVsBaseline = baselineCost - result.TotalCost

		// Opportunity projections: invest the monthly surplus over the
		// payment during the term, then the whole salary for the years the
		// baseline loan would still be running. The baseline term itself
		// frees nothing up, so both values stay at zero there.
		if term != baselineTerm {
			surplus := conf.ReferenceSalary - result.MonthlyPayment
			if surplus > 0 {
				result.InvestmentValueDuringTerm, err = finance.CalculateAnnuityFutureValue(surplus, term, conf.Investment.AnnualReturnRate)
				if err != nil {
					return nil, fmt.Errorf("investment during %d-year term: %w", term, err)
				}
			} else {
				logger.Debug(fmt.Sprintf("%d-year term payment %.2f exceeds the reference salary, nothing to invest during the term", term, result.MonthlyPayment),
					zap.String("op", "sweep.RunSweep"),
				)
			}

			afterTerm, err := finance.CalculateAnnuityFutureValue(conf.ReferenceSalary, baselineTerm-term, conf.Investment.AnnualReturnRate)
			if err != nil {
				return nil, fmt.Errorf("investment after %d-year term: %w", term, err)
			}
			result.InvestmentValueTotal = result.InvestmentValueDuringTerm + afterTerm
		}

		adjusted, err := ToPresentValue(result, conf.Inflation.AnnualRate, baselineTerm)
		if err != nil {
			return nil, fmt.Errorf("present value for %d-year term: %w", term, err)
		}

		comparison.Terms = append(comparison.Terms, result)
		comparison.Adjusted = append(comparison.Adjusted, adjusted)

		logger.Debug(fmt.Sprintf("%d-year term: payment %.2f, interest %.2f, savings %.2f", term, result.MonthlyPayment, result.TotalInterest, result.SavingsVsBaseline),
			zap.String("op", "sweep.RunSweep"),
		)
	}

	logger.Debug(fmt.Sprintf("swept %d terms against the %d-year baseline", len(comparison.Terms), baselineTerm),
		zap.String("op", "sweep.RunSweep"),
	)

	return comparison, nil
}

// ToPresentValue restates a term result in present value. Interest is
// discounted at the term midpoint since it accrues across the whole term;
// savings and investment values are discounted over the full baseline horizon
// because they materialize relative to the baseline loan's lifetime.
func ToPresentValue(result TermResult, annualInflationRate float64, horizonYears int) (AdjustedTermResult, error) {
	adjusted := AdjustedTermResult{
		TermYears:      result.TermYears,
		MonthlyPayment: result.MonthlyPayment,
	}

	midpoint := float64(result.TermYears) / 2
	adjustedInterest, err := finance.CalculatePresentValue(result.TotalInterest, midpoint, annualInflationRate)
	if err != nil {
		return adjusted, err
	}
	adjusted.TotalInterest = adjustedInterest

	principal := result.TotalCost - result.TotalInterest
	adjusted.TotalCost = principal + adjustedInterest

	horizon := float64(horizonYears)
	adjusted.SavingsVsBaseline, err = finance.CalculatePresentValue(result.SavingsVsBaseline, horizon, annualInflationRate)
	if err != nil {
		return adjusted, err
	}
	adjusted.InvestmentValueDuringTerm, err = finance.CalculatePresentValue(result.InvestmentValueDuringTerm, horizon, annualInflationRate)
	if err != nil {
		return adjusted, err
	}
	adjusted.InvestmentValueTotal, err = finance.CalculatePresentValue(result.InvestmentValueTotal, horizon, annualInflationRate)
	if err != nil {
		return adjusted, err
	}

	return adjusted, nil
}
