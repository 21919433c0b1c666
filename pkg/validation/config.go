// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/mathutil"
)

// ValidateRateScale warns when a rate looks like a percentage rather than a
// decimal fraction (0.08 means 8%).
func ValidateRateScale(name string, rate float64) string {
	if rate > 1.0 {
		return fmt.Sprintf("'%s' is %v which reads as %s; rates are decimal fractions (0.08 means 8%%)",
			name, rate, format.Percent(rate))
	}
	return ""
}

// ValidateInvestmentAssumptions checks whether the investment assumptions can
// produce meaningful opportunity projections.
func ValidateInvestmentAssumptions(annualReturnRate, annualInflationRate float64) []string {
	var warnings []string

	if annualReturnRate == 0 {
		warnings = append(warnings, "investment return is zero; opportunity projections reduce to the sum of contributions")
	}

	if annualInflationRate >= annualReturnRate && annualReturnRate > 0 {
		warnings = append(warnings, fmt.Sprintf("inflation %s meets or exceeds the investment return %s; investments lose value in real terms",
			format.Percent(annualInflationRate), format.Percent(annualReturnRate)))
	}

	return warnings
}

// ValidateSalaryCoverage warns when the reference salary cannot cover the
// baseline monthly payment, which leaves no investable surplus at any term.
func ValidateSalaryCoverage(referenceSalary, baselineMonthlyPayment float64) string {
	if mathutil.IsNegative(referenceSalary - baselineMonthlyPayment) {
		return fmt.Sprintf("reference salary %s is below the baseline monthly payment %s; no term leaves an investable surplus",
			format.Currency(referenceSalary), format.Currency(baselineMonthlyPayment))
	}
	return ""
}
