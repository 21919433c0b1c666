// Package finance provides common financial calculation utilities.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

// ErrInvalidInput indicates a calculation was given an input outside its domain.
var ErrInvalidInput = errors.New("invalid input")

// CalculateAnnuityFutureValue calculates the future value of a fixed monthly
// contribution compounded monthly at the given annual return rate. The rate is
// a decimal fraction (0.40 means 40%). Non-positive monthly rates reduce to
// straight accumulation of the contributions.
func CalculateAnnuityFutureValue(monthlyAmount float64, years int, annualReturnRate float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, years)
	}

	months := years * constants.MonthsPerYear
	monthlyReturn := annualReturnRate / constants.MonthsPerYear
	if monthlyReturn > 0 {
		return monthlyAmount * (math.Pow(1.00+monthlyReturn, float64(months)) - 1.00) / monthlyReturn, nil
	}
	return monthlyAmount * float64(months), nil
}

// CalculatePresentValue discounts a future value back to today at the given
// annual inflation rate. Fractional years are allowed so amounts can be
// discounted at a term midpoint; zero years returns the value unchanged.
func CalculatePresentValue(futureValue, years, annualInflationRate float64) (float64, error) {
	if years < 0 {
		return 0, fmt.Errorf("%w: years must not be negative, got %v", ErrInvalidInput, years)
	}
	if annualInflationRate <= -1 {
		return 0, fmt.Errorf("%w: inflation rate must exceed -1, got %v", ErrInvalidInput, annualInflationRate)
	}

	return futureValue / math.Pow(1.00+annualInflationRate, years), nil
}
