// Package loans provides amortized loan payment calculations.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
)

// ErrInvalidInput indicates a calculation was given an input outside its domain.
var ErrInvalidInput = errors.New("invalid input")

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula. The interest rate is a decimal fraction
// (0.08 means 8%) and the term is in whole years.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termYears int) (float64, error) {
	if principal <= 0 {
		return 0, fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, principal)
	}
	if annualInterestRate < 0 {
		return 0, fmt.Errorf("%w: interest rate must not be negative, got %v", ErrInvalidInput, annualInterestRate)
	}
	if termYears <= 0 {
		return 0, fmt.Errorf("%w: term must be positive, got %d years", ErrInvalidInput, termYears)
	}

	termMonths := termYears * constants.MonthsPerYear
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths), nil
	}

	periodicInterestRate := annualInterestRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor, nil
}

// CalculateTotalInterest calculates the interest paid over the life of a loan,
// i.e. the total of all payments less the principal.
func CalculateTotalInterest(principal, monthlyPayment float64, termYears int) (float64, error) {
	if termYears <= 0 {
		return 0, fmt.Errorf("%w: term must be positive, got %d years", ErrInvalidInput, termYears)
	}

	return monthlyPayment*constants.MonthsPerYear*float64(termYears) - principal, nil
}
