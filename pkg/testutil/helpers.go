// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-compare/internal/sweep"
)

// FindTerm returns the nominal result for the given term length, failing the
// test when the sweep did not produce it.
func FindTerm(t *testing.T, results []sweep.TermResult, termYears int) sweep.TermResult {
	t.Helper()
	for _, result := range results {
		if result.TermYears == termYears {
			return result
		}
	}
	t.Fatalf("no result for a %d-year term in %d sweep rows", termYears, len(results))
	return sweep.TermResult{}
}

// FindAdjustedTerm returns the inflation-adjusted result for the given term
// length, failing the test when the sweep did not produce it.
func FindAdjustedTerm(t *testing.T, results []sweep.AdjustedTermResult, termYears int) sweep.AdjustedTermResult {
	t.Helper()
	for _, result := range results {
		if result.TermYears == termYears {
			return result
		}
	}
	t.Fatalf("no adjusted result for a %d-year term in %d sweep rows", termYears, len(results))
	return sweep.AdjustedTermResult{}
}
