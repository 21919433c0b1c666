package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-compare/internal/sweep"
)

func TestFindTerm(t *testing.T) {
	results := []sweep.TermResult{
		{TermYears: 5, MonthlyPayment: 50690.985721},
		{TermYears: 10, MonthlyPayment: 30331.898589},
	}

	got := FindTerm(t, results, 10)
	if got.MonthlyPayment != 30331.898589 {
		t.Errorf("FindTerm() returned payment %.6f, want 30331.898589", got.MonthlyPayment)
	}
}

func TestFindAdjustedTerm(t *testing.T) {
	results := []sweep.AdjustedTermResult{
		{TermYears: 15, TotalInterest: 282684.844159},
	}

	got := FindAdjustedTerm(t, results, 15)
	if got.TotalInterest != 282684.844159 {
		t.Errorf("FindAdjustedTerm() returned interest %.6f, want 282684.844159", got.TotalInterest)
	}
}
