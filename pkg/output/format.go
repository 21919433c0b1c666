// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-compare/internal/recommend"
	"github.com/iwvelando/mortgage-compare/internal/sweep"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(c *sweep.Comparison) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Mortgage term comparison ---\n")
	fmt.Printf("Principal: %s | Interest rate: %s | Baseline term: %s\n",
		format.Currency(c.Principal), format.Percent(c.AnnualInterestRate), format.Years(c.BaselineTermYears))
	fmt.Printf("Investment return: %s | Inflation: %s | Reference salary: %s/month\n",
		format.Percent(c.AnnualReturnRate), format.Percent(c.AnnualInflationRate), format.Currency(c.ReferenceSalary))

	fmt.Printf("\nNominal values\n")
	printTableHeader()
	for _, result := range c.Terms {
		_, _ = p.Printf("%d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			result.TermYears, result.MonthlyPayment, result.TotalInterest, result.TotalCost,
			result.SavingsVsBaseline, result.InvestmentValueDuringTerm, result.InvestmentValueTotal)
	}

	fmt.Printf("\nInflation-adjusted values (present value, payment kept nominal)\n")
	printTableHeader()
	for _, result := range c.Adjusted {
		_, _ = p.Printf("%d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			result.TermYears, result.MonthlyPayment, result.TotalInterest, result.TotalCost,
			result.SavingsVsBaseline, result.InvestmentValueDuringTerm, result.InvestmentValueTotal)
	}
}

func printTableHeader() {
	fmt.Printf("Term | Monthly Payment | Total Interest | Total Cost | Savings vs Baseline | Invest During Term | Invest Total\n")
	fmt.Printf("____ | _______________ | ______________ | __________ | ___________________ | __________________ | ____________\n")
}

// PrettyRecommendation outputs the budget-driven term recommendation block.
func PrettyRecommendation(rec *recommend.Summary) {
	if rec == nil {
		return
	}

	fmt.Printf("\n--- Recommended term ---\n")
	fmt.Printf("Term: %s | Monthly payment: %s | Budget headroom: %s\n",
		format.Years(rec.TermYears), format.Currency(rec.MonthlyPayment), format.Currency(rec.Headroom))
	fmt.Printf("Total interest: %s | Savings vs baseline: %s\n",
		format.Currency(rec.TotalInterest), format.Currency(rec.SavingsVsBaseline))
	if rec.Reason != "" {
		fmt.Printf("Reason: %s\n", rec.Reason)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(c *sweep.Comparison) {
	fmt.Print(CsvString(c))
}

// CsvString renders the comparison in comma-separated value format. Both the
// nominal and the inflation-adjusted records are emitted, tagged by section.
func CsvString(c *sweep.Comparison) string {
	var builder strings.Builder

	builder.WriteString(`"section","termYears","monthlyPayment","totalInterest","totalCost","savingsVsBaseline","investmentValueDuringTerm","investmentValueTotal"` + "\n")
	for _, result := range c.Terms {
		fmt.Fprintf(&builder, `"nominal","%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			result.TermYears, result.MonthlyPayment, result.TotalInterest, result.TotalCost,
			result.SavingsVsBaseline, result.InvestmentValueDuringTerm, result.InvestmentValueTotal)
	}
	for _, result := range c.Adjusted {
		fmt.Fprintf(&builder, `"adjusted","%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			result.TermYears, result.MonthlyPayment, result.TotalInterest, result.TotalCost,
			result.SavingsVsBaseline, result.InvestmentValueDuringTerm, result.InvestmentValueTotal)
	}

	return builder.String()
}
