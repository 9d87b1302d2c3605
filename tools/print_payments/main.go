package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	calc "github.com/swisssim/wealth-simulator/internal/calculation"
	"github.com/swisssim/wealth-simulator/internal/config"
)

// Prints the first-month budget split for the default scenario at a range of
// down payments, to sanity-check the regulatory minimum amortization.
func main() {
	scenario := config.NewInputParser().CreateExampleScenario()

	for _, equity := range []int64{200000, 300000, 400000, 500000} {
		scenario.Equity = decimal.NewFromInt(equity)
		terms := scenario.MortgageTerms()

		interest, minAmort, total := calc.MinimumPayments(terms)
		fmt.Printf("equity=%d loan=%s interest=%s min_amort=%s min_total=%s\n",
			equity, terms.Loan().StringFixed(0),
			interest.StringFixed(2), minAmort.StringFixed(2), total.StringFixed(2))

		for _, hybrid := range []bool{false, true} {
			snap := calc.CalculateMonthlyPayments(terms, scenario.MonthlyBudget, hybrid)
			fmt.Printf("  hybrid=%-5v amort=%s invest=%s sufficient=%v\n",
				hybrid, snap.MonthlyAmortization.StringFixed(2),
				snap.MonthlyInvestment.StringFixed(2), snap.IsSufficient)
		}
	}
}
