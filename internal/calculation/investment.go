package calculation

import (
	"github.com/shopspring/decimal"
)

// SimulatePureInvestment grows an initial capital (the equity a buyer would
// otherwise lock into a down payment) by monthly contributions of budget
// minus rent, compounding at the exact monthly equivalent of the annual
// return. It returns one net-worth point per projection year.
//
// Contributions turn negative when rent exceeds the budget; they are
// deliberately not clamped, so the declining series itself signals that the
// strategy is infeasible.
func SimulatePureInvestment(monthlyBudget, monthlyRent, annualReturn, initialCapital decimal.Decimal) []decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(MonthlyCompoundRate(annualReturn))
	contribution := monthlyBudget.Sub(monthlyRent)

	value := initialCapital
	progression := make([]decimal.Decimal, 0, ProjectionYears)
	for month := 0; month < ProjectionYears*12; month++ {
		value = value.Mul(growth).Add(contribution)
		if month%12 == 11 {
			progression = append(progression, value)
		}
	}
	return progression
}
