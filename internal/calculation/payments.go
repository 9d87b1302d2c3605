package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// CalculateMonthlyPayments derives the first-month split of the budget into
// interest, amortization and investable surplus for a property strategy.
// The snapshot is a momentary display figure; the year-by-year simulations
// integrate compounding themselves.
func CalculateMonthlyPayments(terms domain.MortgageTerms, monthlyBudget decimal.Decimal, isHybrid bool) domain.BudgetSnapshot {
	twelve := decimal.NewFromInt(12)
	loan := terms.Loan()
	monthlyInterest := loan.Mul(terms.InterestRate).Div(twelve)
	monthlyMinAmort := MinimumMonthlyAmortization(loan, terms.PropertyPrice)

	snapshot := domain.BudgetSnapshot{
		MonthlyBudget:          monthlyBudget,
		MonthlyInterest:        monthlyInterest,
		MonthlyMinAmortization: monthlyMinAmort,
		MonthlyInvestment:      decimal.Zero,
		IsSufficient:           monthlyBudget.GreaterThanOrEqual(monthlyInterest.Add(monthlyMinAmort)),
	}

	switch {
	case !snapshot.IsSufficient:
		// A shortfall is absorbed by under-amortizing, never by borrowing
		// further.
		amort := monthlyBudget.Sub(monthlyInterest)
		if amort.IsNegative() {
			amort = decimal.Zero
		}
		snapshot.MonthlyAmortization = amort
	case isHybrid:
		snapshot.MonthlyAmortization = monthlyMinAmort
		snapshot.MonthlyInvestment = monthlyBudget.Sub(monthlyInterest).Sub(monthlyMinAmort)
	default:
		amort := decimal.Max(monthlyMinAmort, monthlyBudget.Sub(monthlyInterest))
		snapshot.MonthlyAmortization = decimal.Min(loan.Div(twelve), amort)
	}

	return snapshot
}

// MinimumPayments returns the monthly interest, the regulatory minimum
// monthly amortization and their sum for the given terms.
func MinimumPayments(terms domain.MortgageTerms) (monthlyInterest, monthlyMinAmort, total decimal.Decimal) {
	loan := terms.Loan()
	monthlyInterest = loan.Mul(terms.InterestRate).Div(decimal.NewFromInt(12))
	monthlyMinAmort = MinimumMonthlyAmortization(loan, terms.PropertyPrice)
	return monthlyInterest, monthlyMinAmort, monthlyInterest.Add(monthlyMinAmort)
}

// PureInvestmentSnapshot is the payment breakdown of the rent-and-invest
// strategy: no mortgage, the budget net of rent is invested. The investment
// figure goes negative when rent exceeds the budget.
func PureInvestmentSnapshot(monthlyBudget, monthlyRent decimal.Decimal) domain.BudgetSnapshot {
	return domain.BudgetSnapshot{
		MonthlyBudget:     monthlyBudget,
		MonthlyInterest:   decimal.Zero,
		MonthlyInvestment: monthlyBudget.Sub(monthlyRent),
		IsSufficient:      monthlyBudget.GreaterThanOrEqual(monthlyRent),
	}
}
