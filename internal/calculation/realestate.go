package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// SimulateRealEstate projects annual net worth for a property owner who
// amortizes as fast as the budget allows (never below the regulatory floor,
// never beyond the outstanding balance).
//
// With continueAmortization the paydown keeps going for the user-chosen
// amortization window even after the regulatory target is met; without it,
// the surplus switches to the portfolio as soon as the target LTV is first
// satisfied. The second return value is the 1-indexed payoff year, nil if
// the loan never reaches zero within the horizon.
func SimulateRealEstate(terms domain.MortgageTerms, monthlyBudget, appreciationRate, blendedReturn decimal.Decimal, continueAmortization bool) ([]decimal.Decimal, *int) {
	one := decimal.NewFromInt(1)
	loan := terms.Loan()

	balance := loan
	propertyValue := terms.PropertyPrice
	investmentValue := decimal.Zero
	minAnnualAmort := MinimumAnnualAmortization(loan, terms.PropertyPrice)
	annualBudget := monthlyBudget.Mul(decimal.NewFromInt(12))

	netWorth := make([]decimal.Decimal, 0, ProjectionYears)
	var payoffYear *int

	for year := 0; year < ProjectionYears; year++ {
		propertyValue = propertyValue.Mul(one.Add(appreciationRate))
		interest := balance.Mul(terms.InterestRate)

		currentLTV := decimal.Zero
		if propertyValue.IsPositive() {
			currentLTV = balance.Div(propertyValue)
		}

		switch {
		case balance.IsZero():
			// Fully paid off: the whole budget goes into the portfolio.
			investmentValue = investmentValue.Mul(one.Add(blendedReturn)).Add(annualBudget)

		case currentLTV.GreaterThan(TargetLTV) || (continueAmortization && year < terms.AmortizationYears):
			amortization := decimal.Min(balance, decimal.Max(minAnnualAmort, annualBudget.Sub(interest)))
			balance = balance.Sub(amortization)
			if balance.IsZero() && payoffYear == nil {
				y := year + 1
				payoffYear = &y
			}

		default:
			// Target reached and not continuing: surplus after interest is
			// invested.
			surplus := decimal.Max(decimal.Zero, annualBudget.Sub(interest))
			investmentValue = investmentValue.Mul(one.Add(blendedReturn)).Add(surplus)
		}

		netWorth = append(netWorth, propertyValue.Sub(balance).Add(investmentValue))
	}

	return netWorth, payoffYear
}
