package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// SimulateHybrid projects annual net worth for a property owner who
// amortizes exactly the regulatory minimum (never more) while the
// loan-to-value ratio exceeds the target and the chosen amortization window
// is still open, investing the budget remainder from day one. Once the
// target is reached or the window closes, amortization stops and all surplus
// after interest is invested.
//
// The portfolio compounds at the blended return every year regardless of
// branch. The balance is floored at zero after each subtraction.
func SimulateHybrid(terms domain.MortgageTerms, monthlyBudget, appreciationRate, blendedReturn decimal.Decimal) ([]decimal.Decimal, *int) {
	one := decimal.NewFromInt(1)
	twelve := decimal.NewFromInt(12)
	loan := terms.Loan()

	balance := loan
	propertyValue := terms.PropertyPrice
	investmentValue := decimal.Zero
	minAnnualAmort := MinimumAnnualAmortization(loan, terms.PropertyPrice)
	monthlyMinAmort := minAnnualAmort.Div(twelve)

	netWorth := make([]decimal.Decimal, 0, ProjectionYears)
	var payoffYear *int

	for year := 0; year < ProjectionYears; year++ {
		propertyValue = propertyValue.Mul(one.Add(appreciationRate))
		interest := balance.Mul(terms.InterestRate)
		monthlyInterest := interest.Div(twelve)

		currentLTV := decimal.Zero
		if propertyValue.IsPositive() {
			currentLTV = balance.Div(propertyValue)
		}

		var monthlyInvestment decimal.Decimal
		switch {
		case balance.IsZero():
			monthlyInvestment = monthlyBudget

		case currentLTV.GreaterThan(TargetLTV) && year < terms.AmortizationYears:
			monthlyInvestment = decimal.Max(decimal.Zero, monthlyBudget.Sub(monthlyInterest).Sub(monthlyMinAmort))
			balance = decimal.Max(decimal.Zero, balance.Sub(minAnnualAmort))
			if balance.IsZero() && payoffYear == nil {
				y := year + 1
				payoffYear = &y
			}

		default:
			monthlyInvestment = decimal.Max(decimal.Zero, monthlyBudget.Sub(monthlyInterest))
		}

		investmentValue = investmentValue.Mul(one.Add(blendedReturn)).Add(monthlyInvestment.Mul(twelve))
		netWorth = append(netWorth, propertyValue.Sub(balance).Add(investmentValue))
	}

	return netWorth, payoffYear
}
