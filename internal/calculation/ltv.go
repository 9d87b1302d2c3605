package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// TrackLTVProgression re-runs a strategy's loan paydown at monthly
// resolution to report the month the loan-to-value ratio first crosses the
// regulatory target. Property value compounds monthly here, unlike the
// annual net-worth simulations; the two resolutions are intentionally
// separate models.
func TrackLTVProgression(terms domain.MortgageTerms, monthlyBudget, appreciationRate decimal.Decimal, strategy domain.StrategyKind) domain.LTVProgression {
	twelve := decimal.NewFromInt(12)
	loan := terms.Loan()

	balance := loan
	propertyValue := terms.PropertyPrice
	growth := MonthlyGrowthFactor(appreciationRate)

	// Raw regulatory figures, reported as-is in the snapshot. The required
	// reduction is negative when the purchase already satisfies the target;
	// the flat monthly minimum derived from it is never applied in that
	// case because the tracker starts below the target.
	requiredReduction := loan.Sub(terms.PropertyPrice.Mul(TargetLTV))
	minMonthlyAmort := requiredReduction.Div(decimal.NewFromInt(GracePeriodYears * 12))
	initialMonthlyInterest := loan.Mul(terms.InterestRate).Div(twelve)

	months := ProjectionYears * 12
	balances := make([]decimal.Decimal, 0, months)
	ltvs := make([]decimal.Decimal, 0, months)
	amortizations := make([]decimal.Decimal, 0, months)
	var yearsToTarget *int

	for month := 0; month < months; month++ {
		propertyValue = propertyValue.Mul(growth)
		monthlyInterest := balance.Mul(terms.InterestRate).Div(twelve)

		currentLTV := decimal.Zero
		if propertyValue.IsPositive() {
			currentLTV = balance.Div(propertyValue)
		}

		var amortization decimal.Decimal
		if currentLTV.LessThanOrEqual(TargetLTV) {
			if yearsToTarget == nil {
				y := month/12 + 1
				yearsToTarget = &y
			}
			if strategy == domain.StrategyPureMax {
				amortization = decimal.Min(balance, decimal.Max(minMonthlyAmort, monthlyBudget.Sub(monthlyInterest)))
			} else {
				// Both pure_invest and hybrid stop amortizing at the target.
				amortization = decimal.Zero
			}
		} else {
			if strategy == domain.StrategyHybrid {
				amortization = minMonthlyAmort
			} else {
				amortization = decimal.Min(balance, decimal.Max(minMonthlyAmort, monthlyBudget.Sub(monthlyInterest)))
			}
		}

		balance = decimal.Max(decimal.Zero, balance.Sub(amortization))

		balances = append(balances, balance)
		ltvs = append(ltvs, currentLTV)
		amortizations = append(amortizations, amortization)
	}

	return domain.LTVProgression{
		Balance:       balances,
		LTV:           ltvs,
		Amortization:  amortizations,
		YearsToTarget: yearsToTarget,
		Snapshot: domain.LTVSnapshot{
			PropertyPrice:          terms.PropertyPrice,
			Loan:                   loan,
			TargetLTV:              TargetLTV,
			RequiredLoanReduction:  requiredReduction,
			MinMonthlyAmortization: minMonthlyAmort,
			InitialMonthlyInterest: initialMonthlyInterest,
			YearsToTarget:          yearsToTarget,
			FinalLTV:               ltvs[months-1],
			FinalBalance:           balances[months-1],
			Strategy:               strategy,
		},
	}
}
