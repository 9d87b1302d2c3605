package calculation

import (
	"github.com/shopspring/decimal"
)

// Swiss mortgage rules: loans above two thirds of the property value must be
// amortized down to that threshold within a fixed grace period, and buyers
// must bring at least 20% equity.
var (
	// TargetLTV is the loan-to-value ratio below which mandatory
	// amortization ceases.
	TargetLTV = decimal.NewFromFloat(0.667)

	// MinimumEquityShare is the share of the purchase price the buyer must
	// cover with own funds.
	MinimumEquityShare = decimal.NewFromFloat(0.2)
)

// GracePeriodYears is the window the regulator allows to reach TargetLTV.
// It is a policy constant, independent of the user-chosen amortization
// period.
const GracePeriodYears = 15

// ProjectionYears is the fixed simulation horizon.
const ProjectionYears = 30

// MinimumAnnualAmortization returns the regulatory amortization floor: zero
// when the initial loan-to-value ratio already satisfies the target,
// otherwise the excess loan spread evenly over the grace period. The floor
// never caps faster amortization.
func MinimumAnnualAmortization(loan, propertyPrice decimal.Decimal) decimal.Decimal {
	if !propertyPrice.IsPositive() {
		return decimal.Zero
	}
	if loan.Div(propertyPrice).LessThanOrEqual(TargetLTV) {
		return decimal.Zero
	}
	excess := loan.Sub(propertyPrice.Mul(TargetLTV))
	return excess.Div(decimal.NewFromInt(GracePeriodYears))
}

// MinimumMonthlyAmortization is the annual regulatory floor spread over 12
// months.
func MinimumMonthlyAmortization(loan, propertyPrice decimal.Decimal) decimal.Decimal {
	return MinimumAnnualAmortization(loan, propertyPrice).Div(decimal.NewFromInt(12))
}

// RequiredEquity returns the minimum own funds for a purchase at the given
// price.
func RequiredEquity(propertyPrice decimal.Decimal) decimal.Decimal {
	return propertyPrice.Mul(MinimumEquityShare)
}
