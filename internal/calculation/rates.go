package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyCompoundRate converts an annual return to the equivalent monthly
// rate, (1+r)^(1/12) - 1. shopspring's Pow only supports integer exponents,
// so the 12th root is taken in float space.
func MonthlyCompoundRate(annualRate decimal.Decimal) decimal.Decimal {
	r, _ := annualRate.Float64()
	return decimal.NewFromFloat(math.Pow(1+r, 1.0/12.0) - 1)
}

// MonthlyGrowthFactor returns (1+r)^(1/12), the per-month factor that
// compounds to the annual rate over 12 months.
func MonthlyGrowthFactor(annualRate decimal.Decimal) decimal.Decimal {
	r, _ := annualRate.Float64()
	return decimal.NewFromFloat(math.Pow(1+r, 1.0/12.0))
}

// AnnualizedGrowthRate returns (final/initial)^(1/years) - 1, or zero when
// the ratio is undefined.
func AnnualizedGrowthRate(initial, final decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 || !initial.IsPositive() || !final.IsPositive() {
		return decimal.Zero
	}
	ratio, _ := final.Div(initial).Float64()
	return decimal.NewFromFloat(math.Pow(ratio, 1.0/float64(years)) - 1)
}
