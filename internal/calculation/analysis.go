package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// BuildRecommendations derives the advisory hints shown alongside the
// simulation results. They are heuristics on the raw inputs, not outputs of
// the simulations.
func BuildRecommendations(input *domain.ScenarioInput, blendedReturn decimal.Decimal) []string {
	var recommendations []string

	if input.MonthlyBudget.LessThan(input.PropertyPrice.Mul(decimal.NewFromFloat(0.004))) {
		recommendations = append(recommendations,
			"Monthly budget might be tight for property ownership. Consider a lower-priced property.")
	}

	if input.Equity.GreaterThan(input.PropertyPrice.Mul(decimal.NewFromFloat(0.4))) {
		recommendations = append(recommendations,
			"High equity position - could consider investing the excess above the 20% requirement.")
	}

	if blendedReturn.GreaterThan(input.AppreciationRate.Add(decimal.NewFromFloat(0.02))) {
		recommendations = append(recommendations,
			"Expected investment returns significantly exceed real estate appreciation - consider allocating more to investments.")
	}

	return recommendations
}
