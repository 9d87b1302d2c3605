package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimulateHybrid_SeriesLength(t *testing.T) {
	series, _ := SimulateHybrid(standardTerms(),
		decimal.NewFromInt(3500), decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.096))
	if len(series) != ProjectionYears {
		t.Fatalf("expected %d annual points, got %d", ProjectionYears, len(series))
	}
}

func TestSimulateHybrid_FirstYear(t *testing.T) {
	// Year 1: property 1020000, balance 800000 - 8866.67 = 791133.33,
	// monthly investment 3500 - 1000 - 738.89 = 1761.11, portfolio
	// 21133.33. Net worth sums to 250000 up to division rounding.
	series, _ := SimulateHybrid(standardTerms(),
		decimal.NewFromInt(3500), decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.096))

	want := decimal.NewFromInt(250000)
	if series[0].Sub(want).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Fatalf("expected year 1 net worth of about %s, got %s", want, series[0])
	}
}

func TestSimulateHybrid_BelowTargetInvestsEverything(t *testing.T) {
	// A 50% down payment starts below the target LTV: no amortization ever,
	// the surplus after interest is invested from year one.
	terms := standardTerms()
	terms.DownPayment = decimal.NewFromInt(500000)

	series, payoff := SimulateHybrid(terms,
		decimal.NewFromInt(3500), decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.096))

	if payoff != nil {
		t.Fatalf("expected no payoff year without amortization, got year %d", *payoff)
	}
	// 1020000 - 500000 + (3500 - 625) * 12 = 554500
	if !series[0].Equal(decimal.NewFromInt(554500)) {
		t.Fatalf("expected year 1 net worth 554500, got %s", series[0])
	}
}

func TestSimulateHybrid_NeverAmortizesMoreThanMinimum(t *testing.T) {
	// The hybrid balance declines by exactly the regulatory minimum per
	// year. Reconstruct the balance from the net worth by replaying the
	// portfolio side and check the first years.
	terms := standardTerms()
	budget := decimal.NewFromInt(3500)
	appreciation := decimal.NewFromFloat(0.02)
	blended := decimal.NewFromFloat(0.096)

	series, _ := SimulateHybrid(terms, budget, appreciation, blended)

	one := decimal.NewFromInt(1)
	twelve := decimal.NewFromInt(12)
	minAnnual := MinimumAnnualAmortization(terms.Loan(), terms.PropertyPrice)
	minMonthly := minAnnual.Div(twelve)

	balance := terms.Loan()
	propertyValue := terms.PropertyPrice
	investment := decimal.Zero
	for year := 0; year < 5; year++ {
		propertyValue = propertyValue.Mul(one.Add(appreciation))
		monthlyInterest := balance.Mul(terms.InterestRate).Div(twelve)
		contribution := budget.Sub(monthlyInterest).Sub(minMonthly).Mul(twelve)
		balance = balance.Sub(minAnnual)
		investment = investment.Mul(one.Add(blended)).Add(contribution)

		want := propertyValue.Sub(balance).Add(investment)
		if !series[year].Equal(want) {
			t.Fatalf("year %d: expected net worth %s, got %s", year+1, want, series[year])
		}
	}
}

func TestSimulateHybrid_Deterministic(t *testing.T) {
	run := func() []decimal.Decimal {
		s, _ := SimulateHybrid(standardTerms(),
			decimal.NewFromInt(3500), decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.096))
		return s
	}
	first, second := run(), run()
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("year %d differs between identical runs: %s vs %s", i+1, first[i], second[i])
		}
	}
}
