package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// SimulationEngine orchestrates the strategy simulations for a scenario.
type SimulationEngine struct {
	Debug  bool // log the per-strategy amortization snapshots
	Logger Logger
}

// NewSimulationEngine creates a new simulation engine.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// RunScenario runs all four strategy simulations plus the monthly
// loan-to-value trackers for one scenario. Re-running with identical inputs
// yields identical output.
func (se *SimulationEngine) RunScenario(input *domain.ScenarioInput) (*domain.StrategyComparison, error) {
	if !input.PropertyPrice.IsPositive() {
		return nil, fmt.Errorf("property price must be positive, got %s", input.PropertyPrice)
	}
	if input.Equity.GreaterThan(input.PropertyPrice) {
		return nil, fmt.Errorf("equity (%s) cannot exceed the property price (%s)",
			input.Equity, input.PropertyPrice)
	}
	if input.InterestRate.LessThan(decimal.NewFromFloat(-0.10)) || input.InterestRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return nil, fmt.Errorf("interest rate must be between -10%% and 20%%, got %s%%",
			input.InterestRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}

	terms := input.MortgageTerms()
	blended := input.Allocation().BlendedReturn()

	_, monthlyMinAmort, minimumPayment := MinimumPayments(terms)

	pureSeries := SimulatePureInvestment(input.MonthlyBudget, input.MonthlyRent, blended, input.Equity)
	maxSeries, maxPayoff := SimulateRealEstate(terms, input.MonthlyBudget, input.AppreciationRate, blended, true)
	investSeries, investPayoff := SimulateRealEstate(terms, input.MonthlyBudget, input.AppreciationRate, blended, false)
	hybridSeries, hybridPayoff := SimulateHybrid(terms, input.MonthlyBudget, input.AppreciationRate, blended)

	realEstatePayments := CalculateMonthlyPayments(terms, input.MonthlyBudget, false)
	hybridPayments := CalculateMonthlyPayments(terms, input.MonthlyBudget, true)

	comparison := &domain.StrategyComparison{
		PureInvestment: domain.StrategyResult{
			Name:     "Rent & Invest",
			NetWorth: pureSeries,
			CAGR:     AnnualizedGrowthRate(input.Equity, finalValue(pureSeries), ProjectionYears),
			Payments: PureInvestmentSnapshot(input.MonthlyBudget, input.MonthlyRent),
		},
		FullRepayment: domain.StrategyResult{
			Name:       "Property Full Repayment",
			NetWorth:   maxSeries,
			PayoffYear: maxPayoff,
			CAGR:       AnnualizedGrowthRate(input.Equity, finalValue(maxSeries), ProjectionYears),
			Payments:   realEstatePayments,
		},
		RepayThenInvest: domain.StrategyResult{
			Name:       "Property + Later Invest",
			NetWorth:   investSeries,
			PayoffYear: investPayoff,
			CAGR:       AnnualizedGrowthRate(input.Equity, finalValue(investSeries), ProjectionYears),
			Payments:   realEstatePayments,
		},
		MinimumPlusInvest: domain.StrategyResult{
			Name:       "Property Min + Invest",
			NetWorth:   hybridSeries,
			PayoffYear: hybridPayoff,
			CAGR:       AnnualizedGrowthRate(input.Equity, finalValue(hybridSeries), ProjectionYears),
			Payments:   hybridPayments,
		},

		LTVFullRepayment:     TrackLTVProgression(terms, input.MonthlyBudget, input.AppreciationRate, domain.StrategyPureMax),
		LTVRepayThenInvest:   TrackLTVProgression(terms, input.MonthlyBudget, input.AppreciationRate, domain.StrategyPureInvest),
		LTVMinimumPlusInvest: TrackLTVProgression(terms, input.MonthlyBudget, input.AppreciationRate, domain.StrategyHybrid),

		BlendedReturn:          blended,
		MinMonthlyAmortization: monthlyMinAmort,
		RequiredEquity:         RequiredEquity(input.PropertyPrice),
		MinimumMonthlyPayment:  minimumPayment,
		EquityShortfall:        decimal.Zero,
		BudgetShortfall:        decimal.Zero,

		Recommendations: BuildRecommendations(input, blended),
	}

	// Pre-condition flags only: the simulations above already ran as if the
	// conditions were met.
	if input.Equity.LessThan(comparison.RequiredEquity) {
		comparison.InsufficientEquity = true
		comparison.EquityShortfall = comparison.RequiredEquity.Sub(input.Equity)
	}
	if input.MonthlyBudget.LessThan(minimumPayment) {
		comparison.InsufficientBudget = true
		comparison.BudgetShortfall = minimumPayment.Sub(input.MonthlyBudget)
	}

	if se.Debug {
		se.logSnapshot(comparison.LTVFullRepayment.Snapshot)
		se.logSnapshot(comparison.LTVRepayThenInvest.Snapshot)
		se.logSnapshot(comparison.LTVMinimumPlusInvest.Snapshot)
	}

	return comparison, nil
}

func (se *SimulationEngine) logSnapshot(s domain.LTVSnapshot) {
	years := "not reached"
	if s.YearsToTarget != nil {
		years = fmt.Sprintf("year %d", *s.YearsToTarget)
	}
	se.Logger.Debugf("strategy=%s loan=%s required_reduction=%s min_monthly_amort=%s initial_interest=%s target=%s final_ltv=%s final_balance=%s",
		s.Strategy, s.Loan.StringFixed(2), s.RequiredLoanReduction.StringFixed(2),
		s.MinMonthlyAmortization.StringFixed(2), s.InitialMonthlyInterest.StringFixed(2),
		years, s.FinalLTV.StringFixed(4), s.FinalBalance.StringFixed(2))
}

func finalValue(series []decimal.Decimal) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return series[len(series)-1]
}
