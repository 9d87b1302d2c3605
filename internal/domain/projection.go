package domain

import (
	"github.com/shopspring/decimal"
)

// StrategyKind tags the amortization behavior used by the loan-to-value
// tracker.
type StrategyKind string

const (
	// StrategyPureMax keeps amortizing as fast as the budget allows, even
	// after the regulatory target is reached.
	StrategyPureMax StrategyKind = "pure_max"
	// StrategyPureInvest amortizes maximally until the target, then routes
	// the surplus into the portfolio.
	StrategyPureInvest StrategyKind = "pure_invest"
	// StrategyHybrid amortizes only the regulatory minimum and invests the
	// rest from the start.
	StrategyHybrid StrategyKind = "hybrid"
)

// BudgetSnapshot is the first-month split of the budget into interest,
// amortization and investable surplus for one strategy. It is a display
// figure only and does not feed back into the simulations.
type BudgetSnapshot struct {
	MonthlyBudget          decimal.Decimal `json:"monthly_budget"`
	MonthlyInterest        decimal.Decimal `json:"monthly_interest"`
	MonthlyMinAmortization decimal.Decimal `json:"monthly_min_amortization"`
	MonthlyAmortization    decimal.Decimal `json:"monthly_amortization"`
	MonthlyInvestment      decimal.Decimal `json:"monthly_investment"`
	IsSufficient           bool            `json:"is_sufficient"`
}

// StrategyResult holds the 30-year outcome of one wealth-building strategy.
type StrategyResult struct {
	Name string `json:"name"`

	// NetWorth has one entry per projection year; index 0 is the end of
	// year 1.
	NetWorth []decimal.Decimal `json:"net_worth"`

	// PayoffYear is the first 1-indexed year the loan balance reaches zero,
	// nil if the loan is never fully repaid within the horizon.
	PayoffYear *int `json:"payoff_year,omitempty"`

	// CAGR is the annualized growth rate from the initial equity to the
	// final net worth.
	CAGR decimal.Decimal `json:"cagr"`

	Payments BudgetSnapshot `json:"payments"`
}

// FinalNetWorth returns the last point of the projection, zero when empty.
func (sr StrategyResult) FinalNetWorth() decimal.Decimal {
	if len(sr.NetWorth) == 0 {
		return decimal.Zero
	}
	return sr.NetWorth[len(sr.NetWorth)-1]
}

// LTVSnapshot records the inputs and outcomes of one tracker run for
// debugging and the detailed amortization report.
type LTVSnapshot struct {
	PropertyPrice          decimal.Decimal `json:"property_price"`
	Loan                   decimal.Decimal `json:"loan"`
	TargetLTV              decimal.Decimal `json:"target_ltv"`
	RequiredLoanReduction  decimal.Decimal `json:"required_loan_reduction"`
	MinMonthlyAmortization decimal.Decimal `json:"min_monthly_amortization"`
	InitialMonthlyInterest decimal.Decimal `json:"initial_monthly_interest"`
	YearsToTarget          *int            `json:"years_to_target,omitempty"`
	FinalLTV               decimal.Decimal `json:"final_ltv"`
	FinalBalance           decimal.Decimal `json:"final_balance"`
	Strategy               StrategyKind    `json:"strategy"`
}

// LTVProgression is the monthly-resolution loan trajectory for one strategy:
// 360 points of balance, loan-to-value ratio and amortization.
type LTVProgression struct {
	Balance      []decimal.Decimal `json:"balance"`
	LTV          []decimal.Decimal `json:"ltv"`
	Amortization []decimal.Decimal `json:"amortization"`

	// YearsToTarget is the 1-indexed year in which the LTV first drops to
	// the regulatory target, nil if the target is never reached.
	YearsToTarget *int `json:"years_to_target,omitempty"`

	Snapshot LTVSnapshot `json:"snapshot"`
}

// StrategyComparison aggregates all strategy outcomes for one scenario.
type StrategyComparison struct {
	PureInvestment    StrategyResult `json:"pure_investment"`
	FullRepayment     StrategyResult `json:"full_repayment"`
	RepayThenInvest   StrategyResult `json:"repay_then_invest"`
	MinimumPlusInvest StrategyResult `json:"minimum_plus_invest"`

	LTVFullRepayment     LTVProgression `json:"ltv_full_repayment"`
	LTVRepayThenInvest   LTVProgression `json:"ltv_repay_then_invest"`
	LTVMinimumPlusInvest LTVProgression `json:"ltv_minimum_plus_invest"`

	// Derived constants exposed for display.
	BlendedReturn          decimal.Decimal `json:"blended_return"`
	MinMonthlyAmortization decimal.Decimal `json:"min_monthly_amortization"`
	RequiredEquity         decimal.Decimal `json:"required_equity"`
	MinimumMonthlyPayment  decimal.Decimal `json:"minimum_monthly_payment"`

	// Pre-condition flags. The simulation proceeds regardless; the flags
	// exist so a caller can warn the user.
	InsufficientEquity bool            `json:"insufficient_equity"`
	EquityShortfall    decimal.Decimal `json:"equity_shortfall"`
	InsufficientBudget bool            `json:"insufficient_budget"`
	BudgetShortfall    decimal.Decimal `json:"budget_shortfall"`

	Recommendations []string `json:"recommendations"`
}
