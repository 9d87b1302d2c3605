package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

func exampleInput() *domain.ScenarioInput {
	return &domain.ScenarioInput{
		MonthlyBudget:     decimal.NewFromInt(3500),
		MonthlyRent:       decimal.NewFromInt(2000),
		PropertyPrice:     decimal.NewFromInt(1000000),
		Equity:            decimal.NewFromInt(200000),
		InterestRate:      decimal.NewFromFloat(0.015),
		AppreciationRate:  decimal.NewFromFloat(0.02),
		AmortizationYears: 15,
		StockWeight:       decimal.NewFromFloat(0.8),
		StockReturn:       decimal.NewFromFloat(0.07),
		BitcoinReturn:     decimal.NewFromFloat(0.20),
	}
}

func TestRunScenario_Shapes(t *testing.T) {
	engine := NewSimulationEngine()
	results, err := engine.RunScenario(exampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sr := range []domain.StrategyResult{
		results.PureInvestment, results.FullRepayment, results.RepayThenInvest, results.MinimumPlusInvest,
	} {
		if len(sr.NetWorth) != ProjectionYears {
			t.Fatalf("%s: expected %d net worth points, got %d", sr.Name, ProjectionYears, len(sr.NetWorth))
		}
	}
	for _, prog := range []domain.LTVProgression{
		results.LTVFullRepayment, results.LTVRepayThenInvest, results.LTVMinimumPlusInvest,
	} {
		if len(prog.Balance) != 360 {
			t.Fatalf("expected 360 tracker points, got %d", len(prog.Balance))
		}
	}
}

func TestRunScenario_DerivedConstants(t *testing.T) {
	engine := NewSimulationEngine()
	results, err := engine.RunScenario(exampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !results.BlendedReturn.Equal(decimal.NewFromFloat(0.096)) {
		t.Fatalf("expected blended return 0.096, got %s", results.BlendedReturn)
	}
	if !results.RequiredEquity.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("expected required equity 200000, got %s", results.RequiredEquity)
	}
	if results.MinMonthlyAmortization.Sub(decimal.NewFromFloat(738.89)).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Fatalf("expected minimum monthly amortization of about 738.89, got %s", results.MinMonthlyAmortization)
	}
	// 200000 equity exactly meets the 20% requirement.
	if results.InsufficientEquity {
		t.Fatalf("expected the equity to satisfy the requirement")
	}
	// 3500 covers interest 1000 plus minimum 738.89.
	if results.InsufficientBudget {
		t.Fatalf("expected the budget to be sufficient")
	}
	if !results.FullRepayment.Payments.IsSufficient || !results.MinimumPlusInvest.Payments.IsSufficient {
		t.Fatalf("expected sufficient payment snapshots for both property strategies")
	}
}

func TestRunScenario_ShortfallFlags(t *testing.T) {
	input := exampleInput()
	input.Equity = decimal.NewFromInt(150000)
	input.MonthlyBudget = decimal.NewFromInt(1200)

	engine := NewSimulationEngine()
	results, err := engine.RunScenario(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !results.InsufficientEquity {
		t.Fatalf("expected the insufficient-equity flag")
	}
	if !results.EquityShortfall.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("expected an equity shortfall of 50000, got %s", results.EquityShortfall)
	}
	if !results.InsufficientBudget {
		t.Fatalf("expected the insufficient-budget flag")
	}
	if !results.BudgetShortfall.IsPositive() {
		t.Fatalf("expected a positive budget shortfall, got %s", results.BudgetShortfall)
	}
	// The simulation still produces full output; the flags are advisory.
	if len(results.FullRepayment.NetWorth) != ProjectionYears {
		t.Fatalf("expected a full projection despite the shortfalls")
	}
}

func TestRunScenario_InputGuards(t *testing.T) {
	engine := NewSimulationEngine()

	input := exampleInput()
	input.PropertyPrice = decimal.Zero
	if _, err := engine.RunScenario(input); err == nil {
		t.Fatalf("expected an error for a zero property price")
	}

	input = exampleInput()
	input.Equity = decimal.NewFromInt(1200000)
	if _, err := engine.RunScenario(input); err == nil {
		t.Fatalf("expected an error for equity above the property price")
	}

	input = exampleInput()
	input.InterestRate = decimal.NewFromFloat(0.5)
	if _, err := engine.RunScenario(input); err == nil {
		t.Fatalf("expected an error for an extreme interest rate")
	}
}

func TestRunScenario_Idempotent(t *testing.T) {
	engine := NewSimulationEngine()
	first, err := engine.RunScenario(exampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.RunScenario(exampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.MinimumPlusInvest.NetWorth {
		if !first.MinimumPlusInvest.NetWorth[i].Equal(second.MinimumPlusInvest.NetWorth[i]) {
			t.Fatalf("year %d differs between identical runs", i+1)
		}
	}
	for i := range first.LTVFullRepayment.Balance {
		if !first.LTVFullRepayment.Balance[i].Equal(second.LTVFullRepayment.Balance[i]) {
			t.Fatalf("tracker month %d differs between identical runs", i)
		}
	}
}

// recordLogger captures debug lines for assertions.
type recordLogger struct {
	debugs []string
}

func (r *recordLogger) Debugf(format string, args ...any) {
	r.debugs = append(r.debugs, fmt.Sprintf(format, args...))
}
func (r *recordLogger) Infof(format string, args ...any)  {}
func (r *recordLogger) Warnf(format string, args ...any)  {}
func (r *recordLogger) Errorf(format string, args ...any) {}

func TestRunScenario_DebugLogging(t *testing.T) {
	logger := &recordLogger{}
	engine := NewSimulationEngine()
	engine.Debug = true
	engine.SetLogger(logger)

	if _, err := engine.RunScenario(exampleInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One snapshot per tracked strategy.
	if len(logger.debugs) != 3 {
		t.Fatalf("expected 3 debug snapshots, got %d", len(logger.debugs))
	}
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewSimulationEngine()
	engine.SetLogger(nil)
	engine.Debug = true
	if _, err := engine.RunScenario(exampleInput()); err != nil {
		t.Fatalf("unexpected error with nop logger: %v", err)
	}
}
