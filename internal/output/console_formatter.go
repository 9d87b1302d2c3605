package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/swisssim/wealth-simulator/internal/domain"
	money "github.com/swisssim/wealth-simulator/pkg/decimal"
)

// ConsoleFormatter renders a human-readable comparison report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var b strings.Builder

	b.WriteString("==============================================\n")
	b.WriteString("SWISS WEALTH STRATEGY COMPARISON (30 YEARS)\n")
	b.WriteString("==============================================\n\n")

	b.WriteString("MONTHLY PAYMENT BREAKDOWN\n")
	fmt.Fprintf(&b, "  %-26s %14s %14s %14s\n", "Strategy", "Interest", "Amortization", "Investment")
	for _, sr := range allStrategies(results) {
		fmt.Fprintf(&b, "  %-26s %14s %14s %14s\n", sr.Name,
			chf(sr.Payments.MonthlyInterest),
			chf(sr.Payments.MonthlyAmortization),
			chf(sr.Payments.MonthlyInvestment))
	}
	b.WriteString("\n")

	b.WriteString("REGULATORY FIGURES\n")
	fmt.Fprintf(&b, "  Blended portfolio return:      %s\n", percent(results.BlendedReturn))
	fmt.Fprintf(&b, "  Minimum monthly amortization:  %s\n", chf(results.MinMonthlyAmortization))
	fmt.Fprintf(&b, "  Minimum monthly payment:       %s\n", chf(results.MinimumMonthlyPayment))
	fmt.Fprintf(&b, "  Required equity (20%%):         %s\n", chf(results.RequiredEquity))
	b.WriteString("\n")

	b.WriteString("FINAL NET WORTH (YEAR 30)\n")
	for _, sr := range allStrategies(results) {
		line := fmt.Sprintf("  %-26s %14s  (CAGR %s)", sr.Name, chf(sr.FinalNetWorth()), percent(sr.CAGR))
		if sr.PayoffYear != nil {
			line += fmt.Sprintf("  paid off in year %d", *sr.PayoffYear)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("LOAN-TO-VALUE ANALYSIS\n")
	for _, prog := range []domain.LTVProgression{
		results.LTVFullRepayment, results.LTVRepayThenInvest, results.LTVMinimumPlusInvest,
	} {
		s := prog.Snapshot
		target := "target not reached"
		if s.YearsToTarget != nil {
			target = fmt.Sprintf("target LTV reached in year %d", *s.YearsToTarget)
		}
		fmt.Fprintf(&b, "  %-12s %s, final LTV %s, final balance %s\n",
			s.Strategy, target, percent(s.FinalLTV), chf(s.FinalBalance))
	}
	b.WriteString("\n")

	if results.InsufficientEquity {
		fmt.Fprintf(&b, "WARNING: equity is %s short of the 20%% requirement (%s needed)\n",
			chf(results.EquityShortfall), chf(results.RequiredEquity))
	}
	if results.InsufficientBudget {
		fmt.Fprintf(&b, "WARNING: monthly budget is %s short of the minimum payment (%s needed)\n",
			chf(results.BudgetShortfall), chf(results.MinimumMonthlyPayment))
	}
	if results.InsufficientEquity || results.InsufficientBudget {
		b.WriteString("\n")
	}

	if len(results.Recommendations) > 0 {
		b.WriteString("RECOMMENDATIONS\n")
		for _, rec := range results.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func allStrategies(results *domain.StrategyComparison) []domain.StrategyResult {
	return []domain.StrategyResult{
		results.PureInvestment,
		results.FullRepayment,
		results.RepayThenInvest,
		results.MinimumPlusInvest,
	}
}

func chf(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).FormatCHF()
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
