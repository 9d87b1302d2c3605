package main

import (
	"fmt"
	"os"

	calc "github.com/swisssim/wealth-simulator/internal/calculation"
	"github.com/swisssim/wealth-simulator/internal/config"
	"github.com/swisssim/wealth-simulator/internal/domain"
)

// Dumps the month-by-month loan-to-value trajectories of all three
// amortization strategies as CSV on stdout, for plotting.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: dump_ltv <scenario-file>")
		return
	}
	p := config.NewInputParser()
	scenario, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	terms := scenario.MortgageTerms()
	strategies := []domain.StrategyKind{
		domain.StrategyPureMax,
		domain.StrategyPureInvest,
		domain.StrategyHybrid,
	}
	progressions := make([]domain.LTVProgression, len(strategies))
	for i, s := range strategies {
		progressions[i] = calc.TrackLTVProgression(terms, scenario.MonthlyBudget, scenario.AppreciationRate, s)
	}

	header := "Month"
	for _, s := range strategies {
		header += fmt.Sprintf(",%s_Balance,%s_LTV", s, s)
	}
	fmt.Println(header)

	for m := 0; m < len(progressions[0].Balance); m++ {
		row := fmt.Sprintf("%d", m+1)
		for _, prog := range progressions {
			row += fmt.Sprintf(",%s,%s", prog.Balance[m].StringFixed(2), prog.LTV[m].StringFixed(4))
		}
		fmt.Println(row)
	}
}
