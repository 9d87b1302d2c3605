package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// CSVFormatter emits one row per projection year with the net worth of every
// strategy and the year-end loan-to-value ratio of the tracked ones.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Year",
		"Pure Investment",
		"Full Repayment",
		"Repay Then Invest",
		"Minimum Plus Invest",
		"LTV Full Repayment",
		"LTV Repay Then Invest",
		"LTV Minimum Plus Invest",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	years := len(results.PureInvestment.NetWorth)
	for year := 1; year <= years; year++ {
		row := []string{
			fmt.Sprintf("%d", year),
			results.PureInvestment.NetWorth[year-1].StringFixed(2),
			results.FullRepayment.NetWorth[year-1].StringFixed(2),
			results.RepayThenInvest.NetWorth[year-1].StringFixed(2),
			results.MinimumPlusInvest.NetWorth[year-1].StringFixed(2),
			yearEndLTV(results.LTVFullRepayment, year),
			yearEndLTV(results.LTVRepayThenInvest, year),
			yearEndLTV(results.LTVMinimumPlusInvest, year),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for year %d: %w", year, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// yearEndLTV samples the monthly progression at the last month of the given
// 1-indexed year.
func yearEndLTV(prog domain.LTVProgression, year int) string {
	idx := year*12 - 1
	if idx < 0 || idx >= len(prog.LTV) {
		return ""
	}
	return prog.LTV[idx].StringFixed(4)
}
