package domain

import (
	"github.com/shopspring/decimal"
)

// PortfolioAllocation splits investable funds between two asset classes.
// The weights are expected to sum to 1.
type PortfolioAllocation struct {
	StockWeight   decimal.Decimal `yaml:"stock_weight" json:"stock_weight"`
	BitcoinWeight decimal.Decimal `yaml:"bitcoin_weight" json:"bitcoin_weight"`
	StockReturn   decimal.Decimal `yaml:"stock_return" json:"stock_return"`
	BitcoinReturn decimal.Decimal `yaml:"bitcoin_return" json:"bitcoin_return"`
}

// BlendedReturn is the weighted-average annual return of the allocation.
func (pa PortfolioAllocation) BlendedReturn() decimal.Decimal {
	return pa.StockWeight.Mul(pa.StockReturn).Add(pa.BitcoinWeight.Mul(pa.BitcoinReturn))
}
