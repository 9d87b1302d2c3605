package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioInput carries the raw numeric parameters of a simulation run as
// loaded from a scenario file. The caller validates these before handing
// them to the simulation engine.
type ScenarioInput struct {
	MonthlyBudget     decimal.Decimal `yaml:"monthly_budget" json:"monthly_budget"`
	MonthlyRent       decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	PropertyPrice     decimal.Decimal `yaml:"property_price" json:"property_price"`
	Equity            decimal.Decimal `yaml:"equity" json:"equity"`
	InterestRate      decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	AppreciationRate  decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
	AmortizationYears int             `yaml:"amortization_years" json:"amortization_years"`
	StockWeight       decimal.Decimal `yaml:"stock_weight" json:"stock_weight"`
	StockReturn       decimal.Decimal `yaml:"stock_return" json:"stock_return"`
	BitcoinReturn     decimal.Decimal `yaml:"bitcoin_return" json:"bitcoin_return"`
}

// MortgageTerms derives the mortgage view of the scenario, with the equity
// acting as the down payment.
func (si *ScenarioInput) MortgageTerms() MortgageTerms {
	return MortgageTerms{
		PropertyPrice:     si.PropertyPrice,
		DownPayment:       si.Equity,
		InterestRate:      si.InterestRate,
		AmortizationYears: si.AmortizationYears,
	}
}

// Allocation derives the portfolio allocation; whatever is not in stocks
// goes to bitcoin.
func (si *ScenarioInput) Allocation() PortfolioAllocation {
	return PortfolioAllocation{
		StockWeight:   si.StockWeight,
		BitcoinWeight: decimal.NewFromInt(1).Sub(si.StockWeight),
		StockReturn:   si.StockReturn,
		BitcoinReturn: si.BitcoinReturn,
	}
}
