package domain

import (
	"github.com/shopspring/decimal"
)

// MortgageTerms describes a financed property purchase. Rates are annual
// fractions (0.015 = 1.5%).
type MortgageTerms struct {
	PropertyPrice     decimal.Decimal `yaml:"property_price" json:"property_price"`
	DownPayment       decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	InterestRate      decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	AmortizationYears int             `yaml:"amortization_years" json:"amortization_years"`
}

// Loan returns the financed amount (purchase price minus down payment).
func (mt MortgageTerms) Loan() decimal.Decimal {
	return mt.PropertyPrice.Sub(mt.DownPayment)
}

// InitialLTV returns the loan-to-value ratio at purchase, zero for a
// zero-priced property.
func (mt MortgageTerms) InitialLTV() decimal.Decimal {
	if !mt.PropertyPrice.IsPositive() {
		return decimal.Zero
	}
	return mt.Loan().Div(mt.PropertyPrice)
}
