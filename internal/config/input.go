package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// InputParser handles parsing of scenario input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScenarioInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.ScenarioInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&input); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &input, nil
}

// ValidateScenario enforces the caller-side input contract; the simulation
// core assumes these checks have already run.
func (ip *InputParser) ValidateScenario(input *domain.ScenarioInput) error {
	if !input.PropertyPrice.IsPositive() {
		return fmt.Errorf("property price must be positive")
	}
	if input.Equity.IsNegative() {
		return fmt.Errorf("equity cannot be negative")
	}
	if input.Equity.GreaterThan(input.PropertyPrice) {
		return fmt.Errorf("equity cannot exceed the property price")
	}
	if input.MonthlyBudget.IsNegative() {
		return fmt.Errorf("monthly budget cannot be negative")
	}
	if input.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	if input.AmortizationYears < 5 || input.AmortizationYears > 30 {
		return fmt.Errorf("amortization years must be between 5 and 30")
	}
	if input.StockWeight.IsNegative() || input.StockWeight.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("stock weight must be between 0 and 1")
	}
	if input.InterestRate.LessThan(decimal.NewFromFloat(-0.10)) || input.InterestRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("interest rate must be between -10%% and 20%%")
	}
	if input.AppreciationRate.IsNegative() || input.AppreciationRate.GreaterThan(decimal.NewFromFloat(0.10)) {
		return fmt.Errorf("appreciation rate must be between 0 and 10%%")
	}
	if input.StockReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("stock return cannot be less than -100%%")
	}
	if input.BitcoinReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("bitcoin return cannot be less than -100%%")
	}
	return nil
}

// CreateExampleScenario returns a scenario with the default inputs: a
// million-franc property, 20% equity and a balanced monthly budget.
func (ip *InputParser) CreateExampleScenario() *domain.ScenarioInput {
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
