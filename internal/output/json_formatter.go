package output

import (
	"encoding/json"
	"fmt"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// JSONFormatter serializes the full comparison, progressions included, for
// downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	return data, nil
}
