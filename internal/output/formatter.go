package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/swisssim/wealth-simulator/internal/domain"
)

// Formatter defines a pluggable report formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(results *domain.StrategyComparison) ([]byte, error)
	// Name returns a short identifier, also used as the file extension.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// GenerateReport formats results and writes them to stdout (console) or to a
// timestamped file in the working directory (csv, json).
func GenerateReport(results *domain.StrategyComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown output format %q", format)
	}

	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s report: %w", f.Name(), err)
	}

	if f.Name() == "console" {
		_, err = os.Stdout.Write(data)
		return err
	}

	filename := fmt.Sprintf("strategy_report_%s.%s", time.Now().Format("20060102_150405"), f.Name())
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
