package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swisssim/wealth-simulator/internal/calculation"
	"github.com/swisssim/wealth-simulator/internal/config"
	"github.com/swisssim/wealth-simulator/internal/output"
)

var (
	inputFile    string
	outputFormat string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "wealthsim",
	Short: "Swiss wealth strategy simulator",
	Long: `wealthsim projects household net worth over 30 years under competing
strategies for a Swiss property purchase: renting and investing the full
budget, repaying the mortgage as fast as possible, repaying until the
regulatory loan-to-value target and then investing, or amortizing only the
regulatory minimum and investing the rest.`,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare wealth strategies for a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}

		engine := calculation.NewSimulationEngine()
		if debugMode {
			engine.Debug = true
			engine.SetLogger(stderrLogger{})
		}

		results, err := engine.RunScenario(scenario)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		return output.GenerateReport(results, outputFormat)
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example scenario file to the working directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario := config.NewInputParser().CreateExampleScenario()
		data, err := yaml.Marshal(scenario)
		if err != nil {
			return fmt.Errorf("failed to marshal example scenario: %w", err)
		}
		filename := "example_scenario.yaml"
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		fmt.Printf("Example scenario written to %s\n", filename)
		return nil
	},
}

// stderrLogger routes engine debug output to stderr so reports on stdout
// stay machine-readable.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...interface{}) {
	log.Printf("DEBUG: "+format, args...)
}
func (stderrLogger) Infof(format string, args ...interface{}) {
	log.Printf("INFO: "+format, args...)
}
func (stderrLogger) Warnf(format string, args ...interface{}) {
	log.Printf("WARN: "+format, args...)
}
func (stderrLogger) Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}

func init() {
	compareCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to the scenario YAML file (required)")
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format: console, csv, json")
	compareCmd.Flags().BoolVar(&debugMode, "debug", false, "log intermediate figures to stderr")
	compareCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exampleCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
