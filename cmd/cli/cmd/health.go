// Package cmd - health command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthInputs string

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Score the economic health of the current inputs",
	Long: `Compute a 0-100 health score with zone classification and the
deductions that explain it.

Examples:
  finops-calc health --inputs '{"devMonthly":500,"infraMonthly":2400,"arpu":30}'
  finops-calc health --inputs @inputs.json`,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().StringVarP(&healthInputs, "inputs", "i", "", "raw inputs as JSON or @file (required)")
	healthCmd.MarkFlagRequired("inputs")
}

func runHealth(cmd *cobra.Command, args []string) error {
	inputs, err := readJSONObject(healthInputs)
	if err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}
	return printJSON(newEngine().Health(inputs))
}
