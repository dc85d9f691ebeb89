// Package cmd - calculate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"finops-calc/core/engine"
	"finops-calc/internal/logging"
)

var (
	calcInputs    string
	calcProviders []string
	calcCurves    []string
	calcUIMode    string
	calcUIIntent  string
	calcSeries    bool
	calcNoHealth  bool
	calcNoRecs    bool
	calcNoState   bool
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the full unit-economics calculation",
	Long: `Compute the calibrated cost model, economic outputs, health score,
recommendations, and a shareable state token from raw inputs.

Inputs are a JSON object, given inline or as @file.

Examples:
  finops-calc calculate --inputs '{"devMonthly":500,"infraMonthly":2400,"arpu":30}'
  finops-calc calculate --inputs @inputs.json --providers aws,gcp --series
  finops-calc calculate --inputs @inputs.json --no-health --no-recommendations`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calcInputs, "inputs", "i", "", "raw inputs as JSON or @file (required)")
	calculateCmd.Flags().StringSliceVarP(&calcProviders, "providers", "p", nil, "cloud providers in scope (aws, azure, gcp, oci, ibm, alibaba, huawei, multi)")
	calculateCmd.Flags().StringSliceVar(&calcCurves, "hidden-curves", nil, "curve keys to hide in the series")
	calculateCmd.Flags().StringVar(&calcUIMode, "ui-mode", "", "presentation mode hint (quick, operator, architect)")
	calculateCmd.Flags().StringVar(&calcUIIntent, "ui-intent", "", "intent hint (viability, operations, architecture, executive)")
	calculateCmd.Flags().BoolVar(&calcSeries, "series", false, "include the evaluated curve series")
	calculateCmd.Flags().BoolVar(&calcNoHealth, "no-health", false, "skip health scoring")
	calculateCmd.Flags().BoolVar(&calcNoRecs, "no-recommendations", false, "skip recommendations")
	calculateCmd.Flags().BoolVar(&calcNoState, "no-state", false, "skip state token generation")
	calculateCmd.MarkFlagRequired("inputs")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	inputs, err := readJSONObject(calcInputs)
	if err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}

	logging.Info("Running calculation")

	engineArgs := engine.CalculateArgs{
		Inputs: inputs,
		Options: map[string]interface{}{
			"includeSeries":          calcSeries,
			"includeHealth":          !calcNoHealth,
			"includeRecommendations": !calcNoRecs,
			"includeStateToken":      !calcNoState,
		},
	}
	if len(calcProviders) > 0 {
		engineArgs.Providers = stringsToInterface(calcProviders)
	}
	if len(calcCurves) > 0 {
		engineArgs.HiddenCurves = stringsToInterface(calcCurves)
	}
	if calcUIMode != "" {
		engineArgs.UIMode = calcUIMode
	}
	if calcUIIntent != "" {
		engineArgs.UIIntent = calcUIIntent
	}

	result, err := newEngine().Calculate(engineArgs)
	if err != nil {
		return err
	}
	return printJSON(result)
}

// readJSONObject parses a JSON object from an inline string or an @file reference.
func readJSONObject(arg string) (map[string]interface{}, error) {
	raw := strings.TrimSpace(arg)
	if strings.HasPrefix(raw, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, err
		}
		raw = string(data)
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func stringsToInterface(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
