// Package cmd - recommend command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finops-calc/core/engine"
)

var (
	recZone      string
	recProviders []string
	recCategory  string
	recInputs    string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List prioritized FinOps recommendations",
	Long: `Produce recommendations filtered by health zone, provider scope,
and category. When inputs are given, strategic synthesis items are
derived from the current economics and listed first.

Examples:
  finops-calc recommend --zone red
  finops-calc recommend --zone yellow --category pricing --providers aws
  finops-calc recommend --inputs @inputs.json`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recZone, "zone", "z", "", "health zone filter (red, yellow, green, awaiting)")
	recommendCmd.Flags().StringSliceVarP(&recProviders, "providers", "p", nil, "provider filter (aws, azure, gcp, oci, ibm, alibaba, huawei, multi)")
	recommendCmd.Flags().StringVarP(&recCategory, "category", "c", "", "category filter (infrastructure, pricing, marketing, crm, governance)")
	recommendCmd.Flags().StringVarP(&recInputs, "inputs", "i", "", "raw inputs as JSON or @file, for strategic synthesis")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	engineArgs := engine.RecommendArgs{}
	if recZone != "" {
		engineArgs.ZoneKey = recZone
	}
	if len(recProviders) > 0 {
		engineArgs.Providers = stringsToInterface(recProviders)
	}
	if recCategory != "" {
		engineArgs.Category = recCategory
	}
	if recInputs != "" {
		inputs, err := readJSONObject(recInputs)
		if err != nil {
			return fmt.Errorf("invalid inputs: %w", err)
		}
		engineArgs.Inputs = inputs
	}
	return printJSON(newEngine().Recommend(engineArgs))
}
