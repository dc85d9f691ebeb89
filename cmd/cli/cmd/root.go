// Package cmd provides the CLI commands for finops-calc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finops-calc/core/engine"
	"finops-calc/internal/config"
	"finops-calc/internal/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "finops-calc",
	Short: "Unit-economics and FinOps health calculations for SaaS cost models",
	Long: `finops-calc computes break-even, unit-cost, and reliability-adjusted
economics for a SaaS business from its development and infrastructure spend.

It produces a calibrated cost model, a health score with actionable
deductions, prioritized recommendations, and shareable state tokens.

Examples:
  finops-calc calculate --inputs @inputs.json --series
  finops-calc health --inputs '{"devMonthly":500,"infraMonthly":2400,"arpu":30}'
  finops-calc recommend --zone yellow --category pricing --providers aws
  finops-calc state decode eyJ2IjoxfQ`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (HCL or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
	cfg.ApplyEnv()

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEngine builds the calculation engine shared by all subcommands.
func newEngine() *engine.Engine {
	return engine.New(logging.Logger)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("finops-calc version 0.1.0")
	},
}
