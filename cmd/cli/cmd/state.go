// Package cmd - state commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"finops-calc/core/engine"
)

var (
	encodeState    string
	encodeInputs   string
	encodeUIMode   string
	encodeUIIntent string
)

// stateCmd groups the share-state subcommands
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Encode and decode shareable state tokens",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// stateEncodeCmd encodes a state payload into a URL-safe token
var stateEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a state payload into a URL-safe token",
	Long: `Encode a complete state object, or assemble one from raw inputs
and UI hints, into a compact URL-safe token.

Examples:
  finops-calc state encode --state '{"v":1,"i":{"dev":"500"}}'
  finops-calc state encode --inputs @inputs.json --ui-mode operator`,
	RunE: runStateEncode,
}

// stateDecodeCmd decodes a token back into its payload
var stateDecodeCmd = &cobra.Command{
	Use:   "decode [token]",
	Short: "Decode a state token back into its payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateDecode,
}

func init() {
	stateEncodeCmd.Flags().StringVar(&encodeState, "state", "", "complete state object as JSON or @file")
	stateEncodeCmd.Flags().StringVarP(&encodeInputs, "inputs", "i", "", "raw inputs as JSON or @file")
	stateEncodeCmd.Flags().StringVar(&encodeUIMode, "ui-mode", "", "presentation mode hint (quick, operator, architect)")
	stateEncodeCmd.Flags().StringVar(&encodeUIIntent, "ui-intent", "", "intent hint (viability, operations, architecture, executive)")

	stateCmd.AddCommand(stateEncodeCmd)
	stateCmd.AddCommand(stateDecodeCmd)
}

func runStateEncode(cmd *cobra.Command, args []string) error {
	engineArgs := engine.EncodeStateArgs{}
	if encodeState != "" {
		state, err := readJSONObject(encodeState)
		if err != nil {
			return fmt.Errorf("invalid state: %w", err)
		}
		engineArgs.State = state
	}
	if encodeInputs != "" {
		inputs, err := readJSONObject(encodeInputs)
		if err != nil {
			return fmt.Errorf("invalid inputs: %w", err)
		}
		engineArgs.Inputs = inputs
	}
	if encodeUIMode != "" {
		engineArgs.UIMode = encodeUIMode
	}
	if encodeUIIntent != "" {
		engineArgs.UIIntent = encodeUIIntent
	}

	token, err := newEngine().EncodeState(engineArgs)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runStateDecode(cmd *cobra.Command, args []string) error {
	payload, err := newEngine().DecodeState(args[0])
	if err != nil {
		return err
	}
	return printJSON(payload)
}
