package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "premia",
	Short: "Options income screener",
	Long: `Premia - options income screener

Fetches an underlying's spot price and option chain, screens contracts by
expiration, moneyness, premium and delta, and ranks them by annualized
premium yield.

Usage:
  go run ./cmd/premia [command]

Examples:
  go run ./cmd/premia api
  go run ./cmd/premia scan --symbols SPY,QQQ
  go run ./cmd/premia scan --symbols SPY --schedule "*/15 9-16 * * MON-FRI"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
