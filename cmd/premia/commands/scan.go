package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/wonny/premia/internal/options"
	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/logger"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Screen a watchlist of symbols",
	Long: `Screens each symbol in the watchlist and prints the ranked contracts.

Runs once by default. With --schedule the scan repeats on a cron schedule
until interrupted.

Example:
  go run ./cmd/premia scan --symbols SPY,QQQ
  go run ./cmd/premia scan --symbols SPY --delta-calls 0.25 --filter calls
  go run ./cmd/premia scan --symbols SPY,QQQ --schedule "*/15 9-16 * * MON-FRI"`,
	RunE: runScan,
}

var (
	scanSymbols    string
	scanDeltaCalls float64
	scanDeltaPuts  float64
	scanFilter     string
	scanSchedule   string
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanSymbols, "symbols", "", "comma-separated watchlist (default DEFAULT_SYMBOL)")
	scanCmd.Flags().Float64Var(&scanDeltaCalls, "delta-calls", 0, "max delta for calls (default from config)")
	scanCmd.Flags().Float64Var(&scanDeltaPuts, "delta-puts", 0, "max delta for puts (default from config)")
	scanCmd.Flags().StringVar(&scanFilter, "filter", "both", "contract type filter (both|calls|puts)")
	scanCmd.Flags().StringVar(&scanSchedule, "schedule", "", "cron schedule for repeated scans")
}

func runScan(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Resolve watchlist and parameters
	symbols := splitSymbols(scanSymbols)
	if len(symbols) == 0 {
		symbols = []string{cfg.Screener.DefaultSymbol}
	}

	params := options.Params{
		MaxDeltaCalls: cfg.Screener.DefaultMaxDeltaCalls,
		MaxDeltaPuts:  cfg.Screener.DefaultMaxDeltaPuts,
	}
	if scanDeltaCalls > 0 {
		params.MaxDeltaCalls = scanDeltaCalls
	}
	if scanDeltaPuts > 0 {
		params.MaxDeltaPuts = scanDeltaPuts
	}
	params.FilterType, err = options.ParseFilterType(scanFilter)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	// 4. Build the selection pipeline
	selector := buildSelector(cfg, log)

	scan := func() {
		for _, symbol := range symbols {
			scanSymbol(selector, symbol, params)
		}
	}

	// 5. One-shot unless a schedule is given
	if scanSchedule == "" {
		scan()
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(scanSchedule, scan); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", scanSchedule, err)
	}

	log.WithField("schedule", scanSchedule).Info("Starting scheduled scans")
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Stopping scheduled scans")
	<-c.Stop().Done()
	return nil
}

// scanSymbol screens one symbol and prints the result
func scanSymbol(selector *options.Selector, symbol string, params options.Params) {
	result, err := selector.Select(context.Background(), symbol, params)
	if err != nil {
		if failure, ok := options.AsFailure(err); ok {
			fmt.Printf("\n%s: %s\n", strings.ToUpper(symbol), failure.Message)
		} else {
			fmt.Printf("\n%s: %v\n", strings.ToUpper(symbol), err)
		}
		return
	}

	fmt.Printf("\n%s @ %.2f (%d contracts, delta <= %.2f calls / %.2f puts)\n",
		result.Ticker, result.SpotPrice, len(result.Contracts),
		result.MaxDeltaCalls, result.MaxDeltaPuts)
	fmt.Printf("%-5s %8s %12s %5s %8s %7s %9s %8s %8s\n",
		"TYPE", "STRIKE", "EXPIRATION", "DTE", "PREMIUM", "DELTA", "ANNUAL%", "VOLUME", "OI")

	for _, c := range result.Contracts {
		fmt.Printf("%-5s %8.2f %12s %5d %8.2f %7.3f %9.2f %8d %8d\n",
			c.Type, c.Strike, c.Expiration.Format("2006-01-02"), c.DaysToExpiry,
			c.Premium, c.Delta, c.AnnualReturn, c.Volume, c.OpenInterest)
	}
}

// splitSymbols parses a comma-separated symbol list, dropping empty entries
func splitSymbols(raw string) []string {
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
