package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "auditctl",
	Short:   "Election transfer and irregularity audit engine",
	Long:    `auditctl reconstructs vote-transfer dynamics between two elections, forward-simulates synthetic ballots, scores precinct irregularities, and aggregates settlement-level metrics.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default uses the built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(aggregateCmd)
}

// Commands are defined in separate files:
// - solveCmd in solve.go
// - simulateCmd in simulate.go
// - scoreCmd in score.go
// - aggregateCmd in aggregate.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
