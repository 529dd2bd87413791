package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/irregularity"
	"github.com/harelcain/electiontransfer/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Args:  cobra.NoArgs,
	Short: "Rank precincts by irregularity score",
	Long:  `Runs the six irregularity detectors over one election's precincts and reports the anomalies clearing the ranking gate.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().String("input", "", "path to ballot rows JSON")
	scoreCmd.Flags().String("election", "", "election id")
	scoreCmd.Flags().String("parties", "", "comma-separated declared party column order")
	scoreCmd.Flags().Int("divisor", 0, "precinct_number_divisor")
	scoreCmd.Flags().Int("min-valid", 50, "minimum valid votes to score a precinct")
	scoreCmd.Flags().Float64("min-score", 8.0, "minimum combined score to surface an anomaly")
	scoreCmd.Flags().Int("top-n", 100, "maximum anomalies reported")
	scoreCmd.Flags().Int64("seed", 42, "k-means seed")
}

func runScore(cmd *cobra.Command, args []string) error {
	return runStage("score", func() error { return doScore(cmd) })
}

func doScore(cmd *cobra.Command) error {
	input, _ := cmd.Flags().GetString("input")
	election, _ := cmd.Flags().GetString("election")
	parties, _ := cmd.Flags().GetString("parties")
	divisor, _ := cmd.Flags().GetInt("divisor")
	minValid, _ := cmd.Flags().GetInt("min-valid")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	topN, _ := cmd.Flags().GetInt("top-n")
	seed, _ := cmd.Flags().GetInt64("seed")
	if input == "" || election == "" {
		return fmt.Errorf("--input and --election are required")
	}

	rows, err := loadBallotRows(input)
	if err != nil {
		return err
	}
	table := ballot.Load(rows, ballot.ElectionId(election), divisor, nil)

	opts := irregularity.Options{MinValid: minValid, MinScore: minScore, TopN: topN, Seed: seed}

	log := newCLILogger()
	runID := pipeline.RunID()
	runLog := log.WithRun(runID, election, election)

	anomalies, err := pipeline.ScoreIrregularities(context.Background(), runLog, table, splitColumns(parties), opts, nil, false, collector)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "run_id=%s anomalies=%d\n", runID, len(anomalies))
	for _, a := range anomalies {
		fmt.Fprintf(os.Stdout, "  %s\n", irregularity.Explain(a))
	}
	return nil
}
