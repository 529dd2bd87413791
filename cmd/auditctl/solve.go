package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harelcain/electiontransfer/ballot"
	"github.com/harelcain/electiontransfer/pipeline"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Args:  cobra.NoArgs,
	Short: "Estimate the transfer matrix between two elections",
	Long:  `Loads two elections' ballot rows, matches precincts, and solves for the row-stochastic transfer matrix.`,
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().String("source", "", "path to source-election ballot rows JSON")
	solveCmd.Flags().String("target", "", "path to target-election ballot rows JSON")
	solveCmd.Flags().String("source-election", "", "source election id")
	solveCmd.Flags().String("target-election", "", "target election id")
	solveCmd.Flags().String("source-parties", "", "comma-separated source party column order")
	solveCmd.Flags().String("target-parties", "", "comma-separated target party column order")
	solveCmd.Flags().Int("divisor", 0, "precinct_number_divisor for both elections")
}

func runSolve(cmd *cobra.Command, args []string) error {
	return runStage("solve", func() error { return doSolve(cmd) })
}

func doSolve(cmd *cobra.Command) error {
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	sourceElection, _ := cmd.Flags().GetString("source-election")
	targetElection, _ := cmd.Flags().GetString("target-election")
	sourceParties, _ := cmd.Flags().GetString("source-parties")
	targetParties, _ := cmd.Flags().GetString("target-parties")
	divisor, _ := cmd.Flags().GetInt("divisor")
	if source == "" || target == "" || sourceElection == "" || targetElection == "" {
		return fmt.Errorf("--source, --target, --source-election, and --target-election are required")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	sourceRows, err := loadBallotRows(source)
	if err != nil {
		return err
	}
	targetRows, err := loadBallotRows(target)
	if err != nil {
		return err
	}

	e1 := ballot.Load(sourceRows, ballot.ElectionId(sourceElection), divisor, nil)
	e2 := ballot.Load(targetRows, ballot.ElectionId(targetElection), divisor, nil)

	log := newCLILogger()
	runID := pipeline.RunID()
	runLog := log.WithRun(runID, sourceElection, targetElection)

	result, err := pipeline.SolveTransfer(runLog, e1, e2, splitColumns(sourceParties), splitColumns(targetParties), cfg, collector)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "run_id=%s matched_precincts=%d r_squared=%.4f iterations=%d status=%d exported_flows=%d\n",
		runID, len(result.Pairs), result.Result.RSquared, result.Result.Iterations, int(result.Result.Status), len(result.ExportedFlows))
	return nil
}
